// Package stream serves matches over websockets. Each connection runs its
// own match; the browser sends JSON commands and receives msgpack frames.
package stream

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tomz197/wavesurvivor/internal/event"
	"github.com/tomz197/wavesurvivor/internal/loop/match"
)

// Command types sent by the browser.
const (
	CommandTarget  = "target"
	CommandMissile = "missile"
	CommandReset   = "reset"
)

// Command is one client message, e.g. {"type":"target","x":120,"y":400}.
type Command struct {
	Type string  `json:"type"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
}

// Frame is one server broadcast: the current state plus every event
// emitted since the previous frame.
type Frame struct {
	Snapshot match.Snapshot `msgpack:"s"`
	Events   []event.Event  `msgpack:"ev"`
}

// DecodeCommand parses and validates a client message.
func DecodeCommand(data []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return Command{}, fmt.Errorf("decode command: %w", err)
	}
	switch cmd.Type {
	case CommandTarget, CommandMissile, CommandReset:
	default:
		return Command{}, fmt.Errorf("decode command: unknown type %q", cmd.Type)
	}
	return cmd, nil
}

// Apply latches cmd on m.
func Apply(m *match.Match, cmd Command) {
	switch cmd.Type {
	case CommandTarget:
		m.SetTarget(cmd.X, cmd.Y)
	case CommandMissile:
		m.RequestMissile()
	case CommandReset:
		m.Reset()
	}
}

// EncodeFrame serializes f with msgpack.
func EncodeFrame(f *Frame) ([]byte, error) {
	data, err := msgpack.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return data, nil
}

// DecodeFrame is the inverse of EncodeFrame.
func DecodeFrame(data []byte, f *Frame) error {
	if err := msgpack.Unmarshal(data, f); err != nil {
		return fmt.Errorf("decode frame: %w", err)
	}
	return nil
}
