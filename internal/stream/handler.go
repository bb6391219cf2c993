package stream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/tomz197/wavesurvivor/internal/event"
	"github.com/tomz197/wavesurvivor/internal/loop/config"
	"github.com/tomz197/wavesurvivor/internal/loop/match"
	"github.com/tomz197/wavesurvivor/internal/loop/server"
)

const maxNameLen = 16

// Handler upgrades requests to websockets and plays one match per connection.
type Handler struct {
	hub       *server.Hub
	logger    *log.Logger
	upgrader  websocket.Upgrader
	matchOpts []match.Option
}

// NewHandler creates a handler registering its sessions with hub.
// opts are applied to every match it creates.
func NewHandler(hub *server.Hub, logger *log.Logger, opts ...match.Option) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			// The landing page may be served from another origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		matchOpts: opts,
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		name = "web"
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}

	sess := h.hub.Register(name, r.RemoteAddr)
	defer h.hub.Unregister(sess.ID)

	opts := append([]match.Option{match.WithLogger(h.logger)}, h.matchOpts...)
	if err := h.play(r.Context(), conn, sess, match.New(opts...)); err != nil {
		h.logger.Warn("stream ended", "user", name, "err", err)
	}
}

// play runs the match loop for one connection. It owns all writes to conn.
func (h *Handler) play(ctx context.Context, conn *websocket.Conn, sess *server.Session, m *match.Match) error {
	conn.SetReadLimit(config.StreamReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(config.StreamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(config.StreamPongWait))
	})

	done := make(chan struct{})
	defer close(done)
	cmds := make(chan Command, 32)
	readErr := make(chan error, 1)
	go h.readLoop(conn, cmds, readErr, done)

	ticker := time.NewTicker(config.StreamTickTime)
	defer ticker.Stop()
	ping := time.NewTicker(config.StreamPingPeriod)
	defer ping.Stop()

	var (
		frame Frame
		f     = feed{m: m}
		last  = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-readErr:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read: %w", err)

		case n, ok := <-sess.Notices:
			if !ok || n == server.NoticeShutdown {
				msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
				_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(config.StreamWriteWait))
				return nil
			}

		case cmd := <-cmds:
			f.apply(cmd)

		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(config.StreamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return fmt.Errorf("ping: %w", err)
			}

		case now := <-ticker.C:
			due := f.step(now.Sub(last))
			last = now
			if !due {
				continue
			}
			data, err := f.flush(&frame)
			if err != nil {
				return err
			}

			_ = conn.SetWriteDeadline(time.Now().Add(config.StreamWriteWait))
			if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return fmt.Errorf("write frame: %w", err)
			}
		}
	}
}

// feed steps a match and collects its events between broadcasts.
type feed struct {
	m      *match.Match
	events []event.Event
	ticks  int
}

// apply runs a client command. A reset drops events of the finished match.
func (f *feed) apply(cmd Command) {
	Apply(f.m, cmd)
	if cmd.Type == CommandReset {
		f.events = f.events[:0]
	}
}

// step advances the match and reports whether a frame is due.
func (f *feed) step(delta time.Duration) bool {
	f.m.Update(delta)
	f.events = f.m.Drain(f.events)
	f.ticks++
	return f.ticks%config.StreamBroadcastEach == 0
}

// flush encodes the current snapshot with the pending events into frame.
func (f *feed) flush(frame *Frame) ([]byte, error) {
	f.m.Snapshot(&frame.Snapshot)
	frame.Events = f.events
	data, err := EncodeFrame(frame)
	if err != nil {
		return nil, err
	}
	f.events = f.events[:0]
	return data, nil
}

// readLoop decodes client commands until the connection fails. Malformed
// commands are logged and skipped.
func (h *Handler) readLoop(conn *websocket.Conn, cmds chan<- Command, readErr chan<- error, done <-chan struct{}) {
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			readErr <- err
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		cmd, err := DecodeCommand(data)
		if err != nil {
			h.logger.Debug("dropping command", "err", err)
			continue
		}
		select {
		case cmds <- cmd:
		case <-done:
			return
		}
	}
}
