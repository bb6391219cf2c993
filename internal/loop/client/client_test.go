package client

import (
	"bufio"
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/wavesurvivor/internal/event"
	"github.com/tomz197/wavesurvivor/internal/input"
	"github.com/tomz197/wavesurvivor/internal/loop/config"
	"github.com/tomz197/wavesurvivor/internal/loop/server"
	"github.com/tomz197/wavesurvivor/internal/object"
)

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{"fits", 120, 40, 120, 40, 0, 0},
		{"too wide", config.MaxTermWidth + 40, 40, config.MaxTermWidth, 40, 20, 0},
		{"too tall", 100, config.MaxTermHeight + 11, 100, config.MaxTermHeight, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, rh, oc, or := clampTermSize(tt.w, tt.h)
			if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
				t.Fatalf("got %d,%d,%d,%d want %d,%d,%d,%d", rw, rh, oc, or, tt.rw, tt.rh, tt.offCol, tt.offRow)
			}
		})
	}
}

func TestSteerMovesAndClamps(t *testing.T) {
	field := object.Field{Width: 800, Height: 600}

	x, y := steer(400, 300, input.Input{Left: true, Up: true}, 2, field)
	if x != 400-2*config.TargetStep || y != 300-2*config.TargetStep {
		t.Fatalf("got (%v,%v)", x, y)
	}

	x, y = steer(795, 5, input.Input{Right: true, Up: true}, 1, field)
	if x != 800-config.FieldInset || y != config.FieldInset {
		t.Fatalf("got (%v,%v), want clamped inside the inset", x, y)
	}

	x, y = steer(100, 100, input.Input{}, 1, field)
	if x != 100 || y != 100 {
		t.Fatalf("idle input moved aim to (%v,%v)", x, y)
	}
}

func TestBannerExpires(t *testing.T) {
	s := NewClientState()
	s.showBanner("WAVE 2", 0, 1)
	s.tickBanner(0.5)
	if s.banner != "WAVE 2" {
		t.Fatalf("banner cleared early")
	}
	s.tickBanner(0.6)
	if s.banner != "" {
		t.Fatalf("banner still shown after expiry")
	}
}

func TestFormatClock(t *testing.T) {
	if got := formatClock(125 * time.Second); got != "2:05" {
		t.Fatalf("got %q, want 2:05", got)
	}
}

func newTestClient(t *testing.T, hub *server.Hub) *Client {
	t.Helper()
	r := bufio.NewReader(strings.NewReader(""))
	return NewClient(r, &bytes.Buffer{}, ClientOptions{
		TermSizeFunc: func() (int, int, error) { return 100, 40, nil },
		Username:     "tester",
		Hub:          hub,
		Rand:         rand.New(rand.NewSource(1)),
	})
}

func TestStartAndFinishMatch(t *testing.T) {
	c := newTestClient(t, nil)
	c.startGame()
	if c.state.GameState != GameStatePlaying {
		t.Fatalf("state = %v, want playing", c.state.GameState)
	}
	if c.state.targetX != c.state.snapshot.Player.X || c.state.targetY != c.state.snapshot.Player.Y {
		t.Fatalf("aim not placed on the ship")
	}

	c.handleEvent(event.Event{Type: event.BossWave, Value: 5})
	if c.state.banner != "BOSS WAVE 5" {
		t.Fatalf("banner = %q", c.state.banner)
	}

	c.handleEvent(event.Event{Type: event.PlayerDestroyed})
	if c.state.GameState != GameStateDead || c.state.played != 1 {
		t.Fatalf("state = %v played = %d", c.state.GameState, c.state.played)
	}
	if c.state.banner != "" {
		t.Fatalf("banner survived match end")
	}
}

func TestPlayingFrameAdvancesMatch(t *testing.T) {
	c := newTestClient(t, nil)
	c.startGame()
	c.state.delta = 50 * time.Millisecond
	c.updatePlayingState()
	if c.state.snapshot.Elapsed <= 0 {
		t.Fatalf("match did not advance")
	}
	if c.state.snapshot.Wave != 1 {
		t.Fatalf("wave = %d, want 1", c.state.snapshot.Wave)
	}
}

func TestShutdownNotice(t *testing.T) {
	hub := server.NewHub(nil)
	c := newTestClient(t, hub)
	if hub.Count() != 1 {
		t.Fatalf("session not registered")
	}

	go hub.Shutdown(10 * time.Millisecond)
	deadline := time.Now().Add(time.Second)
	for c.state.GameState != GameStateShutdown && time.Now().Before(deadline) {
		c.processNotices()
		time.Sleep(time.Millisecond)
	}
	if c.state.GameState != GameStateShutdown {
		t.Fatalf("shutdown notice not handled")
	}
	hub.Unregister(c.session.ID)
}

func TestRunEndsWhenInputCloses(t *testing.T) {
	hub := server.NewHub(nil)
	c := newTestClient(t, hub)

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after EOF")
	}
	if hub.Count() != 0 {
		t.Fatalf("session not unregistered")
	}
}
