// Package server tracks the live sessions of a host process. Every session
// runs its own match; the hub only exists so the process can tell sessions
// it is shutting down and wait for them to leave.
package server

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Notice is a message from the hub to a session.
type Notice int

const (
	// NoticeShutdown asks the session to show a farewell and disconnect.
	NoticeShutdown Notice = iota + 1
)

// Session is a registered connection.
type Session struct {
	ID       int
	Username string
	Remote   string
	Since    time.Time
	Notices  chan Notice // Buffered; closed on Unregister
}

// Hub manages the set of live sessions. It is safe for concurrent use.
type Hub struct {
	mu       sync.RWMutex
	sessions map[int]*Session
	nextID   int
	closing  bool
	logger   *log.Logger
}

// NewHub creates an empty hub. A nil logger discards messages.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		sessions: make(map[int]*Session),
		nextID:   1,
		logger:   logger,
	}
}

// Register adds a session and returns its handle. Sessions registered after
// Shutdown started receive the shutdown notice immediately.
func (h *Hub) Register(username, remote string) *Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := &Session{
		ID:       h.nextID,
		Username: username,
		Remote:   remote,
		Since:    time.Now(),
		Notices:  make(chan Notice, 4),
	}
	h.nextID++
	h.sessions[s.ID] = s
	if h.closing {
		s.Notices <- NoticeShutdown
	}
	h.logger.Info("session registered", "id", s.ID, "user", username, "remote", remote, "live", len(h.sessions))
	return s
}

// Unregister removes a session and closes its notice channel. Unknown ids are ignored.
func (h *Hub) Unregister(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[id]
	if !ok {
		return
	}
	close(s.Notices)
	delete(h.sessions, id)
	h.logger.Info("session ended", "id", id, "user", s.Username, "duration", time.Since(s.Since).Round(time.Second), "live", len(h.sessions))
}

// Count returns the number of live sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Shutdown notifies every session and waits for all of them to unregister,
// up to timeout. Returns the number of sessions still live when it gave up.
func (h *Hub) Shutdown(timeout time.Duration) int {
	h.mu.Lock()
	h.closing = true
	for _, s := range h.sessions {
		select {
		case s.Notices <- NoticeShutdown:
		default:
		}
	}
	h.logger.Info("shutdown notice sent", "sessions", len(h.sessions))
	h.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if remaining := h.Count(); remaining == 0 {
			return 0
		}
		select {
		case <-deadline:
			remaining := h.Count()
			h.logger.Warn("shutdown timed out", "remaining", remaining)
			return remaining
		case <-ticker.C:
		}
	}
}
