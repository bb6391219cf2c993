package server

import (
	"testing"
	"time"
)

func TestRegisterUnregister(t *testing.T) {
	h := NewHub(nil)
	a := h.Register("ann", "1.2.3.4:5")
	b := h.Register("bo", "")
	if a.ID == b.ID {
		t.Fatalf("duplicate session id %d", a.ID)
	}
	if h.Count() != 2 {
		t.Fatalf("count = %d, want 2", h.Count())
	}

	h.Unregister(a.ID)
	h.Unregister(a.ID) // second call is a no-op
	if h.Count() != 1 {
		t.Fatalf("count = %d, want 1", h.Count())
	}
	if _, ok := <-a.Notices; ok {
		t.Fatalf("notice channel not closed on unregister")
	}
}

func TestShutdownWaitsForSessions(t *testing.T) {
	h := NewHub(nil)
	s := h.Register("ann", "")

	go func() {
		if n := <-s.Notices; n == NoticeShutdown {
			h.Unregister(s.ID)
		}
	}()

	if remaining := h.Shutdown(2 * time.Second); remaining != 0 {
		t.Fatalf("remaining = %d, want 0", remaining)
	}
}

func TestShutdownTimesOut(t *testing.T) {
	h := NewHub(nil)
	h.Register("stuck", "")
	start := time.Now()
	if remaining := h.Shutdown(100 * time.Millisecond); remaining != 1 {
		t.Fatalf("remaining = %d, want 1", remaining)
	}
	if time.Since(start) < 100*time.Millisecond {
		t.Fatalf("shutdown returned before the timeout")
	}
}

func TestLateRegistrationGetsNotice(t *testing.T) {
	h := NewHub(nil)
	h.Shutdown(0)
	s := h.Register("late", "")
	select {
	case n := <-s.Notices:
		if n != NoticeShutdown {
			t.Fatalf("notice = %v", n)
		}
	default:
		t.Fatalf("late session not told about shutdown")
	}
}
