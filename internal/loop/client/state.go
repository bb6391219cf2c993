package client

import (
	"time"

	"github.com/tomz197/wavesurvivor/internal/draw"
	"github.com/tomz197/wavesurvivor/internal/event"
	"github.com/tomz197/wavesurvivor/internal/input"
	"github.com/tomz197/wavesurvivor/internal/loop/match"
)

// GameState represents the current screen of a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active match
	GameStateDead                      // Match over, results shown
	GameStateShutdown                  // Host is shutting down
)

// ClientState holds per-connection state that is not part of the match.
type ClientState struct {
	Input         input.Input
	GameState     GameState
	prevGameState GameState
	Running       bool
	delta         time.Duration

	// Aim point the keyboard moves; the ship follows it.
	targetX, targetY float64

	banner      string
	bannerColor draw.Color
	bannerTimer float64

	result match.Result // Last finished match
	best   match.Result // Best score this session
	played int          // Matches finished this session

	snapshot match.Snapshot
	events   []event.Event

	termSizeFunc  draw.TermSizeFunc
	shutdownTimer float64
	isInactive    bool
	wasInactive   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStateStart,
		Running:   true,
	}
}

// showBanner displays text in the middle of the field for a while.
// A newer banner replaces the current one.
func (s *ClientState) showBanner(text string, color draw.Color, seconds float64) {
	s.banner = text
	s.bannerColor = color
	s.bannerTimer = seconds
}

func (s *ClientState) tickBanner(seconds float64) {
	if s.bannerTimer <= 0 {
		return
	}
	s.bannerTimer -= seconds
	if s.bannerTimer <= 0 {
		s.bannerTimer = 0
		s.banner = ""
	}
}
