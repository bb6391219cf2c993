// Package client runs one terminal session: it owns a match, feeds it
// keyboard input and draws it with half-block graphics.
package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/wavesurvivor/internal/draw"
	"github.com/tomz197/wavesurvivor/internal/event"
	"github.com/tomz197/wavesurvivor/internal/input"
	"github.com/tomz197/wavesurvivor/internal/loop/config"
	"github.com/tomz197/wavesurvivor/internal/loop/match"
	"github.com/tomz197/wavesurvivor/internal/loop/server"
	"github.com/tomz197/wavesurvivor/internal/object"
)

// Client handles rendering and input for a single connection.
type Client struct {
	match        *match.Match
	hub          *server.Hub
	session      *server.Session
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Remote       string
	Hub          *server.Hub // Optional; registers the session for shutdown notices
	Logger       *log.Logger
	Rand         *rand.Rand // Optional; seeds the match
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	matchOpts := []match.Option{match.WithLogger(logger)}
	if opts.Rand != nil {
		matchOpts = append(matchOpts, match.WithRand(opts.Rand))
	}

	state := NewClientState()
	state.termSizeFunc = termSizeFunc

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.FieldWidth, config.FieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	c := &Client{
		match:        match.New(matchOpts...),
		hub:          opts.Hub,
		state:        state,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger,
	}
	if c.hub != nil {
		c.session = c.hub.Register(opts.Username, opts.Remote)
	}
	return c
}

// Run starts the client loop. Blocks until the player quits, the input
// ends, ctx is cancelled or the host shuts down.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	if c.session != nil {
		defer c.hub.Unregister(c.session.ID)
	}

	lastTime := time.Now()

	for c.state.Running {
		if ctx.Err() != nil {
			break
		}

		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processNotices()
		c.updateScreen()

		switch c.state.GameState {
		case GameStateStart:
			c.updateStartState()
		case GameStatePlaying:
			c.updatePlayingState()
		case GameStateDead:
			c.updateDeadState()
		case GameStateShutdown:
			c.updateShutdownState()
		}
		c.state.tickBanner(c.state.delta.Seconds())

		if err := c.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads held keys and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)
	if c.inputStream.Closed() {
		c.state.Running = false
		return
	}

	if c.state.Input.Any() {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive session", "user", c.username)
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}
}

// processNotices handles messages from the hub.
func (c *Client) processNotices() {
	if c.session == nil {
		return
	}
	for {
		select {
		case n, ok := <-c.session.Notices:
			if !ok {
				c.state.Running = false
				return
			}
			if n == server.NoticeShutdown && c.state.GameState != GameStateShutdown {
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

func (c *Client) updateStartState() {
	if c.state.Input.Enter {
		c.startGame()
	}
}

// updatePlayingState steers the aim point, latches commands and advances
// the match by the frame delta.
func (c *Client) updatePlayingState() {
	field := c.match.Field()
	frames := float64(c.state.delta) / float64(config.FrameTime)
	c.state.targetX, c.state.targetY = steer(c.state.targetX, c.state.targetY, c.state.Input, frames, field)
	c.match.SetTarget(c.state.targetX, c.state.targetY)
	if c.state.Input.Missile {
		c.match.RequestMissile()
	}

	c.match.Update(c.state.delta)
	c.state.events = c.match.Drain(c.state.events[:0])
	for _, ev := range c.state.events {
		c.handleEvent(ev)
	}
	c.match.Snapshot(&c.state.snapshot)
}

// steer moves the aim point by the held arrow keys, keeping it on the field.
func steer(x, y float64, in input.Input, frames float64, field object.Field) (float64, float64) {
	step := config.TargetStep * frames
	if in.Left {
		x -= step
	}
	if in.Right {
		x += step
	}
	if in.Up {
		y -= step
	}
	if in.Down {
		y += step
	}
	return field.ClampPlayer(x, y, config.FieldInset)
}

func (c *Client) handleEvent(ev event.Event) {
	switch ev.Type {
	case event.Wave:
		c.state.showBanner(fmt.Sprintf("WAVE %d", int(ev.Value)), draw.ColorBrightYellow, config.BannerSeconds)
	case event.BossWave:
		c.state.showBanner(fmt.Sprintf("BOSS WAVE %d", int(ev.Value)), draw.ColorBrightRed, config.BannerSeconds)
	case event.SizeChange:
		c.state.showBanner(fmt.Sprintf("SHIP LEVEL %d", int(ev.Value)), draw.ColorBrightCyan, config.BannerSeconds)
	case event.PlayerDestroyed:
		c.finishMatch()
	}
}

// finishMatch records the result and switches to the results screen.
func (c *Client) finishMatch() {
	res := c.match.Result()
	c.state.result = res
	c.state.played++
	if res.Score > c.state.best.Score || c.state.played == 1 {
		c.state.best = res
	}
	c.state.banner = ""
	c.state.bannerTimer = 0
	c.state.GameState = GameStateDead
	c.logger.Info("match finished",
		"user", c.username, "score", res.Score, "kills", res.Kills,
		"wave", res.Wave, "survived", time.Duration(res.SurvivalSeconds*float64(time.Second)).Round(time.Second))
}

func (c *Client) updateDeadState() {
	if c.state.Input.Enter {
		c.startGame()
	}
}

// startGame starts a fresh match.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)

	c.match.Reset()
	c.match.Snapshot(&c.state.snapshot)
	c.state.targetX = c.state.snapshot.Player.X
	c.state.targetY = c.state.snapshot.Player.Y
	c.state.events = c.state.events[:0]
	c.state.GameState = GameStatePlaying
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
