package client

import (
	"fmt"
	"time"

	"github.com/tomz197/wavesurvivor/internal/draw"
	"github.com/tomz197/wavesurvivor/internal/loop/config"
	"github.com/tomz197/wavesurvivor/internal/loop/match"
)

var titleArt = []string{
	`╦ ╦╔═╗╦  ╦╔═╗  ╔═╗╦ ╦╦═╗╦  ╦╦╦  ╦╔═╗╦═╗`,
	`║║║╠═╣╚╗╔╝║╣   ╚═╗║ ║╠╦╝╚╗╔╝║╚╗╔╝║ ║╠╦╝`,
	`╚╩╝╩ ╩ ╚╝ ╚═╝  ╚═╝╚═╝╩╚═ ╚╝ ╩ ╚╝ ╚═╝╩╚═`,
}

var gameOverArt = []string{
	`╔═╗╔═╗╔╦╗╔═╗  ╔═╗╦  ╦╔═╗╦═╗`,
	`║ ╦╠═╣║║║║╣   ║ ║╚╗╔╝║╣ ╠╦╝`,
	`╚═╝╩ ╩╩ ╩╚═╝  ╚═╝ ╚╝ ╚═╝╩╚═`,
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On screen or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	if c.state.GameState == GameStatePlaying {
		c.drawWorld(&c.state.snapshot)
	}
	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI()

	return c.chunkWriter.Flush()
}

// drawUI draws the text overlay for the current screen.
func (c *Client) drawUI() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.GameState {
	case GameStatePlaying:
		c.drawPowerupLetters(&c.state.snapshot)
		c.drawPlayingHUD(termWidth, termHeight, &c.state.snapshot)
		c.drawBanner(centerX, centerY)
	case GameStateStart:
		c.drawStartScreen(centerX, centerY)
	case GameStateDead:
		c.drawResultsScreen(centerX, centerY)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	cw.WriteCentered(centerX, centerY, msg)
	cw.WriteCentered(centerX, centerY+2, "Press any key to continue")
}

func (c *Client) drawStartScreen(centerX, centerY int) {
	cw := c.chunkWriter
	top := centerY - 8
	for i, line := range titleArt {
		cw.WriteColorAt(centerX-runeLen(line)/2, top+i, draw.ColorBrightCyan, line)
	}

	cw.WriteCentered(centerX, top+len(titleArt)+1, "~ Hold the line. The waves do not stop. ~")

	controlsY := top + len(titleArt) + 3
	cw.WriteCentered(centerX, controlsY, "Controls")
	controlLines := []string{
		"Arrows / WASD  . . . . . Aim",
		"SPACE  . . . . . . . Missile",
		"ENTER  . . . . . . . . Start",
		"Q  . . . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		cw.WriteCentered(centerX, controlsY+1+i, line)
	}
	cw.WriteCentered(centerX, controlsY+len(controlLines)+2, "Your guns fire on their own. Kills grow your ship.")

	if time.Now().UnixMilli()/600%2 == 0 {
		cw.WriteCentered(centerX, controlsY+len(controlLines)+4, ">>  Press ENTER to Start  <<")
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, s *match.Snapshot) {
	cw := c.chunkWriter
	p := s.Player

	cw.WriteAt(2, 1, fmt.Sprintf("Score: %-8d Wave: %-3d Kills: %-5d", s.Score, s.Wave, p.Kills))

	elapsed := time.Duration(s.Elapsed * float64(time.Second))
	clock := fmt.Sprintf("Lv %-2d %s", p.Level, formatClock(elapsed))
	cw.WriteAt(termWidth-runeLen(clock)-1, 1, clock)

	hpColor := draw.ColorGreen
	if p.HP < config.PlayerMaxHP/4 {
		hpColor = draw.ColorRed
	}
	col := 2
	cw.WriteAt(col, termHeight, "HP ")
	col += 3
	cw.WriteColorAt(col, termHeight, hpColor, draw.Bar(p.HP/config.PlayerMaxHP, 16))
	col += 16
	cw.WriteAt(col, termHeight, fmt.Sprintf(" %-3.0f  SH ", p.HP))
	col += 9
	cw.WriteColorAt(col, termHeight, draw.ColorBlue, draw.Bar(p.Shield/config.PlayerMaxShield, 8))
	col += 8
	cw.WriteAt(col, termHeight, fmt.Sprintf(" %-3.0f", p.Shield))

	missile := "READY"
	if !p.MissileReady {
		missile = fmt.Sprintf("%3.0f%% ", p.MissileFraction*100)
	}
	label := "Missile " + draw.Bar(p.MissileFraction, 10) + " " + missile
	cw.WriteColorAt(termWidth-runeLen(label)-1, termHeight, draw.ColorBrightYellow, label)
}

// drawBanner shows the current wave or level banner. The cells are marked
// dirty so the field is repainted once the banner expires.
func (c *Client) drawBanner(centerX, centerY int) {
	if c.state.banner == "" {
		return
	}
	text := "  " + c.state.banner + "  "
	col := centerX - runeLen(text)/2
	row := centerY - 4
	c.chunkWriter.WriteColorAt(col, row, c.state.bannerColor, text)
	c.canvas.MarkTextDirty(col, row, runeLen(text))
}

// drawResultsScreen shows the outcome of the finished match.
func (c *Client) drawResultsScreen(centerX, centerY int) {
	cw := c.chunkWriter
	top := centerY - 7
	for i, line := range gameOverArt {
		cw.WriteColorAt(centerX-runeLen(line)/2, top+i, draw.ColorBrightRed, line)
	}

	res := c.state.result
	survived := time.Duration(res.SurvivalSeconds * float64(time.Second))
	lines := []string{
		fmt.Sprintf("Score  . . . . %8d", res.Score),
		fmt.Sprintf("Kills  . . . . %8d", res.Kills),
		fmt.Sprintf("Wave . . . . . %8d", res.Wave),
		fmt.Sprintf("Survived . . . %8s", formatClock(survived)),
	}
	y := top + len(gameOverArt) + 1
	for i, line := range lines {
		cw.WriteCentered(centerX, y+i, line)
	}
	y += len(lines) + 1

	if c.state.played > 1 {
		best := fmt.Sprintf("Best this session: %d (wave %d)", c.state.best.Score, c.state.best.Wave)
		cw.WriteCentered(centerX, y, best)
	}

	if time.Now().UnixMilli()/600%2 == 0 {
		cw.WriteCentered(centerX, y+2, ">>  Press ENTER to Play Again  <<")
	}
	cw.WriteCentered(centerX, y+3, "Q to quit")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	cw.WriteCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	cw.WriteCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	cw.WriteCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	cw.WriteCentered(centerX, centerY+4, "Press Q to disconnect now")
}

// formatClock renders d as m:ss.
func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func runeLen(s string) int {
	return len([]rune(s))
}
