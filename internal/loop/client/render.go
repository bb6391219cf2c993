package client

import (
	"math"

	"github.com/tomz197/wavesurvivor/internal/draw"
	"github.com/tomz197/wavesurvivor/internal/loop/match"
	"github.com/tomz197/wavesurvivor/internal/object"
)

// enemyStyle is how an enemy kind is drawn.
type enemyStyle struct {
	color    draw.Color
	sides    int // 0 draws a circle
	rotation float64
	filled   bool
}

var enemyStyles = map[object.Kind]enemyStyle{
	object.KindBasic:       {color: draw.ColorRed, sides: 3, rotation: math.Pi},
	object.KindFast:        {color: draw.ColorYellow, sides: 3, rotation: math.Pi, filled: true},
	object.KindTank:        {color: draw.ColorGreen, sides: 4, rotation: math.Pi / 4, filled: true},
	object.KindStealth:     {color: draw.ColorMagenta, sides: 3, rotation: math.Pi},
	object.KindSplitter:    {color: draw.ColorGreen, sides: 4},
	object.KindZigzag:      {color: draw.ColorCyan, sides: 4},
	object.KindBomber:      {color: draw.ColorBrightRed, sides: 5, rotation: math.Pi},
	object.KindMine:        {color: draw.ColorRed},
	object.KindBoss:        {color: draw.ColorMagenta, sides: 6, filled: true},
	object.KindEnemyBullet: {color: draw.ColorBrightRed, filled: true},
}

var powerupStyles = map[object.PowerupKind]struct {
	color  draw.Color
	letter string
}{
	object.PowerupHP:     {draw.ColorGreen, "H"},
	object.PowerupShield: {draw.ColorBlue, "S"},
	object.PowerupRapid:  {draw.ColorYellow, "R"},
}

// stealthVisible is the opacity below which a stealth enemy is drawn dim.
const stealthVisible = 0.6

// drawWorld draws the snapshot's entities onto the canvas.
func (c *Client) drawWorld(s *match.Snapshot) {
	cv := c.canvas

	for _, e := range s.Enemies {
		style, ok := enemyStyles[e.Kind]
		if !ok {
			continue
		}
		color := style.color
		if e.Opacity < stealthVisible {
			color = draw.ColorGray
		}
		cv.SetColor(color)
		if style.sides == 0 {
			cv.DrawCircle(e.X, e.Y, e.Radius*0.6, style.filled)
		} else {
			cv.DrawRegular(e.X, e.Y, e.Radius*0.8, style.sides, style.rotation, style.filled)
		}
		if e.Kind == object.KindBoss && e.MaxHP > 0 {
			c.drawHealthLine(e.X, e.Y-e.Radius-6, e.Radius*2, e.HP/e.MaxHP)
		}
	}

	cv.SetColor(draw.ColorWhite)
	for _, b := range s.Bullets {
		cv.DrawLine(draw.Point{X: b.X, Y: b.Y}, draw.Point{X: b.X, Y: b.Y + 8})
	}

	cv.SetColor(draw.ColorBrightYellow)
	for _, m := range s.Missiles {
		cv.DrawLine(draw.Point{X: m.X, Y: m.Y - 6}, draw.Point{X: m.X, Y: m.Y + 10})
		cv.SetFloat(m.X-3, m.Y+10)
		cv.SetFloat(m.X+3, m.Y+10)
	}

	for _, pu := range s.Powerups {
		cv.SetColor(powerupStyles[pu.Kind].color)
		cv.DrawCircle(pu.X, pu.Y, 12, false)
	}

	p := s.Player
	if !s.Over {
		cv.SetColor(draw.ColorGray)
		cv.SetFloat(p.TargetX, p.TargetY)
		cv.SetFloat(p.TargetX-6, p.TargetY)
		cv.SetFloat(p.TargetX+6, p.TargetY)

		cv.SetColor(draw.ColorBrightCyan)
		cv.DrawRegular(p.X, p.Y, p.Radius*1.2, 3, 0, true)
		if p.Shield > 0 {
			cv.SetColor(draw.ColorBlue)
			cv.DrawCircle(p.X, p.Y, p.Radius*1.8, false)
		}
	}
}

// drawHealthLine draws a horizontal gauge of width logical units.
func (c *Client) drawHealthLine(cx, y, width, fraction float64) {
	fraction = max(0, min(1, fraction))
	left := cx - width/2
	c.canvas.SetColor(draw.ColorRed)
	c.canvas.DrawLine(draw.Point{X: left, Y: y}, draw.Point{X: left + width*fraction, Y: y})
}

// drawPowerupLetters labels pickups with their letter. The cells are marked
// dirty so the canvas repaints them once the pickup moves on.
func (c *Client) drawPowerupLetters(s *match.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	for _, pu := range s.Powerups {
		col, row := c.canvas.LogicalToTerminal(pu.X, pu.Y)
		if col < 1 || col > termWidth || row < 1 || row > termHeight {
			continue
		}
		style := powerupStyles[pu.Kind]
		c.chunkWriter.WriteColorAt(col, row, style.color, style.letter)
		c.canvas.MarkTextDirty(col, row, 1)
	}
}
