package object

import (
	"math"

	"github.com/tomz197/wavesurvivor/internal/loop/config"
)

// Bullet is a straight-line shot fired by the player.
type Bullet struct {
	X, Y      float64 // Position
	VX, VY    float64 // Velocity per frame
	Damage    float64
	destroyed bool // Marked for destruction
}

// NewBullet creates a bullet at (x,y) travelling at angle radians off
// straight up (negative is left).
func NewBullet(x, y, angle, damage float64) Bullet {
	return Bullet{
		X:      x,
		Y:      y,
		VX:     math.Sin(angle) * config.BulletSpeed,
		VY:     -math.Cos(angle) * config.BulletSpeed,
		Damage: damage,
	}
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// Update moves the bullet. Returns true once it has left the field.
func (b *Bullet) Update(ctx UpdateContext) bool {
	if b.destroyed {
		return true
	}

	// Apply velocity
	b.X += b.VX * ctx.Frames
	b.Y += b.VY * ctx.Frames

	// No wrapping: bullets just disappear at edges
	return b.Y < -config.BulletMargin || b.Y > ctx.Field.Height+config.BulletMargin ||
		b.X < -config.BulletMargin || b.X > ctx.Field.Width+config.BulletMargin
}
