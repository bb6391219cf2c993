package object

import (
	"github.com/tomz197/wavesurvivor/internal/loop/config"
	"github.com/tomz197/wavesurvivor/internal/physics"
)

// Missile is a homing projectile. It keeps no target reference: the nearest
// enemy is re-acquired every tick.
type Missile struct {
	X, Y      float64
	VX, VY    float64
	destroyed bool
}

// NewMissile launches a missile from (x,y) with a small upward velocity.
func NewMissile(x, y float64) Missile {
	return Missile{X: x, Y: y, VY: -config.MissileLaunchSpeed}
}

// NearestTarget returns the position of the closest live enemy that missiles
// may home on. ok is false when there is none.
func NearestTarget(enemies []Enemy, x, y float64) (tx, ty float64, ok bool) {
	best := -1.0
	for i := range enemies {
		e := &enemies[i]
		if e.destroyed || !e.Kind.Targetable() {
			continue
		}
		d := physics.DistanceSquared(x, y, e.X, e.Y)
		if best < 0 || d < best {
			best = d
			tx, ty, ok = e.X, e.Y, true
		}
	}
	return tx, ty, ok
}

// Update steers toward the nearest target (pure pursuit) and moves.
// Returns true once the missile has left the field.
func (m *Missile) Update(ctx UpdateContext) bool {
	if m.destroyed {
		return true
	}

	f := ctx.Frames
	if tx, ty, ok := NearestTarget(ctx.Enemies, m.X, m.Y); ok {
		dx, dy := physics.Normalize(tx-m.X, ty-m.Y)
		m.VX += dx * config.MissileSteer * f
		m.VY += dy * config.MissileSteer * f
	} else {
		m.VY -= config.MissileIdleClimb * f
	}
	m.VX, m.VY = physics.ClampSpeed(m.VX, m.VY, config.MissileMaxSpeed)

	m.X += m.VX * f
	m.Y += m.VY * f

	return m.Y < -config.MissileMargin || m.Y > ctx.Field.Height+config.MissileMargin ||
		m.X < -config.MissileMargin || m.X > ctx.Field.Width+config.MissileMargin
}

// SplashDamage returns the blast damage at a distance from the detonation
// point: full damage inside the direct radius, reduced damage out to the
// splash radius, nothing beyond.
func SplashDamage(dist float64) float64 {
	switch {
	case dist <= config.MissileDirectRadius:
		return config.MissileDirectDamage
	case dist <= config.MissileSplashRadius:
		return config.MissileSplashDamage
	default:
		return 0
	}
}

// MarkDestroyed marks the missile for removal.
func (m *Missile) MarkDestroyed() {
	m.destroyed = true
}

// IsDestroyed returns true if the missile is marked for destruction.
func (m *Missile) IsDestroyed() bool {
	return m.destroyed
}
