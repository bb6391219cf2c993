package object

import (
	"math/rand"

	"github.com/tomz197/wavesurvivor/internal/loop/config"
)

// PowerupKind identifies the effect of a pickup.
type PowerupKind uint8

const (
	PowerupHP PowerupKind = iota
	PowerupShield
	PowerupRapid
)

// String returns the wire name of the power-up kind.
func (k PowerupKind) String() string {
	switch k {
	case PowerupHP:
		return "hp"
	case PowerupShield:
		return "shield"
	case PowerupRapid:
		return "rapid"
	default:
		return "unknown"
	}
}

// RandomPowerupKind picks hp 45%, shield 27.5%, rapid 27.5%.
func RandomPowerupKind(rng *rand.Rand) PowerupKind {
	r := rng.Float64()
	switch {
	case r < 0.45:
		return PowerupHP
	case r < 0.725:
		return PowerupShield
	default:
		return PowerupRapid
	}
}

// Powerup is a falling pickup.
type Powerup struct {
	Kind      PowerupKind
	X, Y      float64
	VY        float64
	destroyed bool
}

// NewPowerup creates a pickup at (x,y) falling at the default rate.
func NewPowerup(kind PowerupKind, x, y float64) Powerup {
	return Powerup{Kind: kind, X: x, Y: y, VY: config.PowerupFallSpeed}
}

// Update moves the pickup down. Returns true once it has left the field.
func (p *Powerup) Update(ctx UpdateContext) bool {
	if p.destroyed {
		return true
	}
	p.Y += p.VY * ctx.Frames
	return p.Y > ctx.Field.Height+config.PowerupMargin
}

// MarkDestroyed marks the pickup for removal.
func (p *Powerup) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the pickup is marked for destruction.
func (p *Powerup) IsDestroyed() bool {
	return p.destroyed
}
