package match

import (
	"github.com/tomz197/wavesurvivor/internal/loop/config"
	"github.com/tomz197/wavesurvivor/internal/object"
	"github.com/tomz197/wavesurvivor/internal/physics"
)

// collectPowerups applies every power-up within pickup range of the ship.
func (m *Match) collectPowerups() {
	p := m.player
	for i := range m.powerups {
		pu := &m.powerups[i]
		if pu.IsDestroyed() {
			continue
		}
		if physics.DistanceSquared(p.X, p.Y, pu.X, pu.Y) >= config.PowerupPickupRange*config.PowerupPickupRange {
			continue
		}
		pu.MarkDestroyed()
		applyPowerup(p, pu.Kind)
		m.logger.Debug("power-up collected", "kind", pu.Kind)
	}
}

func applyPowerup(p *object.Player, kind object.PowerupKind) {
	switch kind {
	case object.PowerupHP:
		p.Heal(config.PowerupHeal)
	case object.PowerupShield:
		p.AddShield(config.PowerupShield)
	case object.PowerupRapid:
		p.ApplyRapid()
	}
}
