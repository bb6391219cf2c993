package match

import (
	"github.com/tomz197/wavesurvivor/internal/event"
	"github.com/tomz197/wavesurvivor/internal/loop/config"
	"github.com/tomz197/wavesurvivor/internal/object"
	"github.com/tomz197/wavesurvivor/internal/physics"
)

// resolveCollisions runs the damage passes in their fixed order: bullets,
// then missiles, then contact with the player.
func (m *Match) resolveCollisions() {
	m.populateGrid()
	m.checkBulletHits()
	m.checkMissileHits()
	m.checkPlayerContacts()
}

// populateGrid clears and re-inserts every enemy that bullets and missiles
// can hit.
func (m *Match) populateGrid() {
	m.grid.Clear()
	for i := range m.enemies {
		e := &m.enemies[i]
		if e.IsDestroyed() || !e.Kind.Targetable() {
			continue
		}
		m.grid.Insert(e.X, e.Y, i)
	}
}

// checkBulletHits applies bullet damage. A bullet hits at most one enemy.
func (m *Match) checkBulletHits() {
	for i := range m.bullets {
		b := &m.bullets[i]
		if b.IsDestroyed() {
			continue
		}
		m.grid.QueryAround(b.X, b.Y, func(j int) bool {
			e := &m.enemies[j]
			if e.IsDestroyed() {
				return false
			}
			if !physics.CirclesOverlap(b.X, b.Y, 0, e.X, e.Y, e.GetRadius()) {
				return false
			}
			b.MarkDestroyed()
			if e.Damage(b.Damage) {
				m.kill(e)
			}
			return true
		})
	}
}

// checkMissileHits detonates every missile that has come within trigger
// range of a target and applies splash damage around it.
func (m *Match) checkMissileHits() {
	for i := range m.missiles {
		ms := &m.missiles[i]
		if ms.IsDestroyed() {
			continue
		}
		triggered := false
		m.grid.QueryAround(ms.X, ms.Y, func(j int) bool {
			e := &m.enemies[j]
			if e.IsDestroyed() {
				return false
			}
			triggered = physics.DistanceSquared(ms.X, ms.Y, e.X, e.Y) <= config.MissileTriggerRadius*config.MissileTriggerRadius
			return triggered
		})
		if !triggered {
			continue
		}

		ms.MarkDestroyed()
		m.grid.QueryAround(ms.X, ms.Y, func(j int) bool {
			e := &m.enemies[j]
			if e.IsDestroyed() {
				return false
			}
			dmg := object.SplashDamage(physics.Distance(ms.X, ms.Y, e.X, e.Y))
			if dmg > 0 && e.Damage(dmg) {
				m.kill(e)
			}
			return false
		})
	}
}

// checkPlayerContacts resolves enemies touching the ship. Every touching enemy
// is removed; ships also count as kills. Stops once the player is dead.
func (m *Match) checkPlayerContacts() {
	p := m.player
	pr := p.Radius()
	for i := range m.enemies {
		if !p.Alive() {
			return
		}
		e := &m.enemies[i]
		if e.IsDestroyed() {
			continue
		}
		if !physics.CirclesOverlap(p.X, p.Y, pr, e.X, e.Y, e.GetRadius()) {
			continue
		}
		p.ApplyDamage(e.Kind.ContactDamage())
		e.MarkDestroyed()
		if e.Kind.ContactCountsAsKill() {
			m.kill(e)
		}
	}
}

// kill applies the side-effects of an enemy death: splitter fragments,
// score, kill credit and a chance to drop a power-up.
func (m *Match) kill(e *object.Enemy) {
	e.MarkDestroyed()

	if e.Kind == object.KindSplitter {
		m.SpawnEnemy(object.NewSplitterChild(e.X-config.SplitterChildShift, e.Y, m.director.wave, m.rng))
		m.SpawnEnemy(object.NewSplitterChild(e.X+config.SplitterChildShift, e.Y, m.director.wave, m.rng))
	}

	if pts := e.Kind.Score(); pts > 0 {
		m.score += pts
		m.events.Emit(event.Score, float64(pts))
	}
	m.player.Kills++
	m.events.Emit(event.Kill, float64(e.Kind))

	if m.rng.Float64() < e.Kind.DropChance() {
		m.SpawnPowerup(object.NewPowerup(object.RandomPowerupKind(m.rng), e.X, e.Y))
	}
}
