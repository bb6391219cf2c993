// Package bot drives a match without a human, for headless runs and soak
// tests. It only reads snapshots and issues the same commands a player can.
package bot

import (
	"math"
	"time"

	"github.com/tomz197/wavesurvivor/internal/event"
	"github.com/tomz197/wavesurvivor/internal/loop/match"
	"github.com/tomz197/wavesurvivor/internal/object"
)

const (
	laneOffset   = 90.0  // Distance the ship keeps from the bottom edge
	dodgeStep    = 70.0  // Sideways move away from a threat
	dodgeLookout = 170.0 // How far above the ship threats are considered
	dodgeMargin  = 24.0
	missileCrowd = 3 // Enemies on screen before a missile is worth it
)

// Decision is what the pilot wants for the next tick.
type Decision struct {
	TargetX, TargetY float64
	Missile          bool
}

// Pilot is a simple autopilot: hold a lane near the bottom, slide under the
// lowest enemy, sidestep anything about to hit the ship.
type Pilot struct{}

// Decide picks a target and whether to launch a missile.
func (Pilot) Decide(s *match.Snapshot) Decision {
	p := s.Player
	d := Decision{TargetX: p.X, TargetY: s.Height - laneOffset}

	var (
		threat     *match.EnemyView
		threatDist = math.Inf(1)
		prey       *match.EnemyView
		crowd      int
		boss       bool
	)
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.Kind != object.KindEnemyBullet {
			crowd++
			boss = boss || e.Kind == object.KindBoss
		}

		above := p.Y - e.Y
		if above > 0 && above < dodgeLookout && math.Abs(e.X-p.X) < e.Radius+p.Radius+dodgeMargin && above < threatDist {
			threat, threatDist = e, above
		}
		if e.Kind != object.KindEnemyBullet && e.Kind != object.KindMine && (prey == nil || e.Y > prey.Y) {
			prey = e
		}
	}

	switch {
	case threat != nil:
		dir := 1.0
		if threat.X > p.X || (threat.X == p.X && p.X > s.Width/2) {
			dir = -1
		}
		d.TargetX = p.X + dir*dodgeStep
	case prey != nil:
		d.TargetX = prey.X
	default:
		d.TargetX = s.Width / 2
	}

	d.Missile = p.MissileReady && (crowd >= missileCrowd || boss)
	return d
}

// Play runs m with the pilot in fixed steps until the ship is destroyed or
// limit of match time has passed, and returns the result.
func Play(m *match.Match, step, limit time.Duration) match.Result {
	var (
		pilot  Pilot
		snap   match.Snapshot
		events []event.Event
		spent  time.Duration
	)
	for !m.Over() && spent < limit {
		m.Snapshot(&snap)
		d := pilot.Decide(&snap)
		m.SetTarget(d.TargetX, d.TargetY)
		if d.Missile {
			m.RequestMissile()
		}
		m.Update(step)
		events = m.Drain(events[:0])
		spent += step
	}
	return m.Result()
}
