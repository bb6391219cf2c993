package object

import (
	"math"
	"time"

	"github.com/tomz197/wavesurvivor/internal/loop/config"
)

// Player is the player-controlled craft. It follows a target position set by
// the host, fires automatically, and carries every cooldown of the match.
type Player struct {
	X, Y             float64 // Position (center of ship)
	TargetX, TargetY float64 // Desired position from pointer / keys
	HP               float64
	Shield           float64
	Level            int // Ship class 0..3, never decreases
	Kills            int

	// Shooting
	FireRate     time.Duration   // Minimum time between volleys
	fireCooldown time.Duration   // Time until next volley allowed
	rapidResets  []time.Duration // Pending rapid-fire expiries, each resets FireRate

	// Missile
	missileReady    bool
	missileCooldown time.Duration // Remaining cooldown while not ready
}

// NewPlayer creates a ship near the bottom center of the field.
func NewPlayer(field Field) *Player {
	x, y := field.Width/2, field.Height*0.85
	return &Player{
		X:            x,
		Y:            y,
		TargetX:      x,
		TargetY:      y,
		HP:           config.PlayerMaxHP,
		FireRate:     config.DefaultFireRate,
		missileReady: true,
	}
}

// SetTarget sets the desired position, clamped to the playable area.
// Non-finite coordinates are ignored.
func (p *Player) SetTarget(x, y float64, field Field) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return
	}
	p.TargetX, p.TargetY = field.ClampPlayer(x, y, config.FieldInset)
}

// Update moves the ship toward its target and advances its timers.
func (p *Player) Update(ctx UpdateContext) {
	follow := math.Min(1, config.PlayerFollow*ctx.Frames)
	p.X += (p.TargetX - p.X) * follow
	p.Y += (p.TargetY - p.Y) * follow
	p.X, p.Y = ctx.Field.ClampPlayer(p.X, p.Y, config.FieldInset)

	p.tickRapid(ctx.Delta)
	p.tickMissile(ctx.Delta)
}

// Shoot advances the gun cooldown and, when it elapses, appends one volley
// in the fan pattern of the current level to dst.
func (p *Player) Shoot(delta time.Duration, dst []Bullet) []Bullet {
	p.fireCooldown -= delta
	if p.fireCooldown > 0 {
		return dst
	}
	p.fireCooldown = p.FireRate

	dmg := p.BulletDamage()
	noseY := p.Y - config.BulletNoseOffset
	for _, angle := range FirePattern(p.Level) {
		dst = append(dst, NewBullet(p.X, noseY, angle, dmg))
	}
	return dst
}

var firePatterns = [config.MaxShipLevel + 1][]float64{
	{0},
	{-0.2, 0.2},
	{-0.28, 0, 0.28},
	{-0.45, -0.22, 0, 0.22, 0.45},
}

// FirePattern returns the bullet angles (radians off straight up) for a level.
func FirePattern(level int) []float64 {
	return firePatterns[clampLevel(level)]
}

// BulletDamage returns the damage of each bullet at the current level.
func (p *Player) BulletDamage() float64 {
	return config.BulletBaseDamage + config.BulletLevelBonus*float64(clampLevel(p.Level))
}

// Radius returns the collision radius, which grows with the ship level.
func (p *Player) Radius() float64 {
	return config.PlayerBaseRadius + config.PlayerRadiusLevel*float64(clampLevel(p.Level))
}

// Alive reports whether the ship still has hit points.
func (p *Player) Alive() bool {
	return p.HP > 0
}

// ApplyDamage consumes shield first and hit points with the remainder.
// Returns how much the shield absorbed and how much reached the hull.
func (p *Player) ApplyDamage(dmg float64) (absorbed, taken float64) {
	if dmg <= 0 {
		return 0, 0
	}
	absorbed = math.Min(p.Shield, dmg)
	p.Shield = math.Max(0, p.Shield-absorbed)
	taken = dmg - absorbed
	p.HP = math.Max(0, p.HP-taken)
	return absorbed, taken
}

// Heal restores hit points up to the maximum.
func (p *Player) Heal(amount float64) {
	p.HP = math.Max(0, math.Min(config.PlayerMaxHP, p.HP+amount))
}

// AddShield restores shield up to the maximum.
func (p *Player) AddShield(amount float64) {
	p.Shield = math.Max(0, math.Min(config.PlayerMaxShield, p.Shield+amount))
}

// ApplyRapid shortens the fire interval and schedules its own reset. Every
// reset restores the default rate, even if another pickup is still running.
func (p *Player) ApplyRapid() {
	p.FireRate = max(config.MinFireRate, p.FireRate-config.RapidFireStep)
	p.rapidResets = append(p.rapidResets, config.RapidFireWindow)
}

func (p *Player) tickRapid(delta time.Duration) {
	kept := p.rapidResets[:0]
	for _, left := range p.rapidResets {
		left -= delta
		if left <= 0 {
			p.FireRate = config.DefaultFireRate
			continue
		}
		kept = append(kept, left)
	}
	p.rapidResets = kept
}

// MissileReady reports whether a missile can be launched.
func (p *Player) MissileReady() bool {
	return p.missileReady
}

// MissileFraction returns the elapsed fraction of the missile cooldown
// (1 when ready).
func (p *Player) MissileFraction() float64 {
	if p.missileReady {
		return 1
	}
	return 1 - float64(p.missileCooldown)/float64(config.MissileCooldown)
}

// TryLaunchMissile closes the missile gate if it is open. Returns false when
// the cooldown is still running.
func (p *Player) TryLaunchMissile() bool {
	if !p.missileReady {
		return false
	}
	p.missileReady = false
	p.missileCooldown = config.MissileCooldown
	return true
}

func (p *Player) tickMissile(delta time.Duration) {
	if p.missileReady {
		return
	}
	p.missileCooldown -= delta
	if p.missileCooldown <= 0 {
		p.missileCooldown = 0
		p.missileReady = true
	}
}

// LevelForKills maps cumulative kills to a ship level using the thresholds.
func LevelForKills(kills int) int {
	level := 0
	for i, threshold := range config.LevelThresholds {
		if kills >= threshold {
			level = i + 1
		}
	}
	return level
}

// Relevel recomputes the ship level from kills. The level only goes up.
// Returns true if it changed.
func (p *Player) Relevel() bool {
	next := LevelForKills(p.Kills)
	if next <= p.Level {
		return false
	}
	p.Level = clampLevel(next)
	return true
}

func clampLevel(level int) int {
	return max(0, min(level, config.MaxShipLevel))
}
