package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/wavesurvivor/internal/loop/config"
)

// Enemy is any hostile entity: ships, mines and boss bullets.
type Enemy struct {
	Kind      Kind
	X, Y      float64 // Position (center)
	HP, MaxHP float64
	Speed     float64 // Field units per frame
	Phase     float64 // Drift phase offset (radians)
	T         float64 // Seconds alive
	Behavior  Behavior
	destroyed bool
}

// NewEnemy creates an enemy of the given kind with stats scaled to the wave.
func NewEnemy(kind Kind, x, y float64, wave int, rng *rand.Rand) Enemy {
	hp := kind.BaseHP(wave)
	return Enemy{
		Kind:     kind,
		X:        x,
		Y:        y,
		HP:       hp,
		MaxHP:    hp,
		Speed:    kind.BaseSpeed(wave),
		Phase:    rng.Float64() * 2 * math.Pi,
		Behavior: newBehavior(kind, wave, rng),
	}
}

// NewSplitterChild creates one of the two fast fragments a splitter leaves.
func NewSplitterChild(x, y float64, wave int, rng *rand.Rand) Enemy {
	e := NewEnemy(KindFast, x, y, wave, rng)
	e.HP = config.SplitterChildHP
	e.MaxHP = config.SplitterChildHP
	return e
}

// NewEnemyBullet creates a boss projectile travelling at (vx, vy) per frame.
func NewEnemyBullet(x, y, vx, vy float64) Enemy {
	return Enemy{
		Kind:     KindEnemyBullet,
		X:        x,
		Y:        y,
		HP:       1,
		MaxHP:    1,
		Speed:    math.Hypot(vx, vy),
		Behavior: &Ballistic{VX: vx, VY: vy},
	}
}

// NewMine creates a mine dropped at (x, y).
func NewMine(x, y float64) Enemy {
	return Enemy{
		Kind:     KindMine,
		X:        x,
		Y:        y,
		HP:       config.MineHP,
		MaxHP:    config.MineHP,
		Speed:    config.MineSpeed,
		Behavior: &Mine{},
	}
}

// Update advances the enemy by one tick. Returns true if the enemy left the
// field and should be removed.
func (e *Enemy) Update(ctx UpdateContext) bool {
	if e.destroyed {
		return true
	}

	f := ctx.Frames
	e.T += ctx.Delta.Seconds()

	switch b := e.Behavior.(type) {
	case *Drift:
		e.Y += e.Speed * f
		if b.Amp != 0 {
			e.X += b.wave(e.T, e.Phase) * b.Amp * f
		}

	case *Zigzag:
		b.FlipIn -= ctx.Delta
		if b.FlipIn <= 0 {
			b.Dir = -b.Dir
			b.FlipIn = randDuration(ctx.Rand, config.ZigzagFlipMin, config.ZigzagFlipMax)
		}
		e.Y += e.Speed * f
		e.X += b.Dir * e.Speed * config.ZigzagSpeedFactor * f

	case *Bomber:
		e.Y += e.Speed * f
		b.MineIn -= ctx.Delta
		if b.MineIn <= 0 {
			b.MineIn += config.BomberMineInterval
			if ctx.Spawner != nil {
				ctx.Spawner.SpawnEnemy(NewMine(e.X, e.Y))
			}
		}

	case *Mine:
		e.Y += e.Speed * f

	case *Boss:
		hold := ctx.Field.Height * config.BossHoldFraction
		if !b.Held {
			e.Y += e.Speed * f
			if e.Y >= hold {
				e.Y = hold
				b.Held = true
			}
		} else {
			e.X += math.Sin(e.T*config.BossDriftFreq) * config.BossDriftAmp * f
		}
		b.ShotIn -= ctx.Delta
		if b.ShotIn <= 0 {
			b.ShotIn += BossShotInterval(ctx.Wave)
			e.fireVolley(ctx)
		}

	case *Ballistic:
		e.X += b.VX * f
		e.Y += b.VY * f
		w, h := ctx.Field.Width, ctx.Field.Height
		return e.X < -config.EnemySideMargin || e.X > w+config.EnemySideMargin ||
			e.Y < -config.EnemyTopMargin || e.Y > h+config.EnemyBottomMargin
	}

	e.X = max(-config.EnemySideMargin, min(e.X, ctx.Field.Width+config.EnemySideMargin))
	return e.Y > ctx.Field.Height+config.EnemyBottomMargin
}

// fireVolley spawns three bullets aimed at the player, fanned by BossSpread.
func (e *Enemy) fireVolley(ctx UpdateContext) {
	if ctx.Spawner == nil {
		return
	}
	aim := math.Atan2(ctx.TargetY-e.Y, ctx.TargetX-e.X)
	for _, off := range [...]float64{-config.BossSpread, 0, config.BossSpread} {
		a := aim + off
		vx := math.Cos(a) * config.EnemyBulletSpeed
		vy := math.Sin(a) * config.EnemyBulletSpeed
		ctx.Spawner.SpawnEnemy(NewEnemyBullet(e.X, e.Y, vx, vy))
	}
}

// Damage subtracts hit points and reports whether this hit killed the enemy.
// A destroyed enemy takes no further damage, so a kill is reported once.
func (e *Enemy) Damage(amount float64) bool {
	if e.destroyed {
		return false
	}
	e.HP -= amount
	if e.HP <= 0 {
		e.HP = 0
		e.destroyed = true
		return true
	}
	return false
}

// Opacity returns the cosmetic alpha of the enemy. Only stealth enemies fade;
// collision never reads this value.
func (e *Enemy) Opacity() float64 {
	if e.Kind != KindStealth {
		return 1
	}
	return 0.25 + 0.75*math.Abs(math.Sin(e.T*1.5+e.Phase))
}

// MarkDestroyed marks the enemy for removal (implements Destructible).
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is marked for destruction (implements Destructible).
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}

// GetPosition returns the enemy's center position.
func (e *Enemy) GetPosition() (float64, float64) {
	return e.X, e.Y
}

// GetRadius returns the enemy's collision radius.
func (e *Enemy) GetRadius() float64 {
	return e.Kind.HitRadius()
}
