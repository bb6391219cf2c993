// Package match runs a single-player wave-survival match. A Match is driven
// by its host through Update and never blocks or starts goroutines.
package match

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/wavesurvivor/internal/event"
	"github.com/tomz197/wavesurvivor/internal/loop/config"
	"github.com/tomz197/wavesurvivor/internal/object"
	"github.com/tomz197/wavesurvivor/internal/physics"
)

// Result is the final outcome of a match, valid once it is over.
type Result struct {
	Score           int     `msgpack:"score" json:"score"`
	Kills           int     `msgpack:"kills" json:"kills"`
	Wave            int     `msgpack:"wave" json:"wave"`
	SurvivalSeconds float64 `msgpack:"survival" json:"survival_seconds"`
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger used for wave and match-end messages.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRand sets the random source. Use a seeded source for reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(m *Match) {
		if r != nil {
			m.rng = r
		}
	}
}

// WithField overrides the field dimensions.
func WithField(width, height float64) Option {
	return func(m *Match) {
		if width > 0 && height > 0 {
			m.field = object.Field{Width: width, Height: height}
		}
	}
}

// Match owns every entity of one match. It is not safe for concurrent use.
type Match struct {
	field  object.Field
	rng    *rand.Rand
	logger *log.Logger
	events event.Queue

	player   *object.Player
	enemies  []object.Enemy
	bullets  []object.Bullet
	missiles []object.Missile
	powerups []object.Powerup

	// Spawns requested during a tick, flushed after the sweep
	toSpawnEnemies  []object.Enemy
	toSpawnPowerups []object.Powerup
	toSpawnBullets  []object.Bullet
	toSpawnMissiles []object.Missile

	director director
	grid     *physics.SpatialGrid

	score   int
	elapsed time.Duration
	over    bool

	// Latched commands
	hasTarget        bool
	targetX, targetY float64
	missileRequested bool

	// Last values reported, for change events
	lastHP, lastShield float64
	lastMissileReady   bool
	lastMissileFrac    float64
}

// Compile-time check that Match accepts spawns from objects.
var _ object.Spawner = (*Match)(nil)

// New creates a match ready to run its first tick.
func New(opts ...Option) *Match {
	m := &Match{
		field:  object.Field{Width: config.FieldWidth, Height: config.FieldHeight},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.grid = physics.NewSpatialGrid(
		-config.EnemySideMargin, -config.EnemyTopMargin,
		m.field.Width+2*config.EnemySideMargin, m.field.Height+config.EnemyTopMargin+config.EnemyBottomMargin,
		config.CollisionGridCellSize,
	)
	m.Reset()
	return m
}

// Reset reinitializes the match. Pending commands and events are dropped.
func (m *Match) Reset() {
	m.player = object.NewPlayer(m.field)
	m.enemies = m.enemies[:0]
	m.bullets = m.bullets[:0]
	m.missiles = m.missiles[:0]
	m.powerups = m.powerups[:0]
	m.toSpawnEnemies = m.toSpawnEnemies[:0]
	m.toSpawnPowerups = m.toSpawnPowerups[:0]
	m.toSpawnBullets = m.toSpawnBullets[:0]
	m.toSpawnMissiles = m.toSpawnMissiles[:0]
	m.events.Reset()
	m.director.reset()

	m.score = 0
	m.elapsed = 0
	m.over = false
	m.hasTarget = false
	m.missileRequested = false

	m.lastHP = m.player.HP
	m.lastShield = m.player.Shield
	m.lastMissileReady = m.player.MissileReady()
	m.lastMissileFrac = m.player.MissileFraction()
}

// SetTarget latches the position the ship should move toward. It is applied
// at the start of the next Update.
func (m *Match) SetTarget(x, y float64) {
	m.hasTarget = true
	m.targetX, m.targetY = x, y
}

// RequestMissile latches a missile launch for the next Update. The request is
// dropped if the missile is still cooling down at that point.
func (m *Match) RequestMissile() {
	m.missileRequested = true
}

// Over reports whether the player has been destroyed.
func (m *Match) Over() bool {
	return m.over
}

// Field returns the field dimensions.
func (m *Match) Field() object.Field {
	return m.field
}

// Wave returns the current wave number.
func (m *Match) Wave() int {
	return m.director.wave
}

// Result returns the match outcome so far.
func (m *Match) Result() Result {
	return Result{
		Score:           m.score,
		Kills:           m.player.Kills,
		Wave:            m.director.wave,
		SurvivalSeconds: m.elapsed.Seconds(),
	}
}

// Drain appends the events queued since the last drain to dst.
func (m *Match) Drain(dst []event.Event) []event.Event {
	return m.events.Drain(dst)
}

// SpawnEnemy queues an enemy to join the match after the current tick.
func (m *Match) SpawnEnemy(e object.Enemy) {
	m.toSpawnEnemies = append(m.toSpawnEnemies, e)
}

// SpawnPowerup queues a power-up to join the match after the current tick.
func (m *Match) SpawnPowerup(p object.Powerup) {
	m.toSpawnPowerups = append(m.toSpawnPowerups, p)
}

// Update advances the match by delta. Deltas above MaxDelta are clamped.
// Once the player is destroyed Update does nothing until Reset.
func (m *Match) Update(delta time.Duration) {
	if m.over {
		return
	}
	delta = max(0, min(delta, config.MaxDelta))
	m.elapsed += delta

	ctx := object.UpdateContext{
		Delta:   delta,
		Frames:  float64(delta) / float64(config.FrameTime),
		Field:   m.field,
		Wave:    m.director.wave,
		Rand:    m.rng,
		Spawner: m,
	}

	// Commands
	if m.hasTarget {
		m.hasTarget = false
		m.player.SetTarget(m.targetX, m.targetY, m.field)
	}

	// Wave and spawn timers
	m.director.update(m, delta)
	ctx.Wave = m.director.wave

	// Player motion, timers and weapons
	m.player.Update(ctx)
	if m.missileRequested {
		m.missileRequested = false
		if m.player.TryLaunchMissile() {
			m.toSpawnMissiles = append(m.toSpawnMissiles, object.NewMissile(m.player.X, m.player.Y))
		}
	}
	m.toSpawnBullets = m.player.Shoot(delta, m.toSpawnBullets)

	// Motion
	ctx.TargetX, ctx.TargetY = m.player.X, m.player.Y
	ctx.Enemies = m.enemies
	for i := range m.missiles {
		if m.missiles[i].Update(ctx) {
			m.missiles[i].MarkDestroyed()
		}
	}
	for i := range m.enemies {
		if m.enemies[i].Update(ctx) {
			m.enemies[i].MarkDestroyed()
		}
	}
	for i := range m.bullets {
		if m.bullets[i].Update(ctx) {
			m.bullets[i].MarkDestroyed()
		}
	}
	for i := range m.powerups {
		if m.powerups[i].Update(ctx) {
			m.powerups[i].MarkDestroyed()
		}
	}

	m.resolveCollisions()

	died := !m.player.Alive()
	if !died {
		if m.player.Relevel() {
			m.events.Emit(event.SizeChange, float64(m.player.Level))
			m.logger.Debug("ship level up", "level", m.player.Level, "kills", m.player.Kills)
		}
		m.collectPowerups()
	}

	m.sweep()
	m.flushSpawned()
	m.emitTickEvents()

	if died {
		m.finish()
	}
}

// sweep drops every entity tombstoned during this tick.
func (m *Match) sweep() {
	m.enemies = object.Sweep(m.enemies)
	m.bullets = object.Sweep(m.bullets)
	m.missiles = object.Sweep(m.missiles)
	m.powerups = object.Sweep(m.powerups)
}

// flushSpawned adds all queued entities and clears the queues.
func (m *Match) flushSpawned() {
	m.enemies = append(m.enemies, m.toSpawnEnemies...)
	m.powerups = append(m.powerups, m.toSpawnPowerups...)
	m.bullets = append(m.bullets, m.toSpawnBullets...)
	m.missiles = append(m.missiles, m.toSpawnMissiles...)
	clear(m.toSpawnEnemies)
	m.toSpawnEnemies = m.toSpawnEnemies[:0]
	m.toSpawnPowerups = m.toSpawnPowerups[:0]
	m.toSpawnBullets = m.toSpawnBullets[:0]
	m.toSpawnMissiles = m.toSpawnMissiles[:0]
}

func (m *Match) emitTickEvents() {
	p := m.player
	if p.HP != m.lastHP {
		m.lastHP = p.HP
		m.events.Emit(event.HPChange, p.HP)
	}
	if p.Shield != m.lastShield {
		m.lastShield = p.Shield
		m.events.Emit(event.ShieldChange, p.Shield)
	}
	ready, frac := p.MissileReady(), p.MissileFraction()
	if ready != m.lastMissileReady || frac != m.lastMissileFrac {
		m.lastMissileReady, m.lastMissileFrac = ready, frac
		m.events.Push(event.Event{Type: event.MissileCooldown, Value: frac, Ready: ready})
	}
	m.events.Emit(event.Tick, m.elapsed.Seconds())
}

// finish ends the match. PlayerDestroyed is emitted exactly once.
func (m *Match) finish() {
	m.over = true
	m.events.Emit(event.PlayerDestroyed, 0)
	r := m.Result()
	m.logger.Debug("match over",
		"score", r.Score,
		"kills", r.Kills,
		"wave", r.Wave,
		"survived", time.Duration(r.SurvivalSeconds*float64(time.Second)).Round(time.Millisecond),
	)
}
