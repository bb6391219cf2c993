package match

import (
	"time"

	"github.com/tomz197/wavesurvivor/internal/event"
	"github.com/tomz197/wavesurvivor/internal/loop/config"
	"github.com/tomz197/wavesurvivor/internal/object"
)

// director owns the wave clock and decides what spawns when.
type director struct {
	wave      int
	started   bool          // Wave 1 is announced on the first tick
	waveLeft  time.Duration // Until the next wave starts
	spawnLeft time.Duration // Until the next background spawn
	batch     []pendingSpawn
}

// pendingSpawn is one staggered entry of a wave batch.
type pendingSpawn struct {
	kind object.Kind
	in   time.Duration
}

func (d *director) reset() {
	d.wave = 1
	d.started = false
	d.waveLeft = waveDuration(1)
	d.spawnLeft = spawnInterval(1)
	d.batch = d.batch[:0]
}

// waveDuration returns how long the given wave lasts.
func waveDuration(wave int) time.Duration {
	return max(config.WaveMinDuration, config.WaveBaseDuration-time.Duration(wave)*config.WaveDurationStep)
}

// spawnInterval returns the unjittered background spawn interval.
func spawnInterval(wave int) time.Duration {
	return max(config.SpawnMinInterval, config.SpawnBaseInterval-time.Duration(wave)*config.SpawnIntervalStep)
}

// batchSize returns how many enemies a wave starts with.
func batchSize(wave int) int {
	return config.BatchBase + min(wave*config.BatchPerWave, config.BatchMaxExtra)
}

// isBossWave reports whether the wave uses the boss batch.
func isBossWave(wave int) bool {
	return wave%config.BossWaveEvery == 0
}

var (
	poolEarly = []object.Kind{object.KindBasic, object.KindBasic, object.KindBasic, object.KindFast}
	poolZig   = append(poolEarly[:len(poolEarly):len(poolEarly)], object.KindZigzag)
	poolMid   = append(poolZig[:len(poolZig):len(poolZig)], object.KindTank, object.KindSplitter)
	poolLate  = append(poolMid[:len(poolMid):len(poolMid)], object.KindStealth, object.KindBomber)
	poolAll   = []object.Kind{
		object.KindBasic, object.KindFast, object.KindTank, object.KindStealth,
		object.KindSplitter, object.KindZigzag, object.KindBomber, object.KindBoss,
	}
	poolBoss = []object.Kind{object.KindBoss, object.KindBoss, object.KindTank, object.KindTank, object.KindFast}
)

// tierPool returns the background spawn pool for a wave.
func tierPool(wave int) []object.Kind {
	switch {
	case wave < 3:
		return poolEarly
	case wave < 5:
		return poolZig
	case wave < 8:
		return poolMid
	case wave < 12:
		return poolLate
	default:
		return poolAll
	}
}

// poolFor returns the pool a wave's batch and background spawns are drawn
// from. Boss waves override the tier pool.
func poolFor(wave int) []object.Kind {
	if isBossWave(wave) {
		return poolBoss
	}
	return tierPool(wave)
}

func (d *director) update(m *Match, delta time.Duration) {
	if !d.started {
		d.started = true
		d.startWave(m)
	}

	d.waveLeft -= delta
	if d.waveLeft <= 0 {
		d.wave++
		d.startWave(m)
	}

	kept := d.batch[:0]
	for _, p := range d.batch {
		p.in -= delta
		if p.in <= 0 {
			m.spawnAtTop(p.kind)
			continue
		}
		kept = append(kept, p)
	}
	d.batch = kept

	d.spawnLeft -= delta
	if d.spawnLeft <= 0 {
		pool := poolFor(d.wave)
		kind := m.capBosses(pool[m.rng.Intn(len(pool))])
		m.spawnAtTop(kind)
		jitter := config.SpawnJitterMin + m.rng.Float64()*(config.SpawnJitterMax-config.SpawnJitterMin)
		d.spawnLeft = time.Duration(float64(spawnInterval(d.wave)) * jitter)
	}
}

// startWave announces the current wave, queues its staggered batch and drops
// one power-up.
func (d *director) startWave(m *Match) {
	n := d.wave
	d.waveLeft = waveDuration(n)
	m.events.Emit(event.Wave, float64(n))
	if isBossWave(n) {
		m.events.Emit(event.BossWave, float64(n))
		m.logger.Debug("boss wave", "wave", n)
	} else {
		m.logger.Debug("wave", "wave", n)
	}

	pool := poolFor(n)
	for i, size := 0, batchSize(n); i < size; i++ {
		kind := m.capBosses(pool[m.rng.Intn(len(pool))])
		d.batch = append(d.batch, pendingSpawn{kind: kind, in: time.Duration(i) * config.BatchStagger})
	}

	x, y := m.spawnPoint()
	m.SpawnPowerup(object.NewPowerup(object.RandomPowerupKind(m.rng), x, y))
}

// capBosses substitutes a tank for a boss once the boss limit is reached.
func (m *Match) capBosses(kind object.Kind) object.Kind {
	if kind == object.KindBoss && m.bossCount() >= config.MaxConcurrentBosses {
		return object.KindTank
	}
	return kind
}

// bossCount returns the bosses alive, queued to spawn this tick, or waiting
// in the wave batch.
func (m *Match) bossCount() int {
	n := 0
	for i := range m.enemies {
		if m.enemies[i].Kind == object.KindBoss && !m.enemies[i].IsDestroyed() {
			n++
		}
	}
	for i := range m.toSpawnEnemies {
		if m.toSpawnEnemies[i].Kind == object.KindBoss {
			n++
		}
	}
	for _, p := range m.director.batch {
		if p.kind == object.KindBoss {
			n++
		}
	}
	return n
}

// spawnPoint returns a random position just above the field.
func (m *Match) spawnPoint() (float64, float64) {
	lo := float64(config.EnemySpawnMarginX)
	hi := m.field.Width - lo
	return lo + m.rng.Float64()*(hi-lo), config.EnemySpawnY
}

func (m *Match) spawnAtTop(kind object.Kind) {
	x, y := m.spawnPoint()
	m.SpawnEnemy(object.NewEnemy(kind, x, y, m.director.wave, m.rng))
}
