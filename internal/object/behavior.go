package object

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/wavesurvivor/internal/loop/config"
)

// Behavior is the kind-specific movement and attack state of an enemy.
// The set of implementations is closed; Enemy.Update dispatches on the
// concrete type and each variant carries only the state it needs.
type Behavior interface {
	behavior()
}

// Drift descends at the enemy's speed with a periodic sideways drift of
// Amp*wave(t*Freq+phase) per frame. Amp 0 is a straight descent.
type Drift struct {
	Freq   float64
	Amp    float64
	Cosine bool // Use cos instead of sin for the drift wave
}

// Zigzag descends while sliding sideways, flipping direction at random
// intervals.
type Zigzag struct {
	Dir    float64 // +1 or -1
	FlipIn time.Duration
}

// Bomber descends and periodically leaves a mine behind.
type Bomber struct {
	MineIn time.Duration
}

// Mine sinks slowly and explodes on contact with the player.
type Mine struct{}

// Boss descends to a holding altitude, sways, and fires aimed volleys.
type Boss struct {
	ShotIn time.Duration
	Held   bool // Reached holding altitude
}

// Ballistic travels in a straight line at a fixed velocity.
type Ballistic struct {
	VX, VY float64
}

func (*Drift) behavior()     {}
func (*Zigzag) behavior()    {}
func (*Bomber) behavior()    {}
func (*Mine) behavior()      {}
func (*Boss) behavior()      {}
func (*Ballistic) behavior() {}

// drift parameters for the kinds that only sway while descending.
var driftTable = map[Kind]Drift{
	KindBasic:    {Freq: 1.8, Amp: 1.3},
	KindFast:     {Freq: 5.5, Amp: 3.2},
	KindTank:     {},
	KindStealth:  {Freq: 1.2, Amp: 2.0, Cosine: true},
	KindSplitter: {Freq: 2.5, Amp: 1.8},
}

// newBehavior creates the initial behavior state for a kind.
func newBehavior(kind Kind, wave int, rng *rand.Rand) Behavior {
	switch kind {
	case KindZigzag:
		dir := 1.0
		if rng.Intn(2) == 0 {
			dir = -1
		}
		return &Zigzag{Dir: dir, FlipIn: randDuration(rng, config.ZigzagFlipMin, config.ZigzagFlipMax)}
	case KindBomber:
		return &Bomber{MineIn: config.BomberMineInterval}
	case KindMine:
		return &Mine{}
	case KindBoss:
		return &Boss{ShotIn: BossShotInterval(wave)}
	case KindEnemyBullet:
		return &Ballistic{}
	default:
		d := driftTable[kind]
		return &d
	}
}

// BossShotInterval returns the time between boss volleys at a wave.
func BossShotInterval(wave int) time.Duration {
	return max(config.BossShotMin, config.BossShotBase-time.Duration(wave)*config.BossShotStep)
}

// randDuration returns a uniformly random duration in [lo, hi].
func randDuration(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rng.Int63n(int64(hi-lo)+1))
}

// wave evaluates the drift waveform at t.
func (d *Drift) wave(t, phase float64) float64 {
	if d.Cosine {
		return math.Cos(t*d.Freq + phase)
	}
	return math.Sin(t*d.Freq + phase)
}
