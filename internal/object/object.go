package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/wavesurvivor/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
// Spawned objects are queued and only become visible after the current tick.
type Spawner interface {
	SpawnEnemy(e Enemy)
	SpawnPowerup(p Powerup)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Frames  float64 // Delta expressed in reference frames (1.0 at 60 Hz)
	Field   Field
	Wave    int
	TargetX float64 // Player position, for aimed attacks
	TargetY float64
	Rand    *rand.Rand
	Spawner Spawner
	Enemies []Enemy // Live enemies at the start of the motion phase (read-only)
}

// Field represents the play field dimensions.
type Field struct {
	Width  float64
	Height float64
}

// ClampPlayer keeps a position inside the field minus the given inset.
func (f Field) ClampPlayer(x, y, inset float64) (float64, float64) {
	return physics.Clamp(x, inset, f.Width-inset), physics.Clamp(y, inset, f.Height-inset)
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the tick.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Sweep compacts a slot slice in place, dropping every element marked
// destroyed. Order of the survivors is preserved.
func Sweep[T any, P interface {
	*T
	Destructible
}](items []T) []T {
	kept := items[:0]
	for i := range items {
		if !P(&items[i]).IsDestroyed() {
			kept = append(kept, items[i])
		}
	}
	// Zero the tail so dropped slots do not pin behavior state.
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
