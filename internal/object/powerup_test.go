package object

import (
	"math/rand"
	"testing"

	"github.com/tomz197/wavesurvivor/internal/loop/config"
)

func TestRandomPowerupDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	counts := map[PowerupKind]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[RandomPowerupKind(rng)]++
	}
	want := map[PowerupKind]float64{PowerupHP: 0.45, PowerupShield: 0.275, PowerupRapid: 0.275}
	for kind, share := range want {
		got := float64(counts[kind]) / n
		if got < share-0.02 || got > share+0.02 {
			t.Fatalf("%v share = %f, want about %f", kind, got, share)
		}
	}
}

func TestPowerupFallsAndLeaves(t *testing.T) {
	ctx := frameCtx(nil)
	p := NewPowerup(PowerupShield, 100, 10)
	if p.Update(ctx) || p.Y != 10+config.PowerupFallSpeed {
		t.Fatalf("powerup y = %f after one frame", p.Y)
	}
	p.Y = ctx.Field.Height + config.PowerupMargin - 1
	if !p.Update(ctx) {
		t.Fatalf("powerup below the field not removed")
	}
}
