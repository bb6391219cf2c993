package object

import (
	"math"
	"testing"
	"time"

	"github.com/tomz197/wavesurvivor/internal/loop/config"
)

func TestShieldAbsorbsFirst(t *testing.T) {
	p := NewPlayer(testField())
	p.Shield = 20
	absorbed, taken := p.ApplyDamage(30)
	if absorbed != 20 || taken != 10 {
		t.Fatalf("absorbed %f taken %f, want 20/10", absorbed, taken)
	}
	if p.Shield != 0 || p.HP != 90 {
		t.Fatalf("shield %f hp %f, want 0/90", p.Shield, p.HP)
	}

	p.ApplyDamage(500)
	if p.HP != 0 || p.Alive() {
		t.Fatalf("hp = %f, want floored at 0 and dead", p.HP)
	}
}

func TestHealAndShieldCaps(t *testing.T) {
	p := NewPlayer(testField())
	p.HP = 90
	p.Heal(config.PowerupHeal)
	if p.HP != config.PlayerMaxHP {
		t.Fatalf("hp = %f, want capped at %f", p.HP, config.PlayerMaxHP)
	}
	p.AddShield(config.PowerupShield)
	p.AddShield(config.PowerupShield)
	if p.Shield != config.PlayerMaxShield {
		t.Fatalf("shield = %f, want capped at %f", p.Shield, config.PlayerMaxShield)
	}
}

func TestSetTargetClampsAndRejectsNaN(t *testing.T) {
	f := testField()
	p := NewPlayer(f)
	p.SetTarget(-50, 10000, f)
	if p.TargetX != config.FieldInset || p.TargetY != f.Height-config.FieldInset {
		t.Fatalf("target = (%f,%f), want clamped", p.TargetX, p.TargetY)
	}
	p.SetTarget(math.NaN(), 100, f)
	p.SetTarget(100, math.Inf(1), f)
	if p.TargetX != config.FieldInset {
		t.Fatalf("non-finite target accepted: (%f,%f)", p.TargetX, p.TargetY)
	}
}

func TestPlayerFollowsTarget(t *testing.T) {
	f := testField()
	p := NewPlayer(f)
	p.SetTarget(p.X+100, p.Y, f)
	x0 := p.X
	p.Update(frameCtx(nil))
	if want := x0 + 100*config.PlayerFollow; math.Abs(p.X-want) > 1e-9 {
		t.Fatalf("x = %f, want %f", p.X, want)
	}

	// A long frame never overshoots the target.
	ctx := frameCtx(nil)
	ctx.Frames = 10
	p.Update(ctx)
	if math.Abs(p.X-p.TargetX) > 1e-9 {
		t.Fatalf("x = %f overshot target %f", p.X, p.TargetX)
	}
}

func TestFirePatterns(t *testing.T) {
	counts := []int{1, 2, 3, 5}
	for level, want := range counts {
		if got := len(FirePattern(level)); got != want {
			t.Fatalf("level %d fires %d bullets, want %d", level, got, want)
		}
	}
	if len(FirePattern(9)) != 5 {
		t.Fatalf("level above max not clamped")
	}
}

func TestShootCooldown(t *testing.T) {
	p := NewPlayer(testField())
	p.Level = 1

	bullets := p.Shoot(config.FrameTime, nil)
	if len(bullets) != 2 {
		t.Fatalf("first volley = %d bullets, want 2", len(bullets))
	}
	for _, b := range bullets {
		if b.Damage != 13 {
			t.Fatalf("bullet damage = %f, want 13", b.Damage)
		}
		if b.Y != p.Y-config.BulletNoseOffset {
			t.Fatalf("bullet y = %f, want nose %f", b.Y, p.Y-config.BulletNoseOffset)
		}
	}

	bullets = p.Shoot(100*time.Millisecond, bullets[:0])
	if len(bullets) != 0 {
		t.Fatalf("fired during cooldown")
	}
	bullets = p.Shoot(75*time.Millisecond, bullets)
	if len(bullets) != 2 {
		t.Fatalf("no volley after 175ms")
	}
}

func TestRapidFireResets(t *testing.T) {
	p := NewPlayer(testField())
	ctx := frameCtx(nil)

	p.ApplyRapid()
	if p.FireRate != config.DefaultFireRate-config.RapidFireStep {
		t.Fatalf("fire rate = %v after one pickup", p.FireRate)
	}
	ctx.Delta = 3 * time.Second
	p.Update(ctx)
	p.ApplyRapid()
	if p.FireRate != config.DefaultFireRate-2*config.RapidFireStep {
		t.Fatalf("fire rate = %v after two pickups", p.FireRate)
	}

	// The first pickup expires and restores the default while the second
	// is still running.
	ctx.Delta = 3 * time.Second
	p.Update(ctx)
	if p.FireRate != config.DefaultFireRate {
		t.Fatalf("fire rate = %v, want reset to default", p.FireRate)
	}

	for i := 0; i < 10; i++ {
		p.ApplyRapid()
	}
	if p.FireRate != config.MinFireRate {
		t.Fatalf("fire rate = %v, want floored at %v", p.FireRate, config.MinFireRate)
	}
}

func TestMissileCooldownGate(t *testing.T) {
	p := NewPlayer(testField())
	if !p.TryLaunchMissile() {
		t.Fatalf("missile not ready at start")
	}
	if p.TryLaunchMissile() {
		t.Fatalf("second launch allowed during cooldown")
	}
	ctx := frameCtx(nil)
	ctx.Delta = 750 * time.Millisecond
	p.Update(ctx)
	if f := p.MissileFraction(); math.Abs(f-0.5) > 1e-9 {
		t.Fatalf("cooldown fraction = %f, want 0.5", f)
	}
	p.Update(ctx)
	if !p.MissileReady() || p.MissileFraction() != 1 {
		t.Fatalf("missile not ready after 1500ms")
	}
}

func TestLevelForKills(t *testing.T) {
	tests := []struct{ kills, level int }{
		{0, 0}, {9, 0}, {10, 1}, {29, 1}, {30, 2}, {69, 2}, {70, 3}, {500, 3},
	}
	for _, tt := range tests {
		if got := LevelForKills(tt.kills); got != tt.level {
			t.Fatalf("LevelForKills(%d) = %d, want %d", tt.kills, got, tt.level)
		}
	}

	p := NewPlayer(testField())
	p.Kills = 10
	if !p.Relevel() || p.Level != 1 || p.Radius() != 16 {
		t.Fatalf("level %d radius %f after 10 kills", p.Level, p.Radius())
	}
	if p.Relevel() {
		t.Fatalf("relevel reported a change without new kills")
	}
}
