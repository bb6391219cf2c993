package object

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/wavesurvivor/internal/loop/config"
)

type recordingSpawner struct {
	enemies  []Enemy
	powerups []Powerup
}

func (s *recordingSpawner) SpawnEnemy(e Enemy)     { s.enemies = append(s.enemies, e) }
func (s *recordingSpawner) SpawnPowerup(p Powerup) { s.powerups = append(s.powerups, p) }

func testField() Field {
	return Field{Width: config.FieldWidth, Height: config.FieldHeight}
}

func frameCtx(sp Spawner) UpdateContext {
	return UpdateContext{
		Delta:   config.FrameTime,
		Frames:  1,
		Field:   testField(),
		Wave:    1,
		TargetX: 400,
		TargetY: 500,
		Rand:    rand.New(rand.NewSource(1)),
		Spawner: sp,
	}
}

func TestKindStatsScaleWithWave(t *testing.T) {
	tests := []struct {
		kind      Kind
		wave      int
		hp, speed float64
	}{
		{KindBasic, 1, 31, 1.63},
		{KindBasic, 10, 85, 2.8},
		{KindTank, 2, 116, 0.99},
		{KindBoss, 5, 555, 0.55},
		{KindBoss, 20, 1380, 0.55},
		{KindFast, 3, 26, 3.34},
	}
	for _, tt := range tests {
		if got := tt.kind.BaseHP(tt.wave); math.Abs(got-tt.hp) > 1e-9 {
			t.Fatalf("%v hp at wave %d = %f, want %f", tt.kind, tt.wave, got, tt.hp)
		}
		if got := tt.kind.BaseSpeed(tt.wave); math.Abs(got-tt.speed) > 1e-9 {
			t.Fatalf("%v speed at wave %d = %f, want %f", tt.kind, tt.wave, got, tt.speed)
		}
	}
}

func TestBehaviorVariantPerKind(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cases := map[Kind]string{
		KindBasic:    "drift",
		KindTank:     "drift",
		KindStealth:  "drift",
		KindSplitter: "drift",
		KindFast:     "drift",
		KindZigzag:   "zigzag",
		KindBomber:   "bomber",
		KindMine:     "mine",
		KindBoss:     "boss",
	}
	for kind, want := range cases {
		e := NewEnemy(kind, 100, 0, 1, rng)
		var got string
		switch e.Behavior.(type) {
		case *Drift:
			got = "drift"
		case *Zigzag:
			got = "zigzag"
		case *Bomber:
			got = "bomber"
		case *Mine:
			got = "mine"
		case *Boss:
			got = "boss"
		}
		if got != want {
			t.Fatalf("%v behavior = %s, want %s", kind, got, want)
		}
	}
}

func TestBasicDriftFormula(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := NewEnemy(KindBasic, 300, 100, 1, rng)
	e.Phase = 0.5
	ctx := frameCtx(nil)

	e.Update(ctx)

	dt := config.FrameTime.Seconds()
	wantX := 300 + math.Sin(dt*1.8+0.5)*1.3
	wantY := 100 + e.Speed
	if math.Abs(e.X-wantX) > 1e-9 || math.Abs(e.Y-wantY) > 1e-9 {
		t.Fatalf("basic moved to (%f,%f), want (%f,%f)", e.X, e.Y, wantX, wantY)
	}
}

func TestTankDescendsStraight(t *testing.T) {
	e := NewEnemy(KindTank, 250, 0, 4, rand.New(rand.NewSource(1)))
	ctx := frameCtx(nil)
	for i := 0; i < 30; i++ {
		e.Update(ctx)
	}
	if e.X != 250 {
		t.Fatalf("tank drifted to x=%f", e.X)
	}
	if math.Abs(e.Y-30*e.Speed) > 1e-9 {
		t.Fatalf("tank y = %f, want %f", e.Y, 30*e.Speed)
	}
}

func TestZigzagFlipsDirection(t *testing.T) {
	e := NewEnemy(KindZigzag, 400, 0, 1, rand.New(rand.NewSource(5)))
	z := e.Behavior.(*Zigzag)
	startDir := z.Dir
	if z.FlipIn < config.ZigzagFlipMin || z.FlipIn > config.ZigzagFlipMax {
		t.Fatalf("initial flip timer %v outside [400ms,700ms]", z.FlipIn)
	}

	ctx := frameCtx(nil)
	x0 := e.X
	e.Update(ctx)
	step := e.X - x0
	want := startDir * e.Speed * config.ZigzagSpeedFactor
	if math.Abs(step-want) > 1e-9 {
		t.Fatalf("zigzag horizontal step = %f, want %f", step, want)
	}

	// Within 700ms the direction must have flipped at least once.
	flipped := false
	for elapsed := time.Duration(0); elapsed < config.ZigzagFlipMax+config.FrameTime; elapsed += config.FrameTime {
		e.Update(ctx)
		if z.Dir != startDir {
			flipped = true
			break
		}
	}
	if !flipped {
		t.Fatalf("zigzag never flipped direction")
	}
}

func TestBomberDropsMines(t *testing.T) {
	sp := &recordingSpawner{}
	ctx := frameCtx(sp)
	e := NewEnemy(KindBomber, 200, 50, 1, ctx.Rand)

	// FrameTime truncates to 16666666ns, so the 1800ms timer lapses on frame 109.
	for i := 0; i < 107; i++ {
		e.Update(ctx)
	}
	if len(sp.enemies) != 0 {
		t.Fatalf("bomber dropped a mine after %d frames", 107)
	}
	e.Update(ctx)
	e.Update(ctx)
	if len(sp.enemies) != 1 {
		t.Fatalf("bomber dropped %d mines after 1800ms, want 1", len(sp.enemies))
	}
	mine := sp.enemies[0]
	if mine.Kind != KindMine || mine.HP != 1 {
		t.Fatalf("dropped %v with hp %f, want mine with hp 1", mine.Kind, mine.HP)
	}
}

func TestBossHoldsAltitudeAndFiresVolley(t *testing.T) {
	sp := &recordingSpawner{}
	ctx := frameCtx(sp)
	ctx.Wave = 5
	e := NewEnemy(KindBoss, 400, 110, 5, ctx.Rand)
	hold := ctx.Field.Height * config.BossHoldFraction

	for i := 0; i < 200; i++ {
		e.Update(ctx)
	}
	if e.Y != hold {
		t.Fatalf("boss y = %f, want holding altitude %f", e.Y, hold)
	}

	interval := BossShotInterval(5)
	if interval != 2200*time.Millisecond-5*90*time.Millisecond {
		t.Fatalf("boss interval at wave 5 = %v", interval)
	}
	if BossShotInterval(40) != config.BossShotMin {
		t.Fatalf("boss interval not floored at 500ms")
	}
	if len(sp.enemies) == 0 || len(sp.enemies)%3 != 0 {
		t.Fatalf("boss spawned %d bullets, want a positive multiple of 3", len(sp.enemies))
	}

	volley := sp.enemies[:3]
	for _, b := range volley {
		if b.Kind != KindEnemyBullet {
			t.Fatalf("volley contains %v", b.Kind)
		}
	}
	mid := volley[1].Behavior.(*Ballistic)
	left := volley[0].Behavior.(*Ballistic)
	aimMid := math.Atan2(mid.VY, mid.VX)
	aimLeft := math.Atan2(left.VY, left.VX)
	if math.Abs((aimMid-aimLeft)-config.BossSpread) > 1e-9 {
		t.Fatalf("volley spread = %f, want %f", aimMid-aimLeft, config.BossSpread)
	}
	if math.Abs(math.Hypot(mid.VX, mid.VY)-config.EnemyBulletSpeed) > 1e-9 {
		t.Fatalf("enemy bullet speed = %f", math.Hypot(mid.VX, mid.VY))
	}
}

func TestEnemyBulletLeavesBounds(t *testing.T) {
	ctx := frameCtx(nil)
	b := NewEnemyBullet(ctx.Field.Width+68, 100, 5, 0)
	if b.Update(ctx) != true {
		t.Fatalf("enemy bullet past the side margin should be removed")
	}
	b = NewEnemyBullet(400, 100, 0, 5)
	if b.Update(ctx) {
		t.Fatalf("enemy bullet inside the field removed early")
	}
}

func TestEnemyClampAndExit(t *testing.T) {
	ctx := frameCtx(nil)
	e := NewEnemy(KindZigzag, ctx.Field.Width+69, 0, 30, ctx.Rand)
	e.Behavior.(*Zigzag).Dir = 1
	e.Update(ctx)
	if e.X != ctx.Field.Width+config.EnemySideMargin {
		t.Fatalf("x = %f, want clamped to %f", e.X, ctx.Field.Width+config.EnemySideMargin)
	}

	e = NewEnemy(KindTank, 100, ctx.Field.Height+config.EnemyBottomMargin-0.5, 1, ctx.Rand)
	if !e.Update(ctx) {
		t.Fatalf("enemy past the bottom margin should be removed")
	}
}

func TestSplitterChild(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	c := NewSplitterChild(10, 20, 6, rng)
	if c.Kind != KindFast || c.HP != 12 || c.MaxHP != 12 {
		t.Fatalf("child = %v hp %f/%f, want fast 12/12", c.Kind, c.HP, c.MaxHP)
	}
	if c.Speed != KindFast.BaseSpeed(6) {
		t.Fatalf("child speed = %f, want wave-scaled %f", c.Speed, KindFast.BaseSpeed(6))
	}
}

func TestDamageReportsKillOnce(t *testing.T) {
	e := NewEnemy(KindBasic, 0, 0, 1, rand.New(rand.NewSource(1)))
	if e.Damage(30) {
		t.Fatalf("31 hp basic died to 30 damage")
	}
	if !e.Damage(10) {
		t.Fatalf("basic survived lethal damage")
	}
	if e.Damage(10) {
		t.Fatalf("dead enemy reported a second kill")
	}
	if e.HP != 0 {
		t.Fatalf("hp = %f, want floored at 0", e.HP)
	}
}

func TestStealthOpacityIsCosmetic(t *testing.T) {
	e := NewEnemy(KindStealth, 0, 0, 1, rand.New(rand.NewSource(1)))
	e.T = 3
	if op := e.Opacity(); op < 0.25 || op > 1 {
		t.Fatalf("opacity %f out of range", op)
	}
	if e.GetRadius() != 26 || !e.Kind.Targetable() {
		t.Fatalf("stealth collision radius/targeting changed")
	}
}

func TestSweepDropsDestroyed(t *testing.T) {
	items := []Bullet{{X: 1}, {X: 2}, {X: 3}}
	items[1].MarkDestroyed()
	items = Sweep(items)
	if len(items) != 2 || items[0].X != 1 || items[1].X != 3 {
		t.Fatalf("Sweep = %+v", items)
	}
}
