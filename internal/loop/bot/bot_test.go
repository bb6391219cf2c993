package bot

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/wavesurvivor/internal/loop/match"
	"github.com/tomz197/wavesurvivor/internal/object"
)

func snapshotWith(enemies ...match.EnemyView) *match.Snapshot {
	return &match.Snapshot{
		Width:   800,
		Height:  600,
		Player:  match.PlayerView{X: 400, Y: 510, Radius: 12},
		Enemies: enemies,
	}
}

func TestChasesLowestEnemy(t *testing.T) {
	s := snapshotWith(
		match.EnemyView{Kind: object.KindBasic, X: 100, Y: 50, Radius: 14},
		match.EnemyView{Kind: object.KindTank, X: 650, Y: 200, Radius: 20},
		match.EnemyView{Kind: object.KindMine, X: 300, Y: 300, Radius: 12},
	)
	d := Pilot{}.Decide(s)
	if d.TargetX != 650 {
		t.Fatalf("got target x %v, want 650", d.TargetX)
	}
	if d.TargetY != 600-laneOffset {
		t.Fatalf("got target y %v, want lane %v", d.TargetY, 600-laneOffset)
	}
}

func TestDodgesIncomingBullet(t *testing.T) {
	s := snapshotWith(
		match.EnemyView{Kind: object.KindEnemyBullet, X: 410, Y: 420, Radius: 6},
		match.EnemyView{Kind: object.KindBasic, X: 420, Y: 100, Radius: 14},
	)
	d := Pilot{}.Decide(s)
	if d.TargetX != 400-dodgeStep {
		t.Fatalf("got target x %v, want a step left to %v", d.TargetX, 400-dodgeStep)
	}
}

func TestMissileOnCrowdOrBoss(t *testing.T) {
	s := snapshotWith(match.EnemyView{Kind: object.KindBasic, X: 100, Y: 50, Radius: 14})
	s.Player.MissileReady = true
	if (Pilot{}).Decide(s).Missile {
		t.Fatalf("missile spent on a single enemy")
	}

	s.Enemies = append(s.Enemies, match.EnemyView{Kind: object.KindBoss, X: 400, Y: 60, Radius: 40})
	if !(Pilot{}).Decide(s).Missile {
		t.Fatalf("no missile against a boss")
	}

	s.Player.MissileReady = false
	if (Pilot{}).Decide(s).Missile {
		t.Fatalf("missile requested while cooling down")
	}
}

func TestPlayStopsAtLimit(t *testing.T) {
	m := match.New(match.WithRand(rand.New(rand.NewSource(7))))
	res := Play(m, 50*time.Millisecond, 5*time.Second)
	if res.SurvivalSeconds > 5.0001 {
		t.Fatalf("ran %v s past the 5 s limit", res.SurvivalSeconds)
	}
	if res.Wave < 1 {
		t.Fatalf("wave = %d", res.Wave)
	}
}
