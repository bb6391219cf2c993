package match

import (
	"github.com/tomz197/wavesurvivor/internal/object"
)

// Snapshot is a plain-data copy of the match for rendering and streaming.
// It holds no references into the match, so a host may keep it after the
// next Update.
type Snapshot struct {
	Width    float64       `msgpack:"w"`
	Height   float64       `msgpack:"h"`
	Player   PlayerView    `msgpack:"p"`
	Enemies  []EnemyView   `msgpack:"e"`
	Bullets  []Point       `msgpack:"b"`
	Missiles []Point       `msgpack:"m"`
	Powerups []PowerupView `msgpack:"u"`
	Score    int           `msgpack:"s"`
	Wave     int           `msgpack:"wv"`
	Elapsed  float64       `msgpack:"t"`
	Over     bool          `msgpack:"o"`
}

// PlayerView is the ship state shown to the player.
type PlayerView struct {
	X               float64 `msgpack:"x"`
	Y               float64 `msgpack:"y"`
	TargetX         float64 `msgpack:"tx"`
	TargetY         float64 `msgpack:"ty"`
	Radius          float64 `msgpack:"r"`
	HP              float64 `msgpack:"hp"`
	Shield          float64 `msgpack:"sh"`
	Level           int     `msgpack:"lv"`
	Kills           int     `msgpack:"k"`
	MissileReady    bool    `msgpack:"mr"`
	MissileFraction float64 `msgpack:"mf"`
}

// EnemyView is one enemy. Opacity is cosmetic.
type EnemyView struct {
	Kind    object.Kind `msgpack:"k"`
	X       float64     `msgpack:"x"`
	Y       float64     `msgpack:"y"`
	Radius  float64     `msgpack:"r"`
	HP      float64     `msgpack:"hp"`
	MaxHP   float64     `msgpack:"mhp"`
	Opacity float64     `msgpack:"a"`
}

// Point is a projectile position.
type Point struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// PowerupView is one falling pickup.
type PowerupView struct {
	Kind object.PowerupKind `msgpack:"k"`
	X    float64            `msgpack:"x"`
	Y    float64            `msgpack:"y"`
}

// Snapshot fills dst with the current state, reusing its slices.
func (m *Match) Snapshot(dst *Snapshot) {
	p := m.player
	dst.Width, dst.Height = m.field.Width, m.field.Height
	dst.Player = PlayerView{
		X:               p.X,
		Y:               p.Y,
		TargetX:         p.TargetX,
		TargetY:         p.TargetY,
		Radius:          p.Radius(),
		HP:              p.HP,
		Shield:          p.Shield,
		Level:           p.Level,
		Kills:           p.Kills,
		MissileReady:    p.MissileReady(),
		MissileFraction: p.MissileFraction(),
	}

	dst.Enemies = dst.Enemies[:0]
	for i := range m.enemies {
		e := &m.enemies[i]
		dst.Enemies = append(dst.Enemies, EnemyView{
			Kind:    e.Kind,
			X:       e.X,
			Y:       e.Y,
			Radius:  e.GetRadius(),
			HP:      e.HP,
			MaxHP:   e.MaxHP,
			Opacity: e.Opacity(),
		})
	}

	dst.Bullets = dst.Bullets[:0]
	for i := range m.bullets {
		dst.Bullets = append(dst.Bullets, Point{X: m.bullets[i].X, Y: m.bullets[i].Y})
	}
	dst.Missiles = dst.Missiles[:0]
	for i := range m.missiles {
		dst.Missiles = append(dst.Missiles, Point{X: m.missiles[i].X, Y: m.missiles[i].Y})
	}
	dst.Powerups = dst.Powerups[:0]
	for i := range m.powerups {
		pu := &m.powerups[i]
		dst.Powerups = append(dst.Powerups, PowerupView{Kind: pu.Kind, X: pu.X, Y: pu.Y})
	}

	dst.Score = m.score
	dst.Wave = m.director.wave
	dst.Elapsed = m.elapsed.Seconds()
	dst.Over = m.over
}
