package object

// Kind is the enemy type tag.
type Kind uint8

const (
	KindBasic Kind = iota
	KindFast
	KindTank
	KindStealth
	KindSplitter
	KindZigzag
	KindBomber
	KindMine
	KindBoss
	KindEnemyBullet
	kindCount
)

var kindNames = [kindCount]string{
	KindBasic:       "basic",
	KindFast:        "fast",
	KindTank:        "tank",
	KindStealth:     "stealth",
	KindSplitter:    "splitter",
	KindZigzag:      "zigzag",
	KindBomber:      "bomber",
	KindMine:        "mine",
	KindBoss:        "boss",
	KindEnemyBullet: "enemyBullet",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// linear is a stat that grows with the wave number: Base + PerWave*wave.
type linear struct {
	Base, PerWave float64
}

func (l linear) at(wave int) float64 {
	return l.Base + l.PerWave*float64(wave)
}

// kindStats holds the balancing table for one kind.
type kindStats struct {
	hp        linear
	speed     linear
	radius    float64 // Hit radius for bullets and contact
	contact   float64 // Damage dealt to the player on contact
	score     int     // Points awarded on kill
	dropOdds  float64 // Chance to drop a power-up on kill
	creditKO  bool    // Contact with the player counts as a kill
	targeting bool    // Valid target for bullets and missiles
}

const (
	defaultRadius  = 26.0
	defaultContact = 14.0
	defaultDrop    = 0.1
)

var stats = [kindCount]kindStats{
	KindBasic:       {hp: linear{25, 6}, speed: linear{1.5, 0.13}, radius: defaultRadius, contact: defaultContact, score: 40, dropOdds: defaultDrop, creditKO: true, targeting: true},
	KindFast:        {hp: linear{14, 4}, speed: linear{2.8, 0.18}, radius: defaultRadius, contact: defaultContact, score: 60, dropOdds: defaultDrop, creditKO: true, targeting: true},
	KindTank:        {hp: linear{80, 18}, speed: linear{0.85, 0.07}, radius: 36, contact: 22, score: 180, dropOdds: 0.4, creditKO: true, targeting: true},
	KindStealth:     {hp: linear{30, 7}, speed: linear{1.7, 0.12}, radius: defaultRadius, contact: defaultContact, score: 100, dropOdds: defaultDrop, creditKO: true, targeting: true},
	KindSplitter:    {hp: linear{45, 10}, speed: linear{1.2, 0.10}, radius: defaultRadius, contact: defaultContact, score: 120, dropOdds: defaultDrop, creditKO: true, targeting: true},
	KindZigzag:      {hp: linear{22, 5}, speed: linear{1.8, 0.14}, radius: defaultRadius, contact: defaultContact, score: 80, dropOdds: defaultDrop, creditKO: true, targeting: true},
	KindBomber:      {hp: linear{60, 12}, speed: linear{0.9, 0.08}, radius: defaultRadius, contact: 18, score: 140, dropOdds: 0.3, creditKO: true, targeting: true},
	KindMine:        {hp: linear{1, 0}, speed: linear{0.6, 0}, radius: 20, contact: 25, score: 20, dropOdds: defaultDrop, targeting: true},
	KindBoss:        {hp: linear{280, 55}, speed: linear{0.55, 0}, radius: 52, contact: 28, score: 600, dropOdds: 0.9, creditKO: true, targeting: true},
	KindEnemyBullet: {hp: linear{1, 0}, speed: linear{5, 0}, radius: defaultRadius, contact: 11},
}

// BaseHP returns the spawn hit points of a kind at the given wave.
func (k Kind) BaseHP(wave int) float64 { return stats[k].hp.at(wave) }

// BaseSpeed returns the spawn speed of a kind at the given wave.
func (k Kind) BaseSpeed(wave int) float64 { return stats[k].speed.at(wave) }

// HitRadius returns the collision radius used for bullets and player contact.
func (k Kind) HitRadius() float64 { return stats[k].radius }

// ContactDamage returns the damage dealt when the enemy touches the player.
func (k Kind) ContactDamage() float64 { return stats[k].contact }

// Score returns the points awarded for killing the enemy.
func (k Kind) Score() int { return stats[k].score }

// DropChance returns the probability of a power-up drop on kill.
func (k Kind) DropChance() float64 { return stats[k].dropOdds }

// ContactCountsAsKill reports whether body-blocking this kind awards a kill.
func (k Kind) ContactCountsAsKill() bool { return stats[k].creditKO }

// Targetable reports whether bullets and missiles interact with this kind.
func (k Kind) Targetable() bool { return stats[k].targeting }
