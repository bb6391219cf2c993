// Package config centralizes all tunable game parameters.
package config

import "time"

// Play field - the logical simulation area. Hosts scale it to their output.
const (
	FieldWidth  = 800
	FieldHeight = 600
	FieldInset  = 20 // Player is kept this far from every edge
)

// Entity bounds (field-relative). Enemies clamp x to the side margin and are
// dropped once they pass the bottom margin.
const (
	EnemySideMargin   = 70
	EnemyBottomMargin = 80
	EnemyTopMargin    = 80 // Enemy bullets only; everything else spawns above the field
	EnemySpawnY       = -40
	EnemySpawnMarginX = 40
	BulletMargin      = 20
	MissileMargin     = 60
	PowerupMargin     = 30
)

// Simulation clock. Speeds are expressed per reference frame; Update scales
// motion by delta/FrameTime.
const (
	FrameTime = time.Second / 60
	MaxDelta  = 100 * time.Millisecond
)

// Player
const (
	PlayerMaxHP       = 100.0
	PlayerMaxShield   = 60.0
	PlayerBaseRadius  = 12.0
	PlayerRadiusLevel = 4.0  // Extra radius per ship level
	PlayerFollow      = 0.22 // Fraction of the distance to the target covered per frame
	MaxShipLevel      = 3
)

// LevelThresholds are the cumulative kill counts for ship levels 1..3.
var LevelThresholds = [MaxShipLevel]int{10, 30, 70}

// Guns
const (
	DefaultFireRate  = 175 * time.Millisecond
	MinFireRate      = 70 * time.Millisecond
	RapidFireStep    = 30 * time.Millisecond
	RapidFireWindow  = 6000 * time.Millisecond
	BulletSpeed      = 16.0
	BulletBaseDamage = 10.0
	BulletLevelBonus = 3.0
	BulletNoseOffset = 18.0
)

// Missile
const (
	MissileCooldown       = 1500 * time.Millisecond
	MissileLaunchSpeed    = 4.0
	MissileSteer          = 0.9
	MissileIdleClimb      = 0.6
	MissileMaxSpeed       = 15.0
	MissileDirectRadius   = 60.0
	MissileSplashRadius   = 90.0
	MissileDirectDamage   = 90.0
	MissileSplashDamage   = 45.0
	MissileTriggerRadius  = MissileDirectRadius
	CollisionGridCellSize = 96.0 // >= largest hit radius and splash radius
)

// Waves
const (
	WaveBaseDuration    = 28000 * time.Millisecond
	WaveDurationStep    = 800 * time.Millisecond
	WaveMinDuration     = 7000 * time.Millisecond
	BossWaveEvery       = 5
	BatchBase           = 4
	BatchPerWave        = 2
	BatchMaxExtra       = 14
	BatchStagger        = 180 * time.Millisecond
	SpawnBaseInterval   = 2200 * time.Millisecond
	SpawnIntervalStep   = 140 * time.Millisecond
	SpawnMinInterval    = 350 * time.Millisecond
	SpawnJitterMin      = 0.7
	SpawnJitterMax      = 1.3
	MaxConcurrentBosses = 2
)

// Enemy behavior
const (
	ZigzagSpeedFactor  = 1.6
	ZigzagFlipMin      = 400 * time.Millisecond
	ZigzagFlipMax      = 700 * time.Millisecond
	BomberMineInterval = 1800 * time.Millisecond
	BossHoldFraction   = 0.2 // Boss stops descending at this fraction of the field height
	BossDriftFreq      = 1.1
	BossDriftAmp       = 2.5
	BossShotBase       = 2200 * time.Millisecond
	BossShotStep       = 90 * time.Millisecond
	BossShotMin        = 500 * time.Millisecond
	BossSpread         = 0.3
	SplitterChildHP    = 12.0
	SplitterChildShift = 18.0
	MineHP             = 1.0
	MineSpeed          = 0.6
	EnemyBulletSpeed   = 5.0
)

// Power-ups
const (
	PowerupFallSpeed   = 1.6
	PowerupPickupRange = 26.0
	PowerupHeal        = 28.0
	PowerupShield      = 35.0
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	TargetStep            = 9.0 // Field units the target moves per frame while a key is held
	BannerSeconds         = 2.0
	MaxTermWidth          = 200
	MaxTermHeight         = 60
)

// Network streaming
const (
	StreamTickRate      = 60
	StreamTickTime      = time.Second / StreamTickRate
	StreamBroadcastRate = 30
	StreamBroadcastEach = StreamTickRate / StreamBroadcastRate
	StreamReadLimit     = 512 // Bytes per client command
	StreamWriteWait     = 10 * time.Second
	StreamPongWait      = 60 * time.Second
	StreamPingPeriod    = 25 * time.Second
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
