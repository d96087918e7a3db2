// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 800
	ScreenHeight   = 600
	TicksPerSecond = 60
	MaxDeltaMs     = 100 // Host frames longer than this are clamped
	GridSpacing    = 40
	HUDHeight      = 28
)

// Tuning collects every gameplay constant of a run. Speeds and accelerations are in
// arena units per tick, intervals in milliseconds of simulation time.
type Tuning struct {
	ArenaWidth  float64
	ArenaHeight float64

	PlayerRadius       float64
	PlayerSpeed        float64
	PlayerHealth       float64
	PlayerSpawnOffsetY float64

	BaseRadius         float64
	BaseIntegrity      float64
	BaseDamagePerEnemy float64

	EnemyRadius        float64 // used for kinds missing from the catalog
	EnemyHealth        float64
	EnemyHealthPerWave float64
	EnemySpeed         float64
	EnemySpeedPerWave  float64
	EnemyCapBase       int // live enemy cap is EnemyCapBase + wave
	SpawnMargin        float64

	SpawnIntervalMs        float64
	SpawnIntervalPerWaveMs float64
	MinSpawnIntervalMs     float64

	FastMinWave   int
	FastRollAbove float64
	TankMinWave   int
	TankRollBelow float64

	ContactDamage float64
	// ScaleContactDamage multiplies ContactDamage by the number of overlapping
	// enemies. Off by default: a crowd chips the player at a flat rate.
	ScaleContactDamage bool

	BulletSpeed float64
	KillScore   int
	PickupScore int

	PickupRadius  float64
	MagnetRange   float64
	MagnetAccel   float64
	MagnetDamping float64

	WaveQuota int

	PowerBaseline  int
	PowerStep      int
	PowerScale     float64
	FallbackDamage float64

	FireRateStepMs       float64
	MinFireRateMs        float64 // floor reachable through upgrades
	MinLoadoutFireRateMs float64 // floor applied to malformed loadouts

	AccuracyStep      int
	BaseSpread        float64
	SpreadPerAccuracy float64
}

// DefaultTuning returns the stock balance of the mini-game.
func DefaultTuning() Tuning {
	return Tuning{
		ArenaWidth:  ScreenWidth,
		ArenaHeight: ScreenHeight,

		PlayerRadius:       15,
		PlayerSpeed:        6,
		PlayerHealth:       100,
		PlayerSpawnOffsetY: 50,

		BaseRadius:         40,
		BaseIntegrity:      100,
		BaseDamagePerEnemy: 10,

		EnemyRadius:        15,
		EnemyHealth:        5,
		EnemyHealthPerWave: 5,
		EnemySpeed:         0.8,
		EnemySpeedPerWave:  0.1,
		EnemyCapBase:       5,
		SpawnMargin:        50,

		SpawnIntervalMs:        2000,
		SpawnIntervalPerWaveMs: 100,
		MinSpawnIntervalMs:     800,

		FastMinWave:   2,
		FastRollAbove: 0.7,
		TankMinWave:   3,
		TankRollBelow: 0.2,

		ContactDamage: 0.5,

		BulletSpeed: 8,
		KillScore:   100,
		PickupScore: 50,

		PickupRadius:  6,
		MagnetRange:   80,
		MagnetAccel:   0.5,
		MagnetDamping: 0.92,

		WaveQuota: 10,

		PowerBaseline:  5,
		PowerStep:      2,
		PowerScale:     0.1,
		FallbackDamage: 5,

		FireRateStepMs:       50,
		MinFireRateMs:        100,
		MinLoadoutFireRateMs: 50,

		AccuracyStep:      5,
		BaseSpread:        0.2,
		SpreadPerAccuracy: 0.005,
	}
}

var (
	BackgroundColor = color.RGBA{10, 14, 39, 255}
	GridColor       = color.RGBA{255, 255, 255, 13}
	BaseColor       = color.RGBA{30, 41, 59, 255}
	BaseStrokeColor = color.RGBA{59, 130, 246, 255}
	PlayerColor     = color.RGBA{59, 130, 246, 255}
	PickupColor     = color.RGBA{74, 222, 128, 255}
	AimLineColor    = color.RGBA{255, 255, 255, 40}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{148, 163, 184, 255}
	HealthColor     = color.RGBA{239, 68, 68, 255}
	IntegrityColor  = color.RGBA{59, 130, 246, 255}
	ProgressColor   = color.RGBA{74, 222, 128, 255}
	BarBackColor    = color.RGBA{30, 30, 40, 220}
	OverlayColor    = color.RGBA{0, 0, 0, 170}
	ButtonColor     = color.RGBA{124, 58, 237, 255}
	ButtonHover     = color.RGBA{147, 51, 234, 255}
	StrokeWidth     = 2.0
)
