package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06
	TicksPerSec  = 60

	PlayerWidth        = 48.0
	PlayerHeight       = 48.0
	PlayerSpeed        = 5.0  // пикселей за тик
	PlayerBottomOffset = 70.0 // расстояние от нижнего края поля до верха корабля
	InitialLives       = 3

	BulletWidth        = 4.0
	BulletHeight       = 10.0
	BulletSpeed        = 7.0
	BulletPruneMargin  = 10.0
	FireCooldownMs     = 100
	SpreadScore        = 3200 // начиная с этого счёта игрок стреляет веером
	SpreadAngleDegrees = 10.0

	EnemyBulletWidth  = 4.0
	EnemyBulletHeight = 10.0
	EnemyBulletSpeed  = 4.0

	EnemyWidth    = 48.0
	EnemyHeight   = 48.0
	EnemyMinSpeed = 2.0
	EnemyMaxSpeed = 3.5
	EnemyZigzag   = 1.0 // горизонтальный сдвиг за тик
	EnemySprites  = 4

	InitialSpawnIntervalMs = 2000
	MinSpawnIntervalMs     = 600
	SpawnIntervalStepMs    = 100
	BatchEveryCycles       = 5
	MaxBatchSize           = 4

	FireCheckIntervalMs = 1000
	BaseFireChance      = 0.2
	FireChanceStep      = 0.02 // прибавка за каждые 200 очков
	FireChanceScoreUnit = 200
	MaxFireChance       = 0.6

	KillAward = 100

	// Hitbox insets. Bullets hit an almost full-width enemy box,
	// the player box is shrunk on every side.
	EnemyHitboxInsetX  = 2.0
	EnemyHitboxInsetY  = 4.0
	PlayerHitboxInsetX = 10.0
	PlayerHitboxInsetY = 10.0
	CrashHitboxInsetX  = 6.0
	CrashHitboxInsetY  = 6.0

	ExplosionFrames        = 8
	ExplosionTicksPerFrame = 4
	PlayerExplosionFrames  = 12

	ParticleCount    = 60
	ParticleMinSpeed = 0.5
	ParticleMaxSpeed = 2.0
	ParticleMaxSize  = 2.0

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	PauseButtonX     = 60
	PauseButtonSize  = 9.0
	ClickCooldown    = 300
)

var (
	BackgroundColor   = color.RGBA{5, 5, 20, 255}
	ParticleColor     = color.RGBA{200, 200, 230, 200}
	BulletColor       = color.RGBA{255, 255, 0, 255}
	EnemyBulletColor  = color.RGBA{255, 40, 40, 255}
	PlayerColor       = color.RGBA{80, 200, 255, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	GameOverTextColor = color.RGBA{255, 0, 0, 255}
	IdleStateColor    = color.RGBA{128, 128, 128, 220}
	RunningStateColor = color.RGBA{50, 205, 50, 220}
	PausedStateColor  = color.RGBA{70, 130, 180, 220}
	OverStateColor    = color.RGBA{220, 60, 60, 220}
	OverlayShade      = color.RGBA{0, 0, 0, 128}
	EnemyColors       = []color.RGBA{
		{255, 90, 90, 255},  // красный
		{255, 170, 60, 255}, // оранжевый
		{180, 80, 230, 255}, // фиолетовый
		{90, 230, 120, 255}, // зелёный
	}
	ExplosionColors = []color.RGBA{
		{255, 255, 200, 255},
		{255, 220, 80, 255},
		{255, 140, 40, 255},
		{200, 60, 20, 255},
	}
)
