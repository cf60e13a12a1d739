package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	ErrInvalidField  = errors.New("invalid field geometry")
	ErrInvalidTuning = errors.New("invalid tuning")
)

// FieldTuning — размеры игрового поля
type FieldTuning struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type PlayerTuning struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	Speed        float64 `toml:"speed"`
	BottomOffset float64 `toml:"bottom_offset"`
	Lives        int     `toml:"lives"`
}

type BulletTuning struct {
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
	Speed          float64 `toml:"speed"`
	PruneMargin    float64 `toml:"prune_margin"`
	CooldownMs     int     `toml:"cooldown_ms"`
	SpreadScore    int     `toml:"spread_score"`
	SpreadAngleDeg float64 `toml:"spread_angle_deg"`
}

type EnemyTuning struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	MinSpeed     float64 `toml:"min_speed"`
	MaxSpeed     float64 `toml:"max_speed"`
	Zigzag       float64 `toml:"zigzag"`
	Sprites      int     `toml:"sprites"`
	BulletWidth  float64 `toml:"bullet_width"`
	BulletHeight float64 `toml:"bullet_height"`
	BulletSpeed  float64 `toml:"bullet_speed"`
	KillAward    int     `toml:"kill_award"`
}

// SpawnTuning описывает рост сложности: интервал уменьшается, пачка растёт.
type SpawnTuning struct {
	InitialIntervalMs int `toml:"initial_interval_ms"`
	MinIntervalMs     int `toml:"min_interval_ms"`
	IntervalStepMs    int `toml:"interval_step_ms"`
	BatchEvery        int `toml:"batch_every"`
	MaxBatch          int `toml:"max_batch"`
}

type FireTuning struct {
	CheckIntervalMs int     `toml:"check_interval_ms"`
	BaseChance      float64 `toml:"base_chance"`
	ChanceStep      float64 `toml:"chance_step"`
	ScoreUnit       int     `toml:"score_unit"`
	MaxChance       float64 `toml:"max_chance"`
}

// Inset is subtracted from each side of a sprite box before overlap tests.
type Inset struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

type HitboxTuning struct {
	Enemy  Inset `toml:"enemy"`  // цель для пуль игрока
	Player Inset `toml:"player"` // цель для врагов и вражеских пуль
	Crash  Inset `toml:"crash"`  // корпус врага при таране
}

type EffectsTuning struct {
	ExplosionFrames       int     `toml:"explosion_frames"`
	PlayerExplosionFrames int     `toml:"player_explosion_frames"`
	TicksPerFrame         int     `toml:"ticks_per_frame"`
	Particles             int     `toml:"particles"`
	ParticleMinSpeed      float64 `toml:"particle_min_speed"`
	ParticleMaxSpeed      float64 `toml:"particle_max_speed"`
	ParticleMaxSize       float64 `toml:"particle_max_size"`
}

// Tuning holds every gameplay constant of a session.
type Tuning struct {
	Field   FieldTuning   `toml:"field"`
	Player  PlayerTuning  `toml:"player"`
	Bullet  BulletTuning  `toml:"bullet"`
	Enemy   EnemyTuning   `toml:"enemy"`
	Spawn   SpawnTuning   `toml:"spawn"`
	Fire    FireTuning    `toml:"fire"`
	Hitbox  HitboxTuning  `toml:"hitbox"`
	Effects EffectsTuning `toml:"effects"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Field: FieldTuning{Width: ScreenWidth, Height: ScreenHeight},
		Player: PlayerTuning{
			Width:        PlayerWidth,
			Height:       PlayerHeight,
			Speed:        PlayerSpeed,
			BottomOffset: PlayerBottomOffset,
			Lives:        InitialLives,
		},
		Bullet: BulletTuning{
			Width:          BulletWidth,
			Height:         BulletHeight,
			Speed:          BulletSpeed,
			PruneMargin:    BulletPruneMargin,
			CooldownMs:     FireCooldownMs,
			SpreadScore:    SpreadScore,
			SpreadAngleDeg: SpreadAngleDegrees,
		},
		Enemy: EnemyTuning{
			Width:        EnemyWidth,
			Height:       EnemyHeight,
			MinSpeed:     EnemyMinSpeed,
			MaxSpeed:     EnemyMaxSpeed,
			Zigzag:       EnemyZigzag,
			Sprites:      EnemySprites,
			BulletWidth:  EnemyBulletWidth,
			BulletHeight: EnemyBulletHeight,
			BulletSpeed:  EnemyBulletSpeed,
			KillAward:    KillAward,
		},
		Spawn: SpawnTuning{
			InitialIntervalMs: InitialSpawnIntervalMs,
			MinIntervalMs:     MinSpawnIntervalMs,
			IntervalStepMs:    SpawnIntervalStepMs,
			BatchEvery:        BatchEveryCycles,
			MaxBatch:          MaxBatchSize,
		},
		Fire: FireTuning{
			CheckIntervalMs: FireCheckIntervalMs,
			BaseChance:      BaseFireChance,
			ChanceStep:      FireChanceStep,
			ScoreUnit:       FireChanceScoreUnit,
			MaxChance:       MaxFireChance,
		},
		Hitbox: HitboxTuning{
			Enemy:  Inset{X: EnemyHitboxInsetX, Y: EnemyHitboxInsetY},
			Player: Inset{X: PlayerHitboxInsetX, Y: PlayerHitboxInsetY},
			Crash:  Inset{X: CrashHitboxInsetX, Y: CrashHitboxInsetY},
		},
		Effects: EffectsTuning{
			ExplosionFrames:       ExplosionFrames,
			PlayerExplosionFrames: PlayerExplosionFrames,
			TicksPerFrame:         ExplosionTicksPerFrame,
			Particles:             ParticleCount,
			ParticleMinSpeed:      ParticleMinSpeed,
			ParticleMaxSpeed:      ParticleMaxSpeed,
			ParticleMaxSize:       ParticleMaxSize,
		},
	}
}

// Validate проверяет предусловия сессии. Ошибки оборачивают ErrInvalidField
// или ErrInvalidTuning.
func (t Tuning) Validate() error {
	if !positive(t.Field.Width) || !positive(t.Field.Height) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidField, t.Field.Width, t.Field.Height)
	}
	if !positive(t.Player.Width) || !positive(t.Player.Height) ||
		t.Player.Width > t.Field.Width || t.Player.BottomOffset > t.Field.Height {
		return fmt.Errorf("%w: player %vx%v does not fit %vx%v", ErrInvalidField,
			t.Player.Width, t.Player.Height, t.Field.Width, t.Field.Height)
	}
	if !positive(t.Enemy.Width) || !positive(t.Enemy.Height) || t.Enemy.Width > t.Field.Width {
		return fmt.Errorf("%w: enemy %vx%v does not fit field width %v", ErrInvalidField,
			t.Enemy.Width, t.Enemy.Height, t.Field.Width)
	}
	// хитбокс после отступа должен остаться непустым, иначе столкновений нет
	if err := t.Hitbox.Enemy.check("enemy", t.Enemy.Width, t.Enemy.Height); err != nil {
		return err
	}
	if err := t.Hitbox.Crash.check("crash", t.Enemy.Width, t.Enemy.Height); err != nil {
		return err
	}
	if err := t.Hitbox.Player.check("player", t.Player.Width, t.Player.Height); err != nil {
		return err
	}

	switch {
	case t.Player.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidTuning, t.Player.Lives)
	case t.Player.Speed < 0 || t.Bullet.Speed <= 0 || t.Enemy.BulletSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidTuning)
	case t.Enemy.MinSpeed <= 0 || t.Enemy.MaxSpeed < t.Enemy.MinSpeed:
		return fmt.Errorf("%w: enemy speed range [%v, %v)", ErrInvalidTuning, t.Enemy.MinSpeed, t.Enemy.MaxSpeed)
	case t.Enemy.Sprites <= 0:
		return fmt.Errorf("%w: enemy sprites must be positive", ErrInvalidTuning)
	case t.Spawn.MinIntervalMs <= 0 || t.Spawn.InitialIntervalMs < t.Spawn.MinIntervalMs:
		return fmt.Errorf("%w: spawn interval %dms below floor %dms", ErrInvalidTuning,
			t.Spawn.InitialIntervalMs, t.Spawn.MinIntervalMs)
	case t.Spawn.IntervalStepMs < 0 || t.Spawn.BatchEvery <= 0 || t.Spawn.MaxBatch <= 0:
		return fmt.Errorf("%w: spawn ramp", ErrInvalidTuning)
	case t.Fire.CheckIntervalMs <= 0 || t.Fire.ScoreUnit <= 0:
		return fmt.Errorf("%w: fire schedule", ErrInvalidTuning)
	case t.Fire.BaseChance < 0 || t.Fire.MaxChance > 1 || t.Fire.MaxChance < t.Fire.BaseChance:
		return fmt.Errorf("%w: fire chance [%v, %v]", ErrInvalidTuning, t.Fire.BaseChance, t.Fire.MaxChance)
	case t.Bullet.CooldownMs < 0:
		return fmt.Errorf("%w: negative fire cooldown", ErrInvalidTuning)
	case t.Effects.TicksPerFrame <= 0 || t.Effects.ExplosionFrames <= 0 || t.Effects.PlayerExplosionFrames <= 0:
		return fmt.Errorf("%w: explosion animation", ErrInvalidTuning)
	case t.Effects.Particles < 0:
		return fmt.Errorf("%w: negative particle count", ErrInvalidTuning)
	}
	return nil
}

func (in Inset) check(name string, width, height float64) error {
	if !(in.X >= 0) || !(in.Y >= 0) || 2*in.X >= width || 2*in.Y >= height {
		return fmt.Errorf("%w: %s hitbox inset %vx%v leaves no box inside %vx%v",
			ErrInvalidTuning, name, in.X, in.Y, width, height)
	}
	return nil
}

// positive отсекает ноль, отрицательные значения, NaN и бесконечность.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (t Tuning) SpawnInterval() time.Duration {
	return time.Duration(t.Spawn.InitialIntervalMs) * time.Millisecond
}

func (t Tuning) MinSpawnInterval() time.Duration {
	return time.Duration(t.Spawn.MinIntervalMs) * time.Millisecond
}

func (t Tuning) SpawnIntervalStep() time.Duration {
	return time.Duration(t.Spawn.IntervalStepMs) * time.Millisecond
}

func (t Tuning) FireCheckInterval() time.Duration {
	return time.Duration(t.Fire.CheckIntervalMs) * time.Millisecond
}

func (t Tuning) FireCooldown() time.Duration {
	return time.Duration(t.Bullet.CooldownMs) * time.Millisecond
}

// LoadTuning reads a TOML file on top of DefaultTuning: keys missing from
// the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return t, fmt.Errorf("failed to decode tuning file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return t, fmt.Errorf("%w: unknown keys in %s: %v", ErrInvalidTuning, path, undecoded)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

// SaveTuning пишет tuning в TOML, удобно для генерации шаблона конфига.
func SaveTuning(path string, t Tuning) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create tuning file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(t); err != nil {
		return fmt.Errorf("failed to encode tuning: %w", err)
	}
	return nil
}
