package defs

import (
	"errors"
	"fmt"
	"go-space-shooter/internal/config"
	"sort"
)

var ErrUnknownPreset = errors.New("unknown difficulty preset")

// DifficultyPreset описывает отличия уровня сложности от базового Tuning.
// Нулевые поля не меняют базу.
type DifficultyPreset struct {
	Lives             int     `toml:"lives"`
	InitialIntervalMs int     `toml:"initial_interval_ms"`
	MinIntervalMs     int     `toml:"min_interval_ms"`
	IntervalStepMs    int     `toml:"interval_step_ms"`
	MaxBatch          int     `toml:"max_batch"`
	EnemyMinSpeed     float64 `toml:"enemy_min_speed"`
	EnemyMaxSpeed     float64 `toml:"enemy_max_speed"`
	BaseFireChance    float64 `toml:"base_fire_chance"`
	MaxFireChance     float64 `toml:"max_fire_chance"`
}

// DifficultyPresets — встроенные уровни сложности, ключ — имя из флага
// или SHOOTER_DIFFICULTY.
var DifficultyPresets = map[string]DifficultyPreset{
	"easy": {
		Lives:             5,
		InitialIntervalMs: 3000,
		MinIntervalMs:     1000,
		MaxBatch:          3,
		EnemyMinSpeed:     1.5,
		EnemyMaxSpeed:     2.5,
		BaseFireChance:    0.1,
		MaxFireChance:     0.4,
	},
	"normal": {},
	"hard": {
		Lives:             2,
		InitialIntervalMs: 1500,
		MinIntervalMs:     400,
		IntervalStepMs:    150,
		MaxBatch:          6,
		EnemyMinSpeed:     2.5,
		EnemyMaxSpeed:     4.5,
		BaseFireChance:    0.3,
		MaxFireChance:     0.8,
	},
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(DifficultyPresets))
	for name := range DifficultyPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply returns base with the named preset laid over it. An empty name
// leaves base untouched.
func Apply(name string, base config.Tuning) (config.Tuning, error) {
	if name == "" {
		return base, nil
	}
	p, ok := DifficultyPresets[name]
	if !ok {
		return base, fmt.Errorf("%w: %q (known: %v)", ErrUnknownPreset, name, PresetNames())
	}
	t := p.apply(base)
	if err := t.Validate(); err != nil {
		return base, fmt.Errorf("preset %q: %w", name, err)
	}
	return t, nil
}

func (p DifficultyPreset) apply(t config.Tuning) config.Tuning {
	setInt(&t.Player.Lives, p.Lives)
	setInt(&t.Spawn.InitialIntervalMs, p.InitialIntervalMs)
	setInt(&t.Spawn.MinIntervalMs, p.MinIntervalMs)
	setInt(&t.Spawn.IntervalStepMs, p.IntervalStepMs)
	setInt(&t.Spawn.MaxBatch, p.MaxBatch)
	setFloat(&t.Enemy.MinSpeed, p.EnemyMinSpeed)
	setFloat(&t.Enemy.MaxSpeed, p.EnemyMaxSpeed)
	setFloat(&t.Fire.BaseChance, p.BaseFireChance)
	setFloat(&t.Fire.MaxChance, p.MaxFireChance)
	return t
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
