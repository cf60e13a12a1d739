// internal/defs/loader.go
package defs

import (
	"fmt"
	"go-space-shooter/internal/config"
	"log"

	"github.com/BurntSushi/toml"
)

type presetFile struct {
	Presets map[string]DifficultyPreset `toml:"preset"`
}

// LoadPresets reads extra difficulty presets from a TOML file with
// [preset.<name>] tables and adds them to DifficultyPresets. A preset with
// an existing name replaces the built-in one.
func LoadPresets(path string) error {
	var file presetFile
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return fmt.Errorf("failed to read presets file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys in presets file %s: %v", path, undecoded)
	}

	for name, p := range file.Presets {
		DifficultyPresets[name] = p
	}

	log.Printf("Loaded %d difficulty presets from %s", len(file.Presets), path)
	return nil
}

// ResolveTuning собирает итоговую настройку: файл tuning (если задан),
// дополнительные пресеты и выбранный пресет сложности.
func ResolveTuning(configPath, presetsPath, difficulty string) (config.Tuning, error) {
	tuning := config.DefaultTuning()
	if configPath != "" {
		var err error
		if tuning, err = config.LoadTuning(configPath); err != nil {
			return config.Tuning{}, err
		}
		log.Printf("Loaded tuning from %s", configPath)
	}
	if presetsPath != "" {
		if err := LoadPresets(presetsPath); err != nil {
			return config.Tuning{}, err
		}
	}
	return Apply(difficulty, tuning)
}
