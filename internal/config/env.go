package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Options — параметры запуска оболочки, читаемые из окружения и .env
type Options struct {
	ConfigPath string
	Difficulty string
	Seed       int64
	Mute       bool
	PprofAddr  string
}

// LoadOptions loads the given .env files (a missing file is not an error)
// and reads SHOOTER_* variables from the environment.
func LoadOptions(envFiles ...string) (Options, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Options{}, fmt.Errorf("failed to load %s: %w", path, err)
		}
		log.Printf("Loaded environment from %s", path)
	}

	opts := Options{
		ConfigPath: os.Getenv("SHOOTER_CONFIG"),
		Difficulty: os.Getenv("SHOOTER_DIFFICULTY"),
		PprofAddr:  os.Getenv("SHOOTER_PPROF"),
	}
	if v := os.Getenv("SHOOTER_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Options{}, fmt.Errorf("SHOOTER_SEED: %w", err)
		}
		opts.Seed = seed
	}
	if v := os.Getenv("SHOOTER_MUTE"); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return Options{}, fmt.Errorf("SHOOTER_MUTE: %w", err)
		}
		opts.Mute = mute
	}
	return opts, nil
}
