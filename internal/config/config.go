// Package config loads settings for the mapping generator.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds mapbopomofo settings.
type Config struct {
	CSVPath  string `yaml:"csv_path"  env:"FLYPY_CSV_PATH"  env-default:"bopomofo.csv"`
	Scheme   string `yaml:"scheme"    env:"FLYPY_SCHEME"    env-default:"flypy"`
	Toneless bool   `yaml:"toneless"  env:"FLYPY_TONELESS"`
	LogLevel string `yaml:"log_level" env:"FLYPY_LOG_LEVEL" env-default:"warn"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// With an empty path only the environment and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	return &cfg, nil
}
