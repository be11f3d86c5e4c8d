// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. Every field can be overridden with
// an LQ_-prefixed environment variable.
type Config struct {
	// DBPath overrides the default database location (~/.levelsystem.db).
	DBPath string `envconfig:"DB_PATH"`
	// LogLevel is a logrus level name.
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	// AutosaveSeconds is the interval between background saves while the
	// board is open. Zero disables autosave.
	AutosaveSeconds int `envconfig:"AUTOSAVE_SECONDS" default:"30"`
}

// Load reads configuration from LQ_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("lq", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
