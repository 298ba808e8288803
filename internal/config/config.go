// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/mathquest/internal/store"
)

// Config holds every tunable the binary reads from the environment.
// Unset values fall back to the XDG data directory and quiet defaults.
type Config struct {
	// DBPath overrides the database location.
	DBPath string `env:"MATHQUEST_DB"`
	// LogPath overrides the warning-log location. Empty disables file
	// logging entirely.
	LogPath string `env:"MATHQUEST_LOG"`
	// TransitionDelayMS is how long answer feedback stays on screen.
	TransitionDelayMS int `env:"MATHQUEST_DELAY_MS" envDefault:"900"`
}

// Load parses the environment and resolves the database path.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = p
	}
	return cfg, nil
}

// TransitionDelay returns the feedback delay as a duration.
func (c Config) TransitionDelay() time.Duration {
	if c.TransitionDelayMS < 0 {
		return 0
	}
	return time.Duration(c.TransitionDelayMS) * time.Millisecond
}
