// Package config loads matbench settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-hclog"
)

// ErrInvalidConfig is returned when a parsed value is out of its domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config controls the scenario runner.
type Config struct {
	Engine   string `env:"LVMAT_ENGINE"    envDefault:"both"`
	LogLevel string `env:"LVMAT_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LVMAT_LOG_JSON"  envDefault:"false"`
	Repeat   int    `env:"LVMAT_REPEAT"    envDefault:"1"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the engine selector, log level and repeat count.
func (c Config) Validate() error {
	switch strings.ToLower(c.Engine) {
	case "lazy", "eager", "both":
	default:
		return fmt.Errorf("engine %q: %w", c.Engine, ErrInvalidConfig)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat %d: %w", c.Repeat, ErrInvalidConfig)
	}
	return nil
}
