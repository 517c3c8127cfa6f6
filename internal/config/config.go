// Package config loads percolate CLI settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	// Size is the lattice side length n.
	Size int `yaml:"size"`
	// Seed drives every random choice; equal seeds give equal runs.
	Seed int64 `yaml:"seed"`

	Stats   StatsConfig   `yaml:"stats"`
	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
}

// StatsConfig configures threshold estimation.
type StatsConfig struct {
	Trials  int `yaml:"trials"`
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// RenderConfig configures terminal output.
type RenderConfig struct {
	Color bool `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Size: 8,
		Seed: 1,
		Stats: StatsConfig{
			Trials:  100,
			Workers: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Render: RenderConfig{
			Color: true,
		},
	}
}

// Load reads a YAML file over Default(). A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate rejects values no command can run with.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size must be positive (%d)", ErrInvalidConfig, c.Size)
	case c.Stats.Trials <= 0:
		return fmt.Errorf("%w: stats.trials must be positive (%d)", ErrInvalidConfig, c.Stats.Trials)
	case c.Stats.Workers < 0:
		return fmt.Errorf("%w: stats.workers cannot be negative (%d)", ErrInvalidConfig, c.Stats.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}
