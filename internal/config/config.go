// Package config loads the settings of a host embedding a bento World.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the full settings file.
type Config struct {
	World   WorldConfig   `toml:"world" yaml:"world"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Demo    DemoConfig    `toml:"demo" yaml:"demo"`
}

// WorldConfig sizes the World the host creates.
type WorldConfig struct {
	InitialCapacity int `toml:"initial_capacity" yaml:"initial_capacity"` // entity table pre-size
	CommandsCache   int `toml:"commands_cache" yaml:"commands_cache"`     // pre-allocated command buffers
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// DemoConfig drives the bento-demo simulation.
type DemoConfig struct {
	Ticks    int           `toml:"ticks" yaml:"ticks"`
	Entities int           `toml:"entities" yaml:"entities"`
	Lifetime int           `toml:"lifetime" yaml:"lifetime"` // ticks an entity lives before despawning
	TickRate time.Duration `toml:"tick_rate" yaml:"tick_rate"`
}

// Load reads the file at path over the defaults. Files ending in .yaml or
// .yml are parsed as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no World or demo run can work with.
func (c *Config) Validate() error {
	if c.World.InitialCapacity < 0 {
		return fmt.Errorf("world.initial_capacity must not be negative, got %d", c.World.InitialCapacity)
	}
	if c.World.CommandsCache < 0 {
		return fmt.Errorf("world.commands_cache must not be negative, got %d", c.World.CommandsCache)
	}
	if c.Demo.Ticks < 0 || c.Demo.Entities < 0 || c.Demo.Lifetime < 0 {
		return fmt.Errorf("demo counts must not be negative")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Default returns the settings used when no file overrides them.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			InitialCapacity: 1024,
			CommandsCache:   1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Demo: DemoConfig{
			Ticks:    600,
			Entities: 256,
			Lifetime: 120,
			TickRate: 16 * time.Millisecond,
		},
	}
}
