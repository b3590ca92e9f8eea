// Package config loads game configuration: embedded defaults overlaid with an
// optional user YAML file.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/campfire-cantos/internal/game"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Game    GameConfig    `yaml:"game"`
	Save    SaveConfig    `yaml:"save"`
	Journal JournalConfig `yaml:"journal"`
	Log     LogConfig     `yaml:"log"`
	Balance game.Balance  `yaml:"balance"`
}

type GameConfig struct {
	Seed int64 `yaml:"seed"`
}

type SaveConfig struct {
	Path string `yaml:"path"`
}

type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only keys present in the file overwrite defaults. A start inventory
		// replaces the default one instead of merging into it.
		var overlay struct {
			Balance struct {
				StartInventory map[string]int `yaml:"start_inventory"`
			} `yaml:"balance"`
		}
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		if overlay.Balance.StartInventory != nil {
			cfg.Balance.StartInventory = nil
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Balance.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Save.Path) == "" {
		return fmt.Errorf("save.path must not be empty")
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Dir) == "" {
		return fmt.Errorf("journal.dir must be set when journal.enabled is true")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// JournalDir returns the journal directory, or "" when journaling is off.
func (c *Config) JournalDir() string {
	if !c.Journal.Enabled {
		return ""
	}
	return c.Journal.Dir
}

// ParseLevel maps a log.level value to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level %q is not one of debug, info, warn, error", level)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
