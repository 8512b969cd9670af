// Package config loads CodeQuest's planner configuration from
// ~/.config/codequest/config.toml, following the teacher's
// config-as-TOML-with-defaults shape.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
)

// Config is the complete application configuration.
type Config struct {
	Catalog  CatalogConfig  `toml:"catalog"`
	Player   PlayerConfig   `toml:"player"`
	UI       UIConfig       `toml:"ui"`
	Keybinds KeybindsConfig `toml:"keybinds"`
	Debug    DebugConfig    `toml:"debug"`
}

// CatalogConfig names the quest data file to plan against.
type CatalogConfig struct {
	Path string `toml:"path"`
}

// PlayerConfig names an optional starting-state file (initial stats
// and already-completed quests, spec.md §6) and an explicit combat
// floor applied on top of it.
type PlayerConfig struct {
	StatsPath           string `toml:"stats_path"`
	ExplicitCombatLevel int    `toml:"explicit_combat_level"`
}

// UIConfig contains terminal UI preferences, kept from the teacher.
type UIConfig struct {
	Theme            string `toml:"theme"` // dark, light, auto
	ShowAnimations   bool   `toml:"show_animations"`
	CompactMode      bool   `toml:"compact_mode"`
	ShowKeybindHints bool   `toml:"show_keybind_hints"`
}

// KeybindsConfig maps keyboard shortcuts for the plan viewer screen.
type KeybindsConfig struct {
	PlanViewerExpand string `toml:"plan_viewer_expand"`
	PlanViewerQuit   string `toml:"plan_viewer_quit"`
}

// DebugConfig contains logging settings, kept from the teacher.
type DebugConfig struct {
	Enabled  bool   `toml:"enabled"`
	LogLevel string `toml:"log_level"` // debug, info, warn, error
	LogFile  string `toml:"log_file"`  // empty means no file logging
}

// ConfigPath returns the full path to the config file.
// It expands ~ to the user's home directory.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "codequest", "config.toml"), nil
}

// Load reads the config file from the standard location.
// If the file doesn't exist, it creates it with default values. A
// partially-specified file is merged over DefaultConfig() via mergo,
// so naming only `[catalog]` does not zero out the rest of the struct.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("determining config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
		return cfg, nil
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := mergo.Merge(cfg, DefaultConfig()); err != nil {
		return nil, fmt.Errorf("merging config defaults: %w", err)
	}

	return cfg, nil
}

// Save writes the current config to the standard config file location.
// It creates the config directory if it doesn't exist.
func (c *Config) Save() error {
	configPath, err := ConfigPath()
	if err != nil {
		return fmt.Errorf("determining config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config to TOML: %w", err)
	}

	return nil
}

// ExpandPath expands ~ in a path to the user's home directory.
// If the path doesn't start with ~, it returns the path unchanged.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	if len(path) == 1 {
		return home, nil
	}
	return filepath.Join(home, path[1:]), nil
}
