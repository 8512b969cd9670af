package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Catalog.Path == "" {
		t.Error("expected a non-empty default catalog path")
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("expected theme 'dark', got %q", cfg.UI.Theme)
	}
	if cfg.UI.ShowAnimations != true {
		t.Error("expected show_animations to be true")
	}
	if cfg.Keybinds.PlanViewerExpand != "enter" {
		t.Errorf("expected default expand key 'enter', got %q", cfg.Keybinds.PlanViewerExpand)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got error: %v", err)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "default config", cfg: DefaultConfig()},
		{
			name: "light theme, explicit combat level",
			cfg: &Config{
				Catalog: CatalogConfig{Path: "quests.json"},
				Player:  PlayerConfig{ExplicitCombatLevel: 50},
				UI:      UIConfig{Theme: "light"},
				Debug:   DebugConfig{LogLevel: "debug"},
			},
		},
		{
			name: "auto theme, max combat level",
			cfg: &Config{
				Catalog: CatalogConfig{Path: "quests.json"},
				Player:  PlayerConfig{ExplicitCombatLevel: 138},
				UI:      UIConfig{Theme: "auto"},
				Debug:   DebugConfig{LogLevel: "error"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err != nil {
				t.Errorf("expected valid config, got error: %v", err)
			}
		})
	}
}

func TestValidate_InvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		wantField string
	}{
		{
			name: "empty catalog path",
			cfg: &Config{
				Catalog: CatalogConfig{Path: ""},
				UI:      UIConfig{Theme: "dark"},
				Debug:   DebugConfig{LogLevel: "info"},
			},
			wantField: "catalog.path",
		},
		{
			name: "invalid theme",
			cfg: &Config{
				Catalog: CatalogConfig{Path: "quests.json"},
				UI:      UIConfig{Theme: "rainbow"},
				Debug:   DebugConfig{LogLevel: "info"},
			},
			wantField: "ui.theme",
		},
		{
			name: "combat level out of range",
			cfg: &Config{
				Catalog: CatalogConfig{Path: "quests.json"},
				Player:  PlayerConfig{ExplicitCombatLevel: 200},
				UI:      UIConfig{Theme: "dark"},
				Debug:   DebugConfig{LogLevel: "info"},
			},
			wantField: "player.explicit_combat_level",
		},
		{
			name: "negative combat level",
			cfg: &Config{
				Catalog: CatalogConfig{Path: "quests.json"},
				Player:  PlayerConfig{ExplicitCombatLevel: -1},
				UI:      UIConfig{Theme: "dark"},
				Debug:   DebugConfig{LogLevel: "info"},
			},
			wantField: "player.explicit_combat_level",
		},
		{
			name: "invalid log level",
			cfg: &Config{
				Catalog: CatalogConfig{Path: "quests.json"},
				UI:      UIConfig{Theme: "dark"},
				Debug:   DebugConfig{LogLevel: "trace"},
			},
			wantField: "debug.log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil {
				t.Error("expected validation error, got nil")
				return
			}

			verr, ok := err.(ValidationError)
			if !ok {
				t.Errorf("expected ValidationError, got %T", err)
				return
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected error for field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home directory: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tilde alone", input: "~", expected: home},
		{name: "tilde with path", input: "~/projects", expected: filepath.Join(home, "projects")},
		{name: "no tilde", input: "/absolute/path", expected: "/absolute/path"},
		{name: "empty path", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			if err != nil {
				t.Errorf("ExpandPath failed: %v", err)
				return
			}
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath failed: %v", err)
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected path to end with 'config.toml', got %q", path)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %q", path)
	}
}

func TestSaveMethod(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "codequest-save-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", originalHome)

	testCfg := DefaultConfig()
	testCfg.UI.Theme = "light"
	testCfg.Player.ExplicitCombatLevel = 42

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	configPath := filepath.Join(tmpDir, ".config", "codequest", "config.toml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("config file was not created at %s", configPath)
	}

	loadedCfg := &Config{}
	if _, err := toml.DecodeFile(configPath, loadedCfg); err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loadedCfg.UI.Theme != "light" {
		t.Errorf("expected theme 'light', got %q", loadedCfg.UI.Theme)
	}
	if loadedCfg.Player.ExplicitCombatLevel != 42 {
		t.Errorf("expected explicit combat level 42, got %d", loadedCfg.Player.ExplicitCombatLevel)
	}
}

func TestLoadMethod(t *testing.T) {
	t.Run("creates config with defaults when missing", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "codequest-load-*")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		defer os.RemoveAll(tmpDir)

		originalHome := os.Getenv("HOME")
		os.Setenv("HOME", tmpDir)
		defer os.Setenv("HOME", originalHome)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.UI.Theme != "dark" {
			t.Errorf("expected default theme 'dark', got %q", cfg.UI.Theme)
		}

		configPath := filepath.Join(tmpDir, ".config", "codequest", "config.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			t.Error("config file was not created")
		}
	})

	t.Run("merges partial config over defaults", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "codequest-load-partial-*")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		defer os.RemoveAll(tmpDir)

		originalHome := os.Getenv("HOME")
		os.Setenv("HOME", tmpDir)
		defer os.Setenv("HOME", originalHome)

		configDir := filepath.Join(tmpDir, ".config", "codequest")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			t.Fatalf("failed to create config dir: %v", err)
		}
		partial := "[catalog]\npath = \"/tmp/custom-quests.json\"\n"
		if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(partial), 0644); err != nil {
			t.Fatalf("failed to write partial config: %v", err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Catalog.Path != "/tmp/custom-quests.json" {
			t.Errorf("expected custom catalog path, got %q", cfg.Catalog.Path)
		}
		if cfg.UI.Theme != "dark" {
			t.Errorf("expected merged default theme 'dark', got %q", cfg.UI.Theme)
		}
	})
}

func TestValidationErrorMessage(t *testing.T) {
	verr := ValidationError{Field: "test.field", Value: "invalid", Message: "must be valid"}

	errMsg := verr.Error()
	expectedMsg := "config validation error [test.field]: must be valid (value: invalid)"
	if errMsg != expectedMsg {
		t.Errorf("expected error message %q, got %q", expectedMsg, errMsg)
	}
}
