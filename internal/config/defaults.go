package config

// DefaultConfig returns a Config struct populated with sensible default values.
// These defaults are used when creating a new config file or when specific
// values are not provided in an existing config file.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: "~/.config/codequest/quests.json",
		},
		Player: PlayerConfig{
			StatsPath:           "",
			ExplicitCombatLevel: 0,
		},
		UI: UIConfig{
			Theme:            "dark", // dark, light, auto
			ShowAnimations:   true,
			CompactMode:      false,
			ShowKeybindHints: true,
		},
		Keybinds: KeybindsConfig{
			PlanViewerExpand: "enter",
			PlanViewerQuit:   "q",
		},
		Debug: DebugConfig{
			Enabled:  false,
			LogLevel: "info", // debug, info, warn, error
			LogFile:  "",     // empty means no file logging
		},
	}
}
