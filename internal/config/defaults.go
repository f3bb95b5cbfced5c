package config

import (
	_ "embed"
)

//go:embed defaults/reversi.yaml
var defaultYAML []byte

// Default returns the built-in configuration. Kept in sync with
// defaults/reversi.yaml and used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Players: PlayersConfig{
			Black: "Black",
			White: "White",
		},
		Rules: RulesConfig{
			EndOnNoMove: false,
		},
		Display: DisplayConfig{
			ShowHints: true,
			Theme: ThemeConfig{
				Black:    "232",
				White:    "255",
				Empty:    "28",
				Cursor:   "226",
				Hint:     "120",
				LastMove: "208",
			},
		},
		Storage: StorageConfig{
			DBPath: "~/.reversi/games.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
