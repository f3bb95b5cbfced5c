// Package config provides YAML-based configuration loading for the
// Reversi CLI and terminal UI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrInvalid is returned by Validate for unusable configuration values.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains all configuration for the game.
type Config struct {
	Players PlayersConfig `yaml:"players"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// PlayersConfig names the two seats.
type PlayersConfig struct {
	Black string `yaml:"black"`
	White string `yaml:"white"`
}

// RulesConfig selects rule variants.
type RulesConfig struct {
	EndOnNoMove bool `yaml:"end_on_no_move"`
}

// DisplayConfig controls the terminal UI.
type DisplayConfig struct {
	ShowHints bool        `yaml:"show_hints"`
	Theme     ThemeConfig `yaml:"theme"`
}

// ThemeConfig holds lipgloss color strings (ANSI 256 codes or hex).
type ThemeConfig struct {
	Black    string `yaml:"black"`
	White    string `yaml:"white"`
	Empty    string `yaml:"empty"`
	Cursor   string `yaml:"cursor"`
	Hint     string `yaml:"hint"`
	LastMove string `yaml:"last_move"`
}

// StorageConfig locates the results database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return level, nil
}

// Validate checks the configuration for unusable values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Players.Black) == "" || strings.TrimSpace(c.Players.White) == "" {
		return fmt.Errorf("%w: player names must not be empty", ErrInvalid)
	}
	if c.Players.Black == c.Players.White {
		return fmt.Errorf("%w: player names must differ", ErrInvalid)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("%w: storage.db_path must not be empty", ErrInvalid)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}
