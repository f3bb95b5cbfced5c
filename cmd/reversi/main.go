// reversi is a two-player Reversi (Othello) game for the terminal.
//
// Usage:
//
//	reversi play             - Play on a Bubble Tea board
//	reversi console          - Play by typing moves such as "C4"
//	reversi results          - Show recent games and statistics
//	reversi config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.reversi/config.yaml, ./configs/reversi.yaml)
//	--db <path>         - Set database path (default: ~/.reversi/games.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reversi",
	Short: "Reversi - Two-player disc flipping in your terminal",
	Long: `Reversi is the classic 8x8 disc-flipping game for two players
sharing one keyboard.

Available commands:
  play     - Interactive board with cursor and move hints
  console  - Line-based play, one move per line
  results  - View finished games and statistics
  config   - Print the effective configuration

Examples:
  reversi play
  reversi console
  reversi results --player Ada
  reversi play --config ./my-reversi.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mustLoadConfig loads the config or exits.
func mustLoadConfig(cmd *cobra.Command) config.Config {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "reversi",
		Level:           level,
	})
}

// openStore opens the results database, logging a warning on failure.
// The game still works without storage.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}
