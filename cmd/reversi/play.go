package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-reversi/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on an interactive board",
	Long: `Start a hot-seat game on an interactive board.

Controls:
  Arrows/hjkl/wasd - Move cursor
  Enter/Space      - Place a disc
  T                - Toggle move hints
  R                - New game (after game over)
  Tab              - Results
  ?                - Help
  Q/Ctrl+C         - Quit (abandons a game in progress)

Examples:
  reversi play
  reversi play --log-file /tmp/reversi.log --log-level debug
  reversi play --config ./my-reversi.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the board owns the terminal)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig(cmd)

	// The alt screen owns the terminal, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, cfg)

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: cfg,
		Logger: logger,
		Width:  width,
		Height: height,
	}

	// Open results storage
	store := openStore(cfg, logger)
	if store != nil {
		opts.Store = store
	}

	// Run the game
	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
