package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/match"
	"github.com/vovakirdan/tui-reversi/internal/reversi"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play by typing moves",
	Long: `Play a hot-seat game by typing one move per line.

A move is a row letter followed by a column digit, for example "C4".
Type EXIT to end the game early.

Examples:
  reversi console
  printf 'C4\nEXIT\n' | reversi console`,
	Args: cobra.NoArgs,
	Run:  runConsole,
}

func runConsole(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig(cmd)
	logger := newLogger(os.Stderr, cfg)

	m := match.New(match.Options{
		BlackName:   cfg.Players.Black,
		WhiteName:   cfg.Players.White,
		EndOnNoMove: cfg.Rules.EndOnNoMove,
		Logger:      logger,
	})

	if err := playConsole(os.Stdin, os.Stdout, m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if m.Moves() == 0 {
		return
	}
	store := openStore(cfg, logger)
	if store == nil {
		return
	}
	defer store.Close()
	if err := store.SaveMatchResult(m.Result()); err != nil {
		logger.Error("failed to save result", "match", m.ID(), "error", err)
	}
}

// exitCommand ends the game from the prompt.
const exitCommand = "EXIT"

// playConsole runs the text loop until the game ends, the player types
// EXIT, or input runs out. It prints the final score block.
func playConsole(in io.Reader, out io.Writer, m *match.Match) error {
	scanner := bufio.NewScanner(in)
	invalid := false

	for !m.Over() {
		fmt.Fprintln(out, m.Grid().Render())
		if invalid {
			fmt.Fprintln(out, "That was not a valid move. Please try again.")
		} else if passed, ok := m.Passed(); ok {
			fmt.Fprintf(out, "%s has no valid move and must pass.\n", m.PlayerName(passed))
		}
		fmt.Fprintf(out, "%s, type \"EXIT\" to end the game, or enter the cell in which to place your next piece (for example, \"I9\"):\n",
			m.Turn())

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			m.Quit()
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, exitCommand) {
			m.Quit()
			break
		}

		invalid = false
		pos, err := reversi.ParsePos(input)
		if err == nil {
			err = m.Play(pos)
		}
		switch {
		case err == nil:
		case errors.Is(err, reversi.ErrBadCoordinate),
			errors.Is(err, reversi.ErrOutOfRange),
			errors.Is(err, match.ErrIllegalMove):
			invalid = true
		default:
			return err
		}
	}

	black, white := m.Grid().Tally()
	fmt.Fprintln(out, m.Grid().Render()+
		"\nGame Over!\n"+
		"The final score is:\n"+
		fmt.Sprintf("Black: %d\tWhite: %d\n", black, white)+
		m.Summary())
	return nil
}
