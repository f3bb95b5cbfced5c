package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-reversi/internal/match"
)

func TestPlayConsole(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		absent   []string
		moves    int
	}{
		{
			name:  "one move then exit",
			input: "C4\nEXIT\n",
			contains: []string{
				"Black, type \"EXIT\" to end the game",
				"White, type \"EXIT\" to end the game",
				"\nGame Over!\nThe final score is:\nBlack: 4\tWhite: 1\nBlack wins!",
			},
			absent: []string{"That was not a valid move."},
			moves:  1,
		},
		{
			name:     "lower-case input",
			input:    "c4\nexit\n",
			contains: []string{"Black: 4\tWhite: 1"},
			moves:    1,
		},
		{
			name:     "off-board cell",
			input:    "I9\nEXIT\n",
			contains: []string{"That was not a valid move. Please try again."},
		},
		{
			name:     "garbage",
			input:    "hello\nEXIT\n",
			contains: []string{"That was not a valid move. Please try again."},
		},
		{
			name:     "occupied cell",
			input:    "D4\nEXIT\n",
			contains: []string{"That was not a valid move. Please try again."},
		},
		{
			name:     "end of input",
			input:    "",
			contains: []string{"Black: 2\tWhite: 2\nThe game is a draw."},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := match.New(match.Options{})
			var out bytes.Buffer

			if err := playConsole(strings.NewReader(tc.input), &out, m); err != nil {
				t.Fatalf("playConsole failed: %v", err)
			}

			got := out.String()
			for _, s := range tc.contains {
				if !strings.Contains(got, s) {
					t.Errorf("output missing %q\n%s", s, got)
				}
			}
			for _, s := range tc.absent {
				if strings.Contains(got, s) {
					t.Errorf("output should not contain %q", s)
				}
			}
			if m.Moves() != tc.moves {
				t.Errorf("Moves() = %d, expected %d", m.Moves(), tc.moves)
			}
			if !m.Over() {
				t.Error("match should be over after the loop")
			}
		})
	}
}

func TestPlayConsoleStartsWithBoard(t *testing.T) {
	m := match.New(match.Options{})
	var out bytes.Buffer

	if err := playConsole(strings.NewReader("EXIT\n"), &out, m); err != nil {
		t.Fatalf("playConsole failed: %v", err)
	}

	if !strings.HasPrefix(out.String(), m.Grid().Render()) {
		t.Errorf("output should start with the board:\n%s", out.String())
	}
	if m.Status() != match.StatusAbandoned {
		t.Errorf("Status() = %v, expected abandoned", m.Status())
	}
}
