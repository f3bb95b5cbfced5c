// Package tui provides the Bubble Tea front end for Reversi.
// It handles the terminal UI loop, input mapping, and the results screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long a status message stays on screen.
const flashDuration = 2 * time.Second

// flashExpiredMsg is sent when a status message should be cleared.
// seq identifies the message so a newer flash is not cleared early.
type flashExpiredMsg struct {
	seq int
}

// flashCmd returns a Bubble Tea command that expires flash seq after d.
func flashCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}
