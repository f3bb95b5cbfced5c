package match

import (
	"time"

	"github.com/vovakirdan/tui-reversi/internal/reversi"
)

// Result is the outcome of a match, ready to persist.
type Result struct {
	MatchID    string
	BlackName  string
	WhiteName  string
	BlackCount int
	WhiteCount int
	Winner     reversi.Color // zero on a draw or an abandoned match
	EndReason  string
	Moves      int
	Passes     int
	StartedAt  time.Time
	Duration   time.Duration
}

// Draw reports whether a completed match ended level.
func (r Result) Draw() bool {
	return r.EndReason == ReasonCompleted && !r.Winner.Valid()
}

// ResultSaver persists finished matches.
// Implemented by storage.Store; the TUI and console depend only on this.
type ResultSaver interface {
	SaveMatchResult(r Result) error
}

// Result returns the current outcome. Call after the match is over; for an
// in-progress match the reason is empty and the duration runs to now.
func (m *Match) Result() Result {
	black, white := m.grid.Tally()

	end := m.endedAt
	if !m.Over() {
		end = m.opts.Now()
	}

	r := Result{
		MatchID:    m.id,
		BlackName:  m.opts.BlackName,
		WhiteName:  m.opts.WhiteName,
		BlackCount: black,
		WhiteCount: white,
		Moves:      m.moves,
		Passes:     m.passes,
		StartedAt:  m.startedAt,
		Duration:   end.Sub(m.startedAt),
	}

	switch m.status {
	case StatusFinished:
		r.EndReason = ReasonCompleted
		if winner, ok := m.Winner(); ok {
			r.Winner = winner
		}
	case StatusAbandoned:
		r.EndReason = ReasonAbandoned
	}

	return r
}
