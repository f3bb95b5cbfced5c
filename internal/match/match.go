// Package match drives a hot-seat game of Reversi: whose turn it is,
// passing, game over and the final result. The rules themselves live in
// package reversi; a Match only feeds it the color to move.
package match

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-reversi/internal/reversi"
)

var (
	// ErrGameOver is returned when a move is attempted after the match ended.
	ErrGameOver = errors.New("match: game is over")

	// ErrIllegalMove is returned when the placement captures nothing or
	// targets an occupied cell.
	ErrIllegalMove = errors.New("match: illegal move")
)

// Status is the lifecycle state of a match.
type Status int

const (
	StatusInProgress Status = iota
	StatusFinished
	StatusAbandoned
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusFinished:
		return "finished"
	case StatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// End reasons stored with results.
const (
	ReasonCompleted = "completed"
	ReasonAbandoned = "abandoned"
)

// Options configures a new match.
type Options struct {
	BlackName string
	WhiteName string

	// EndOnNoMove ends the game as soon as the player to move has no legal
	// move, instead of passing the turn back.
	EndOnNoMove bool

	Logger *log.Logger

	// Now is the clock used for timing. Defaults to time.Now.
	Now func() time.Time
}

// Match is one game between two local players. Not safe for concurrent use.
type Match struct {
	id     string
	opts   Options
	grid   *reversi.Grid
	engine *reversi.Engine
	logger *log.Logger

	turn      reversi.Color
	status    Status
	moves     int
	passes    int
	lastMove  *reversi.Pos
	lastFlips []reversi.Pos
	passed    reversi.Color // color that passed after the last move, if any

	startedAt time.Time
	endedAt   time.Time
}

// New creates a match on a fresh board with Black to move.
func New(opts Options) *Match {
	if opts.BlackName == "" {
		opts.BlackName = "Black"
	}
	if opts.WhiteName == "" {
		opts.WhiteName = "White"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	grid := reversi.NewGrid()
	m := &Match{
		id:        uuid.NewString(),
		opts:      opts,
		grid:      grid,
		engine:    reversi.NewEngine(grid),
		logger:    logger,
		turn:      reversi.Black,
		status:    StatusInProgress,
		startedAt: opts.Now(),
	}

	m.logger.Debug("match started", "match", m.id, "black", opts.BlackName, "white", opts.WhiteName)
	return m
}

// ID returns the unique match identifier.
func (m *Match) ID() string {
	return m.id
}

// Grid returns the board. Callers must not mutate it directly.
func (m *Match) Grid() *reversi.Grid {
	return m.grid
}

// Turn returns the color to move.
func (m *Match) Turn() reversi.Color {
	return m.turn
}

// Status returns the lifecycle state.
func (m *Match) Status() Status {
	return m.status
}

// Over reports whether the match has ended for any reason.
func (m *Match) Over() bool {
	return m.status != StatusInProgress
}

// Moves returns the number of discs placed.
func (m *Match) Moves() int {
	return m.moves
}

// Passes returns the number of forced passes.
func (m *Match) Passes() int {
	return m.passes
}

// PlayerName returns the configured name for color.
func (m *Match) PlayerName(c reversi.Color) string {
	if c == reversi.White {
		return m.opts.WhiteName
	}
	return m.opts.BlackName
}

// LastMove returns the most recent placement.
func (m *Match) LastMove() (reversi.Pos, bool) {
	if m.lastMove == nil {
		return reversi.Pos{}, false
	}
	return *m.lastMove, true
}

// LastFlips returns the discs flipped by the most recent placement.
func (m *Match) LastFlips() []reversi.Pos {
	return m.lastFlips
}

// Passed returns the color that had to pass after the last move.
func (m *Match) Passed() (reversi.Color, bool) {
	return m.passed, m.passed.Valid()
}

// LegalMoves returns the placements available to the player to move.
func (m *Match) LegalMoves() []reversi.Pos {
	if m.Over() {
		return nil
	}
	return m.grid.LegalMoves(m.turn)
}

// Flips previews the discs the player to move would flip at p.
func (m *Match) Flips(p reversi.Pos) []reversi.Pos {
	if m.Over() {
		return nil
	}
	c, err := m.grid.CellAt(p.Row, p.Col)
	if err != nil {
		return nil
	}
	return m.engine.Flips(c, m.turn)
}

// Play places a disc for the player to move at p and advances the turn.
func (m *Match) Play(p reversi.Pos) error {
	if m.Over() {
		return ErrGameOver
	}

	flips, err := m.engine.PlaceAt(p, m.turn)
	if err != nil {
		return err
	}
	if len(flips) == 0 {
		m.logger.Debug("illegal move", "match", m.id, "color", m.turn, "pos", p)
		return fmt.Errorf("%w: %s at %v", ErrIllegalMove, m.turn, p)
	}

	m.moves++
	m.lastMove = &p
	m.lastFlips = flips
	m.passed = 0
	m.logger.Debug("move played", "match", m.id, "color", m.turn, "pos", p, "flips", len(flips))

	m.advance()
	return nil
}

// advance hands the turn to the opponent, applying the pass rule.
func (m *Match) advance() {
	next := m.turn.Opponent()
	if m.grid.HasAnyLegalMove(next) {
		m.turn = next
		return
	}

	if m.opts.EndOnNoMove {
		m.turn = next
		m.finish(StatusFinished)
		return
	}

	if m.grid.HasAnyLegalMove(m.turn) {
		m.passes++
		m.passed = next
		m.logger.Info("player passes", "match", m.id, "color", next)
		return
	}

	m.finish(StatusFinished)
}

// Quit abandons an in-progress match. It has no effect once the match ended.
func (m *Match) Quit() {
	if m.Over() {
		return
	}
	m.finish(StatusAbandoned)
}

func (m *Match) finish(s Status) {
	m.status = s
	m.endedAt = m.opts.Now()

	black, white := m.grid.Tally()
	m.logger.Info("match ended",
		"match", m.id,
		"status", s,
		"black", black,
		"white", white,
		"moves", m.moves,
	)
}

// Winner returns the color with more discs. The second result is false on
// a draw.
func (m *Match) Winner() (reversi.Color, bool) {
	black, white := m.grid.Tally()
	switch {
	case black > white:
		return reversi.Black, true
	case white > black:
		return reversi.White, true
	default:
		return 0, false
	}
}

// Summary returns the end-of-game verdict line.
func (m *Match) Summary() string {
	winner, ok := m.Winner()
	if !ok {
		return "The game is a draw."
	}
	return fmt.Sprintf("%s wins!", m.PlayerName(winner))
}
