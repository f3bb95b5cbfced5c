package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/match"
	"github.com/vovakirdan/tui-reversi/internal/reversi"
)

// Store persists finished games and lists them for the results screen.
type Store interface {
	match.ResultSaver
	ResultsSource
}

// Options configures the board screen.
type Options struct {
	Config config.Config
	Store  Store // nil disables saving and the results screen
	Logger *log.Logger
	Width  int
	Height int
}

// Model is the Bubble Tea model for a hot-seat Reversi game.
type Model struct {
	match   *match.Match
	opts    Options
	logger  *log.Logger
	styles  Styles
	keys    KeyMap
	help    help.Model
	results resultsView

	cursor      reversi.Pos
	showHints   bool
	showResults bool
	saved       bool // Whether the result has been saved for the current match
	flash       string
	flashSeq    int
	quitting    bool
	width       int
	height      int
}

// startCursor is the initial cursor position, next to the center discs.
var startCursor = reversi.P(2, 3)

// NewModel creates a new Bubble Tea model and starts a match.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	m := Model{
		opts:      opts,
		logger:    logger,
		styles:    NewStyles(opts.Config.Display.Theme),
		keys:      DefaultKeyMap(),
		help:      h,
		results:   newResultsView(opts.Store, opts.Width, opts.Height),
		showHints: opts.Config.Display.ShowHints,
		width:     opts.Width,
		height:    opts.Height,
	}
	m.newMatch()
	return m
}

func (m *Model) newMatch() {
	m.match = match.New(match.Options{
		BlackName:   m.opts.Config.Players.Black,
		WhiteName:   m.opts.Config.Players.White,
		EndOnNoMove: m.opts.Config.Rules.EndOnNoMove,
		Logger:      m.logger,
	})
	m.cursor = startCursor
	m.saved = false
	m.flash = ""
}

// Match returns the match being played.
func (m Model) Match() *match.Match {
	return m.match
}

// Cursor returns the selected cell.
func (m Model) Cursor() reversi.Pos {
	return m.cursor
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showResults {
			return m.handleResultsKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.results = m.results.resize(msg.Width, msg.Height)
		return m, nil

	case flashExpiredMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input on the board.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case ActionQuit:
		m.match.Quit()
		m.saveResult()
		m.quitting = true
		return m, tea.Quit

	case ActionUp:
		m.moveCursor(-1, 0)
	case ActionDown:
		m.moveCursor(1, 0)
	case ActionLeft:
		m.moveCursor(0, -1)
	case ActionRight:
		m.moveCursor(0, 1)

	case ActionPlace:
		return m.place()

	case ActionHints:
		m.showHints = !m.showHints

	case ActionRestart:
		if m.match.Over() {
			m.newMatch()
		}

	case ActionResults:
		m.results.load()
		m.showResults = true

	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleResultsKey processes keyboard input on the results screen.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case ActionQuit, ActionBack, ActionResults:
		m.showResults = false
		return m, nil
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.update(msg)
	return m, cmd
}

// moveCursor moves the cursor, clamped to the board.
func (m *Model) moveCursor(dRow, dCol int) {
	next := reversi.P(m.cursor.Row+dRow, m.cursor.Col+dCol)
	if next.InBounds() {
		m.cursor = next
	}
}

// place plays the cursor cell for the player to move.
func (m Model) place() (tea.Model, tea.Cmd) {
	if m.match.Over() {
		return m, nil
	}

	mover := m.match.Turn()
	err := m.match.Play(m.cursor)
	switch {
	case errors.Is(err, match.ErrIllegalMove):
		return m.setFlash("That was not a valid move. Please try again.")
	case err != nil:
		m.logger.Error("move failed", "pos", m.cursor, "error", err)
		return m.setFlash(err.Error())
	}

	if m.match.Over() {
		m.saveResult()
		return m, nil
	}
	if passed, ok := m.match.Passed(); ok {
		msg := fmt.Sprintf("%s has no move and passes. %s plays again.",
			m.match.PlayerName(passed), m.match.PlayerName(mover))
		return m.setFlash(msg)
	}
	return m, nil
}

func (m Model) setFlash(text string) (tea.Model, tea.Cmd) {
	m.flashSeq++
	m.flash = text
	return m, flashCmd(m.flashSeq, flashDuration)
}

// saveResult stores the match result once. Empty abandoned games are skipped.
func (m *Model) saveResult() {
	if m.saved || m.opts.Store == nil || !m.match.Over() {
		return
	}
	m.saved = true

	if m.match.Status() == match.StatusAbandoned && m.match.Moves() == 0 {
		return
	}
	if err := m.opts.Store.SaveMatchResult(m.match.Result()); err != nil {
		m.logger.Error("failed to save result", "match", m.match.ID(), "error", err)
		return
	}
	m.logger.Debug("result saved", "match", m.match.ID())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showResults {
		return m.results.view(m.styles) + "\n\n" + m.styles.Help.Render(m.help.View(m.keys))
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("REVERSI"))
	b.WriteString("\n\n")
	b.WriteString(RenderBoard(m.match.Grid(), m.boardView(), m.styles))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Status.Render(m.statusLine()))
	b.WriteString("\n")
	if m.flash != "" {
		b.WriteString(m.styles.Flash.Render(m.flash))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) boardView() boardView {
	v := boardView{cursor: m.cursor}
	if last, ok := m.match.LastMove(); ok {
		v.lastMove = &last
	}
	if m.showHints {
		v.hints = make(map[reversi.Pos]bool)
		for _, p := range m.match.LegalMoves() {
			v.hints[p] = true
		}
	}
	return v
}

// statusLine reports the score and whose turn it is, or the final verdict.
func (m Model) statusLine() string {
	black, white := m.match.Grid().Tally()
	score := fmt.Sprintf("Black: %d  White: %d", black, white)

	switch m.match.Status() {
	case match.StatusFinished:
		return fmt.Sprintf("Game Over! %s  %s  (r: new game)", score, m.match.Summary())
	case match.StatusAbandoned:
		return "Game abandoned. " + score
	}

	turn := m.match.Turn()
	line := fmt.Sprintf("%s (%s) to move  %s  cursor %s", m.match.PlayerName(turn), turn, score, m.cursor)
	if m.showHints {
		if flips := m.match.Flips(m.cursor); len(flips) > 0 {
			line += fmt.Sprintf("  flips %d", len(flips))
		}
	}
	return line
}

// Run starts the Bubble Tea program with a new match.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
