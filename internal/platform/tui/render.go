package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/reversi"
)

// Styles holds the lipgloss styles for the board.
type Styles struct {
	Cell     lipgloss.Style
	Black    lipgloss.Style
	White    lipgloss.Style
	Hint     lipgloss.Style
	Cursor   lipgloss.Color
	LastMove lipgloss.Color
	Label    lipgloss.Style
	Title    lipgloss.Style
	Status   lipgloss.Style
	Flash    lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles builds board styles from a config theme.
func NewStyles(theme config.ThemeConfig) Styles {
	cell := lipgloss.NewStyle().Background(lipgloss.Color(theme.Empty))
	return Styles{
		Cell:     cell,
		Black:    cell.Foreground(lipgloss.Color(theme.Black)).Bold(true),
		White:    cell.Foreground(lipgloss.Color(theme.White)).Bold(true),
		Hint:     cell.Foreground(lipgloss.Color(theme.Hint)),
		Cursor:   lipgloss.Color(theme.Cursor),
		LastMove: lipgloss.Color(theme.LastMove),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Flash:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

const (
	discGlyph = "●"
	hintGlyph = "·"
)

// boardView is everything RenderBoard needs besides the grid.
type boardView struct {
	cursor   reversi.Pos
	hints    map[reversi.Pos]bool
	lastMove *reversi.Pos
}

// RenderBoard converts a grid to a styled string for display.
// Rows are labeled A-H and columns 1-8, matching move notation.
func RenderBoard(g *reversi.Grid, v boardView, st Styles) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < reversi.Size; col++ {
		sb.WriteString(st.Label.Render(" " + string(rune('1'+col)) + " "))
	}

	for row := 0; row < reversi.Size; row++ {
		sb.WriteRune('\n')
		sb.WriteString(st.Label.Render(" " + string(rune('A'+row)) + " "))

		for col := 0; col < reversi.Size; col++ {
			p := reversi.P(row, col)
			sb.WriteString(renderCell(g.StateAt(p), p, v, st))
		}
	}
	return sb.String()
}

func renderCell(s reversi.State, p reversi.Pos, v boardView, st Styles) string {
	var style lipgloss.Style
	glyph := " "

	switch s {
	case reversi.BlackDisc:
		style, glyph = st.Black, discGlyph
	case reversi.WhiteDisc:
		style, glyph = st.White, discGlyph
	default:
		style = st.Cell
		if v.hints[p] {
			style, glyph = st.Hint, hintGlyph
		}
	}

	switch {
	case p == v.cursor:
		style = style.Background(st.Cursor)
	case v.lastMove != nil && p == *v.lastMove:
		style = style.Background(st.LastMove)
	}

	return style.Render(" " + glyph + " ")
}

// centerText pads text on the left so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
