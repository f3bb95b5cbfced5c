// Package reversi implements the rules of Reversi (Othello) on a fixed 8x8
// board: the grid with its precomputed adjacency, legal-move detection and
// the directional flip cascade.
//
// The package knows nothing about whose turn it is. Callers pass the color
// of the moving player into every query, and turn order lives in the driver.
package reversi

// State is the content of a single cell.
type State uint8

const (
	Empty State = iota
	BlackDisc
	WhiteDisc
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case BlackDisc:
		return "Black"
	case WhiteDisc:
		return "White"
	default:
		return "Unknown"
	}
}

// Rune returns the board glyph for the state.
func (s State) Rune() rune {
	switch s {
	case BlackDisc:
		return 'B'
	case WhiteDisc:
		return 'W'
	default:
		return '_'
	}
}

// Color identifies a player. The zero value is not a valid color.
type Color uint8

const (
	Black Color = Color(BlackDisc)
	White Color = Color(WhiteDisc)
)

// Valid reports whether c is Black or White.
func (c Color) Valid() bool {
	return c == Black || c == White
}

// Opponent returns the other player's color.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return 0
	}
}

// State returns the cell state a disc of this color produces.
func (c Color) State() State {
	if !c.Valid() {
		return Empty
	}
	return State(c)
}

// String returns "Black" or "White".
func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "None"
	}
}

// ColorOf returns the color of the disc in state s, if any.
func ColorOf(s State) (Color, bool) {
	switch s {
	case BlackDisc:
		return Black, true
	case WhiteDisc:
		return White, true
	default:
		return 0, false
	}
}
