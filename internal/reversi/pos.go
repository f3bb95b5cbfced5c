package reversi

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the board dimension. The board is always Size x Size.
const Size = 8

// CellCount is the number of cells on the board.
const CellCount = Size * Size

var (
	// ErrOutOfRange is returned for coordinates outside the board.
	ErrOutOfRange = errors.New("reversi: coordinate out of range")

	// ErrBadCoordinate is returned when a textual coordinate cannot be parsed.
	ErrBadCoordinate = errors.New("reversi: malformed coordinate")
)

// Pos is a board position. Row and Col are zero-based.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// InBounds reports whether the position lies on the board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Step returns the position one step away in direction d.
func (p Pos) Step(d Direction) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// index converts an in-bounds position to a flat cell index.
func (p Pos) index() int {
	return p.Row*Size + p.Col
}

// posOf converts a flat cell index back to a position.
func posOf(idx int) Pos {
	return Pos{Row: idx / Size, Col: idx % Size}
}

// String renders the position in input notation: row letter then
// one-based column digit, e.g. (2,3) is "C4".
func (p Pos) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+p.Row, p.Col+1)
}

// ParsePos parses input notation such as "c4" or "C4".
// The input must be exactly a row letter followed by a column digit.
func ParsePos(s string) (Pos, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Pos{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	digit := s[1]
	if letter < 'A' || letter > 'Z' || digit < '0' || digit > '9' {
		return Pos{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}

	p := Pos{Row: int(letter - 'A'), Col: int(digit-'0') - 1}
	if !p.InBounds() {
		return Pos{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return p, nil
}
