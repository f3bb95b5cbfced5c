package reversi

import (
	"fmt"
	"strings"
)

// noNeighbor marks an absent neighbor slot at the board edge.
const noNeighbor = -1

// Grid is the 8x8 board. Cells are stored in row-major order
// (index = row*Size + col) and the neighbor table is built once at
// construction and never changes.
//
// A Grid is not safe for concurrent use. Read-only queries may run
// concurrently with each other but not with a placement.
type Grid struct {
	cells     [CellCount]State
	neighbors [CellCount][DirectionCount]int8
}

// NewGrid creates a board in the standard starting position:
// White on (3,3) and (4,4), Black on (3,4) and (4,3).
func NewGrid() *Grid {
	g := &Grid{}
	g.linkNeighbors()

	g.cells[P(3, 3).index()] = WhiteDisc
	g.cells[P(3, 4).index()] = BlackDisc
	g.cells[P(4, 3).index()] = BlackDisc
	g.cells[P(4, 4).index()] = WhiteDisc

	return g
}

// NewEmptyGrid creates a board with no discs. Used to set up positions
// directly via Set.
func NewEmptyGrid() *Grid {
	g := &Grid{}
	g.linkNeighbors()
	return g
}

// linkNeighbors computes the adjacency table. Steps that leave the board
// leave the slot absent; there is no wraparound.
func (g *Grid) linkNeighbors() {
	for idx := 0; idx < CellCount; idx++ {
		p := posOf(idx)
		for _, d := range Directions {
			n := p.Step(d)
			if n.InBounds() {
				g.neighbors[idx][d] = int8(n.index())
			} else {
				g.neighbors[idx][d] = noNeighbor
			}
		}
	}
}

// neighbor returns the index of the cell next to idx in direction d,
// or noNeighbor.
func (g *Grid) neighbor(idx int, d Direction) int {
	return int(g.neighbors[idx][d])
}

// CellAt returns a handle to the cell at (row, col).
// Fails with ErrOutOfRange when either coordinate is outside [0, Size).
func (g *Grid) CellAt(row, col int) (Cell, error) {
	p := Pos{Row: row, Col: col}
	if !p.InBounds() {
		return Cell{}, fmt.Errorf("%w: row=%d col=%d", ErrOutOfRange, row, col)
	}
	return Cell{grid: g, idx: p.index()}, nil
}

// StateAt returns the state at p, or Empty when p is off the board.
func (g *Grid) StateAt(p Pos) State {
	if !p.InBounds() {
		return Empty
	}
	return g.cells[p.index()]
}

// Set places a state directly, bypassing the rules. Intended for
// building positions in tests and puzzles, never for play.
func (g *Grid) Set(p Pos, s State) {
	if p.InBounds() {
		g.cells[p.index()] = s
	}
}

// HasAnyLegalMove reports whether color has at least one legal placement.
func (g *Grid) HasAnyLegalMove(color Color) bool {
	if !color.Valid() {
		return false
	}
	for idx := 0; idx < CellCount; idx++ {
		if g.legalAt(idx, color) {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal placement for color in row-major order.
func (g *Grid) LegalMoves(color Color) []Pos {
	if !color.Valid() {
		return nil
	}
	var moves []Pos
	for idx := 0; idx < CellCount; idx++ {
		if g.legalAt(idx, color) {
			moves = append(moves, posOf(idx))
		}
	}
	return moves
}

// Tally counts the discs of each color.
func (g *Grid) Tally() (black, white int) {
	for _, s := range g.cells {
		switch s {
		case BlackDisc:
			black++
		case WhiteDisc:
			white++
		}
	}
	return black, white
}

// Empties returns the number of empty cells.
func (g *Grid) Empties() int {
	black, white := g.Tally()
	return CellCount - black - white
}

// Clone returns an independent copy of the board.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Equal reports whether two boards hold the same discs.
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}

// Render returns a text snapshot: a header of column numbers 1-8, then one
// line per row labeled A-H with '_', 'B' or 'W' for each cell.
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow(24 * (Size + 2))

	sb.WriteString("   1 2 3 4 5 6 7 8\n")
	for row := 0; row < Size; row++ {
		sb.WriteByte('\n')
		sb.WriteByte(byte('A' + row))
		sb.WriteByte(' ')
		for col := 0; col < Size; col++ {
			sb.WriteByte(' ')
			sb.WriteRune(g.cells[P(row, col).index()].Rune())
		}
	}
	sb.WriteByte('\n')

	return sb.String()
}

// Cell is a read-only handle to one board cell. State changes only
// happen through Engine.
type Cell struct {
	grid *Grid
	idx  int
}

// Valid reports whether the handle refers to a cell.
func (c Cell) Valid() bool {
	return c.grid != nil
}

// Pos returns the cell position.
func (c Cell) Pos() Pos {
	return posOf(c.idx)
}

// Row returns the zero-based row.
func (c Cell) Row() int {
	return c.idx / Size
}

// Col returns the zero-based column.
func (c Cell) Col() int {
	return c.idx % Size
}

// State returns the current cell contents.
func (c Cell) State() State {
	if c.grid == nil {
		return Empty
	}
	return c.grid.cells[c.idx]
}

// IsEmpty reports whether the cell holds no disc.
func (c Cell) IsEmpty() bool {
	return c.State() == Empty
}

// Neighbor returns the adjacent cell in direction d. The second result is
// false at the board edge.
func (c Cell) Neighbor(d Direction) (Cell, bool) {
	if c.grid == nil {
		return Cell{}, false
	}
	n := c.grid.neighbor(c.idx, d)
	if n == noNeighbor {
		return Cell{}, false
	}
	return Cell{grid: c.grid, idx: n}, true
}
