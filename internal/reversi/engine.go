package reversi

import "fmt"

// maxRun is the longest possible run of enemy discs between a placed disc
// and its terminating disc.
const maxRun = Size - 2

// run walks from idx in direction d and appends the indexes of the enemy
// discs it passes to buf. The run is only kept when it is non-empty and
// ends on a disc of the mover's color; off-board or empty terminations
// truncate buf back to its original length.
func (g *Grid) run(idx int, d Direction, color Color, buf []int) []int {
	start := len(buf)
	own := color.State()
	enemy := color.Opponent().State()

	for n := g.neighbor(idx, d); n != noNeighbor; n = g.neighbor(n, d) {
		switch g.cells[n] {
		case enemy:
			buf = append(buf, n)
		case own:
			return buf
		default:
			return buf[:start]
		}
	}
	return buf[:start]
}

// legalAt reports whether color may place on cell idx.
func (g *Grid) legalAt(idx int, color Color) bool {
	if g.cells[idx] != Empty {
		return false
	}
	var scratch [maxRun]int
	for _, d := range Directions {
		if len(g.run(idx, d, color, scratch[:0])) > 0 {
			return true
		}
	}
	return false
}

// place resolves every direction from idx, flips the confirmed runs and
// occupies idx. Returns the number of flipped discs; zero means the move
// was illegal and nothing changed.
func (g *Grid) place(idx int, color Color) int {
	if !color.Valid() || g.cells[idx] != Empty {
		return 0
	}

	own := color.State()
	flipped := 0
	var scratch [maxRun]int
	for _, d := range Directions {
		line := g.run(idx, d, color, scratch[:0])
		for _, n := range line {
			g.cells[n] = own
		}
		flipped += len(line)
	}

	if flipped > 0 {
		g.cells[idx] = own
	}
	return flipped
}

// Engine applies the placement rules to a grid. It holds no turn state;
// the moving color is passed into every call.
type Engine struct {
	grid *Grid
}

// NewEngine creates an engine operating on g.
func NewEngine(g *Grid) *Engine {
	return &Engine{grid: g}
}

// Grid returns the board the engine mutates.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// owns reports whether the cell handle belongs to this engine's grid.
func (e *Engine) owns(c Cell) bool {
	return c.grid != nil && c.grid == e.grid
}

// IsLegal reports whether color may place a disc on cell. A move is legal
// when the cell is empty and at least one direction starts with a
// contiguous run of opponent discs closed by a disc of color.
// IsLegal never mutates the board.
func (e *Engine) IsLegal(c Cell, color Color) bool {
	if !e.owns(c) || !color.Valid() {
		return false
	}
	return e.grid.legalAt(c.idx, color)
}

// TryPlace places a disc of color on cell and flips every sandwiched run.
// Each direction is resolved to its terminating disc before any of its
// discs flip. Returns false, leaving the board untouched, when the cell is
// occupied or no direction captures.
func (e *Engine) TryPlace(c Cell, color Color) bool {
	if !e.owns(c) {
		return false
	}
	return e.grid.place(c.idx, color) > 0
}

// TryPlaceAt is TryPlace addressed by coordinates. Coordinates outside the
// board fail with ErrOutOfRange; an illegal move is (false, nil).
func (e *Engine) TryPlaceAt(row, col int, color Color) (bool, error) {
	c, err := e.grid.CellAt(row, col)
	if err != nil {
		return false, err
	}
	return e.TryPlace(c, color), nil
}

// PlaceAt places a disc at p and returns the positions that flipped.
// Returns an empty slice and a nil error for an illegal move.
func (e *Engine) PlaceAt(p Pos, color Color) ([]Pos, error) {
	if !p.InBounds() {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRange, p)
	}
	flips := e.grid.flips(p.index(), color)
	if len(flips) == 0 {
		return nil, nil
	}
	e.grid.place(p.index(), color)
	return flips, nil
}

// Flips returns, without mutating the board, the discs a placement of
// color on cell would flip, ordered by direction and then outward from the
// cell. An empty result means the move is illegal.
func (e *Engine) Flips(c Cell, color Color) []Pos {
	if !e.owns(c) {
		return nil
	}
	return e.grid.flips(c.idx, color)
}

// flips collects the positions captured by a placement at idx.
func (g *Grid) flips(idx int, color Color) []Pos {
	if !color.Valid() || g.cells[idx] != Empty {
		return nil
	}
	var out []Pos
	var scratch [maxRun]int
	for _, d := range Directions {
		for _, n := range g.run(idx, d, color, scratch[:0]) {
			out = append(out, posOf(n))
		}
	}
	return out
}
