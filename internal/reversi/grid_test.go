package reversi

import (
	"errors"
	"testing"
)

func TestNewGridStartingPosition(t *testing.T) {
	g := NewGrid()

	tests := []struct {
		pos      Pos
		expected State
	}{
		{P(3, 3), WhiteDisc},
		{P(3, 4), BlackDisc},
		{P(4, 3), BlackDisc},
		{P(4, 4), WhiteDisc},
		{P(0, 0), Empty},
		{P(2, 3), Empty},
		{P(7, 7), Empty},
	}

	for _, tc := range tests {
		if got := g.StateAt(tc.pos); got != tc.expected {
			t.Errorf("StateAt(%v) = %v, expected %v", tc.pos, got, tc.expected)
		}
	}

	black, white := g.Tally()
	if black != 2 || white != 2 {
		t.Errorf("Tally() = (%d, %d), expected (2, 2)", black, white)
	}
	if g.Empties() != 60 {
		t.Errorf("Empties() = %d, expected 60", g.Empties())
	}
}

func TestCellAtOutOfRange(t *testing.T) {
	g := NewGrid()

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row too large", 8, 0},
		{"col too large", 0, 8},
		{"both out", 9, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := g.CellAt(tc.row, tc.col)
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("CellAt(%d, %d) error = %v, expected ErrOutOfRange", tc.row, tc.col, err)
			}
			if c.Valid() {
				t.Error("CellAt should return an invalid handle on error")
			}
		})
	}
}

func TestCellAtCorners(t *testing.T) {
	g := NewGrid()

	for _, p := range []Pos{P(0, 0), P(0, 7), P(7, 0), P(7, 7), P(3, 4)} {
		c, err := g.CellAt(p.Row, p.Col)
		if err != nil {
			t.Fatalf("CellAt(%d, %d) failed: %v", p.Row, p.Col, err)
		}
		if c.Pos() != p || c.Row() != p.Row || c.Col() != p.Col {
			t.Errorf("CellAt(%d, %d) returned cell at %v", p.Row, p.Col, c.Pos())
		}
		if c.State() != g.StateAt(p) {
			t.Errorf("cell %v state = %v, grid says %v", p, c.State(), g.StateAt(p))
		}
	}
}

func TestNeighborCounts(t *testing.T) {
	g := NewGrid()

	count := func(row, col int) int {
		c, err := g.CellAt(row, col)
		if err != nil {
			t.Fatalf("CellAt(%d, %d) failed: %v", row, col, err)
		}
		n := 0
		for _, d := range Directions {
			if _, ok := c.Neighbor(d); ok {
				n++
			}
		}
		return n
	}

	tests := []struct {
		name     string
		row, col int
		expected int
	}{
		{"top-left corner", 0, 0, 3},
		{"top-right corner", 0, 7, 3},
		{"bottom-left corner", 7, 0, 3},
		{"bottom-right corner", 7, 7, 3},
		{"top edge", 0, 3, 5},
		{"left edge", 4, 0, 5},
		{"interior", 3, 3, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := count(tc.row, tc.col); got != tc.expected {
				t.Errorf("cell (%d, %d) has %d neighbors, expected %d", tc.row, tc.col, got, tc.expected)
			}
		})
	}
}

func TestNeighborDirections(t *testing.T) {
	g := NewGrid()
	c, _ := g.CellAt(3, 3)

	expected := map[Direction]Pos{
		East:      P(3, 4),
		NorthEast: P(2, 4),
		North:     P(2, 3),
		NorthWest: P(2, 2),
		West:      P(3, 2),
		SouthWest: P(4, 2),
		South:     P(4, 3),
		SouthEast: P(4, 4),
	}

	for d, want := range expected {
		n, ok := c.Neighbor(d)
		if !ok {
			t.Errorf("Neighbor(%v) missing", d)
			continue
		}
		if n.Pos() != want {
			t.Errorf("Neighbor(%v) = %v, expected %v", d, n.Pos(), want)
		}
	}
}

func TestNeighborSymmetry(t *testing.T) {
	g := NewGrid()

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			c, _ := g.CellAt(row, col)
			for _, d := range Directions {
				n, ok := c.Neighbor(d)
				if !ok {
					continue
				}
				back, ok := n.Neighbor(d.Reverse())
				if !ok || back.Pos() != c.Pos() {
					t.Errorf("neighbor of %v in %v is %v, but its %v neighbor is not back", c.Pos(), d, n.Pos(), d.Reverse())
				}
			}
		}
	}
}

func TestRender(t *testing.T) {
	g := NewGrid()

	expected := "   1 2 3 4 5 6 7 8\n" +
		"\nA  _ _ _ _ _ _ _ _" +
		"\nB  _ _ _ _ _ _ _ _" +
		"\nC  _ _ _ _ _ _ _ _" +
		"\nD  _ _ _ W B _ _ _" +
		"\nE  _ _ _ B W _ _ _" +
		"\nF  _ _ _ _ _ _ _ _" +
		"\nG  _ _ _ _ _ _ _ _" +
		"\nH  _ _ _ _ _ _ _ _" +
		"\n"

	if got := g.Render(); got != expected {
		t.Errorf("Render() mismatch:\ngot:\n%q\nexpected:\n%q", got, expected)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid()
	c := g.Clone()

	if !g.Equal(c) {
		t.Fatal("clone should equal original")
	}

	e := NewEngine(c)
	if ok, err := e.TryPlaceAt(2, 3, Black); err != nil || !ok {
		t.Fatalf("TryPlaceAt on clone = (%v, %v), expected success", ok, err)
	}

	if g.Equal(c) {
		t.Error("placing on clone should not change original")
	}
	black, white := g.Tally()
	if black != 2 || white != 2 {
		t.Errorf("original Tally() = (%d, %d), expected (2, 2)", black, white)
	}

	// Adjacency must point into the clone, not the original.
	cell, _ := c.CellAt(3, 3)
	if cell.State() != BlackDisc {
		t.Errorf("clone cell (3,3) = %v, expected Black", cell.State())
	}
}

func TestLegalMovesOpening(t *testing.T) {
	g := NewGrid()

	tests := []struct {
		color    Color
		expected []Pos
	}{
		{Black, []Pos{P(2, 3), P(3, 2), P(4, 5), P(5, 4)}},
		{White, []Pos{P(2, 4), P(3, 5), P(4, 2), P(5, 3)}},
	}

	for _, tc := range tests {
		t.Run(tc.color.String(), func(t *testing.T) {
			moves := g.LegalMoves(tc.color)
			if len(moves) != len(tc.expected) {
				t.Fatalf("LegalMoves(%v) = %v, expected %v", tc.color, moves, tc.expected)
			}
			for i := range moves {
				if moves[i] != tc.expected[i] {
					t.Errorf("LegalMoves(%v)[%d] = %v, expected %v", tc.color, i, moves[i], tc.expected[i])
				}
			}
			if !g.HasAnyLegalMove(tc.color) {
				t.Errorf("HasAnyLegalMove(%v) = false on opening board", tc.color)
			}
		})
	}
}

func TestHasAnyLegalMoveNone(t *testing.T) {
	g := NewEmptyGrid()
	if g.HasAnyLegalMove(Black) || g.HasAnyLegalMove(White) {
		t.Error("empty board should have no legal moves")
	}

	// Only one color on the board: nobody can capture.
	g.Set(P(3, 3), BlackDisc)
	g.Set(P(3, 4), BlackDisc)
	if g.HasAnyLegalMove(Black) || g.HasAnyLegalMove(White) {
		t.Error("single-color board should have no legal moves")
	}

	if NewGrid().HasAnyLegalMove(Color(0)) {
		t.Error("invalid color should never have a legal move")
	}
}

func TestStateAndColor(t *testing.T) {
	if Black.Opponent() != White || White.Opponent() != Black {
		t.Error("Opponent() should swap colors")
	}
	if Black.State() != BlackDisc || White.State() != WhiteDisc {
		t.Error("State() should map colors to disc states")
	}
	if Color(0).Valid() || Color(0).State() != Empty {
		t.Error("zero color should be invalid and map to Empty")
	}

	runes := map[State]rune{Empty: '_', BlackDisc: 'B', WhiteDisc: 'W'}
	for s, r := range runes {
		if s.Rune() != r {
			t.Errorf("%v.Rune() = %q, expected %q", s, s.Rune(), r)
		}
	}

	if c, ok := ColorOf(WhiteDisc); !ok || c != White {
		t.Errorf("ColorOf(WhiteDisc) = (%v, %v)", c, ok)
	}
	if _, ok := ColorOf(Empty); ok {
		t.Error("ColorOf(Empty) should report no color")
	}
}
