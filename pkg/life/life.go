// Package life implements Conway's Game of Life over a finite grid with
// closed boundaries: cells beyond the edge do not exist and never count as
// neighbors, so patterns die at the border instead of wrapping around.
package life

import "github.com/pkg/errors"

// CellState is the state of a single cell.
type CellState uint8

const (
	// Dead is the zero value; a fresh grid is entirely Dead.
	Dead CellState = iota
	// Alive marks a living cell.
	Alive
)

// String returns a short human-readable name for debug output.
func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Grid holds the cell states of one generation. Dimensions are fixed at
// construction. A Grid is owned by a single driver and is not safe for
// concurrent use.
type Grid struct {
	w, h int
	cur  []CellState
	nxt  []CellState
}

// New returns a Grid with every cell Dead. It fails with
// ErrInvalidDimensions unless both dimensions are positive.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", w, h)
	}
	cells := make([]CellState, w*h)
	return &Grid{w: w, h: h, cur: cells, nxt: make([]CellState, len(cells))}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the current generation's states in row-major order. The
// slice is invalidated by the next call to NextGeneration; callers that
// need a stable view should copy it.
func (g *Grid) Cells() []CellState { return g.cur }

// Get returns the state of cell (x, y), or ErrOutOfBounds.
func (g *Grid) Get(x, y int) (CellState, error) {
	if !g.inBounds(x, y) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "get (%d,%d) on %dx%d grid", x, y, g.w, g.h)
	}
	return g.cur[y*g.w+x], nil
}

// Set overwrites the state of cell (x, y), or fails with ErrOutOfBounds
// leaving the grid unmodified.
func (g *Grid) Set(x, y int, s CellState) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "set (%d,%d) on %dx%d grid", x, y, g.w, g.h)
	}
	g.cur[y*g.w+x] = s
	return nil
}

// SetAlive marks cell (x, y) Alive.
func (g *Grid) SetAlive(x, y int) error { return g.Set(x, y, Alive) }

// SetDead marks cell (x, y) Dead.
func (g *Grid) SetDead(x, y int) error { return g.Set(x, y, Dead) }

// Clear resets every cell to Dead without changing the dimensions.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Dead
	}
}

// Population returns the number of Alive cells in the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, s := range g.cur {
		if s == Alive {
			n++
		}
	}
	return n
}

// Neighbors counts the Alive cells among the up to eight neighbors of
// (x, y). Neighbors beyond the grid edge count as Dead. The center
// coordinate itself must be in bounds.
func (g *Grid) Neighbors(x, y int) (int, error) {
	if !g.inBounds(x, y) {
		return 0, errors.Wrapf(ErrOutOfBounds, "neighbors (%d,%d) on %dx%d grid", x, y, g.w, g.h)
	}
	return g.neighbors(x, y), nil
}

// NextGeneration advances the grid by exactly one generation. Every cell's
// next state is computed from the unmodified current generation into a
// scratch buffer, which then replaces the grid in a single swap, so a cell
// updated earlier in the pass can never leak into a later neighbor count.
func (g *Grid) NextGeneration() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := y*g.w + x
			g.nxt[idx] = nextState(g.cur[idx], g.neighbors(x, y))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// at reads a cell treating everything outside the grid as Dead. Only the
// neighbor scan uses it; the exported accessors keep the strict bounds
// contract.
func (g *Grid) at(x, y int) CellState {
	if !g.inBounds(x, y) {
		return Dead
	}
	return g.cur[y*g.w+x]
}

func (g *Grid) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.at(x+dx, y+dy) == Alive {
				n++
			}
		}
	}
	return n
}

// nextState applies the Game of Life rules: a live cell survives with two
// or three live neighbors (dying of underpopulation below, overpopulation
// above), and a dead cell with exactly three comes alive.
func nextState(s CellState, neighbors int) CellState {
	if s == Alive {
		if neighbors == 2 || neighbors == 3 {
			return Alive
		}
		return Dead
	}
	if neighbors == 3 {
		return Alive
	}
	return Dead
}
