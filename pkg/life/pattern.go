package life

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Pattern is a named set of cells to bring alive, as offsets from an anchor.
type Pattern struct {
	Name  string
	Cells [][2]int
}

// Classic starter patterns.
var (
	// Glider travels one cell down-right every four generations.
	Glider = Pattern{Name: "glider", Cells: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}}
	// Blinker is the period-2 oscillator, stamped vertically.
	Blinker = Pattern{Name: "blinker", Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}}}
	// Block is the 2x2 still life.
	Block = Pattern{Name: "block", Cells: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}
)

// PatternByName looks up one of the starter patterns.
func PatternByName(name string) (Pattern, bool) {
	for _, p := range []Pattern{Glider, Blinker, Block} {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// Stamp brings the pattern's cells alive with their anchor at (x, y). The
// whole pattern is validated up front; a pattern that does not fit leaves
// the grid untouched.
func (g *Grid) Stamp(p Pattern, x, y int) error {
	for _, c := range p.Cells {
		if !g.inBounds(x+c[0], y+c[1]) {
			return errors.Wrapf(ErrOutOfBounds, "stamp %q at (%d,%d) on %dx%d grid", p.Name, x, y, g.w, g.h)
		}
	}
	for _, c := range p.Cells {
		g.cur[(y+c[1])*g.w+x+c[0]] = Alive
	}
	return nil
}

// Randomize fills the grid with random soup: each cell independently comes
// alive with the given probability. The same seed always produces the same
// board.
func (g *Grid) Randomize(seed int64, density float64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range g.cur {
		if rng.Float64() < density {
			g.cur[i] = Alive
		} else {
			g.cur[i] = Dead
		}
	}
}
