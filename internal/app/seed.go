package app

import (
	"github.com/pkg/errors"

	"github.com/LucasUTNFRD/Conways/pkg/life"
)

// SeedGrid applies the configured starting pattern to the grid. Named
// patterns are stamped one cell in from the top-left corner; "soup" fills
// the board with a deterministic random state.
func (c *Config) SeedGrid(g *life.Grid) error {
	if c.Pattern == "soup" {
		g.Randomize(c.Seed, c.Density)
		return nil
	}
	p, ok := life.PatternByName(c.Pattern)
	if !ok {
		return errors.Errorf("unknown pattern %q", c.Pattern)
	}
	return g.Stamp(p, 1, 1)
}
