// Package app drives the automaton: it owns the grid, paces generation
// advances, and maps window input onto grid edits.
package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	GPS     int
	Seed    int64
	Density float64
	Pattern string
	File    string
}

// NewConfig returns a Config populated with sensible defaults: the classic
// 80x60 board at 10 pixels per cell with a glider seeded.
func NewConfig() *Config {
	return &Config{
		Width:   80,
		Height:  60,
		Scale:   10,
		TPS:     60,
		GPS:     10,
		Seed:    42,
		Density: 0.15,
		Pattern: "glider",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window updates per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the soup pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability for the soup pattern")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern: glider, blinker, block or soup")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file")
}

// SetFlags returns the names of flags explicitly set on fs.
func SetFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
