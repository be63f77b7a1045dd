//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/LucasUTNFRD/Conways/internal/core"
	"github.com/LucasUTNFRD/Conways/internal/render"
	"github.com/LucasUTNFRD/Conways/pkg/life"
)

// Game adapts a life.Grid to the ebiten.Game interface. Generations advance
// on the pacer's fixed interval, not once per rendered frame.
type Game struct {
	grid    *life.Grid
	painter *render.GridPainter
	pacer   *core.FixedStep
	reseed  func(*life.Grid) error

	onColor  color.Color
	offColor color.Color

	scale      int
	paused     bool
	tickOnce   bool
	generation int
}

// New constructs a Game driving the provided grid. reseed is re-applied on
// every reset to restore the starting pattern.
func New(grid *life.Grid, reseed func(*life.Grid) error, scale, gps int) *Game {
	return &Game{
		grid:     grid,
		painter:  render.NewGridPainter(grid.Width(), grid.Height()),
		pacer:    core.NewFixedStep(gps),
		reseed:   reseed,
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Reset restores the starting pattern and generation counter.
func (g *Game) Reset() error {
	g.grid.Clear()
	g.generation = 0
	g.tickOnce = false
	if g.reseed == nil {
		return nil
	}
	return g.reseed(g.grid)
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}

	g.handleMouse()

	// Poll the pacer even while paused so elapsed time does not pile up
	// into a fast-forward burst on resume.
	due := g.pacer.ShouldStep()
	if g.tickOnce || (!g.paused && due) {
		g.grid.NextGeneration()
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// handleMouse paints cells alive with the left button and dead with the
// right. Cursor positions outside the board are discarded before touching
// the grid.
func (g *Game) handleMouse() {
	paint := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	erase := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !paint && !erase {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	if x < 0 || x >= g.grid.Width() || y < 0 || y >= g.grid.Height() {
		return
	}
	if paint {
		_ = g.grid.SetAlive(x, y)
		return
	}
	_ = g.grid.SetDead(x, y)
}

// Draw renders the current generation and a small status readout.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid.Cells(), g.onColor, g.offColor, g.scale)

	status := fmt.Sprintf("gen %d  pop %d", g.generation, g.grid.Population())
	if g.paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Width() * g.scale, g.grid.Height() * g.scale
}
