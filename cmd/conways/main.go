//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/LucasUTNFRD/Conways/internal/app"
	"github.com/LucasUTNFRD/Conways/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.File != "" {
		if err := cfg.ApplyFile(cfg.File, app.SetFlags(flag.CommandLine)); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	grid, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		log.Fatalf("create grid: %v", err)
	}
	if err := cfg.SeedGrid(grid); err != nil {
		log.Fatalf("seed grid: %v", err)
	}

	game := app.New(grid, cfg.SeedGrid, cfg.Scale, cfg.GPS)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
