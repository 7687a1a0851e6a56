//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"life-editor/internal/app"
	"life-editor/internal/config"
	"life-editor/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse("life", "Conway's Game of Life with a pattern editor", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	closeLog, err := cfg.SetupLog("life", os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	g, err := game.New(cfg.GameOptions())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("grid %dx%d, seed %d, initial board %q", cfg.Size, cfg.Size, cfg.Seed, cfg.InitialSeed)

	a := app.New(g, cfg.CellSize, cfg.TPS, cfg.HUDWidth)
	w, h := a.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("exit at generation %d", g.Generation())
}
