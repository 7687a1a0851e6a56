package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"life-editor/internal/config"
	"life-editor/internal/game"
	"life-editor/internal/render"
	"life-editor/internal/term"
)

func main() {
	cfg, err := config.Parse("life-term", "Conway's Game of Life in the terminal", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	// the interactive UI owns the screen, so logs go to a file or nowhere
	fallback := io.Discard
	if cfg.Plain {
		fallback = os.Stderr
	}
	closeLog, err := cfg.SetupLog("life-term", fallback)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	g, err := game.New(cfg.GameOptions())
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Plain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runPlain(ctx, g, render.NewTextRenderer(os.Stdout, true, true), cfg.Interval); err != nil {
			log.Fatal(err)
		}
		return
	}

	c, err := term.NewConsole(g, cfg.TPS)
	if err != nil {
		log.Fatal(err)
	}
	if err := c.Run(); err != nil {
		log.Fatal(err)
	}
}

// runPlain starts the game running and prints one frame per interval until
// ctx is cancelled.
func runPlain(ctx context.Context, g *game.Game, r *render.TextRenderer, interval time.Duration) error {
	g.Update(game.Input{Space: true})
	if interval <= 0 {
		interval = time.Millisecond
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		if err := r.Render(g); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			log.Printf("stopped at generation %d", g.Generation())
			return nil
		case <-t.C:
			g.Update(game.Input{Tick: true})
		}
	}
}
