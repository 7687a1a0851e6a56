package game

import (
	"github.com/pkg/errors"

	"life-editor/pkg/core"
	"life-editor/pkg/life"
)

// Options configures a Game.
type Options struct {
	Size        int
	Seed        int64
	InitialSeed string
	Density     float64

	Chaos       bool
	ChaosChance float64

	// EditWhileRunning lets clicks stamp and toggle cells during a run.
	EditWhileRunning bool
}

// DefaultOptions mirrors the classic 80×80 editor.
func DefaultOptions() Options {
	return Options{
		Size:        80,
		Seed:        42,
		InitialSeed: "empty",
		Density:     life.DefaultDensity,
		ChaosChance: 0.005,
	}
}

// Game composes the grid and the pattern editor behind a small state
// machine. It is driven by one Update call per frame and is not safe for
// concurrent use.
type Game struct {
	opts   Options
	grid   *life.Grid
	editor *life.Editor
	rng    *core.RNG
	seeder life.Seeder

	state       State
	generation  int
	chaos       bool
	chaosStamps int
}

// New builds a game in the Editing state with the configured initial seed.
func New(opts Options) (*Game, error) {
	seeder, ok := life.LookupSeeder(opts.InitialSeed)
	if !ok {
		return nil, errors.Errorf("unknown initial seed %q (have %v)", opts.InitialSeed, life.SeederNames())
	}
	g := &Game{
		opts:   opts,
		grid:   life.NewGrid(opts.Size),
		editor: life.NewEditor(),
		rng:    core.NewRNG(opts.Seed),
		seeder: seeder,
		chaos:  opts.Chaos,
	}
	g.seeder(g.grid, g.rng, opts.Density)
	return g, nil
}

// Grid exposes the board for rendering.
func (g *Game) Grid() *life.Grid { return g.grid }

// Editor exposes the pattern catalog and selection.
func (g *Game) Editor() *life.Editor { return g.editor }

// State reports the current state.
func (g *Game) State() State { return g.state }

// Generation is the number of generations advanced since start.
func (g *Game) Generation() int { return g.generation }

// Chaos reports whether chaos mode is on.
func (g *Game) Chaos() bool { return g.chaos }

// Update applies one frame: state-specific handling first, then the
// transition keys. Drawing is left to the caller.
func (g *Game) Update(in Input) {
	if in.Chaos {
		g.chaos = !g.chaos
	}

	switch g.state {
	case Editing:
		g.edit(in)
		if in.Step {
			g.advance()
		}
	case Running:
		if g.opts.EditWhileRunning {
			g.click(in)
		}
		if in.Tick {
			g.advance()
			if g.chaos {
				g.mutate()
			}
		}
	case Paused:
		if in.Step {
			g.advance()
		}
	}

	g.state = g.state.Next(in)
}

func (g *Game) edit(in Input) {
	g.click(in)
	if in.HasDigit {
		// unknown ids leave the selection as it was
		_ = g.editor.SelectPattern(in.Digit)
	}
	if in.Escape {
		g.editor.UnselectPattern()
	}
	switch {
	case in.Clear:
		g.grid.Clear()
	case in.Random:
		g.grid.SeedRandom(g.rng, g.opts.Density)
	case in.Gun:
		g.grid.SeedGliderGun()
	}
}

func (g *Game) click(in Input) {
	if in.Click == nil {
		return
	}
	at := *in.Click
	if p, ok := g.editor.Selected(); ok {
		g.grid.ApplyPattern(p.Coords(), at.X, at.Y, false)
		return
	}
	g.grid.ToggleCell(at.X, at.Y)
}

func (g *Game) advance() {
	g.grid.ApplyRules()
	g.generation++
}

// mutate gives every catalog pattern an independent chance to land at a
// uniformly random cell.
func (g *Game) mutate() {
	size := g.grid.Size()
	for _, p := range g.editor.Patterns() {
		if !g.rng.Chance(g.opts.ChaosChance) {
			continue
		}
		at := g.rng.Point(size)
		g.grid.ApplyPattern(p.Coords(), at.X, at.Y, true)
		g.chaosStamps++
	}
}

// Status summarises the game for status lines.
type Status struct {
	State        State
	Generation   int
	Population   int
	Selected     string
	Chaos        bool
	ChaosStamps  int
	Instructions string
}

// Status returns the current summary.
func (g *Game) Status() Status {
	s := Status{
		State:        g.state,
		Generation:   g.generation,
		Population:   g.grid.Population(),
		Chaos:        g.chaos,
		ChaosStamps:  g.chaosStamps,
		Instructions: g.state.Instructions(),
	}
	if p, ok := g.editor.Selected(); ok {
		s.Selected = p.Name
	}
	return s
}
