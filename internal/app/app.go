//go:build ebiten

package app

import (
	"image/color"

	"life-editor/internal/core"
	"life-editor/internal/game"
	"life-editor/internal/render"
	"life-editor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const minHeight = 600

// Game adapts a game.Game to the ebiten.Game interface.
type Game struct {
	game    *game.Game
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	fixed   *core.FixedStep

	scale int
}

// New constructs a Game for g. tps sets how many generations run per second
// while the game is in the Running state.
func New(g *game.Game, scale, tps, hudWidth int) *Game {
	size := g.Grid().Size()
	return &Game{
		game:    g,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(g, scale),
		hud:     ui.NewHUD(g, hudWidth),
		fixed:   core.NewFixedStep(tps),
		scale:   scale,
	}
}

// Update handles per-frame logic and advances the game.
func (a *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	a.overlay.Update()
	a.hud.Update(a.gridPixels())

	in := a.pollInput()
	in.Tick = a.fixed.ShouldStep()
	a.game.Update(in)
	return nil
}

// Draw renders the grid, the editing overlay and the HUD.
func (a *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.painter.Blit(screen, a.game.Grid().Cells(), render.Palette, a.scale)
	a.overlay.Draw(screen)
	_, h := a.Layout(0, 0)
	a.hud.Draw(screen, a.gridPixels(), h)
}

// Layout returns the logical screen size.
func (a *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	px := a.gridPixels()
	if a.hud.Width() == 0 {
		return px, px
	}
	return px + a.hud.Width(), max(px, minHeight)
}

func (a *Game) gridPixels() int {
	return a.game.Grid().Size().W * a.scale
}

var digitKeys = [10][2]ebiten.Key{
	{ebiten.KeyDigit0, ebiten.KeyNumpad0},
	{ebiten.KeyDigit1, ebiten.KeyNumpad1},
	{ebiten.KeyDigit2, ebiten.KeyNumpad2},
	{ebiten.KeyDigit3, ebiten.KeyNumpad3},
	{ebiten.KeyDigit4, ebiten.KeyNumpad4},
	{ebiten.KeyDigit5, ebiten.KeyNumpad5},
	{ebiten.KeyDigit6, ebiten.KeyNumpad6},
	{ebiten.KeyDigit7, ebiten.KeyNumpad7},
	{ebiten.KeyDigit8, ebiten.KeyNumpad8},
	{ebiten.KeyDigit9, ebiten.KeyNumpad9},
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// pollInput collects this frame's key presses and grid clicks. Clicks on the
// HUD fall outside the grid and are left to the panel.
func (a *Game) pollInput() game.Input {
	var in game.Input
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if cell, ok := ui.CursorCell(a.scale, a.game.Grid().Size()); ok {
			in.ClickAt(cell.X, cell.Y)
		}
	}
	for d, keys := range digitKeys {
		if pressed(keys[:]...) {
			in.PressDigit(d)
		}
	}
	in.Space = pressed(ebiten.KeySpace)
	in.Escape = pressed(ebiten.KeyEscape)
	in.Chaos = pressed(ebiten.KeyC)
	in.Pause = pressed(ebiten.KeyP)
	in.Step = pressed(ebiten.KeyN)
	in.Clear = pressed(ebiten.KeyX)
	in.Random = pressed(ebiten.KeyR)
	in.Gun = pressed(ebiten.KeyG)
	return in
}
