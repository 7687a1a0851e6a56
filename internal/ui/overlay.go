//go:build ebiten

package ui

import (
	"image/color"

	"life-editor/internal/game"
	"life-editor/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorGridLine = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorGhost    = color.RGBA{R: 90, G: 200, B: 120, A: 140}
	colorCursor   = color.RGBA{R: 110, G: 200, B: 255, A: 110}
)

// Overlay draws editing aids on top of the grid: cell separators and a
// preview of the armed pattern under the cursor.
type Overlay struct {
	game     *game.Game
	scale    int
	showGrid bool
}

// NewOverlay constructs an overlay with grid lines enabled.
func NewOverlay(g *game.Game, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{game: g, scale: scale, showGrid: true}
}

// Update toggles grid lines with L.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.game.Grid().Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showGrid && o.scale >= 4 {
		o.drawGridLines(screen, size)
	}
	if cell, ok := CursorCell(o.scale, size); ok {
		o.drawPreview(screen, cell)
	}
}

// drawGridLines leaves a one pixel gap on the right and bottom of every cell.
func (o *Overlay) drawGridLines(screen *ebiten.Image, size core.Size) {
	s := float32(o.scale)
	w := float32(size.W) * s
	h := float32(size.H) * s
	for x := 1; x <= size.W; x++ {
		fx := float32(x)*s - 0.5
		vector.StrokeLine(screen, fx, 0, fx, h, 1, colorGridLine, false)
	}
	for y := 1; y <= size.H; y++ {
		fy := float32(y)*s - 0.5
		vector.StrokeLine(screen, 0, fy, w, fy, 1, colorGridLine, false)
	}
}

func (o *Overlay) drawPreview(screen *ebiten.Image, cell core.Point) {
	st := o.game.State()
	if st == game.Paused {
		return
	}
	s := float32(o.scale)
	p, ok := o.game.Editor().Selected()
	if !ok {
		if st == game.Editing {
			vector.DrawFilledRect(screen, float32(cell.X)*s, float32(cell.Y)*s, s, s, colorCursor, false)
		}
		return
	}
	if st != game.Editing {
		return
	}
	size := o.game.Grid().Size()
	for _, off := range p.Coords() {
		at := core.Point{X: cell.X + off.Col, Y: cell.Y + off.Row}
		if !size.Contains(at) {
			continue
		}
		vector.DrawFilledRect(screen, float32(at.X)*s, float32(at.Y)*s, s, s, colorGhost, false)
	}
}

// CursorCell maps the mouse position to a grid cell.
func CursorCell(scale int, size core.Size) (core.Point, bool) {
	mx, my := ebiten.CursorPosition()
	return PixelToCell(mx, my, scale, size)
}
