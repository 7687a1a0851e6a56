package ui

import (
	"life-editor/internal/game"
	"life-editor/pkg/core"
)

// PixelToCell converts screen pixels to a cell coordinate inside size.
func PixelToCell(px, py, scale int, size core.Size) (core.Point, bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return core.Point{}, false
	}
	p := core.Point{X: px / scale, Y: py / scale}
	return p, size.Contains(p)
}

// HelpText is the GUI key help for s, including the overlay keys.
func HelpText(s game.State) string {
	return s.Instructions() + "  L grid lines"
}
