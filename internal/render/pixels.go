package render

import (
	"image/color"

	"life-editor/pkg/life"
)

// Palette maps life palette indices to colours.
var Palette = buildPalette()

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, 3)
	palette[life.CellDead] = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	palette[life.CellAlive] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	palette[life.CellChaotic] = color.RGBA{R: 255, G: 120, B: 40, A: 255}
	return palette
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
