package render

import (
	"image/color"
	"testing"

	"life-editor/pkg/life"
)

func TestFillPaletteRGBA(t *testing.T) {
	cells := []uint8{life.CellDead, life.CellAlive, life.CellChaotic, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, Palette)

	for i, c := range cells {
		want := Palette[min(int(c), len(Palette)-1)]
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != want {
			t.Fatalf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	fillPaletteRGBA(buf, []uint8{1}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}
