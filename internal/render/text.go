package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"life-editor/internal/game"
	"life-editor/pkg/life"
)

const (
	clearScreen = "\x1B[2J\x1B[H"
	aliveGlyph  = "■ "
	deadGlyph   = "□ "
)

// TextRenderer prints the board as rows of glyphs, two columns per cell.
type TextRenderer struct {
	w     io.Writer
	au    aurora.Aurora
	clear bool
}

// NewTextRenderer writes frames to w. Colour marks chaotic cells; clear
// prefixes every frame with the ANSI clear-screen sequence.
func NewTextRenderer(w io.Writer, colors, clear bool) *TextRenderer {
	return &TextRenderer{w: w, au: aurora.NewAurora(colors), clear: clear}
}

// Glyph returns the text for one cell value.
func (r *TextRenderer) Glyph(c uint8) string {
	switch c {
	case life.CellChaotic:
		return r.au.Red(aliveGlyph).String()
	case life.CellAlive:
		return aliveGlyph
	default:
		return deadGlyph
	}
}

// Render writes one frame: the status line followed by the grid.
func (r *TextRenderer) Render(g *game.Game) error {
	bw := bufio.NewWriter(r.w)
	if r.clear {
		bw.WriteString(clearScreen)
	}
	st := g.Status()
	fmt.Fprintf(bw, "%s  gen %d  pop %d\n", st.State, st.Generation, st.Population)
	grid := g.Grid()
	size := grid.Size()
	cells := grid.Cells()
	for y := 0; y < size.H; y++ {
		for _, c := range cells[y*size.W : (y+1)*size.W] {
			bw.WriteString(r.Glyph(c))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
