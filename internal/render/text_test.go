package render

import (
	"bytes"
	"strings"
	"testing"

	"life-editor/internal/game"
	"life-editor/pkg/life"
)

func TestTextRendererFrame(t *testing.T) {
	opts := game.DefaultOptions()
	opts.Size = 10
	g, err := game.New(opts)
	if err != nil {
		t.Fatal(err)
	}
	g.Grid().Set(0, 0, true)
	g.Grid().Set(9, 9, true)

	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false, true)
	if err := r.Render(g); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, clearScreen) {
		t.Fatal("frame should start by clearing the screen")
	}
	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, clearScreen), "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("expected status + 10 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Editing") || !strings.Contains(lines[0], "pop 2") {
		t.Fatalf("unexpected status line %q", lines[0])
	}
	if lines[1] != aliveGlyph+strings.Repeat(deadGlyph, 9) {
		t.Fatalf("row 0 = %q", lines[1])
	}
	if lines[10] != strings.Repeat(deadGlyph, 9)+aliveGlyph {
		t.Fatalf("row 9 = %q", lines[10])
	}
}

func TestTextRendererGlyphs(t *testing.T) {
	plain := NewTextRenderer(&bytes.Buffer{}, false, false)
	if plain.Glyph(life.CellChaotic) != aliveGlyph {
		t.Fatal("without colours chaotic cells print as plain alive glyphs")
	}
	colored := NewTextRenderer(&bytes.Buffer{}, true, false)
	if got := colored.Glyph(life.CellChaotic); got == aliveGlyph || !strings.Contains(got, aliveGlyph) {
		t.Fatalf("coloured chaotic glyph = %q", got)
	}
	if colored.Glyph(life.CellDead) != deadGlyph {
		t.Fatal("dead glyph should be uncoloured")
	}
}
