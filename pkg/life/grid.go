package life

import (
	"hash/fnv"

	"life-editor/pkg/core"
)

// Cell is a single grid position. Chaotic marks cells placed by chaos mode.
type Cell struct {
	Alive   bool
	Chaotic bool
}

// Palette indices returned by Grid.Cells.
const (
	CellDead    uint8 = 0
	CellAlive   uint8 = 1
	CellChaotic uint8 = 2
)

// Offset is a pattern coordinate relative to its anchor.
type Offset struct {
	Row int
	Col int
}

var neighbors = [8]Offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a bounded square Game of Life board. Neighbours beyond the edge
// count as dead; nothing wraps.
type Grid struct {
	n   int
	cur [][]Cell
	nxt [][]Cell
	pix []uint8
}

// NewGrid allocates an empty n×n grid. Sizes below one are raised to one.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{n: n, cur: newCells(n), nxt: newCells(n), pix: make([]uint8, n*n)}
}

func newCells(n int) [][]Cell {
	backing := make([]Cell, n*n)
	rows := make([][]Cell, n)
	for i := range rows {
		start := i * n
		rows[i] = backing[start : start+n : start+n]
	}
	return rows
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.n, H: g.n} }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.n && y >= 0 && y < g.n
}

// Cell returns the cell at column x, row y. Out of range reads as dead.
func (g *Grid) Cell(x, y int) Cell {
	if !g.inBounds(x, y) {
		return Cell{}
	}
	return g.cur[y][x]
}

// Alive reports whether the cell at column x, row y is alive.
func (g *Grid) Alive(x, y int) bool { return g.Cell(x, y).Alive }

// Set overwrites the alive flag at column x, row y and clears its chaotic mark.
func (g *Grid) Set(x, y int, alive bool) {
	if g.inBounds(x, y) {
		g.cur[y][x] = Cell{Alive: alive}
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for y := range g.cur {
		for x := range g.cur[y] {
			g.cur[y][x] = Cell{}
		}
	}
}

// ToggleCell flips the cell at column x, row y. Coordinates outside the grid
// are ignored.
func (g *Grid) ToggleCell(x, y int) {
	if !g.inBounds(x, y) {
		return
	}
	c := &g.cur[y][x]
	c.Alive = !c.Alive
	if !c.Alive {
		c.Chaotic = false
	}
}

// ApplyPattern brings to life every (row+y, col+x) target that lies inside
// the grid and skips the rest. It returns how many cells were set.
func (g *Grid) ApplyPattern(coords []Offset, x, y int, chaotic bool) int {
	set := 0
	for _, o := range coords {
		cx, cy := o.Col+x, o.Row+y
		if !g.inBounds(cx, cy) {
			continue
		}
		g.cur[cy][cx] = Cell{Alive: true, Chaotic: chaotic}
		set++
	}
	return set
}

// LiveNeighbors counts alive cells among the eight neighbours of (x, y).
func (g *Grid) LiveNeighbors(x, y int) int {
	count := 0
	for _, o := range neighbors {
		nx, ny := x+o.Col, y+o.Row
		if g.inBounds(nx, ny) && g.cur[ny][nx].Alive {
			count++
		}
	}
	return count
}

// nextAlive applies B3/S23.
func nextAlive(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// ApplyRules advances the grid by one generation. The next state is computed
// into a second buffer from the untouched current one, then the buffers swap.
func (g *Grid) ApplyRules() {
	for y := 0; y < g.n; y++ {
		for x := 0; x < g.n; x++ {
			c := g.cur[y][x]
			if !nextAlive(c.Alive, g.LiveNeighbors(x, y)) {
				g.nxt[y][x] = Cell{}
				continue
			}
			// survivors keep their mark, births start clean
			g.nxt[y][x] = Cell{Alive: true, Chaotic: c.Alive && c.Chaotic}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// Population returns the number of alive cells.
func (g *Grid) Population() int {
	count := 0
	for y := range g.cur {
		for _, c := range g.cur[y] {
			if c.Alive {
				count++
			}
		}
	}
	return count
}

// Cells returns the grid as row-major palette indices (CellDead, CellAlive,
// CellChaotic). The slice is reused between calls.
func (g *Grid) Cells() []uint8 {
	for y := range g.cur {
		row := g.pix[y*g.n : (y+1)*g.n]
		for x, c := range g.cur[y] {
			switch {
			case c.Alive && c.Chaotic:
				row[x] = CellChaotic
			case c.Alive:
				row[x] = CellAlive
			default:
				row[x] = CellDead
			}
		}
	}
	return g.pix
}

// Hash fingerprints the alive cells. Chaotic marks do not contribute.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, g.n)
	for y := range g.cur {
		for x, c := range g.cur[y] {
			buf[x] = 0
			if c.Alive {
				buf[x] = 1
			}
		}
		h.Write(buf)
	}
	return h.Sum64()
}

// Equal reports whether both grids have the same size and alive cells.
// Chaotic marks are ignored.
func (g *Grid) Equal(o *Grid) bool {
	if g.n != o.n {
		return false
	}
	for y := range g.cur {
		for x, c := range g.cur[y] {
			if c.Alive != o.cur[y][x].Alive {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.n)
	for y := range g.cur {
		copy(out.cur[y], g.cur[y])
	}
	return out
}
