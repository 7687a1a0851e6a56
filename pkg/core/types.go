package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether p lies inside the grid.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X int
	Y int
}
