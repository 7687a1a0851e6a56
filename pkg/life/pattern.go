package life

// Pattern is a named set of live offsets relative to an anchor cell.
type Pattern struct {
	ID     int
	Name   string
	coords []Offset
}

// Coords returns a copy of the pattern offsets.
func (p Pattern) Coords() []Offset {
	return append([]Offset(nil), p.coords...)
}

// Len returns the number of live cells in the pattern.
func (p Pattern) Len() int { return len(p.coords) }

// Bounds returns the number of rows and columns spanned by the pattern,
// measured from the anchor.
func (p Pattern) Bounds() (rows, cols int) {
	for _, o := range p.coords {
		rows = max(rows, o.Row+1)
		cols = max(cols, o.Col+1)
	}
	return rows, cols
}

func offsets(pairs ...[2]int) []Offset {
	out := make([]Offset, len(pairs))
	for i, p := range pairs {
		out[i] = Offset{Row: p[0], Col: p[1]}
	}
	return out
}

// Catalog IDs.
const (
	GliderGunID = iota
	GliderID
	PulsarID
	PentadecathlonID
	BlinkerID
	ToadID
	BeaconID
)

var catalog = []Pattern{
	{ID: GliderGunID, Name: "glider gun", coords: offsets(
		[2]int{1, 25}, [2]int{2, 23}, [2]int{2, 25}, [2]int{3, 13}, [2]int{3, 14}, [2]int{3, 21},
		[2]int{3, 22}, [2]int{3, 35}, [2]int{3, 36}, [2]int{4, 12}, [2]int{4, 16}, [2]int{4, 21},
		[2]int{4, 22}, [2]int{4, 35}, [2]int{4, 36}, [2]int{5, 1}, [2]int{5, 2}, [2]int{5, 11},
		[2]int{5, 17}, [2]int{5, 21}, [2]int{5, 22}, [2]int{6, 1}, [2]int{6, 2}, [2]int{6, 11},
		[2]int{6, 15}, [2]int{6, 17}, [2]int{6, 18}, [2]int{6, 23}, [2]int{6, 25}, [2]int{7, 11},
		[2]int{7, 17}, [2]int{7, 25}, [2]int{8, 12}, [2]int{8, 16}, [2]int{9, 13}, [2]int{9, 14},
	)},
	{ID: GliderID, Name: "glider", coords: offsets(
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2},
	)},
	{ID: PulsarID, Name: "pulsar", coords: offsets(
		[2]int{2, 4}, [2]int{2, 5}, [2]int{2, 6}, [2]int{2, 10}, [2]int{2, 11}, [2]int{2, 12},
		[2]int{4, 2}, [2]int{4, 7}, [2]int{4, 9}, [2]int{4, 14},
		[2]int{5, 2}, [2]int{5, 7}, [2]int{5, 9}, [2]int{5, 14},
		[2]int{6, 2}, [2]int{6, 7}, [2]int{6, 9}, [2]int{6, 14},
		[2]int{7, 4}, [2]int{7, 5}, [2]int{7, 6}, [2]int{7, 10}, [2]int{7, 11}, [2]int{7, 12},
		[2]int{9, 4}, [2]int{9, 5}, [2]int{9, 6}, [2]int{9, 10}, [2]int{9, 11}, [2]int{9, 12},
		[2]int{10, 2}, [2]int{10, 7}, [2]int{10, 9}, [2]int{10, 14},
		[2]int{11, 2}, [2]int{11, 7}, [2]int{11, 9}, [2]int{11, 14},
		[2]int{12, 2}, [2]int{12, 7}, [2]int{12, 9}, [2]int{12, 14},
		[2]int{14, 4}, [2]int{14, 5}, [2]int{14, 6}, [2]int{14, 10}, [2]int{14, 11}, [2]int{14, 12},
	)},
	{ID: PentadecathlonID, Name: "pentadecathlon", coords: offsets(
		[2]int{0, 1}, [2]int{1, 1}, [2]int{2, 0}, [2]int{2, 2}, [2]int{3, 1},
		[2]int{4, 1}, [2]int{5, 1}, [2]int{6, 0}, [2]int{6, 2}, [2]int{7, 1},
	)},
	{ID: BlinkerID, Name: "blinker", coords: offsets(
		[2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2},
	)},
	{ID: ToadID, Name: "toad", coords: offsets(
		[2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2},
	)},
	{ID: BeaconID, Name: "beacon", coords: offsets(
		[2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2},
		[2]int{3, 3}, [2]int{3, 4}, [2]int{4, 3}, [2]int{4, 4},
	)},
}

// Catalog returns the built-in patterns ordered by ID.
func Catalog() []Pattern {
	return append([]Pattern(nil), catalog...)
}

// PatternByID looks up a catalog pattern.
func PatternByID(id int) (Pattern, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Pattern{}, false
}
