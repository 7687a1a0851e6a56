package life

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Fate is the long-run behaviour of a population.
type Fate int

const (
	// FateUnsettled means no state repeated within the generation limit.
	FateUnsettled Fate = iota
	// FateExtinct means every cell died.
	FateExtinct
	// FateStill means the board stopped changing.
	FateStill
	// FateOscillator means the board cycles with a period above one.
	FateOscillator
)

func (f Fate) String() string {
	switch f {
	case FateExtinct:
		return "extinct"
	case FateStill:
		return "still life"
	case FateOscillator:
		return "oscillator"
	default:
		return "unsettled"
	}
}

// CensusResult describes how a pattern evolved on a bounded board.
type CensusResult struct {
	Pattern    Pattern
	Fate       Fate
	Period     int // cycle length once settled; 1 for still lifes
	SettledAt  int // generation at which the cycle was first entered
	Generation int // generations simulated
	Peak       int // highest population seen
	Final      int // population at the last generation
}

func (r CensusResult) String() string {
	switch r.Fate {
	case FateOscillator:
		return fmt.Sprintf("%s: oscillator p%d from gen %d (peak %d)", r.Pattern.Name, r.Period, r.SettledAt, r.Peak)
	case FateUnsettled:
		return fmt.Sprintf("%s: unsettled after %d gens (pop %d, peak %d)", r.Pattern.Name, r.Generation, r.Final, r.Peak)
	default:
		return fmt.Sprintf("%s: %s from gen %d (peak %d)", r.Pattern.Name, r.Fate, r.SettledAt, r.Peak)
	}
}

// stateHash buckets grid states; matches are confirmed cell by cell.
var stateHash = (*Grid).Hash

type snapshot struct {
	gen  int
	grid *Grid
}

// firstMatch returns the generation of the bucket entry equal to g.
func firstMatch(bucket []snapshot, g *Grid) (int, bool) {
	for _, s := range bucket {
		if s.grid.Equal(g) {
			return s.gen, true
		}
	}
	return 0, false
}

// Census places p at (x, y) on an empty size×size grid and runs it for at
// most maxGen generations, stopping once a previously seen state repeats.
func Census(p Pattern, size, x, y, maxGen int) (CensusResult, error) {
	if maxGen <= 0 {
		return CensusResult{}, errors.Errorf("census %q: generation limit must be positive, got %d", p.Name, maxGen)
	}
	g := NewGrid(size)
	if g.ApplyPattern(p.coords, x, y, false) == 0 {
		return CensusResult{}, errors.Errorf("census %q: no cells fit a %dx%d grid at (%d,%d)", p.Name, size, size, x, y)
	}

	res := CensusResult{Pattern: p, Peak: g.Population()}
	seen := map[uint64][]snapshot{}
	seen[stateHash(g)] = []snapshot{{gen: 0, grid: g.Clone()}}
	for gen := 1; gen <= maxGen; gen++ {
		g.ApplyRules()
		pop := g.Population()
		res.Generation = gen
		res.Final = pop
		res.Peak = max(res.Peak, pop)

		h := stateHash(g)
		first, ok := firstMatch(seen[h], g)
		if !ok {
			seen[h] = append(seen[h], snapshot{gen: gen, grid: g.Clone()})
			continue
		}
		res.SettledAt = first
		res.Period = gen - first
		switch {
		case pop == 0:
			res.Fate = FateExtinct
		case res.Period == 1:
			res.Fate = FateStill
		default:
			res.Fate = FateOscillator
		}
		return res, nil
	}
	return res, nil
}

// CensusCatalog runs Census for every catalog pattern, each centred on its
// own size×size grid. Results are ordered by pattern ID.
func CensusCatalog(size, maxGen int) ([]CensusResult, error) {
	var (
		eg      errgroup.Group
		results = make([]CensusResult, len(catalog))
	)
	for i, p := range catalog {
		rows, cols := p.Bounds()
		x, y := max(0, (size-cols)/2), max(0, (size-rows)/2)
		eg.Go(func() error {
			res, err := Census(p, size, x, y, maxGen)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
