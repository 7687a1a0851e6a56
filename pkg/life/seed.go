package life

import (
	"sort"

	"life-editor/pkg/core"
)

// DefaultDensity is the alive probability used by SeedRandom callers that
// have no preference.
const DefaultDensity = 0.1

// gliderGunAnchor is where SeedGliderGun places the gun's top-left corner.
var gliderGunAnchor = core.Point{X: 5, Y: 5}

// SeedGliderGun clears the grid and places a Gosper glider gun near the
// top-left corner.
func (g *Grid) SeedGliderGun() {
	g.Clear()
	gun, _ := PatternByID(GliderGunID)
	g.ApplyPattern(gun.coords, gliderGunAnchor.X, gliderGunAnchor.Y, false)
}

// SeedRandom sets every cell alive with probability density.
func (g *Grid) SeedRandom(rng *core.RNG, density float64) {
	for y := range g.cur {
		for x := range g.cur[y] {
			g.cur[y][x] = Cell{Alive: rng.Chance(density)}
		}
	}
}

// Seeder fills a grid with an initial population.
type Seeder func(g *Grid, rng *core.RNG, density float64)

var seeders = map[string]Seeder{}

func init() {
	registerSeeder("empty", func(g *Grid, _ *core.RNG, _ float64) { g.Clear() })
	registerSeeder("glider-gun", func(g *Grid, _ *core.RNG, _ float64) { g.SeedGliderGun() })
	registerSeeder("random", func(g *Grid, rng *core.RNG, density float64) { g.SeedRandom(rng, density) })
}

// registerSeeder adds a seeder under the provided name.
func registerSeeder(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// LookupSeeder returns the seeder registered under name.
func LookupSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// SeederNames lists registered seeders alphabetically.
func SeederNames() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
