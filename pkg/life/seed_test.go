package life

import (
	"testing"

	"life-editor/pkg/core"
)

func TestSeederRegistry(t *testing.T) {
	names := SeederNames()
	want := []string{"empty", "glider-gun", "random"}
	for _, n := range want {
		if _, ok := LookupSeeder(n); !ok {
			t.Fatalf("seeder %q missing from %v", n, names)
		}
	}
	if _, ok := LookupSeeder("nope"); ok {
		t.Fatal("unknown seeder should not resolve")
	}

	g := NewGrid(50)
	seed, _ := LookupSeeder("glider-gun")
	seed(g, core.NewRNG(1), DefaultDensity)
	if g.Population() == 0 {
		t.Fatal("glider-gun seeder left the grid empty")
	}
	empty, _ := LookupSeeder("empty")
	empty(g, nil, 0)
	if g.Population() != 0 {
		t.Fatal("empty seeder should clear the grid")
	}
}

func TestRegisterSeeder(t *testing.T) {
	defer delete(seeders, "corner")
	registerSeeder("corner", func(g *Grid, _ *core.RNG, _ float64) { g.Set(0, 0, true) })
	registerSeeder("", func(*Grid, *core.RNG, float64) {})
	registerSeeder("nil", nil)

	s, ok := LookupSeeder("corner")
	if !ok {
		t.Fatal("registered seeder not found")
	}
	g := NewGrid(4)
	s(g, core.NewRNG(1), 0)
	if !g.Alive(0, 0) || g.Population() != 1 {
		t.Fatal("seeder did not run")
	}
	if _, ok := LookupSeeder(""); ok {
		t.Fatal("empty name should be ignored")
	}
	if _, ok := LookupSeeder("nil"); ok {
		t.Fatal("nil seeder should be ignored")
	}
}
