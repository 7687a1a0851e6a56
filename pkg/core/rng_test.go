package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestChanceSaturates(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) must never fire")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) must always fire")
		}
	}
}

func TestPointStaysInside(t *testing.T) {
	r := NewRNG(3)
	size := Size{W: 5, H: 3}
	for i := 0; i < 500; i++ {
		p := r.Point(size)
		if !size.Contains(p) {
			t.Fatalf("point %+v outside %+v", p, size)
		}
	}
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
}
