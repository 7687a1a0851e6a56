package life

import "testing"

func TestCensusClassifiesCatalogOscillators(t *testing.T) {
	cases := []struct {
		id     int
		fate   Fate
		period int
	}{
		{BlinkerID, FateOscillator, 2},
		{ToadID, FateOscillator, 2},
		{BeaconID, FateOscillator, 2},
	}
	for _, tc := range cases {
		p, _ := PatternByID(tc.id)
		res, err := Census(p, 16, 5, 5, 50)
		if err != nil {
			t.Fatalf("%s: %v", p.Name, err)
		}
		if res.Fate != tc.fate || res.Period != tc.period {
			t.Fatalf("%s: got %s p%d, want %s p%d", p.Name, res.Fate, res.Period, tc.fate, tc.period)
		}
	}
}

func TestCensusStillAndExtinct(t *testing.T) {
	block := Pattern{Name: "block", coords: []Offset{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}
	res, err := Census(block, 6, 2, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Fate != FateStill || res.Period != 1 || res.SettledAt != 0 {
		t.Fatalf("block: %+v", res)
	}

	dot := Pattern{Name: "dot", coords: []Offset{{0, 0}}}
	res, err = Census(dot, 3, 1, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Fate != FateExtinct || res.Final != 0 {
		t.Fatalf("dot: %+v", res)
	}
}

func TestCensusRejectsBadInput(t *testing.T) {
	p, _ := PatternByID(GliderID)
	if _, err := Census(p, 10, 1, 1, 0); err == nil {
		t.Fatal("expected error for zero generation limit")
	}
	if _, err := Census(p, 10, 50, 50, 10); err == nil {
		t.Fatal("expected error when nothing fits")
	}
}

func TestCensusUnsettledWithinLimit(t *testing.T) {
	p, _ := PatternByID(GliderID)
	res, err := Census(p, 40, 1, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Fate != FateUnsettled || res.Generation != 3 || res.Final != 5 {
		t.Fatalf("glider after 3 gens: %+v", res)
	}
}

func TestCensusCatalogOrderedByID(t *testing.T) {
	results, err := CensusCatalog(40, 100)
	if err != nil {
		t.Fatalf("census catalog: %v", err)
	}
	if len(results) != len(Catalog()) {
		t.Fatalf("expected %d results, got %d", len(Catalog()), len(results))
	}
	for i, res := range results {
		if res.Pattern.ID != i {
			t.Fatalf("result %d has pattern id %d", i, res.Pattern.ID)
		}
	}
	if r := results[BlinkerID]; r.Fate != FateOscillator || r.Period != 2 {
		t.Fatalf("blinker: %s", r)
	}
	if r := results[PulsarID]; r.Fate != FateOscillator || r.Period != 3 {
		t.Fatalf("pulsar: %s", r)
	}
}

func TestCensusCatalogPropagatesErrors(t *testing.T) {
	if _, err := CensusCatalog(40, 0); err == nil {
		t.Fatal("expected error for zero generation limit")
	}
	if _, err := CensusCatalog(2, 10); err == nil {
		t.Fatal("expected error when the glider gun cannot fit")
	}
}

func TestCensusConfirmsHashMatches(t *testing.T) {
	defer func(h func(*Grid) uint64) { stateHash = h }(stateHash)
	// every state lands in one bucket, so only the cell comparison can
	// tell the glider's positions apart
	stateHash = func(*Grid) uint64 { return 0 }

	glider, _ := PatternByID(GliderID)
	res, err := Census(glider, 30, 1, 1, 12)
	if err != nil {
		t.Fatal(err)
	}
	if res.Fate != FateUnsettled || res.Generation != 12 {
		t.Fatalf("colliding hashes misclassified the glider: %s", res)
	}

	blinker, _ := PatternByID(BlinkerID)
	res, err = Census(blinker, 10, 3, 3, 20)
	if err != nil {
		t.Fatal(err)
	}
	if res.Fate != FateOscillator || res.Period != 2 {
		t.Fatalf("blinker under colliding hashes: %s", res)
	}
}
