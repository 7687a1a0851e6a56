package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacing(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now

	if !fs.ShouldStep() {
		t.Fatal("first call should tick")
	}
	ticks := 0
	for i := 0; i < 60; i++ {
		clock.advance(time.Second / 60)
		if fs.ShouldStep() {
			ticks++
		}
	}
	if ticks < 9 || ticks > 11 {
		t.Fatalf("expected ~10 ticks in one second at 10 TPS, got %d", ticks)
	}
}

func TestFixedStepNoBurstAfterStall(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now
	fs.ShouldStep()

	clock.advance(5 * time.Second)
	ticks := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			ticks++
		}
	}
	if ticks > 2 {
		t.Fatalf("stall produced a burst of %d ticks", ticks)
	}
}

func TestFixedStepDefaultsAndTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 10 {
		t.Fatalf("default TPS = %d, want 10", fs.TPS())
	}
	fs.SetTPS(25)
	if fs.TPS() != 25 {
		t.Fatalf("TPS = %d, want 25", fs.TPS())
	}
}
