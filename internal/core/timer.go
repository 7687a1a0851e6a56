package core

import "time"

// FixedStep gates simulation ticks to a steady rate while the host loop runs
// faster for input and drawing.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to ShouldStep fires immediately.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS reports the current tick rate.
func (f *FixedStep) TPS() int {
	return int(time.Second / f.step)
}

// ShouldStep reports whether the simulation should advance by one tick.
// At most one tick is reported per call; a long stall does not cause a burst.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}
