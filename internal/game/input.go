package game

import "life-editor/pkg/core"

// Input is the framework-neutral view of one frame of user input. Frontends
// translate mouse and keyboard polling into it.
type Input struct {
	// Click is the cell under a left click, if one happened this frame.
	Click *core.Point
	// Digit is the pattern id typed this frame; only valid when HasDigit.
	Digit    int
	HasDigit bool

	Escape bool
	Space  bool
	Pause  bool
	Chaos  bool
	Step   bool
	Clear  bool
	Random bool
	Gun    bool

	// Tick marks frames on which a running simulation advances.
	Tick bool
}

// ClickAt records a left click on cell (x, y).
func (in *Input) ClickAt(x, y int) {
	in.Click = &core.Point{X: x, Y: y}
}

// PressDigit records a numeric key press.
func (in *Input) PressDigit(d int) {
	in.Digit = d
	in.HasDigit = true
}

// Merge folds later input into in, keeping the latest click and digit.
// Toggle keys pressed an even number of times cancel out.
func (in *Input) Merge(o Input) {
	if o.Click != nil {
		in.Click = o.Click
	}
	if o.HasDigit {
		in.PressDigit(o.Digit)
	}
	in.Escape = in.Escape || o.Escape
	in.Space = in.Space != o.Space
	in.Pause = in.Pause != o.Pause
	in.Chaos = in.Chaos != o.Chaos
	in.Step = in.Step || o.Step
	in.Clear = in.Clear || o.Clear
	in.Random = in.Random || o.Random
	in.Gun = in.Gun || o.Gun
	in.Tick = in.Tick || o.Tick
}
