package game

// State selects which per-frame behaviour the game applies.
type State int

const (
	// Editing is the initial state: clicks and keys edit the board.
	Editing State = iota
	// Running advances one generation per tick.
	Running
	// Paused holds the board until resumed or single-stepped.
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	default:
		return "Editing"
	}
}

// Next returns the state that follows s given this frame's input. Space
// toggles between editing and simulating; P pauses and resumes a run.
func (s State) Next(in Input) State {
	switch s {
	case Editing:
		if in.Space {
			return Running
		}
	case Running:
		switch {
		case in.Space:
			return Editing
		case in.Pause:
			return Paused
		}
	case Paused:
		switch {
		case in.Space:
			return Editing
		case in.Pause:
			return Running
		}
	}
	return s
}

// Instructions is the key help shown for s.
func (s State) Instructions() string {
	switch s {
	case Running:
		return "SPACE edit  P pause  C chaos  Q quit"
	case Paused:
		return "P resume  N step  SPACE edit  C chaos  Q quit"
	default:
		return "click place/toggle  0-9 pattern  ESC unselect  N step  X clear  R random  G gun  SPACE run  Q quit"
	}
}
