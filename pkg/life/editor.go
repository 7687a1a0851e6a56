package life

import "github.com/pkg/errors"

// ErrPatternNotFound is returned when a pattern id is not in the catalog.
var ErrPatternNotFound = errors.New("pattern not found")

// Editor tracks which catalog pattern, if any, is armed for placement.
type Editor struct {
	patterns []Pattern
	selected int // index into patterns, -1 when idle
}

// NewEditor returns an idle editor over the built-in catalog.
func NewEditor() *Editor {
	return &Editor{patterns: Catalog(), selected: -1}
}

// Patterns returns a copy of the catalog in ID order.
func (e *Editor) Patterns() []Pattern {
	return append([]Pattern(nil), e.patterns...)
}

// Selected returns the armed pattern.
func (e *Editor) Selected() (Pattern, bool) {
	if e.selected < 0 || e.selected >= len(e.patterns) {
		return Pattern{}, false
	}
	return e.patterns[e.selected], true
}

// SelectPattern arms the pattern with the given id. An unknown id leaves the
// current selection untouched.
func (e *Editor) SelectPattern(id int) error {
	for i := range e.patterns {
		if e.patterns[i].ID == id {
			e.selected = i
			return nil
		}
	}
	return errors.Wrapf(ErrPatternNotFound, "id %d", id)
}

// UnselectPattern returns the editor to idle.
func (e *Editor) UnselectPattern() {
	e.selected = -1
}
