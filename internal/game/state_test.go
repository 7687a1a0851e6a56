package game

import (
	"strings"
	"testing"
)

func TestStateTransitions(t *testing.T) {
	cases := []struct {
		name string
		from State
		in   Input
		want State
	}{
		{"idle editing", Editing, Input{}, Editing},
		{"space runs", Editing, Input{Space: true}, Running},
		{"pause ignored while editing", Editing, Input{Pause: true}, Editing},
		{"space edits", Running, Input{Space: true}, Editing},
		{"pause pauses", Running, Input{Pause: true}, Paused},
		{"tick keeps running", Running, Input{Tick: true}, Running},
		{"pause resumes", Paused, Input{Pause: true}, Running},
		{"space from pause edits", Paused, Input{Space: true}, Editing},
		{"space wins over pause", Running, Input{Space: true, Pause: true}, Editing},
	}
	for _, tc := range cases {
		if got := tc.from.Next(tc.in); got != tc.want {
			t.Fatalf("%s: %s -> %s, want %s", tc.name, tc.from, got, tc.want)
		}
	}
}

func TestStateStrings(t *testing.T) {
	for s, want := range map[State]string{Editing: "Editing", Running: "Running", Paused: "Paused"} {
		if s.String() != want {
			t.Fatalf("%d.String() = %q, want %q", s, s.String(), want)
		}
		if !strings.Contains(s.Instructions(), "Q quit") {
			t.Fatalf("%s instructions omit the quit key: %q", s, s.Instructions())
		}
	}
}
