package keystate

import (
	"slices"
	"testing"

	"keywatch/internal/keys"
)

func TestKeyStateTrackerEdges(t *testing.T) {
	k := NewKeyStateTracker()

	pressed, released := k.Update([]keys.PhysicalKey{keys.PhysicalKeyS, keys.PhysicalKeyA})
	if !slices.Equal(pressed, []keys.PhysicalKey{keys.PhysicalKeyA, keys.PhysicalKeyS}) {
		t.Errorf("frame 1 pressed = %v", pressed)
	}
	if len(released) != 0 {
		t.Errorf("frame 1 released = %v", released)
	}

	// holding keys does not report them again
	pressed, released = k.Update([]keys.PhysicalKey{keys.PhysicalKeyA, keys.PhysicalKeyS})
	if len(pressed) != 0 || len(released) != 0 {
		t.Errorf("frame 2 = %v, %v; want no edges", pressed, released)
	}

	pressed, released = k.Update([]keys.PhysicalKey{keys.PhysicalKeyS, keys.PhysicalShiftLeft})
	if !slices.Equal(pressed, []keys.PhysicalKey{keys.PhysicalShiftLeft}) {
		t.Errorf("frame 3 pressed = %v", pressed)
	}
	if !slices.Equal(released, []keys.PhysicalKey{keys.PhysicalKeyA}) {
		t.Errorf("frame 3 released = %v", released)
	}
	if !k.IsPressed(keys.PhysicalKeyS) || k.IsPressed(keys.PhysicalKeyA) {
		t.Error("IsPressed disagrees with the last update")
	}
}

func TestKeyStateTrackerIgnoresInvalid(t *testing.T) {
	k := NewKeyStateTracker()
	pressed, _ := k.Update([]keys.PhysicalKey{keys.PhysicalNone})
	if len(pressed) != 0 {
		t.Errorf("pressed = %v, want none", pressed)
	}
}

func TestReleaseAll(t *testing.T) {
	k := NewKeyStateTracker()
	k.Update([]keys.PhysicalKey{keys.PhysicalKeyB, keys.PhysicalKeyA})

	released := k.ReleaseAll()
	if !slices.Equal(released, []keys.PhysicalKey{keys.PhysicalKeyA, keys.PhysicalKeyB}) {
		t.Errorf("ReleaseAll = %v", released)
	}
	if got := k.ReleaseAll(); len(got) != 0 {
		t.Errorf("second ReleaseAll = %v, want none", got)
	}
}
