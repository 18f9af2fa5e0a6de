// Package tracker folds per-frame batches of input events into the keyboard
// state shown by the renderers.
package tracker

import (
	"fmt"
	"slices"
	"strings"

	"keywatch/internal/keys"
)

// None is displayed for every empty field.
const None = "(none)"

// Tracker holds the keyboard state observed so far. It is not safe for
// concurrent use; one frame loop owns it.
type Tracker struct {
	held map[keys.Key]struct{}

	lastPressed       keys.Key
	lastReleased      keys.Key
	lastReleasedCount int
	lastText          string
	lastPhysical      string
}

// New creates a tracker with no keys held and every field empty.
func New() *Tracker {
	return &Tracker{held: make(map[keys.Key]struct{})}
}

// Process applies one frame's events in order.
func (t *Tracker) Process(events []Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case KeyEvent:
			t.processKey(e)
		case TextEvent:
			t.lastText = e.Text
		}
	}
}

func (t *Tracker) processKey(e KeyEvent) {
	if e.Pressed {
		t.held[e.Key] = struct{}{}
		t.lastPressed = e.Key
	} else {
		delete(t.held, e.Key)

		// consecutive releases of the same key extend the streak
		if t.lastReleased != keys.KeyNone && t.lastReleased == e.Key {
			t.lastReleasedCount++
		} else {
			t.lastReleased = e.Key
			t.lastReleasedCount = 1
		}
	}

	// updated on release as well as press
	if e.Physical.Valid() {
		t.lastPhysical = e.Physical.String()
	}
}

// Held returns the currently held keys in enumeration order.
func (t *Tracker) Held() []keys.Key {
	held := make([]keys.Key, 0, len(t.held))
	for k := range t.held {
		held = append(held, k)
	}
	slices.Sort(held)
	return held
}

// IsHeld reports whether k is currently held.
func (t *Tracker) IsHeld(k keys.Key) bool {
	_, ok := t.held[k]
	return ok
}

// LastPressed returns the most recently pressed key, or KeyNone.
func (t *Tracker) LastPressed() keys.Key {
	return t.lastPressed
}

// LastReleased returns the most recently released key and the length of its
// release streak. The count is zero when nothing has been released.
func (t *Tracker) LastReleased() (keys.Key, int) {
	return t.lastReleased, t.lastReleasedCount
}

// LastText returns the payload of the most recent text event.
func (t *Tracker) LastText() string {
	return t.lastText
}

// LastPhysical returns the display form of the most recently reported physical key.
func (t *Tracker) LastPhysical() string {
	return t.lastPhysical
}

// DisplayState is the read-only projection consumed by the renderers.
type DisplayState struct {
	Held         string
	LastPressed  string
	LastReleased string
	LastText     string
	LastPhysical string
}

// Snapshot projects the current state into display strings.
func (t *Tracker) Snapshot() DisplayState {
	ds := DisplayState{
		Held:         None,
		LastPressed:  None,
		LastReleased: None,
		LastText:     None,
		LastPhysical: None,
	}

	if held := t.Held(); len(held) > 0 {
		names := make([]string, len(held))
		for i, k := range held {
			names[i] = k.String()
		}
		ds.Held = strings.Join(names, " + ")
	}
	if t.lastPressed != keys.KeyNone {
		ds.LastPressed = t.lastPressed.String()
	}
	if t.lastReleased != keys.KeyNone {
		if t.lastReleasedCount > 1 {
			ds.LastReleased = fmt.Sprintf("%s (x%d)", t.lastReleased, t.lastReleasedCount)
		} else {
			ds.LastReleased = t.lastReleased.String()
		}
	}
	if t.lastText != "" {
		ds.LastText = t.lastText
	}
	if t.lastPhysical != "" {
		ds.LastPhysical = t.lastPhysical
	}
	return ds
}

// Row is one labelled line of the display.
type Row struct {
	Label string
	Value string
}

// Rows returns the display fields with their labels, in display order.
func (ds DisplayState) Rows() []Row {
	return []Row{
		{Label: "Held keys (logical):", Value: ds.Held},
		{Label: "Last pressed:", Value: ds.LastPressed},
		{Label: "Last released:", Value: ds.LastReleased},
		{Label: "Last text typed:", Value: ds.LastText},
		{Label: "Last physical key:", Value: ds.LastPhysical},
	}
}
