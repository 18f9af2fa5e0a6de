// keystate.go - per-frame edge detection over polled key state.
// Turns "which keys are down now" into just-pressed / just-released lists.
package keystate

import (
	"slices"

	"keywatch/internal/keys"
)

// KeyStateTracker tracks the previous pressed state of every physical key.
type KeyStateTracker struct {
	prevPressed map[keys.PhysicalKey]bool
}

// NewKeyStateTracker creates a tracker with no keys down.
func NewKeyStateTracker() *KeyStateTracker {
	return &KeyStateTracker{prevPressed: make(map[keys.PhysicalKey]bool)}
}

// Update records the keys pressed this frame and returns the keys that were not
// pressed last frame and the keys that no longer are. Both lists are in
// enumeration order.
func (k *KeyStateTracker) Update(pressed []keys.PhysicalKey) (justPressed, justReleased []keys.PhysicalKey) {
	now := make(map[keys.PhysicalKey]bool, len(pressed))
	for _, p := range pressed {
		if !p.Valid() {
			continue
		}
		now[p] = true
		if !k.prevPressed[p] {
			justPressed = append(justPressed, p)
		}
	}
	for p := range k.prevPressed {
		if !now[p] {
			justReleased = append(justReleased, p)
		}
	}
	k.prevPressed = now

	slices.Sort(justPressed)
	slices.Sort(justReleased)
	return justPressed, justReleased
}

// IsPressed reports whether p was pressed at the last Update.
func (k *KeyStateTracker) IsPressed(p keys.PhysicalKey) bool {
	return k.prevPressed[p]
}

// ReleaseAll forgets every pressed key and returns them in enumeration order.
// Used when the window loses focus and the backend stops reporting releases.
func (k *KeyStateTracker) ReleaseAll() []keys.PhysicalKey {
	_, released := k.Update(nil)
	return released
}
