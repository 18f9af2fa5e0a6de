// Package input adapts keyboard backends into per-frame event batches for the
// tracker.
package input

import (
	"keywatch/internal/keys"
	"keywatch/internal/tracker"
)

// Source produces the input events observed since the previous Poll.
type Source interface {
	// Poll returns this frame's batch without blocking. The batch may be empty.
	Poll() []tracker.Event
	Close() error
}

// resolveFunc maps a physical key to the logical key it produces.
type resolveFunc func(keys.PhysicalKey) keys.Key

// appendBatch appends one polled frame to events: releases first, then presses,
// then the frame's text. Keys that resolve to no logical key are dropped.
func appendBatch(events []tracker.Event, released, pressed []keys.PhysicalKey, resolve resolveFunc, text string) []tracker.Event {
	for _, p := range released {
		if k := resolve(p); k != keys.KeyNone {
			events = append(events, tracker.KeyEvent{Key: k, Physical: p})
		}
	}
	for _, p := range pressed {
		if k := resolve(p); k != keys.KeyNone {
			events = append(events, tracker.KeyEvent{Key: k, Pressed: true, Physical: p})
		}
	}
	if text != "" {
		events = append(events, tracker.TextEvent{Text: text})
	}
	return events
}
