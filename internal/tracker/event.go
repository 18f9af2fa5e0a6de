package tracker

import "keywatch/internal/keys"

// Event is one input event delivered to the tracker within a frame batch.
type Event interface {
	isEvent()
}

// KeyEvent reports a key press or release. Physical is PhysicalNone when the
// backend did not report a position.
type KeyEvent struct {
	Key      keys.Key
	Pressed  bool
	Repeat   bool // auto-repeat press; treated like any other press
	Physical keys.PhysicalKey
}

// TextEvent carries the text produced by the keyboard since the previous event.
type TextEvent struct {
	Text string
}

// FocusEvent reports the window gaining or losing keyboard focus. The tracker
// ignores it.
type FocusEvent struct {
	Focused bool
}

func (KeyEvent) isEvent() {}
func (TextEvent) isEvent() {}
func (FocusEvent) isEvent() {}
