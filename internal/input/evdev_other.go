//go:build !linux

package input

import (
	"fmt"
	"runtime"

	"keywatch/internal/tracker"
)

// EvdevSource is only available on Linux.
type EvdevSource struct{}

// NewEvdevSource always fails outside Linux.
func NewEvdevSource(device string) (*EvdevSource, error) {
	return nil, fmt.Errorf("evdev backend on %s: %w", runtime.GOOS, ErrUnsupported)
}

func (s *EvdevSource) Device() string { return "" }

func (s *EvdevSource) Poll() []tracker.Event { return nil }

func (s *EvdevSource) Close() error { return nil }
