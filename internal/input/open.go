package input

import (
	"errors"
	"fmt"

	"keywatch/internal/logger"
)

var (
	ErrNoKeyboard  = errors.New("no keyboard devices found")
	ErrPermission  = errors.New("cannot access keyboard device (add yourself to the input group: sudo usermod -aG input $USER)")
	ErrUnsupported = errors.New("backend not supported on this platform")
)

// Backend names accepted by Open.
const (
	BackendEbiten = "ebiten"
	BackendEvdev  = "evdev"
)

// Open creates the source for the named backend. device is only used by evdev.
func Open(backend, device string) (Source, error) {
	switch backend {
	case "", BackendEbiten:
		return NewEbitenSource(), nil
	case BackendEvdev:
		s, err := NewEvdevSource(device)
		if err != nil {
			return nil, err
		}
		logger.Infof("Reading keyboard events from %s", s.Device())
		return s, nil
	default:
		return nil, fmt.Errorf("unknown input backend %q", backend)
	}
}
