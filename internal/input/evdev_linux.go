//go:build linux

package input

import (
	"errors"
	"fmt"
	"strings"

	"keywatch/internal/logger"
	"keywatch/internal/tracker"

	"github.com/MarinX/keylogger"
)

// EvdevSource reads raw kernel keyboard events from /dev/input. The reader
// goroutine owned by keylogger only fills a channel; Poll drains it on the
// frame loop.
type EvdevSource struct {
	device   string
	keyboard *keylogger.KeyLogger
	events   chan keylogger.InputEvent
	decoder  *evdevDecoder
	closed   bool
}

// NewEvdevSource opens device, or the first keyboard found when device is empty.
func NewEvdevSource(device string) (*EvdevSource, error) {
	if device == "" {
		keyboards := keylogger.FindAllKeyboardDevices()
		if len(keyboards) == 0 {
			return nil, ErrNoKeyboard
		}
		device = keyboards[0]
	}

	kbd, err := keylogger.New(device)
	if err != nil {
		if strings.Contains(err.Error(), "permission denied") {
			err = errors.Join(err, ErrPermission)
		}
		return nil, fmt.Errorf("failed to open keyboard %s: %w", device, err)
	}
	logger.Infof("Reading keyboard events from %s", device)

	return &EvdevSource{
		device:   device,
		keyboard: kbd,
		events:   kbd.Read(),
		decoder:  newEvdevDecoder(),
	}, nil
}

// Device returns the path of the opened input device.
func (s *EvdevSource) Device() string {
	return s.device
}

// Poll returns every event read since the previous call without blocking.
func (s *EvdevSource) Poll() []tracker.Event {
	var batch []tracker.Event
	for !s.closed {
		select {
		case e, ok := <-s.events:
			if !ok {
				logger.Warnf("Keyboard device %s closed", s.device)
				s.closed = true
				return batch
			}
			if e.Type == keylogger.EvKey {
				batch = s.decoder.decode(batch, e.Code, e.Value)
			}
		default:
			return batch
		}
	}
	return batch
}

// Close releases the input device.
func (s *EvdevSource) Close() error {
	if s.keyboard == nil {
		return nil
	}
	return s.keyboard.Close()
}
