package input

import (
	"keywatch/internal/logger"
	"keywatch/internal/tracker"
)

// LogEvents writes each event at debug level.
func LogEvents(events []tracker.Event) {
	log := logger.Get()
	for _, ev := range events {
		switch e := ev.(type) {
		case tracker.KeyEvent:
			entry := log.Debug().
				Stringer("key", e.Key).
				Bool("pressed", e.Pressed).
				Bool("repeat", e.Repeat)
			if e.Physical.Valid() {
				entry = entry.Stringer("physical", e.Physical)
			}
			entry.Msg("key")
		case tracker.TextEvent:
			log.Debug().Str("text", e.Text).Msg("text")
		case tracker.FocusEvent:
			log.Debug().Bool("focused", e.Focused).Msg("focus")
		}
	}
}
