// Package console renders the tracker state to a terminal, for machines where
// no window can be opened.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"keywatch/internal/input"
	"keywatch/internal/logger"
	"keywatch/internal/monitoring"
	"keywatch/internal/tracker"

	"github.com/fatih/color"
)

const clearScreen = "\033[H\033[2J"

// Renderer writes the display rows to a terminal
type Renderer struct {
	out   io.Writer
	clear bool

	heading *color.Color
	label   *color.Color
	value   *color.Color
	muted   *color.Color
}

// NewRenderer creates a renderer writing to out. clear redraws in place instead
// of appending.
func NewRenderer(out io.Writer, clear bool) *Renderer {
	return &Renderer{
		out:     out,
		clear:   clear,
		heading: color.New(color.Bold),
		label:   color.New(color.FgWhite),
		value:   color.New(color.FgCyan),
		muted:   color.New(color.Faint),
	}
}

// Render writes one frame.
func (r *Renderer) Render(ds tracker.DisplayState) error {
	if r.clear {
		if _, err := io.WriteString(r.out, clearScreen); err != nil {
			return err
		}
	}

	r.heading.Fprintln(r.out, "KeyWatch")
	r.muted.Fprintln(r.out, "Press/hold keys; Ctrl+C to quit.")
	for _, row := range ds.Rows() {
		r.label.Fprintf(r.out, "%-21s", row.Label)
		r.value.Fprint(r.out, row.Value)
		if _, err := fmt.Fprintln(r.out); err != nil {
			return err
		}
	}
	return nil
}

// Run polls source every refresh interval and renders after each frame until
// ctx is cancelled.
func Run(ctx context.Context, source input.Source, r *Renderer, refresh time.Duration) error {
	t := tracker.New()
	monitor := monitoring.NewFrameMonitor()

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	if err := r.Render(t.Snapshot()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			stats := monitor.Stats()
			logger.Infof("Console stopped after %d frames, %d events", stats.Frames, stats.EventsProcessed)
			return nil
		case <-ticker.C:
			frameTimer := monitor.StartFrame()
			events := source.Poll()
			monitor.RecordBatch(len(events))
			input.LogEvents(events)
			t.Process(events)
			err := r.Render(t.Snapshot())
			frameTimer.EndFrame()
			if err != nil {
				return fmt.Errorf("rendering frame: %w", err)
			}
		}
	}
}
