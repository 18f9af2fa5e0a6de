package console

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"keywatch/internal/keys"
	"keywatch/internal/logger"
	"keywatch/internal/tracker"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

// syncBuffer guards a bytes.Buffer shared with the Run goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type onceSource struct {
	mu     sync.Mutex
	events []tracker.Event
}

func (s *onceSource) Poll() []tracker.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev := s.events
	s.events = nil
	return ev
}

func (s *onceSource) Close() error { return nil }

func TestRenderRows(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)

	tr := tracker.New()
	tr.Process([]tracker.Event{
		tracker.KeyEvent{Key: keys.KeyA, Pressed: true, Physical: keys.PhysicalKeyQ},
		tracker.TextEvent{Text: "a"},
	})
	if err := r.Render(tr.Snapshot()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"KeyWatch",
		"Held keys (logical): A",
		"Last pressed:        A",
		"Last released:       (none)",
		"Last text typed:     a",
		"Last physical key:   KeyQ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, clearScreen) {
		t.Error("clear sequence written with clear disabled")
	}
}

func TestRenderClear(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(&buf, true).Render(tracker.New().Snapshot()); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), clearScreen) {
		t.Errorf("output does not start with clear sequence: %q", buf.String())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	out := &syncBuffer{}
	src := &onceSource{events: []tracker.Event{
		tracker.KeyEvent{Key: keys.KeyZ},
		tracker.KeyEvent{Key: keys.KeyZ},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, src, NewRenderer(out, false), time.Millisecond)
	}()

	deadline := time.After(2 * time.Second)
	for !strings.Contains(out.String(), "Z (x2)") {
		select {
		case <-deadline:
			cancel()
			t.Fatalf("release streak never rendered:\n%s", out.String())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRunLogsEventsAtDebug(t *testing.T) {
	logs := &syncBuffer{}
	logger.SetOutput(logs)
	logger.SetLevel("debug")
	defer logger.SetOutput(os.Stderr)
	defer logger.SetLevel("info")

	out := &syncBuffer{}
	src := &onceSource{events: []tracker.Event{
		tracker.KeyEvent{Key: keys.KeyQ, Pressed: true, Physical: keys.PhysicalKeyA},
		tracker.TextEvent{Text: "q"},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, src, NewRenderer(out, false), time.Millisecond)
	}()

	deadline := time.After(2 * time.Second)
	for !strings.Contains(out.String(), "Last text typed:     q") {
		select {
		case <-deadline:
			cancel()
			t.Fatalf("text never rendered:\n%s", out.String())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}

	got := logs.String()
	for _, want := range []string{"key=Q", "physical=KeyA", "text=q"} {
		if !strings.Contains(got, want) {
			t.Errorf("debug log missing %q:\n%s", want, got)
		}
	}
}
