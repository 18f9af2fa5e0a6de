package tracker

import (
	"testing"

	"keywatch/internal/keys"
)

func press(k keys.Key) KeyEvent   { return KeyEvent{Key: k, Pressed: true} }
func release(k keys.Key) KeyEvent { return KeyEvent{Key: k} }

func TestInitialSnapshotIsEmpty(t *testing.T) {
	ds := New().Snapshot()
	for _, row := range ds.Rows() {
		if row.Value != None {
			t.Errorf("%s = %q, want %q", row.Label, row.Value, None)
		}
	}
}

func TestPressAndReleaseUpdateHeldSet(t *testing.T) {
	tr := New()
	tr.Process([]Event{press(keys.KeyA)})
	if !tr.IsHeld(keys.KeyA) {
		t.Fatal("A should be held after press")
	}
	tr.Process([]Event{release(keys.KeyA)})
	if tr.IsHeld(keys.KeyA) {
		t.Fatal("A should not be held after release")
	}
}

func TestRepeatedPressUpdatesLastPressed(t *testing.T) {
	tr := New()
	tr.Process([]Event{press(keys.KeyA), press(keys.KeyB), KeyEvent{Key: keys.KeyA, Pressed: true, Repeat: true}})

	if got := tr.LastPressed(); got != keys.KeyA {
		t.Errorf("LastPressed = %v, want A", got)
	}
	if got := len(tr.Held()); got != 2 {
		t.Errorf("held %d keys, want 2", got)
	}
}

func TestReleaseStreak(t *testing.T) {
	tests := []struct {
		name      string
		events    []Event
		wantKey   keys.Key
		wantCount int
		wantText  string
	}{
		{
			name:      "single release",
			events:    []Event{release(keys.KeyK)},
			wantKey:   keys.KeyK,
			wantCount: 1,
			wantText:  "K",
		},
		{
			name:      "same key three times",
			events:    []Event{release(keys.KeyK), release(keys.KeyK), release(keys.KeyK)},
			wantKey:   keys.KeyK,
			wantCount: 3,
			wantText:  "K (x3)",
		},
		{
			name:      "different key resets",
			events:    []Event{release(keys.KeyK), release(keys.KeyK), release(keys.KeyJ)},
			wantKey:   keys.KeyJ,
			wantCount: 1,
			wantText:  "J",
		},
		{
			name:      "presses do not break the streak",
			events:    []Event{release(keys.KeyK), press(keys.KeyJ), press(keys.KeyK), release(keys.KeyK)},
			wantKey:   keys.KeyK,
			wantCount: 2,
			wantText:  "K (x2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			tr.Process(tt.events)
			k, n := tr.LastReleased()
			if k != tt.wantKey || n != tt.wantCount {
				t.Errorf("LastReleased = %v, %d; want %v, %d", k, n, tt.wantKey, tt.wantCount)
			}
			if got := tr.Snapshot().LastReleased; got != tt.wantText {
				t.Errorf("display = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestReleaseStreakSpansBatches(t *testing.T) {
	tr := New()
	for i := 0; i < 4; i++ {
		tr.Process([]Event{release(keys.KeySpace)})
	}
	if got := tr.Snapshot().LastReleased; got != "Space (x4)" {
		t.Errorf("LastReleased = %q, want %q", got, "Space (x4)")
	}
}

func TestTextReplacesRatherThanAppends(t *testing.T) {
	tr := New()
	tr.Process([]Event{TextEvent{Text: "a"}, TextEvent{Text: "bc"}})
	if got := tr.LastText(); got != "bc" {
		t.Errorf("LastText = %q, want %q", got, "bc")
	}
}

func TestPhysicalKey(t *testing.T) {
	tr := New()
	tr.Process([]Event{KeyEvent{Key: keys.KeyQ, Pressed: true, Physical: keys.PhysicalKeyA}})
	if got := tr.Snapshot().LastPhysical; got != "KeyA" {
		t.Fatalf("LastPhysical = %q, want KeyA", got)
	}

	// absent physical key leaves the previous value
	tr.Process([]Event{release(keys.KeyQ)})
	if got := tr.LastPhysical(); got != "KeyA" {
		t.Errorf("LastPhysical = %q after event without physical key, want KeyA", got)
	}

	// releases update it too
	tr.Process([]Event{KeyEvent{Key: keys.KeyW, Physical: keys.PhysicalKeyZ}})
	if got := tr.LastPhysical(); got != "KeyZ" {
		t.Errorf("LastPhysical = %q after release, want KeyZ", got)
	}
}

func TestPressReleaseScenario(t *testing.T) {
	tr := New()
	tr.Process([]Event{
		press(keys.KeyA),
		press(keys.KeyB),
		release(keys.KeyA),
		release(keys.KeyB),
		release(keys.KeyB),
	})

	if held := tr.Held(); len(held) != 0 {
		t.Errorf("held = %v, want empty", held)
	}
	if got := tr.LastPressed(); got != keys.KeyB {
		t.Errorf("LastPressed = %v, want B", got)
	}
	k, n := tr.LastReleased()
	if k != keys.KeyB || n != 2 {
		t.Errorf("LastReleased = %v, %d; want B, 2", k, n)
	}
}

func TestEmptyBatchLeavesStateUnchanged(t *testing.T) {
	tr := New()
	tr.Process([]Event{
		KeyEvent{Key: keys.KeyA, Pressed: true, Physical: keys.PhysicalKeyA},
		release(keys.KeyC),
		TextEvent{Text: "a"},
	})
	before := tr.Snapshot()

	tr.Process(nil)
	tr.Process([]Event{})

	if after := tr.Snapshot(); after != before {
		t.Errorf("snapshot changed on empty batch: %+v -> %+v", before, after)
	}
}

func TestIgnoredEvents(t *testing.T) {
	tr := New()
	tr.Process([]Event{FocusEvent{Focused: true}, FocusEvent{Focused: false}})
	if ds := tr.Snapshot(); ds != New().Snapshot() {
		t.Errorf("focus events changed state: %+v", ds)
	}
}

func TestHeldDisplayIsSorted(t *testing.T) {
	tr := New()
	tr.Process([]Event{press(keys.KeyZ), press(keys.KeyShift), press(keys.KeyA), press(keys.KeyNum1)})
	want := "Num1 + A + Z + Shift"
	if got := tr.Snapshot().Held; got != want {
		t.Errorf("Held = %q, want %q", got, want)
	}
}

func TestRowsLabels(t *testing.T) {
	rows := New().Snapshot().Rows()
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	if rows[0].Label != "Held keys (logical):" || rows[4].Label != "Last physical key:" {
		t.Errorf("unexpected labels: %+v", rows)
	}
}
