package keys

import "testing"

func TestKeyNamesRoundTrip(t *testing.T) {
	seen := make(map[string]Key)
	for _, k := range AllKeys() {
		name := k.String()
		if name == "" {
			t.Fatalf("key %d has no display name", int(k))
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("keys %d and %d share name %q", int(prev), int(k), name)
		}
		seen[name] = k

		parsed, ok := ParseKey(name)
		if !ok || parsed != k {
			t.Errorf("ParseKey(%q) = %v, %v; want %v", name, parsed, ok, k)
		}
	}
}

func TestKeyDisplayNames(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{KeyZ, "Z"},
		{KeyNum0, "Num0"},
		{KeyNum9, "Num9"},
		{KeyF1, "F1"},
		{KeyF35, "F35"},
		{KeyArrowDown, "ArrowDown"},
		{KeyShift, "Shift"},
		{KeyNone, "Key(0)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", int(tt.key), got, tt.want)
		}
	}
}

func TestFromLayoutName(t *testing.T) {
	tests := []struct {
		name string
		want Key
		ok   bool
	}{
		{"a", KeyA, true},
		{"Q", KeyQ, true},
		{"7", KeyNum7, true},
		{";", KeySemicolon, true},
		{"ArrowUp", KeyArrowUp, true},
		{"é", KeyNone, false},
		{"", KeyNone, false},
		{"NotAKey", KeyNone, false},
	}
	for _, tt := range tests {
		got, ok := FromLayoutName(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FromLayoutName(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyOrderingFollowsEnumeration(t *testing.T) {
	if !(KeyArrowDown < KeyComma && KeyComma < KeyNum0 && KeyNum9 < KeyA && KeyZ < KeyF1) {
		t.Error("key groups are out of enumeration order")
	}
}
