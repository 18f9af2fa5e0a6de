// Package keys defines the closed key enumerations shared by the event sources,
// the tracker and the renderers.
package keys

import "fmt"

// Key identifies a logical key: the key as resolved through the active keyboard
// layout. The zero value KeyNone means no key.
type Key int

const (
	KeyNone Key = iota

	// Commands
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCopy
	KeyCut
	KeyPaste

	// Punctuation
	KeyColon
	KeyComma
	KeyBackslash
	KeySlash
	KeyPipe
	KeyQuestionmark
	KeyExclamationmark
	KeyOpenBracket
	KeyCloseBracket
	KeyOpenCurlyBracket
	KeyCloseCurlyBracket
	KeyBacktick
	KeyMinus
	KeyPeriod
	KeyPlus
	KeyEquals
	KeySemicolon
	KeyQuote

	// Digits
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyF26
	KeyF27
	KeyF28
	KeyF29
	KeyF30
	KeyF31
	KeyF32
	KeyF33
	KeyF34
	KeyF35

	// Modifiers and locks
	KeyShift
	KeyControl
	KeyAlt
	KeyMeta
	KeyCapsLock

	keyCount
)

var keyNames = [keyCount]string{
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyArrowUp:    "ArrowUp",
	KeyEscape:     "Escape",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyEnter:      "Enter",
	KeySpace:      "Space",
	KeyInsert:     "Insert",
	KeyDelete:     "Delete",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyCopy:       "Copy",
	KeyCut:        "Cut",
	KeyPaste:      "Paste",

	KeyColon:             "Colon",
	KeyComma:             "Comma",
	KeyBackslash:         "Backslash",
	KeySlash:             "Slash",
	KeyPipe:              "Pipe",
	KeyQuestionmark:      "Questionmark",
	KeyExclamationmark:   "Exclamationmark",
	KeyOpenBracket:       "OpenBracket",
	KeyCloseBracket:      "CloseBracket",
	KeyOpenCurlyBracket:  "OpenCurlyBracket",
	KeyCloseCurlyBracket: "CloseCurlyBracket",
	KeyBacktick:          "Backtick",
	KeyMinus:             "Minus",
	KeyPeriod:            "Period",
	KeyPlus:              "Plus",
	KeyEquals:            "Equals",
	KeySemicolon:         "Semicolon",
	KeyQuote:             "Quote",

	KeyShift:    "Shift",
	KeyControl:  "Control",
	KeyAlt:      "Alt",
	KeyMeta:     "Meta",
	KeyCapsLock: "CapsLock",
}

var keysByName = make(map[string]Key, keyCount)

func init() {
	for i := 0; i < 10; i++ {
		keyNames[KeyNum0+Key(i)] = fmt.Sprintf("Num%d", i)
	}
	for i := 0; i < 26; i++ {
		keyNames[KeyA+Key(i)] = string(rune('A' + i))
	}
	for i := 0; i < 35; i++ {
		keyNames[KeyF1+Key(i)] = fmt.Sprintf("F%d", i+1)
	}
	for k := KeyNone + 1; k < keyCount; k++ {
		keysByName[keyNames[k]] = k
	}
}

// String returns the display name of the key, e.g. "A", "Num1" or "ArrowDown".
func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Valid reports whether k is one of the enumerated keys (KeyNone excluded).
func (k Key) Valid() bool {
	return k > KeyNone && k < keyCount
}

// AllKeys returns every logical key in enumeration order.
func AllKeys() []Key {
	all := make([]Key, 0, keyCount-1)
	for k := KeyNone + 1; k < keyCount; k++ {
		all = append(all, k)
	}
	return all
}

// ParseKey returns the key whose display name is name.
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// runeKeys maps printable characters to the logical key that produces them.
var runeKeys = map[rune]Key{
	' ':  KeySpace,
	':':  KeyColon,
	',':  KeyComma,
	'\\': KeyBackslash,
	'/':  KeySlash,
	'|':  KeyPipe,
	'?':  KeyQuestionmark,
	'!':  KeyExclamationmark,
	'[':  KeyOpenBracket,
	']':  KeyCloseBracket,
	'{':  KeyOpenCurlyBracket,
	'}':  KeyCloseCurlyBracket,
	'`':  KeyBacktick,
	'-':  KeyMinus,
	'.':  KeyPeriod,
	'+':  KeyPlus,
	'=':  KeyEquals,
	';':  KeySemicolon,
	'\'': KeyQuote,
}

// FromRune resolves the logical key for a single produced character. Letters
// are matched case-insensitively.
func FromRune(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	case r >= '0' && r <= '9':
		return KeyNum0 + Key(r-'0'), true
	}
	k, ok := runeKeys[r]
	return k, ok
}

// FromLayoutName resolves a layout key name as reported by a windowing backend.
// Single characters go through FromRune; longer names must match a display name.
func FromLayoutName(name string) (Key, bool) {
	runes := []rune(name)
	if len(runes) == 1 {
		return FromRune(runes[0])
	}
	return ParseKey(name)
}
