package keys

import "fmt"

// PhysicalKey identifies a key by its position on the keyboard, independent of
// the active layout. Names follow the W3C KeyboardEvent.code values. The zero
// value PhysicalNone means the backend did not report a position.
type PhysicalKey int

const (
	PhysicalNone PhysicalKey = iota

	PhysicalKeyA
	PhysicalKeyB
	PhysicalKeyC
	PhysicalKeyD
	PhysicalKeyE
	PhysicalKeyF
	PhysicalKeyG
	PhysicalKeyH
	PhysicalKeyI
	PhysicalKeyJ
	PhysicalKeyK
	PhysicalKeyL
	PhysicalKeyM
	PhysicalKeyN
	PhysicalKeyO
	PhysicalKeyP
	PhysicalKeyQ
	PhysicalKeyR
	PhysicalKeyS
	PhysicalKeyT
	PhysicalKeyU
	PhysicalKeyV
	PhysicalKeyW
	PhysicalKeyX
	PhysicalKeyY
	PhysicalKeyZ

	PhysicalDigit0
	PhysicalDigit1
	PhysicalDigit2
	PhysicalDigit3
	PhysicalDigit4
	PhysicalDigit5
	PhysicalDigit6
	PhysicalDigit7
	PhysicalDigit8
	PhysicalDigit9

	PhysicalMinus
	PhysicalEqual
	PhysicalBracketLeft
	PhysicalBracketRight
	PhysicalBackslash
	PhysicalSemicolon
	PhysicalQuote
	PhysicalBackquote
	PhysicalComma
	PhysicalPeriod
	PhysicalSlash
	PhysicalIntlBackslash

	PhysicalEscape
	PhysicalTab
	PhysicalBackspace
	PhysicalEnter
	PhysicalSpace
	PhysicalInsert
	PhysicalDelete
	PhysicalHome
	PhysicalEnd
	PhysicalPageUp
	PhysicalPageDown
	PhysicalArrowDown
	PhysicalArrowLeft
	PhysicalArrowRight
	PhysicalArrowUp

	PhysicalCapsLock
	PhysicalNumLock
	PhysicalScrollLock
	PhysicalPrintScreen
	PhysicalPause
	PhysicalContextMenu

	PhysicalShiftLeft
	PhysicalShiftRight
	PhysicalControlLeft
	PhysicalControlRight
	PhysicalAltLeft
	PhysicalAltRight
	PhysicalMetaLeft
	PhysicalMetaRight

	PhysicalNumpad0
	PhysicalNumpad1
	PhysicalNumpad2
	PhysicalNumpad3
	PhysicalNumpad4
	PhysicalNumpad5
	PhysicalNumpad6
	PhysicalNumpad7
	PhysicalNumpad8
	PhysicalNumpad9
	PhysicalNumpadAdd
	PhysicalNumpadSubtract
	PhysicalNumpadMultiply
	PhysicalNumpadDivide
	PhysicalNumpadDecimal
	PhysicalNumpadEnter
	PhysicalNumpadEqual

	PhysicalF1
	PhysicalF2
	PhysicalF3
	PhysicalF4
	PhysicalF5
	PhysicalF6
	PhysicalF7
	PhysicalF8
	PhysicalF9
	PhysicalF10
	PhysicalF11
	PhysicalF12
	PhysicalF13
	PhysicalF14
	PhysicalF15
	PhysicalF16
	PhysicalF17
	PhysicalF18
	PhysicalF19
	PhysicalF20
	PhysicalF21
	PhysicalF22
	PhysicalF23
	PhysicalF24

	physicalCount
)

var physicalNames = [physicalCount]string{
	PhysicalMinus:         "Minus",
	PhysicalEqual:         "Equal",
	PhysicalBracketLeft:   "BracketLeft",
	PhysicalBracketRight:  "BracketRight",
	PhysicalBackslash:     "Backslash",
	PhysicalSemicolon:     "Semicolon",
	PhysicalQuote:         "Quote",
	PhysicalBackquote:     "Backquote",
	PhysicalComma:         "Comma",
	PhysicalPeriod:        "Period",
	PhysicalSlash:         "Slash",
	PhysicalIntlBackslash: "IntlBackslash",

	PhysicalEscape:     "Escape",
	PhysicalTab:        "Tab",
	PhysicalBackspace:  "Backspace",
	PhysicalEnter:      "Enter",
	PhysicalSpace:      "Space",
	PhysicalInsert:     "Insert",
	PhysicalDelete:     "Delete",
	PhysicalHome:       "Home",
	PhysicalEnd:        "End",
	PhysicalPageUp:     "PageUp",
	PhysicalPageDown:   "PageDown",
	PhysicalArrowDown:  "ArrowDown",
	PhysicalArrowLeft:  "ArrowLeft",
	PhysicalArrowRight: "ArrowRight",
	PhysicalArrowUp:    "ArrowUp",

	PhysicalCapsLock:    "CapsLock",
	PhysicalNumLock:     "NumLock",
	PhysicalScrollLock:  "ScrollLock",
	PhysicalPrintScreen: "PrintScreen",
	PhysicalPause:       "Pause",
	PhysicalContextMenu: "ContextMenu",

	PhysicalShiftLeft:    "ShiftLeft",
	PhysicalShiftRight:   "ShiftRight",
	PhysicalControlLeft:  "ControlLeft",
	PhysicalControlRight: "ControlRight",
	PhysicalAltLeft:      "AltLeft",
	PhysicalAltRight:     "AltRight",
	PhysicalMetaLeft:     "MetaLeft",
	PhysicalMetaRight:    "MetaRight",

	PhysicalNumpadAdd:      "NumpadAdd",
	PhysicalNumpadSubtract: "NumpadSubtract",
	PhysicalNumpadMultiply: "NumpadMultiply",
	PhysicalNumpadDivide:   "NumpadDivide",
	PhysicalNumpadDecimal:  "NumpadDecimal",
	PhysicalNumpadEnter:    "NumpadEnter",
	PhysicalNumpadEqual:    "NumpadEqual",
}

var physicalByName = make(map[string]PhysicalKey, physicalCount)

// physicalDefaults is the US layout resolution used when a backend cannot
// report the logical key itself.
var physicalDefaults = [physicalCount]Key{
	PhysicalMinus:         KeyMinus,
	PhysicalEqual:         KeyEquals,
	PhysicalBracketLeft:   KeyOpenBracket,
	PhysicalBracketRight:  KeyCloseBracket,
	PhysicalBackslash:     KeyBackslash,
	PhysicalSemicolon:     KeySemicolon,
	PhysicalQuote:         KeyQuote,
	PhysicalBackquote:     KeyBacktick,
	PhysicalComma:         KeyComma,
	PhysicalPeriod:        KeyPeriod,
	PhysicalSlash:         KeySlash,
	PhysicalIntlBackslash: KeyBackslash,

	PhysicalEscape:     KeyEscape,
	PhysicalTab:        KeyTab,
	PhysicalBackspace:  KeyBackspace,
	PhysicalEnter:      KeyEnter,
	PhysicalSpace:      KeySpace,
	PhysicalInsert:     KeyInsert,
	PhysicalDelete:     KeyDelete,
	PhysicalHome:       KeyHome,
	PhysicalEnd:        KeyEnd,
	PhysicalPageUp:     KeyPageUp,
	PhysicalPageDown:   KeyPageDown,
	PhysicalArrowDown:  KeyArrowDown,
	PhysicalArrowLeft:  KeyArrowLeft,
	PhysicalArrowRight: KeyArrowRight,
	PhysicalArrowUp:    KeyArrowUp,

	PhysicalCapsLock: KeyCapsLock,

	PhysicalShiftLeft:    KeyShift,
	PhysicalShiftRight:   KeyShift,
	PhysicalControlLeft:  KeyControl,
	PhysicalControlRight: KeyControl,
	PhysicalAltLeft:      KeyAlt,
	PhysicalAltRight:     KeyAlt,
	PhysicalMetaLeft:     KeyMeta,
	PhysicalMetaRight:    KeyMeta,

	PhysicalNumpadAdd:      KeyPlus,
	PhysicalNumpadSubtract: KeyMinus,
	PhysicalNumpadDivide:   KeySlash,
	PhysicalNumpadDecimal:  KeyPeriod,
	PhysicalNumpadEnter:    KeyEnter,
	PhysicalNumpadEqual:    KeyEquals,
}

func init() {
	for i := 0; i < 26; i++ {
		physicalNames[PhysicalKeyA+PhysicalKey(i)] = "Key" + string(rune('A'+i))
		physicalDefaults[PhysicalKeyA+PhysicalKey(i)] = KeyA + Key(i)
	}
	for i := 0; i < 10; i++ {
		physicalNames[PhysicalDigit0+PhysicalKey(i)] = fmt.Sprintf("Digit%d", i)
		physicalNames[PhysicalNumpad0+PhysicalKey(i)] = fmt.Sprintf("Numpad%d", i)
		physicalDefaults[PhysicalDigit0+PhysicalKey(i)] = KeyNum0 + Key(i)
		physicalDefaults[PhysicalNumpad0+PhysicalKey(i)] = KeyNum0 + Key(i)
	}
	for i := 0; i < 24; i++ {
		physicalNames[PhysicalF1+PhysicalKey(i)] = fmt.Sprintf("F%d", i+1)
		physicalDefaults[PhysicalF1+PhysicalKey(i)] = KeyF1 + Key(i)
	}
	for p := PhysicalNone + 1; p < physicalCount; p++ {
		physicalByName[physicalNames[p]] = p
	}
}

// String returns the display name of the physical key, e.g. "KeyA" or "ShiftLeft".
func (p PhysicalKey) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PhysicalKey(%d)", int(p))
	}
	return physicalNames[p]
}

// Valid reports whether p is a reported physical key (PhysicalNone excluded).
func (p PhysicalKey) Valid() bool {
	return p > PhysicalNone && p < physicalCount
}

// DefaultKey returns the logical key p produces on a US layout, or KeyNone for
// keys without a logical counterpart (NumLock, PrintScreen, ...).
func (p PhysicalKey) DefaultKey() Key {
	if !p.Valid() {
		return KeyNone
	}
	return physicalDefaults[p]
}

// AllPhysicalKeys returns every physical key in enumeration order.
func AllPhysicalKeys() []PhysicalKey {
	all := make([]PhysicalKey, 0, physicalCount-1)
	for p := PhysicalNone + 1; p < physicalCount; p++ {
		all = append(all, p)
	}
	return all
}

// ParsePhysicalKey returns the physical key whose display name is name.
func ParsePhysicalKey(name string) (PhysicalKey, bool) {
	p, ok := physicalByName[name]
	return p, ok
}
