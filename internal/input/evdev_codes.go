package input

import (
	"keywatch/internal/keys"
	"keywatch/internal/tracker"
)

// Linux input event key values.
const (
	evdevRelease int32 = 0
	evdevPress   int32 = 1
	evdevRepeat  int32 = 2
)

// evdevPhysical maps Linux KEY_* scancodes (input-event-codes.h) to physical keys.
var evdevPhysical = map[uint16]keys.PhysicalKey{
	1:   keys.PhysicalEscape,
	2:   keys.PhysicalDigit1,
	3:   keys.PhysicalDigit2,
	4:   keys.PhysicalDigit3,
	5:   keys.PhysicalDigit4,
	6:   keys.PhysicalDigit5,
	7:   keys.PhysicalDigit6,
	8:   keys.PhysicalDigit7,
	9:   keys.PhysicalDigit8,
	10:  keys.PhysicalDigit9,
	11:  keys.PhysicalDigit0,
	12:  keys.PhysicalMinus,
	13:  keys.PhysicalEqual,
	14:  keys.PhysicalBackspace,
	15:  keys.PhysicalTab,
	16:  keys.PhysicalKeyQ,
	17:  keys.PhysicalKeyW,
	18:  keys.PhysicalKeyE,
	19:  keys.PhysicalKeyR,
	20:  keys.PhysicalKeyT,
	21:  keys.PhysicalKeyY,
	22:  keys.PhysicalKeyU,
	23:  keys.PhysicalKeyI,
	24:  keys.PhysicalKeyO,
	25:  keys.PhysicalKeyP,
	26:  keys.PhysicalBracketLeft,
	27:  keys.PhysicalBracketRight,
	28:  keys.PhysicalEnter,
	29:  keys.PhysicalControlLeft,
	30:  keys.PhysicalKeyA,
	31:  keys.PhysicalKeyS,
	32:  keys.PhysicalKeyD,
	33:  keys.PhysicalKeyF,
	34:  keys.PhysicalKeyG,
	35:  keys.PhysicalKeyH,
	36:  keys.PhysicalKeyJ,
	37:  keys.PhysicalKeyK,
	38:  keys.PhysicalKeyL,
	39:  keys.PhysicalSemicolon,
	40:  keys.PhysicalQuote,
	41:  keys.PhysicalBackquote,
	42:  keys.PhysicalShiftLeft,
	43:  keys.PhysicalBackslash,
	44:  keys.PhysicalKeyZ,
	45:  keys.PhysicalKeyX,
	46:  keys.PhysicalKeyC,
	47:  keys.PhysicalKeyV,
	48:  keys.PhysicalKeyB,
	49:  keys.PhysicalKeyN,
	50:  keys.PhysicalKeyM,
	51:  keys.PhysicalComma,
	52:  keys.PhysicalPeriod,
	53:  keys.PhysicalSlash,
	54:  keys.PhysicalShiftRight,
	55:  keys.PhysicalNumpadMultiply,
	56:  keys.PhysicalAltLeft,
	57:  keys.PhysicalSpace,
	58:  keys.PhysicalCapsLock,
	59:  keys.PhysicalF1,
	60:  keys.PhysicalF2,
	61:  keys.PhysicalF3,
	62:  keys.PhysicalF4,
	63:  keys.PhysicalF5,
	64:  keys.PhysicalF6,
	65:  keys.PhysicalF7,
	66:  keys.PhysicalF8,
	67:  keys.PhysicalF9,
	68:  keys.PhysicalF10,
	69:  keys.PhysicalNumLock,
	70:  keys.PhysicalScrollLock,
	71:  keys.PhysicalNumpad7,
	72:  keys.PhysicalNumpad8,
	73:  keys.PhysicalNumpad9,
	74:  keys.PhysicalNumpadSubtract,
	75:  keys.PhysicalNumpad4,
	76:  keys.PhysicalNumpad5,
	77:  keys.PhysicalNumpad6,
	78:  keys.PhysicalNumpadAdd,
	79:  keys.PhysicalNumpad1,
	80:  keys.PhysicalNumpad2,
	81:  keys.PhysicalNumpad3,
	82:  keys.PhysicalNumpad0,
	83:  keys.PhysicalNumpadDecimal,
	86:  keys.PhysicalIntlBackslash,
	87:  keys.PhysicalF11,
	88:  keys.PhysicalF12,
	96:  keys.PhysicalNumpadEnter,
	97:  keys.PhysicalControlRight,
	98:  keys.PhysicalNumpadDivide,
	99:  keys.PhysicalPrintScreen,
	100: keys.PhysicalAltRight,
	102: keys.PhysicalHome,
	103: keys.PhysicalArrowUp,
	104: keys.PhysicalPageUp,
	105: keys.PhysicalArrowLeft,
	106: keys.PhysicalArrowRight,
	107: keys.PhysicalEnd,
	108: keys.PhysicalArrowDown,
	109: keys.PhysicalPageDown,
	110: keys.PhysicalInsert,
	111: keys.PhysicalDelete,
	117: keys.PhysicalNumpadEqual,
	119: keys.PhysicalPause,
	125: keys.PhysicalMetaLeft,
	126: keys.PhysicalMetaRight,
	127: keys.PhysicalContextMenu,
	183: keys.PhysicalF13,
	184: keys.PhysicalF14,
	185: keys.PhysicalF15,
	186: keys.PhysicalF16,
	187: keys.PhysicalF17,
	188: keys.PhysicalF18,
	189: keys.PhysicalF19,
	190: keys.PhysicalF20,
	191: keys.PhysicalF21,
	192: keys.PhysicalF22,
	193: keys.PhysicalF23,
	194: keys.PhysicalF24,
}

// evdevDecoder turns raw key events into tracker events. The kernel knows
// nothing about layouts, so logical keys and text use the US layout.
type evdevDecoder struct {
	shiftDown map[keys.PhysicalKey]bool
	capsLock  bool
}

func newEvdevDecoder() *evdevDecoder {
	return &evdevDecoder{shiftDown: make(map[keys.PhysicalKey]bool)}
}

func (d *evdevDecoder) decode(events []tracker.Event, code uint16, value int32) []tracker.Event {
	p, ok := evdevPhysical[code]
	if !ok {
		return events
	}

	pressed := value == evdevPress || value == evdevRepeat
	switch p {
	case keys.PhysicalShiftLeft, keys.PhysicalShiftRight:
		d.shiftDown[p] = pressed
	case keys.PhysicalCapsLock:
		if value == evdevPress {
			d.capsLock = !d.capsLock
		}
	}

	k := p.DefaultKey()
	if k == keys.KeyNone {
		return events
	}
	events = append(events, tracker.KeyEvent{
		Key:      k,
		Pressed:  pressed,
		Repeat:   value == evdevRepeat,
		Physical: p,
	})
	if pressed {
		if text := usText(p, d.shifted(), d.capsLock); text != "" {
			events = append(events, tracker.TextEvent{Text: text})
		}
	}
	return events
}

func (d *evdevDecoder) shifted() bool {
	return d.shiftDown[keys.PhysicalShiftLeft] || d.shiftDown[keys.PhysicalShiftRight]
}

var usDigitsShifted = [10]string{")", "!", "@", "#", "$", "%", "^", "&", "*", "("}

// usSymbols holds the unshifted and shifted characters of the punctuation keys.
var usSymbols = map[keys.PhysicalKey][2]string{
	keys.PhysicalMinus:         {"-", "_"},
	keys.PhysicalEqual:         {"=", "+"},
	keys.PhysicalBracketLeft:   {"[", "{"},
	keys.PhysicalBracketRight:  {"]", "}"},
	keys.PhysicalBackslash:     {"\\", "|"},
	keys.PhysicalIntlBackslash: {"\\", "|"},
	keys.PhysicalSemicolon:     {";", ":"},
	keys.PhysicalQuote:         {"'", "\""},
	keys.PhysicalBackquote:     {"`", "~"},
	keys.PhysicalComma:         {",", "<"},
	keys.PhysicalPeriod:        {".", ">"},
	keys.PhysicalSlash:         {"/", "?"},
	keys.PhysicalSpace:         {" ", " "},
}

var usNumpad = map[keys.PhysicalKey]string{
	keys.PhysicalNumpadAdd:      "+",
	keys.PhysicalNumpadSubtract: "-",
	keys.PhysicalNumpadMultiply: "*",
	keys.PhysicalNumpadDivide:   "/",
	keys.PhysicalNumpadDecimal:  ".",
	keys.PhysicalNumpadEqual:    "=",
}

// usText returns the text p types on a US layout, or "" for non-printing keys.
func usText(p keys.PhysicalKey, shift, capsLock bool) string {
	switch {
	case p >= keys.PhysicalKeyA && p <= keys.PhysicalKeyZ:
		r := rune('a' + int(p-keys.PhysicalKeyA))
		if shift != capsLock {
			r -= 'a' - 'A'
		}
		return string(r)
	case p >= keys.PhysicalDigit0 && p <= keys.PhysicalDigit9:
		i := int(p - keys.PhysicalDigit0)
		if shift {
			return usDigitsShifted[i]
		}
		return string(rune('0' + i))
	case p >= keys.PhysicalNumpad0 && p <= keys.PhysicalNumpad9:
		return string(rune('0' + int(p-keys.PhysicalNumpad0)))
	}
	if pair, ok := usSymbols[p]; ok {
		if shift {
			return pair[1]
		}
		return pair[0]
	}
	return usNumpad[p]
}
