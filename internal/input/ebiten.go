package input

import (
	"keywatch/internal/input/keystate"
	"keywatch/internal/keys"
	"keywatch/internal/tracker"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenPhysical maps ebiten's positional keys to physical keys. ebiten's
// legacy aliases (KeyShift, KeyUp, Key0, ...) are intentionally absent.
var ebitenPhysical = map[ebiten.Key]keys.PhysicalKey{
	ebiten.KeyA: keys.PhysicalKeyA,
	ebiten.KeyB: keys.PhysicalKeyB,
	ebiten.KeyC: keys.PhysicalKeyC,
	ebiten.KeyD: keys.PhysicalKeyD,
	ebiten.KeyE: keys.PhysicalKeyE,
	ebiten.KeyF: keys.PhysicalKeyF,
	ebiten.KeyG: keys.PhysicalKeyG,
	ebiten.KeyH: keys.PhysicalKeyH,
	ebiten.KeyI: keys.PhysicalKeyI,
	ebiten.KeyJ: keys.PhysicalKeyJ,
	ebiten.KeyK: keys.PhysicalKeyK,
	ebiten.KeyL: keys.PhysicalKeyL,
	ebiten.KeyM: keys.PhysicalKeyM,
	ebiten.KeyN: keys.PhysicalKeyN,
	ebiten.KeyO: keys.PhysicalKeyO,
	ebiten.KeyP: keys.PhysicalKeyP,
	ebiten.KeyQ: keys.PhysicalKeyQ,
	ebiten.KeyR: keys.PhysicalKeyR,
	ebiten.KeyS: keys.PhysicalKeyS,
	ebiten.KeyT: keys.PhysicalKeyT,
	ebiten.KeyU: keys.PhysicalKeyU,
	ebiten.KeyV: keys.PhysicalKeyV,
	ebiten.KeyW: keys.PhysicalKeyW,
	ebiten.KeyX: keys.PhysicalKeyX,
	ebiten.KeyY: keys.PhysicalKeyY,
	ebiten.KeyZ: keys.PhysicalKeyZ,

	ebiten.KeyDigit0: keys.PhysicalDigit0,
	ebiten.KeyDigit1: keys.PhysicalDigit1,
	ebiten.KeyDigit2: keys.PhysicalDigit2,
	ebiten.KeyDigit3: keys.PhysicalDigit3,
	ebiten.KeyDigit4: keys.PhysicalDigit4,
	ebiten.KeyDigit5: keys.PhysicalDigit5,
	ebiten.KeyDigit6: keys.PhysicalDigit6,
	ebiten.KeyDigit7: keys.PhysicalDigit7,
	ebiten.KeyDigit8: keys.PhysicalDigit8,
	ebiten.KeyDigit9: keys.PhysicalDigit9,

	ebiten.KeyMinus:         keys.PhysicalMinus,
	ebiten.KeyEqual:         keys.PhysicalEqual,
	ebiten.KeyBracketLeft:   keys.PhysicalBracketLeft,
	ebiten.KeyBracketRight:  keys.PhysicalBracketRight,
	ebiten.KeyBackslash:     keys.PhysicalBackslash,
	ebiten.KeySemicolon:     keys.PhysicalSemicolon,
	ebiten.KeyQuote:         keys.PhysicalQuote,
	ebiten.KeyBackquote:     keys.PhysicalBackquote,
	ebiten.KeyComma:         keys.PhysicalComma,
	ebiten.KeyPeriod:        keys.PhysicalPeriod,
	ebiten.KeySlash:         keys.PhysicalSlash,
	ebiten.KeyIntlBackslash: keys.PhysicalIntlBackslash,

	ebiten.KeyEscape:     keys.PhysicalEscape,
	ebiten.KeyTab:        keys.PhysicalTab,
	ebiten.KeyBackspace:  keys.PhysicalBackspace,
	ebiten.KeyEnter:      keys.PhysicalEnter,
	ebiten.KeySpace:      keys.PhysicalSpace,
	ebiten.KeyInsert:     keys.PhysicalInsert,
	ebiten.KeyDelete:     keys.PhysicalDelete,
	ebiten.KeyHome:       keys.PhysicalHome,
	ebiten.KeyEnd:        keys.PhysicalEnd,
	ebiten.KeyPageUp:     keys.PhysicalPageUp,
	ebiten.KeyPageDown:   keys.PhysicalPageDown,
	ebiten.KeyArrowDown:  keys.PhysicalArrowDown,
	ebiten.KeyArrowLeft:  keys.PhysicalArrowLeft,
	ebiten.KeyArrowRight: keys.PhysicalArrowRight,
	ebiten.KeyArrowUp:    keys.PhysicalArrowUp,

	ebiten.KeyCapsLock:    keys.PhysicalCapsLock,
	ebiten.KeyNumLock:     keys.PhysicalNumLock,
	ebiten.KeyScrollLock:  keys.PhysicalScrollLock,
	ebiten.KeyPrintScreen: keys.PhysicalPrintScreen,
	ebiten.KeyPause:       keys.PhysicalPause,
	ebiten.KeyContextMenu: keys.PhysicalContextMenu,

	ebiten.KeyShiftLeft:    keys.PhysicalShiftLeft,
	ebiten.KeyShiftRight:   keys.PhysicalShiftRight,
	ebiten.KeyControlLeft:  keys.PhysicalControlLeft,
	ebiten.KeyControlRight: keys.PhysicalControlRight,
	ebiten.KeyAltLeft:      keys.PhysicalAltLeft,
	ebiten.KeyAltRight:     keys.PhysicalAltRight,
	ebiten.KeyMetaLeft:     keys.PhysicalMetaLeft,
	ebiten.KeyMetaRight:    keys.PhysicalMetaRight,

	ebiten.KeyNumpad0:        keys.PhysicalNumpad0,
	ebiten.KeyNumpad1:        keys.PhysicalNumpad1,
	ebiten.KeyNumpad2:        keys.PhysicalNumpad2,
	ebiten.KeyNumpad3:        keys.PhysicalNumpad3,
	ebiten.KeyNumpad4:        keys.PhysicalNumpad4,
	ebiten.KeyNumpad5:        keys.PhysicalNumpad5,
	ebiten.KeyNumpad6:        keys.PhysicalNumpad6,
	ebiten.KeyNumpad7:        keys.PhysicalNumpad7,
	ebiten.KeyNumpad8:        keys.PhysicalNumpad8,
	ebiten.KeyNumpad9:        keys.PhysicalNumpad9,
	ebiten.KeyNumpadAdd:      keys.PhysicalNumpadAdd,
	ebiten.KeyNumpadSubtract: keys.PhysicalNumpadSubtract,
	ebiten.KeyNumpadMultiply: keys.PhysicalNumpadMultiply,
	ebiten.KeyNumpadDivide:   keys.PhysicalNumpadDivide,
	ebiten.KeyNumpadDecimal:  keys.PhysicalNumpadDecimal,
	ebiten.KeyNumpadEnter:    keys.PhysicalNumpadEnter,
	ebiten.KeyNumpadEqual:    keys.PhysicalNumpadEqual,

	ebiten.KeyF1:  keys.PhysicalF1,
	ebiten.KeyF2:  keys.PhysicalF2,
	ebiten.KeyF3:  keys.PhysicalF3,
	ebiten.KeyF4:  keys.PhysicalF4,
	ebiten.KeyF5:  keys.PhysicalF5,
	ebiten.KeyF6:  keys.PhysicalF6,
	ebiten.KeyF7:  keys.PhysicalF7,
	ebiten.KeyF8:  keys.PhysicalF8,
	ebiten.KeyF9:  keys.PhysicalF9,
	ebiten.KeyF10: keys.PhysicalF10,
	ebiten.KeyF11: keys.PhysicalF11,
	ebiten.KeyF12: keys.PhysicalF12,
	ebiten.KeyF13: keys.PhysicalF13,
	ebiten.KeyF14: keys.PhysicalF14,
	ebiten.KeyF15: keys.PhysicalF15,
	ebiten.KeyF16: keys.PhysicalF16,
	ebiten.KeyF17: keys.PhysicalF17,
	ebiten.KeyF18: keys.PhysicalF18,
	ebiten.KeyF19: keys.PhysicalF19,
	ebiten.KeyF20: keys.PhysicalF20,
	ebiten.KeyF21: keys.PhysicalF21,
	ebiten.KeyF22: keys.PhysicalF22,
	ebiten.KeyF23: keys.PhysicalF23,
	ebiten.KeyF24: keys.PhysicalF24,
}

var physicalEbiten = make(map[keys.PhysicalKey]ebiten.Key, len(ebitenPhysical))

func init() {
	for k, p := range ebitenPhysical {
		physicalEbiten[p] = k
	}
}

// EbitenSource polls the ebiten window once per tick. Physical identity comes
// from ebiten's positional keys, logical identity from the layout name ebiten
// reports for them.
type EbitenSource struct {
	// edges are diffed here rather than by inpututil, whose key durations keep
	// counting across a focus loss and would hide the re-press on refocus
	state       *keystate.KeyStateTracker
	keyName     func(ebiten.Key) string
	focused     func() bool
	pressedKeys func([]ebiten.Key) []ebiten.Key
	inputChars  func([]rune) []rune

	hasFocus bool
	keyBuf   []ebiten.Key
	charBuf  []rune
}

// NewEbitenSource creates a source bound to the running ebiten game.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{
		state:       keystate.NewKeyStateTracker(),
		keyName:     ebiten.KeyName,
		focused:     ebiten.IsFocused,
		pressedKeys: inpututil.AppendPressedKeys,
		inputChars:  ebiten.AppendInputChars,
		hasFocus:    true,
	}
}

// Poll must be called from the game's Update.
func (s *EbitenSource) Poll() []tracker.Event {
	var events []tracker.Event

	focused := s.focused()
	if focused != s.hasFocus {
		s.hasFocus = focused
		events = append(events, tracker.FocusEvent{Focused: focused})
		if !focused {
			// releases are not delivered while unfocused
			return appendBatch(events, s.state.ReleaseAll(), nil, s.resolve, "")
		}
	}
	if !focused {
		return events
	}

	s.keyBuf = s.pressedKeys(s.keyBuf[:0])
	s.charBuf = s.inputChars(s.charBuf[:0])
	return s.batch(s.keyBuf, s.charBuf, events)
}

func (s *EbitenSource) batch(down []ebiten.Key, chars []rune, events []tracker.Event) []tracker.Event {
	physical := make([]keys.PhysicalKey, 0, len(down))
	for _, k := range down {
		if p, ok := ebitenPhysical[k]; ok {
			physical = append(physical, p)
		}
	}
	pressed, released := s.state.Update(physical)
	return appendBatch(events, released, pressed, s.resolve, string(chars))
}

// resolve prefers the layout name and falls back to the US layout for keys the
// platform does not name (modifiers, navigation keys).
func (s *EbitenSource) resolve(p keys.PhysicalKey) keys.Key {
	if k, ok := physicalEbiten[p]; ok && s.keyName != nil {
		if logical, ok := keys.FromLayoutName(s.keyName(k)); ok {
			return logical
		}
	}
	return p.DefaultKey()
}

// Close is a no-op; the window owns the input state.
func (s *EbitenSource) Close() error {
	return nil
}
