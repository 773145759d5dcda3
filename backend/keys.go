package backend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/pane/ui"
)

var letterKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE,
	ebiten.KeyF, ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ,
	ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN, ebiten.KeyO,
	ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT,
	ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY,
	ebiten.KeyZ,
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

var numpadKeys = []ebiten.Key{
	ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4,
	ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
}

// keymap maps physical keys to ui keys. Printable keys map to the rune
// they type without modifiers.
var keymap = map[ebiten.Key]ui.Key{
	ebiten.KeyMinus:        '-',
	ebiten.KeyEqual:        '=',
	ebiten.KeyBracketLeft:  '[',
	ebiten.KeyBracketRight: ']',
	ebiten.KeyBackslash:    '\\',
	ebiten.KeySemicolon:    ';',
	ebiten.KeyQuote:        '\'',
	ebiten.KeyComma:        ',',
	ebiten.KeyPeriod:       '.',
	ebiten.KeySlash:        '/',
	ebiten.KeyBackquote:    '`',
	ebiten.KeySpace:        ' ',

	ebiten.KeyNumpadAdd:      '+',
	ebiten.KeyNumpadSubtract: '-',
	ebiten.KeyNumpadMultiply: '*',
	ebiten.KeyNumpadDivide:   '/',
	ebiten.KeyNumpadDecimal:  '.',
	ebiten.KeyNumpadEnter:    ui.KeyEnter,

	ebiten.KeyBackspace:  ui.KeyBackspace,
	ebiten.KeyEnter:      ui.KeyEnter,
	ebiten.KeyTab:        ui.KeyTab,
	ebiten.KeyEscape:     ui.KeyEscape,
	ebiten.KeyDelete:     ui.KeyDelete,
	ebiten.KeyArrowLeft:  ui.KeyArrowLeft,
	ebiten.KeyArrowRight: ui.KeyArrowRight,
	ebiten.KeyArrowUp:    ui.KeyArrowUp,
	ebiten.KeyArrowDown:  ui.KeyArrowDown,
	ebiten.KeyHome:       ui.KeyHome,
	ebiten.KeyEnd:        ui.KeyEnd,
	ebiten.KeyShiftLeft:  ui.KeyShiftLeft,
	ebiten.KeyShiftRight: ui.KeyShiftRight,
}

func init() {
	for i, k := range letterKeys {
		keymap[k] = ui.Key('a' + rune(i))
	}
	for i, k := range digitKeys {
		keymap[k] = ui.Key('0' + rune(i))
	}
	for i, k := range numpadKeys {
		keymap[k] = ui.Key('0' + rune(i))
	}
}

// translateKey returns the ui key for k. Keys the ui does not know, such
// as function keys, are dropped.
func translateKey(k ebiten.Key) (ui.Key, bool) {
	key, ok := keymap[k]
	return key, ok
}
