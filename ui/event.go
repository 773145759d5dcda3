package ui

import (
	"fmt"
	"image"
	"unicode"
)

// EventType is the kind of an input event.
type EventType int

const (
	Quit EventType = iota
	MouseDown
	MouseUp
	MouseMove
	KeyDown
	KeyUp
)

func (t EventType) String() string {
	switch t {
	case Quit:
		return "quit"
	case MouseDown:
		return "mousedown"
	case MouseUp:
		return "mouseup"
	case MouseMove:
		return "mousemove"
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Key identifies a keyboard key. Printable keys are the rune the key
// produces without modifiers ('a', '1', '[', ' ').
type Key rune

// Special keys have negative codes so they never collide with a rune.
const (
	KeyBackspace Key = -1 - iota
	KeyEnter
	KeyTab
	KeyEscape
	KeyDelete
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyShiftLeft
	KeyShiftRight
)

var keyNames = map[Key]string{
	KeyBackspace:  "Backspace",
	KeyEnter:      "Enter",
	KeyTab:        "Tab",
	KeyEscape:     "Escape",
	KeyDelete:     "Delete",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyShiftLeft:  "ShiftLeft",
	KeyShiftRight: "ShiftRight",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if r, ok := k.Rune(); ok {
		return fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Rune returns the printable rune of k, if any.
func (k Key) Rune() (rune, bool) {
	r := rune(k)
	if r < 0 || !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}

// IsShift reports whether k is either shift key.
func (k Key) IsShift() bool {
	return k == KeyShiftLeft || k == KeyShiftRight
}

// Event is a single input event. Events are values and are never modified
// during dispatch.
type Event struct {
	Type   EventType
	Button MouseButton
	// Pos is the pointer position in window coordinates.
	Pos image.Point
	Key Key
}

// HasPointer reports whether the event carries a pointer position.
func (e Event) HasPointer() bool {
	switch e.Type {
	case MouseDown, MouseUp, MouseMove:
		return true
	}
	return false
}

// Local returns the pointer position relative to a container at offset off.
func (e Event) Local(off image.Point) image.Point {
	return e.Pos.Sub(off)
}

func (e Event) isPrimary(t EventType) bool {
	return e.Type == t && e.Button == ButtonPrimary
}

func (e Event) String() string {
	switch {
	case e.HasPointer():
		return fmt.Sprintf("%v(%d)@%v", e.Type, e.Button, e.Pos)
	case e.Type == KeyDown || e.Type == KeyUp:
		return fmt.Sprintf("%v(%v)", e.Type, e.Key)
	}
	return e.Type.String()
}
