package uitest

import (
	"image"

	"github.com/OpticalFlyer/pane/ui"
)

// Press is a primary button press at (x, y).
func Press(x, y int) ui.Event {
	return ui.Event{Type: ui.MouseDown, Button: ui.ButtonPrimary, Pos: image.Pt(x, y)}
}

// Release is a primary button release at (x, y).
func Release(x, y int) ui.Event {
	return ui.Event{Type: ui.MouseUp, Button: ui.ButtonPrimary, Pos: image.Pt(x, y)}
}

// Move is a pointer motion to (x, y).
func Move(x, y int) ui.Event {
	return ui.Event{Type: ui.MouseMove, Pos: image.Pt(x, y)}
}

func KeyDown(k ui.Key) ui.Event {
	return ui.Event{Type: ui.KeyDown, Key: k}
}

func KeyUp(k ui.Key) ui.Event {
	return ui.Event{Type: ui.KeyUp, Key: k}
}

// Type returns a key press and release for every rune of s.
func Type(s string) []ui.Event {
	var evs []ui.Event
	for _, r := range s {
		evs = append(evs, KeyDown(ui.Key(r)), KeyUp(ui.Key(r)))
	}
	return evs
}
