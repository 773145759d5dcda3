package backend

import (
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/pane/ui"
)

// touchState tracks the finger acting as the primary pointer.
type touchState struct {
	id     ebiten.TouchID
	active bool
	last   image.Point
}

// step advances the state by one tick. ids are the touches currently down
// and pos reports their positions. The first finger down becomes the
// pointer; further fingers are ignored until it lifts.
func (s touchState) step(ids []ebiten.TouchID, pos func(ebiten.TouchID) image.Point) (touchState, []ui.Event) {
	var evs []ui.Event

	if s.active && !slices.Contains(ids, s.id) {
		// Lifted since the last tick, release where it was last seen.
		s.active = false
		evs = append(evs, ui.Event{Type: ui.MouseUp, Button: ui.ButtonPrimary, Pos: s.last})
	}

	if !s.active {
		if len(ids) == 0 {
			return s, evs
		}
		s = touchState{id: ids[0], active: true, last: pos(ids[0])}
		return s, append(evs,
			ui.Event{Type: ui.MouseMove, Pos: s.last},
			ui.Event{Type: ui.MouseDown, Button: ui.ButtonPrimary, Pos: s.last})
	}

	if p := pos(s.id); p != s.last {
		s.last = p
		evs = append(evs, ui.Event{Type: ui.MouseMove, Pos: p})
	}
	return s, evs
}

func (b *Backend) collectTouches() {
	b.touchIDs = ebiten.AppendTouchIDs(b.touchIDs[:0])
	var evs []ui.Event
	b.touch, evs = b.touch.step(b.touchIDs, touchPosition)
	b.queue = append(b.queue, evs...)
}

func touchPosition(id ebiten.TouchID) image.Point {
	x, y := ebiten.TouchPosition(id)
	return image.Pt(x, y)
}
