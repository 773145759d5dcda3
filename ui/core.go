package ui

import (
	"fmt"
	"image"
	"image/color"
	"sync/atomic"

	"github.com/OpticalFlyer/pane/coord"
)

// ID identifies a widget inside the arena of its Window. IDs of different
// windows never collide.
type ID int64

// Widget represents the basic building block of the UI system.
// All UI elements must implement this interface.
type Widget interface {
	ID() ID
	Draw()
	// Process handles one input event. off is the accumulated offset of
	// the widget's container from the window origin; pointer coordinates
	// are local to the container at ev.Local(off).
	Process(ev Event, off image.Point)
}

// Container represents a Widget that owns a surface and an ordered list of
// children. Insertion order is both paint order and dispatch order.
type Container interface {
	Widget
	Surface() Surface
	System() coord.System
	Background() color.Color
	Children() []ID

	nodes() *arena
	attach(id ID)
	detach(id ID)
}

// arenaShift splits an ID into the arena serial (high bits) and the slot
// index (low bits).
const arenaShift = 32

var arenaSerial atomic.Int64

// arena holds every widget created under one Window. IDs are the arena's
// base plus a slice index and slots are never reused.
type arena struct {
	backend Backend
	base    ID
	widgets []Widget
}

func newArena(b Backend) *arena {
	return &arena{backend: b, base: ID(arenaSerial.Add(1)) << arenaShift}
}

func (a *arena) add(w Widget) ID {
	a.widgets = append(a.widgets, w)
	return a.base + ID(len(a.widgets)-1)
}

// widget returns the widget with the given id. It panics on ids that are
// unknown or belong to another window.
func (a *arena) widget(id ID) Widget {
	i := id - a.base
	if i < 0 || i >= ID(len(a.widgets)) {
		panic(fmt.Sprintf("ui: unknown widget id %d", id))
	}
	return a.widgets[i]
}

func (a *arena) container(id ID) Container {
	c, ok := a.widget(id).(Container)
	if !ok {
		panic(fmt.Sprintf("ui: widget %d is not a container", id))
	}
	return c
}

// Font describes a typeface by name and pixel size.
type Font struct {
	Name string
	Size int
}

// DefaultFont is used for zero fields of a Font.
var DefaultFont = Font{Name: "goregular", Size: 30}

func (f Font) or(def Font) Font {
	if f.Name == "" {
		f.Name = def.Name
	}
	if f.Size == 0 {
		f.Size = def.Size
	}
	return f
}

// Style holds the colors and font of a leaf widget. Zero fields take the
// widget's default.
type Style struct {
	Background color.Color
	Foreground color.Color
	Font       Font
}

func (s Style) or(def Style) Style {
	if s.Background == nil {
		s.Background = def.Background
	}
	if s.Foreground == nil {
		s.Foreground = def.Foreground
	}
	s.Font = s.Font.or(def.Font)
	return s
}

var defaultStyle = Style{
	Background: color.White,
	Foreground: color.Black,
	Font:       DefaultFont,
}
