package ui

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/OpticalFlyer/pane/coord"
)

var _ Container = (*Window)(nil)

// exit terminates the process when the window is closed.
var exit = os.Exit

// WindowConfig describes the root window.
type WindowConfig struct {
	Size       image.Point
	Title      string
	System     coord.System
	Background color.Color
}

// Window is the root container. It owns the display surface and the arena
// every other widget lives in.
type Window struct {
	container
	backend Backend
	size    image.Point
	title   string
}

// NewWindow initializes the backend display and returns the root window.
func NewWindow(b Backend, cfg WindowConfig) (*Window, error) {
	surface, err := b.Init(cfg.Size, cfg.Title)
	if err != nil {
		return nil, fmt.Errorf("initializing window %q: %w", cfg.Title, err)
	}

	bg := cfg.Background
	if bg == nil {
		bg = color.Black
	}

	w := &Window{
		container: container{
			tree:    newArena(b),
			system:  cfg.System,
			bg:      bg,
			surface: surface,
		},
		backend: b,
		size:    cfg.Size,
		title:   cfg.Title,
	}
	w.id = w.tree.add(w)
	return w, nil
}

func (w *Window) Size() image.Point { return w.size }
func (w *Window) Title() string     { return w.title }

// Lookup returns the widget with the given id.
func (w *Window) Lookup(id ID) Widget {
	return w.tree.widget(id)
}

// Update drains pending backend events and dispatches each one to the
// top-level children. A Quit event exits the process immediately.
func (w *Window) Update() {
	for _, ev := range w.backend.Poll() {
		if ev.Type == Quit {
			exit(0)
			return
		}
		w.Process(ev, image.Point{})
	}
}

// Process forwards ev, unmodified, to every top-level child.
func (w *Window) Process(ev Event, off image.Point) {
	w.dispatch(ev, off)
}

// Draw paints every widget and presents the display.
func (w *Window) Draw() {
	w.paint()
	w.backend.Present()
}
