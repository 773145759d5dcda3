// Package backend runs ui windows on ebiten.
package backend

import (
	"errors"
	"fmt"
	"image"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/pane/ui"
)

var _ ui.Backend = (*Backend)(nil)

// ErrInitialized is returned when a second display is requested. ebiten
// drives a single window per process.
var ErrInitialized = errors.New("backend: display already initialized")

var initialized atomic.Bool

// Loop is driven once per tick by Run. *ui.Window implements it.
type Loop interface {
	Update()
	Draw()
}

// Backend implements ui.Backend on top of ebiten.
type Backend struct {
	size    image.Point
	display *surface
	screen  *ebiten.Image
	fonts   *fonts

	queue     []ui.Event
	cursor    image.Point
	keys      []ebiten.Key
	debugMode bool

	// Touch state, see touch.go
	touch    touchState
	touchIDs []ebiten.TouchID
}

// New returns a backend. Call Init, usually through ui.NewWindow, before Run.
func New() *Backend {
	return &Backend{fonts: newFonts()}
}

// Init sets up the ebiten window and allocates the display surface.
func (b *Backend) Init(size image.Point, title string) (ui.Surface, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("backend: invalid window size %v", size)
	}
	if !initialized.CompareAndSwap(false, true) {
		return nil, ErrInitialized
	}

	ebiten.SetWindowSize(size.X, size.Y)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)

	b.size = size
	b.display = newSurface(ebiten.NewImage(size.X, size.Y), b.fonts)
	return b.display, nil
}

func (b *Backend) NewSurface(size image.Point) ui.Surface {
	// ebiten rejects empty images; a 1x1 surface is never blitted
	// because zero-sized frames skip their blit.
	return newSurface(ebiten.NewImage(max(size.X, 1), max(size.Y, 1)), b.fonts)
}

func (b *Backend) Measure(s string, f ui.Font) image.Point {
	return b.fonts.measure(s, f)
}

func (b *Backend) LineHeight(f ui.Font) int {
	return b.fonts.lineHeight(f)
}

// Present copies the display surface onto the screen of the current frame.
func (b *Backend) Present() {
	if b.screen == nil {
		return
	}
	b.screen.DrawImage(b.display.img, nil)
}

func (b *Backend) Poll() []ui.Event {
	evs := b.queue
	b.queue = nil
	return evs
}

func (b *Backend) push(ev ui.Event) {
	b.queue = append(b.queue, ev)
}

// Run drives loop from ebiten's game loop until the window is closed or
// ebiten fails.
func (b *Backend) Run(loop Loop) error {
	if b.display == nil {
		return errors.New("backend: Run before Init")
	}
	return ebiten.RunGame(&game{b: b, loop: loop})
}

// game implements ebiten.Game interface.
type game struct {
	b    *Backend
	loop Loop
}

func (g *game) Update() error {
	g.b.collect()
	g.loop.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.b.screen = screen
	g.loop.Draw()
	g.b.screen = nil

	if g.b.debugMode {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.1f\nFPS: %.1f\nCursor: %v",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.b.cursor))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.b.size.X, g.b.size.Y
}

var mouseButtons = []struct {
	eb     ebiten.MouseButton
	button ui.MouseButton
}{
	{ebiten.MouseButtonLeft, ui.ButtonPrimary},
	{ebiten.MouseButtonRight, ui.ButtonSecondary},
	{ebiten.MouseButtonMiddle, ui.ButtonMiddle},
}

// collect turns this tick's input state changes into events.
func (b *Backend) collect() {
	if ebiten.IsWindowBeingClosed() {
		b.push(ui.Event{Type: ui.Quit})
	}

	x, y := ebiten.CursorPosition()
	if pos := image.Pt(x, y); pos != b.cursor {
		b.cursor = pos
		b.push(ui.Event{Type: ui.MouseMove, Pos: pos})
	}
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			b.push(ui.Event{Type: ui.MouseDown, Button: mb.button, Pos: b.cursor})
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			b.push(ui.Event{Type: ui.MouseUp, Button: mb.button, Pos: b.cursor})
		}
	}

	// F1 is reserved for the debug overlay and never reaches the ui
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		b.debugMode = !b.debugMode
	}

	b.keys = inpututil.AppendJustPressedKeys(b.keys[:0])
	for _, k := range b.keys {
		if key, ok := translateKey(k); ok {
			b.push(ui.Event{Type: ui.KeyDown, Key: key})
		}
	}
	b.keys = inpututil.AppendJustReleasedKeys(b.keys[:0])
	for _, k := range b.keys {
		if key, ok := translateKey(k); ok {
			b.push(ui.Event{Type: ui.KeyUp, Key: key})
		}
	}

	b.collectTouches()
}
