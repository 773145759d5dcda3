// Package uitest contains a recording backend that helps with testing ui.
package uitest

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/OpticalFlyer/pane/ui"
)

var (
	_ ui.Backend = (*Backend)(nil)
	_ ui.Surface = (*Surface)(nil)
)

// ErrInitialized is returned by a second Init.
var ErrInitialized = errors.New("uitest: display already initialized")

// Backend implements ui.Backend. Glyphs are Font.Size/2 pixels wide and
// lines are Font.Size pixels tall, so recorded geometry is easy to predict.
type Backend struct {
	display  *Surface
	surfaces int
	queue    []ui.Event
	drawops  []string
	Presents int
}

// NewBackend returns an uninitialized recording backend.
func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Init(size image.Point, title string) (ui.Surface, error) {
	if b.display != nil {
		return nil, ErrInitialized
	}
	b.display = &Surface{b: b, name: "display", size: size}
	b.record("init %v %q", size, title)
	return b.display, nil
}

// Display returns the display surface, nil before Init.
func (b *Backend) Display() *Surface { return b.display }

func (b *Backend) NewSurface(size image.Point) ui.Surface {
	b.surfaces++
	return &Surface{b: b, name: fmt.Sprintf("s%d", b.surfaces), size: size}
}

func (b *Backend) Measure(s string, f ui.Font) image.Point {
	return image.Pt(utf8.RuneCountInString(s)*(f.Size/2), f.Size)
}

func (b *Backend) LineHeight(f ui.Font) int { return f.Size }

func (b *Backend) Present() {
	b.Presents++
	b.record("present")
}

// Push queues events for the next Poll.
func (b *Backend) Push(evs ...ui.Event) {
	b.queue = append(b.queue, evs...)
}

func (b *Backend) Poll() []ui.Event {
	evs := b.queue
	b.queue = nil
	return evs
}

// DrawOps returns the operations recorded since the last Clear.
func (b *Backend) DrawOps() []string { return b.drawops }

// Clear forgets the recorded operations.
func (b *Backend) Clear() { b.drawops = nil }

// OpsOn returns the recorded operations targeting the named surface,
// without the surface prefix.
func (b *Backend) OpsOn(name string) []string {
	var ops []string
	prefix := name + ": "
	for _, op := range b.drawops {
		if rest, ok := strings.CutPrefix(op, prefix); ok {
			ops = append(ops, rest)
		}
	}
	return ops
}

func (b *Backend) record(format string, args ...any) {
	b.drawops = append(b.drawops, fmt.Sprintf(format, args...))
}

// Surface implements ui.Surface by recording every call on its backend.
type Surface struct {
	b    *Backend
	name string
	size image.Point
}

// Name returns the recorded name of s, which must be a *Surface.
func Name(s ui.Surface) string {
	return s.(*Surface).name
}

func (s *Surface) Size() image.Point { return s.size }

func (s *Surface) Fill(c color.Color) {
	s.b.record("%s: fill %s", s.name, Hex(c))
}

func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	s.b.record("%s: rect %v %s", s.name, r, Hex(c))
}

func (s *Surface) FillCircle(center image.Point, radius int, c color.Color) {
	s.b.record("%s: circle %v r%d %s", s.name, center, radius, Hex(c))
}

func (s *Surface) Line(from, to image.Point, width int, c color.Color) {
	s.b.record("%s: line %v-%v w%d %s", s.name, from, to, width, Hex(c))
}

func (s *Surface) Blit(src ui.Surface, at image.Point) {
	ss := src.(*Surface)
	s.b.record("%s: blit %s %v at %v", s.name, ss.name, ss.size, at)
}

// Sub returns a view sharing the name of s with the size of r.
func (s *Surface) Sub(r image.Rectangle) ui.Surface {
	return &Surface{b: s.b, name: s.name, size: r.Size()}
}

// Text records s. Strings containing NUL fail, standing in for a renderer
// that rejects degenerate content.
func (s *Surface) Text(str string, f ui.Font, at image.Point, c color.Color) error {
	if strings.ContainsRune(str, 0) {
		return fmt.Errorf("uitest: cannot render %q", str)
	}
	s.b.record("%s: text %q %s/%d at %v %s", s.name, str, f.Name, f.Size, at, Hex(c))
	return nil
}

// Hex formats c as #rrggbbaa.
func Hex(c color.Color) string {
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", r.R, r.G, r.B, r.A)
}
