package ui

import (
	"image"
	"slices"
	"time"
	"unicode"

	"github.com/OpticalFlyer/pane/coord"
)

var _ Widget = (*Entry)(nil)

const caretBlink = 500 * time.Millisecond

var defaultEntryDims = image.Pt(100, 30)

// shifted maps the top-row and punctuation keys to their shifted symbols.
var shifted = map[rune]rune{
	'1':  '!',
	'2':  '@',
	'3':  '#',
	'4':  '$',
	'5':  '%',
	'6':  '^',
	'7':  '&',
	'8':  '*',
	'9':  '(',
	'0':  ')',
	'-':  '_',
	'=':  '+',
	'[':  '{',
	']':  '}',
	';':  ':',
	'\'': '"',
	',':  '<',
	'.':  '>',
	'/':  '?',
}

// EntryConfig describes a new Entry.
type EntryConfig struct {
	Place coord.Request
	Text  string
	Style Style
	// Now is the clock driving the caret blink. Defaults to time.Now.
	Now func() time.Time
}

// Entry is a single-line text field.
type Entry struct {
	leaf
	chars   []rune
	caret   int
	focused bool
	shift   bool

	now       func() time.Time
	lastBlink time.Time
	caretOn   bool
}

// NewEntry creates an entry inside parent and packs it. Without a size the
// entry is 100x30 pixels regardless of the parent's coordinate system.
func NewEntry(parent Container, cfg EntryConfig) *Entry {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	e := &Entry{
		leaf:  newLeaf(parent, cfg.Place, cfg.Style.or(defaultStyle), "", defaultEntryDims),
		chars: []rune(cfg.Text),
		now:   now,
	}
	e.register(e)
	return e
}

// Text returns the current contents.
func (e *Entry) Text() string { return string(e.chars) }

// SetText replaces the contents, keeping the caret inside them.
func (e *Entry) SetText(s string) {
	e.chars = []rune(s)
	e.caret = min(e.caret, len(e.chars))
}

// Caret returns the caret index in runes.
func (e *Entry) Caret() int { return e.caret }

func (e *Entry) Focused() bool { return e.focused }

func (e *Entry) Process(ev Event, off image.Point) {
	switch {
	case ev.isPrimary(MouseDown):
		if e.drawn {
			e.focused = e.hit(ev, off)
		}
	case ev.Type == KeyDown && e.focused:
		e.keyDown(ev.Key)
	case ev.Type == KeyUp && e.focused:
		if ev.Key.IsShift() {
			e.shift = false
		}
	}
}

func (e *Entry) keyDown(k Key) {
	switch {
	case k.IsShift():
		e.shift = true
	case k == KeyArrowRight:
		if e.caret < len(e.chars) {
			e.caret++
		}
	case k == KeyArrowLeft:
		if e.caret > 0 {
			e.caret--
		}
	case k == KeyBackspace:
		if e.caret > 0 {
			e.caret--
			e.chars = slices.Delete(e.chars, e.caret, e.caret+1)
		}
	default:
		r, ok := e.resolve(k)
		if !ok {
			return
		}
		e.chars = slices.Insert(e.chars, e.caret, r)
		e.caret++
	}
}

// resolve returns the character k types under the current shift state.
func (e *Entry) resolve(k Key) (rune, bool) {
	r, ok := k.Rune()
	if !ok {
		return 0, false
	}
	if !e.shift {
		return r, true
	}
	if u := unicode.ToUpper(r); u != r {
		return u, true
	}
	if s, ok := shifted[r]; ok {
		return s, true
	}
	return r, true
}

func (e *Entry) Draw() {
	surf := e.surface()
	r := image.Rectangle{Min: e.pos, Max: e.pos.Add(e.dims)}
	surf.FillRect(r, e.style.Background)
	e.setHitbox(r)

	x := e.pos.X + e.backend().Measure(string(e.chars[:e.caret]), e.style.Font).X
	if len(e.chars) > 0 {
		e.drawText(string(e.chars), e.pos, e.style.Foreground)
	}
	if !e.focused {
		return
	}
	if now := e.now(); now.Sub(e.lastBlink) >= caretBlink {
		e.caretOn = !e.caretOn
		e.lastBlink = now
	}
	if e.caretOn {
		surf.Line(image.Pt(x, e.pos.Y), image.Pt(x, e.pos.Y+e.dims.Y), 2, e.style.Foreground)
	}
}
