package ui

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/OpticalFlyer/pane/coord"
)

var _ Container = (*Tabs)(nil)

const tabFontSize = 15

// Tabs shows one of several frames at a time above a row of buttons, one
// per frame. The buttons are laid out but not wired: the caller binds each
// button's command, usually to SetActive.
type Tabs struct {
	tree   *arena
	id     ID
	parent ID

	host    *Frame
	bar     *Frame
	frames  []ID
	buttons []*Button
	active  int
}

// NewTabs creates a tab container covering parent, packs it and adds the
// given frames as tabs.
func NewTabs(parent Container, frames ...*Frame) *Tabs {
	full := coord.Size(100, 100)
	if parent.System() != coord.Relative {
		sz := parent.Surface().Size()
		full = coord.Size(sz.X, sz.Y)
	}
	host := newFrame(parent, FrameConfig{Place: full, Background: parent.Background()})
	// The bar's surface spans the host; dims track the occupied width.
	bar := newFrame(host, FrameConfig{Place: coord.Size(host.dims.X, host.dims.Y)})
	bar.dims = image.Point{}

	t := &Tabs{
		tree:   parent.nodes(),
		parent: parent.ID(),
		host:   host,
		bar:    bar,
	}
	t.id = t.tree.add(t)
	t.Pack()
	for _, f := range frames {
		t.AddFrame(f)
	}
	return t
}

func (t *Tabs) ID() ID                  { return t.id }
func (t *Tabs) Surface() Surface        { return t.host.surface }
func (t *Tabs) System() coord.System    { return t.host.system }
func (t *Tabs) Background() color.Color { return t.host.bg }
func (t *Tabs) Children() []ID          { return slices.Clone(t.frames) }
func (t *Tabs) nodes() *arena           { return t.tree }

// Len returns the number of tabs.
func (t *Tabs) Len() int { return len(t.frames) }

func (t *Tabs) Frame(i int) *Frame   { return t.tree.widget(t.frames[i]).(*Frame) }
func (t *Tabs) Button(i int) *Button { return t.buttons[i] }

// Bar returns the frame holding the tab buttons.
func (t *Tabs) Bar() *Frame { return t.bar }

// Active returns the index of the visible tab.
func (t *Tabs) Active() int { return t.active }

// SetActive selects the visible tab. It panics if i is out of range.
func (t *Tabs) SetActive(i int) {
	if i < 0 || i >= len(t.frames) {
		panic(fmt.Sprintf("ui: tab index %d out of range [0,%d)", i, len(t.frames)))
	}
	t.active = i
}

// AddFrame appends f as the last tab. A frame still packed in another
// container is moved out of it first.
func (t *Tabs) AddFrame(f *Frame) {
	if f.parent != t.id {
		old := t.tree.container(f.parent)
		if slices.Contains(old.Children(), f.id) {
			old.detach(f.id)
		}
		f.parent = t.id
	}
	t.attach(f.id)
}

// attach is called when a frame whose parent is t packs itself.
func (t *Tabs) attach(id ID) {
	f, ok := t.tree.widget(id).(*Frame)
	if !ok {
		panic(fmt.Sprintf("ui: widget %d packed into tabs is not a frame", id))
	}

	x := 0
	if n := len(t.buttons); n > 0 {
		last := t.buttons[n-1]
		x = last.pos.X + last.dims.X
	}
	b := NewButton(t.bar, ButtonConfig{
		Place: coord.At(x, 0),
		Text:  f.title,
		Style: Style{Font: Font{Size: tabFontSize}},
	})

	t.frames = append(t.frames, id)
	t.buttons = append(t.buttons, b)
	t.fitBar()
}

// detach removes a tab and its button and closes the gap in the row.
func (t *Tabs) detach(id ID) {
	i := slices.Index(t.frames, id)
	if i < 0 {
		panic(fmt.Sprintf("ui: widget %d is not a tab of %d", id, t.id))
	}
	t.buttons[i].Unpack()
	t.frames = slices.Delete(t.frames, i, i+1)
	t.buttons = slices.Delete(t.buttons, i, i+1)

	x := 0
	for _, b := range t.buttons {
		b.pos.X = x
		x += b.dims.X
	}
	t.fitBar()

	if i < t.active || t.active >= len(t.frames) {
		t.active = max(t.active-1, 0)
	}
}

// fitBar sizes the bar to the rightmost button edge.
func (t *Tabs) fitBar() {
	if len(t.buttons) == 0 {
		t.bar.dims = image.Point{}
		return
	}
	last := t.buttons[len(t.buttons)-1]
	t.bar.dims = image.Pt(last.pos.X+last.dims.X, last.dims.Y)
}

// Draw paints the active tab and the button bar onto the host frame and
// blits it onto the parent. It panics if there are no tabs.
func (t *Tabs) Draw() {
	if len(t.frames) == 0 {
		panic(fmt.Sprintf("ui: drawing tabs %d with no frames", t.id))
	}
	t.host.surface.Fill(t.host.bg)
	t.tree.widget(t.frames[t.active]).Draw()
	t.bar.Draw()
	t.host.present()
}

// Process forwards ev to the active tab and the button bar only.
func (t *Tabs) Process(ev Event, off image.Point) {
	off = off.Add(t.host.pos)
	if len(t.frames) > 0 {
		t.tree.widget(t.frames[t.active]).Process(ev, off)
	}
	t.bar.Process(ev, off)
}

// Pack appends the tabs to their parent's child list.
func (t *Tabs) Pack() {
	t.tree.container(t.parent).attach(t.id)
}

// Unpack removes the tabs from their parent's child list.
func (t *Tabs) Unpack() {
	t.tree.container(t.parent).detach(t.id)
}
