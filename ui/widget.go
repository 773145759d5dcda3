package ui

import (
	"image"
	"image/color"
	"log"

	"github.com/OpticalFlyer/pane/coord"
)

// leaf is the state shared by Button, Slider and Entry.
type leaf struct {
	tree   *arena
	id     ID
	parent ID
	pos    image.Point
	dims   image.Point
	style  Style
	text   string

	// hitbox is the area covered by the last Draw. Events that arrive
	// before the first Draw see drawn == false.
	hitbox image.Rectangle
	drawn  bool
}

func newLeaf(parent Container, place coord.Request, style Style, text string, def image.Point) leaf {
	pos, dims := place.Resolve(parent.System(), parent.Surface().Size(), def)
	return leaf{
		tree:   parent.nodes(),
		parent: parent.ID(),
		pos:    pos,
		dims:   dims,
		style:  style,
		text:   text,
	}
}

// register stores w in the arena and packs it into the parent.
func (l *leaf) register(w Widget) {
	l.id = l.tree.add(w)
	l.Pack()
}

func (l *leaf) ID() ID            { return l.id }
func (l *leaf) Parent() ID        { return l.parent }
func (l *leaf) Pos() image.Point  { return l.pos }
func (l *leaf) Dims() image.Point { return l.dims }

// Pack appends the widget to its parent's child list. Packing twice adds
// the widget twice.
func (l *leaf) Pack() {
	l.tree.container(l.parent).attach(l.id)
}

// Unpack removes the widget from its parent's child list. It panics if the
// widget is not there.
func (l *leaf) Unpack() {
	l.tree.container(l.parent).detach(l.id)
}

func (l *leaf) surface() Surface {
	return l.tree.container(l.parent).Surface()
}

func (l *leaf) backend() Backend {
	return l.tree.backend
}

// hit reports whether the pointer of ev falls inside the last drawn area.
func (l *leaf) hit(ev Event, off image.Point) bool {
	return l.drawn && ev.Local(off).In(l.hitbox)
}

func (l *leaf) setHitbox(r image.Rectangle) {
	l.hitbox = r
	l.drawn = true
}

// drawText renders s and logs failures so the rest of the draw pass
// still runs.
func (l *leaf) drawText(s string, at image.Point, c color.Color) {
	if err := l.surface().Text(s, l.style.Font, at, c); err != nil {
		log.Printf("ui: drawing text %q of widget %d: %v", s, l.id, err)
	}
}
