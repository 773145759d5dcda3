package ui

import (
	"image"
	"image/color"

	"github.com/OpticalFlyer/pane/coord"
)

var _ Container = (*Frame)(nil)

// defaultFrameDims is used when a FrameConfig leaves the size unset. It is
// never scaled by a relative parent.
var defaultFrameDims = image.Pt(200, 200)

// FrameConfig describes a new Frame.
type FrameConfig struct {
	// Place is interpreted in the parent's coordinate system.
	Place coord.Request
	// System is the coordinate system for the frame's own children.
	System     coord.System
	Background color.Color
	Title      string
}

// Frame is a rectangular sub-region of its parent with its own surface and
// children. Its position and size are resolved once, at construction.
type Frame struct {
	container
	parent ID
	pos    image.Point
	dims   image.Point
	title  string
}

// NewFrame creates a frame inside parent and packs it.
func NewFrame(parent Container, cfg FrameConfig) *Frame {
	f := newFrame(parent, cfg)
	f.Pack()
	return f
}

// newFrame creates a frame without attaching it to the parent's child list.
func newFrame(parent Container, cfg FrameConfig) *Frame {
	tree := parent.nodes()
	pos, dims := cfg.Place.Resolve(parent.System(), parent.Surface().Size(), defaultFrameDims)

	bg := cfg.Background
	if bg == nil {
		bg = color.Black
	}

	f := &Frame{
		container: container{
			tree:    tree,
			system:  cfg.System,
			bg:      bg,
			surface: tree.backend.NewSurface(dims),
		},
		parent: parent.ID(),
		pos:    pos,
		dims:   dims,
		title:  cfg.Title,
	}
	f.id = tree.add(f)
	return f
}

func (f *Frame) Pos() image.Point  { return f.pos }
func (f *Frame) Dims() image.Point { return f.dims }
func (f *Frame) Title() string     { return f.title }
func (f *Frame) Parent() ID        { return f.parent }

// Draw paints the frame and its children, then blits the result onto the
// parent's surface.
func (f *Frame) Draw() {
	f.paint()
	f.present()
}

func (f *Frame) present() {
	if f.dims.X <= 0 || f.dims.Y <= 0 {
		return
	}
	dst := f.tree.container(f.parent).Surface()
	dst.Blit(f.surface.Sub(image.Rectangle{Max: f.dims}), f.pos)
}

// Process forwards ev to every child with the frame's position added to
// the offset. Children decide for themselves whether the event applies.
func (f *Frame) Process(ev Event, off image.Point) {
	f.dispatch(ev, off.Add(f.pos))
}

// Pack appends the frame to its parent's child list. Packing twice adds
// the frame twice.
func (f *Frame) Pack() {
	f.tree.container(f.parent).attach(f.id)
}

// Unpack removes the frame from its parent's child list. It panics if the
// frame is not there.
func (f *Frame) Unpack() {
	f.tree.container(f.parent).detach(f.id)
}
