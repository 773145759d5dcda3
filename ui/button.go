package ui

import (
	"image"

	"github.com/OpticalFlyer/pane/coord"
)

var _ Widget = (*Button)(nil)

// ButtonConfig describes a new Button.
type ButtonConfig struct {
	Place   coord.Request
	Text    string
	Command func()
	Style   Style
}

// Button calls its command when the primary button goes down over it.
type Button struct {
	leaf
	command func()
}

// NewButton creates a button inside parent and packs it. Without a size
// the button is as large as its text.
func NewButton(parent Container, cfg ButtonConfig) *Button {
	style := cfg.Style.or(defaultStyle)
	def := parent.nodes().backend.Measure(cfg.Text, style.Font)

	b := &Button{
		leaf:    newLeaf(parent, cfg.Place, style, cfg.Text, def),
		command: cfg.Command,
	}
	b.register(b)
	return b
}

func (b *Button) Text() string { return b.text }

// SetCommand replaces the function called on activation.
func (b *Button) SetCommand(command func()) {
	b.command = command
}

func (b *Button) Draw() {
	r := image.Rectangle{Min: b.pos, Max: b.pos.Add(b.dims)}
	s := b.surface()
	s.FillRect(r, b.style.Background)
	b.setHitbox(r)
	b.drawText(b.text, b.pos, b.style.Foreground)
}

// Process fires the command on a primary press inside the last drawn
// area. Releases never fire it.
func (b *Button) Process(ev Event, off image.Point) {
	if !ev.isPrimary(MouseDown) || !b.hit(ev, off) {
		return
	}
	if b.command != nil {
		b.command()
	}
}
