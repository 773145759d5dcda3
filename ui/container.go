package ui

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/OpticalFlyer/pane/coord"
)

// container is the state shared by Frame and Window.
type container struct {
	tree     *arena
	id       ID
	system   coord.System
	bg       color.Color
	surface  Surface
	children []ID
}

func (c *container) ID() ID                  { return c.id }
func (c *container) Surface() Surface        { return c.surface }
func (c *container) System() coord.System    { return c.system }
func (c *container) Background() color.Color { return c.bg }
func (c *container) nodes() *arena           { return c.tree }

// Children returns a copy of the child list in paint order.
func (c *container) Children() []ID {
	return slices.Clone(c.children)
}

func (c *container) attach(id ID) {
	c.children = append(c.children, id)
}

func (c *container) detach(id ID) {
	i := slices.Index(c.children, id)
	if i < 0 {
		panic(fmt.Sprintf("ui: widget %d is not a child of %d", id, c.id))
	}
	c.children = slices.Delete(c.children, i, i+1)
}

// paint fills the surface and draws every child on top of it.
func (c *container) paint() {
	c.surface.Fill(c.bg)
	for _, id := range c.children {
		c.tree.widget(id).Draw()
	}
}

// dispatch forwards ev to every child. The list is copied first so a
// callback that packs or unpacks widgets does not disturb the walk.
func (c *container) dispatch(ev Event, off image.Point) {
	for _, id := range slices.Clone(c.children) {
		c.tree.widget(id).Process(ev, off)
	}
}
