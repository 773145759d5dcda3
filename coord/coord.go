// Package coord resolves requested widget geometry into absolute pixels.
package coord

import (
	"fmt"
	"image"
)

// System is the coordinate system a container interprets its children's
// requested positions and sizes in.
type System int

const (
	// Absolute passes requested values through as pixels.
	Absolute System = iota
	// Relative interprets requested values as percentages (0-100) of the
	// container's pixel size.
	Relative
)

func (s System) String() string {
	switch s {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// Resolve converts a single requested vector into pixels.
//
// Parameters:
//   - sys: coordinate system of the container
//   - parent: pixel size of the container's surface
//   - v: requested vector (pixels or percentages)
//
// Relative values are floored, never rounded: 33% of 100px is 33px.
func Resolve(sys System, parent, v image.Point) image.Point {
	if sys != Relative {
		return v
	}
	return image.Point{
		X: parent.X * v.X / 100,
		Y: parent.Y * v.Y / 100,
	}
}

// Request is a requested position and size. Either half may be left
// unspecified, in which case the widget's default applies.
type Request struct {
	Pos, Dims       image.Point
	HasPos, HasDims bool
}

// At requests a position and leaves the size to the widget default.
func At(x, y int) Request {
	return Request{Pos: image.Pt(x, y), HasPos: true}
}

// Size requests a size and leaves the position at the origin.
func Size(w, h int) Request {
	return Request{Dims: image.Pt(w, h), HasDims: true}
}

// Sized returns r with its size set.
func (r Request) Sized(w, h int) Request {
	r.Dims = image.Pt(w, h)
	r.HasDims = true
	return r
}

// Resolve returns the absolute position and size for r inside a container
// of the given system and pixel size. An unspecified position is the
// origin; an unspecified size is def, taken literally in both systems.
func (r Request) Resolve(sys System, parent, def image.Point) (pos, dims image.Point) {
	if r.HasPos {
		pos = Resolve(sys, parent, r.Pos)
	}
	dims = def
	if r.HasDims {
		dims = Resolve(sys, parent, r.Dims)
	}
	return pos, dims
}
