package ui

import (
	"image"
	"image/color"
)

// Surface is a drawable pixel area owned by a container.
type Surface interface {
	Size() image.Point
	Fill(c color.Color)
	FillRect(r image.Rectangle, c color.Color)
	FillCircle(center image.Point, radius int, c color.Color)
	Line(from, to image.Point, width int, c color.Color)
	// Blit draws src onto the surface with its top-left corner at at.
	Blit(src Surface, at image.Point)
	// Sub returns the part of the surface inside r.
	Sub(r image.Rectangle) Surface
	Text(s string, f Font, at image.Point, c color.Color) error
}

// Backend is the rendering and event source a Window runs on. Only one
// display may be initialized per backend.
type Backend interface {
	// Init creates the display surface and sets the window title.
	Init(size image.Point, title string) (Surface, error)
	NewSurface(size image.Point) Surface
	// Measure returns the pixel size of s rendered in f.
	Measure(s string, f Font) image.Point
	LineHeight(f Font) int
	// Present shows the display surface.
	Present()
	// Poll drains pending input events without blocking.
	Poll() []Event
}
