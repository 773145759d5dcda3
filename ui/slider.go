package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/OpticalFlyer/pane/coord"
)

var _ Widget = (*Slider)(nil)

// Orientation is the axis a slider's track runs along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Scale is the value range of a slider. Step is informational only: values
// are mapped continuously and any quantization is left to the cast.
type Scale struct {
	Start, Stop, Step int
}

var defaultScale = Scale{Start: 0, Stop: 10, Step: 1}

// SliderConfig describes a new Slider.
type SliderConfig struct {
	Place       coord.Request
	Orientation Orientation
	Scale       Scale
	// HideLabel disables the start, stop and value labels.
	HideLabel bool
	// Cast converts the continuous value. The default truncates toward zero.
	Cast  func(float64) float64
	Text  string
	Style Style
}

var sliderStyle = Style{
	Background: color.White,
	Foreground: color.White,
	Font:       DefaultFont,
}

// Slider is a draggable handle on a track mapping to a numeric range.
type Slider struct {
	leaf
	orientation Orientation
	scale       Scale
	label       bool
	cast        func(float64) float64

	dragPos  int
	dragging bool
}

// NewSlider creates a slider inside parent and packs it. Without a size
// the track is ten pixels per unit of the scale.
func NewSlider(parent Container, cfg SliderConfig) *Slider {
	scale := cfg.Scale
	if scale == (Scale{}) {
		scale = defaultScale
	}
	cast := cfg.Cast
	if cast == nil {
		cast = math.Trunc
	}

	span := 10 * (scale.Stop - scale.Start)
	def := image.Pt(span, 10)
	if cfg.Orientation == Vertical {
		def = image.Pt(10, span)
	}

	s := &Slider{
		leaf:        newLeaf(parent, cfg.Place, cfg.Style.or(sliderStyle), cfg.Text, def),
		orientation: cfg.Orientation,
		scale:       scale,
		label:       !cfg.HideLabel,
		cast:        cast,
	}
	s.dragPos = s.trackStart()
	s.register(s)
	return s
}

func (s *Slider) trackStart() int {
	if s.orientation == Vertical {
		return s.pos.Y
	}
	return s.pos.X
}

func (s *Slider) trackLen() int {
	if s.orientation == Vertical {
		return s.dims.Y
	}
	return s.dims.X
}

// DragPosition returns the handle position along the track in container
// pixels.
func (s *Slider) DragPosition() int { return s.dragPos }

// Dragging reports whether the handle is being dragged.
func (s *Slider) Dragging() bool { return s.dragging }

// SetDragPosition moves the handle, clamped to the track.
func (s *Slider) SetDragPosition(p int) {
	lo := s.trackStart()
	s.dragPos = min(max(p, lo), lo+s.trackLen())
}

// Value maps the handle position linearly onto the scale and applies the
// cast. It panics on a zero-length track.
func (s *Slider) Value() float64 {
	n := s.trackLen()
	if n == 0 {
		panic(fmt.Sprintf("ui: slider %d has a zero-length track", s.id))
	}
	span := float64(s.scale.Stop - s.scale.Start)
	v := float64(s.scale.Start) + span*float64(s.dragPos-s.trackStart())/float64(n)
	return s.cast(v)
}

func (s *Slider) Draw() {
	surf := s.surface()
	fg := s.style.Foreground

	var handle, end image.Point
	var radius int
	if s.orientation == Vertical {
		handle = image.Pt(s.pos.X, s.dragPos)
		end = image.Pt(s.pos.X, s.pos.Y+s.dims.Y)
		radius = s.dims.X / 2
	} else {
		handle = image.Pt(s.dragPos, s.pos.Y)
		end = image.Pt(s.pos.X+s.dims.X, s.pos.Y)
		radius = s.dims.Y / 2
	}

	surf.FillCircle(handle, radius, s.style.Background)
	s.setHitbox(image.Rect(handle.X-radius, handle.Y-radius, handle.X+radius, handle.Y+radius))
	surf.Line(s.pos, end, 2, s.style.Background)

	if !s.label {
		return
	}
	s.drawText(strconv.Itoa(s.scale.Start), s.pos, fg)
	s.drawText(strconv.Itoa(s.scale.Stop), end, fg)
	below := image.Pt(s.pos.X, s.pos.Y+s.dims.Y+s.backend().LineHeight(s.style.Font))
	s.drawText(s.text+": "+strconv.FormatFloat(s.Value(), 'f', -1, 64), below, fg)
}

// Process starts a drag on a primary press over the handle, follows the
// pointer while dragging and stops on any primary release.
func (s *Slider) Process(ev Event, off image.Point) {
	switch {
	case ev.isPrimary(MouseDown):
		if s.hit(ev, off) {
			s.dragging = true
		}
	case ev.isPrimary(MouseUp):
		s.dragging = false
	case ev.Type == MouseMove && s.dragging:
		p := ev.Local(off)
		if s.orientation == Vertical {
			s.SetDragPosition(p.Y)
		} else {
			s.SetDragPosition(p.X)
		}
	}
}
