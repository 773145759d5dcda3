package ui_test

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpticalFlyer/pane/coord"
	"github.com/OpticalFlyer/pane/ui"
	"github.com/OpticalFlyer/pane/ui/uitest"
)

func TestFramePlacement(t *testing.T) {
	tests := []struct {
		name     string
		sys      coord.System
		place    coord.Request
		wantPos  image.Point
		wantDims image.Point
	}{
		{
			name:     "Absolute parent passes pixels through",
			sys:      coord.Absolute,
			place:    coord.At(50, 10).Sized(60, 70),
			wantPos:  image.Pt(50, 10),
			wantDims: image.Pt(60, 70),
		},
		{
			name:     "Relative parent scales percentages",
			sys:      coord.Relative,
			place:    coord.At(50, 10).Sized(50, 50),
			wantPos:  image.Pt(100, 10),
			wantDims: image.Pt(100, 50),
		},
		{
			name:     "Default size is literal under relative parent",
			sys:      coord.Relative,
			wantPos:  image.Pt(0, 0),
			wantDims: image.Pt(200, 200),
		},
		{
			name:     "Relative floors",
			sys:      coord.Relative,
			place:    coord.At(33, 33).Sized(1, 1),
			wantPos:  image.Pt(66, 33),
			wantDims: image.Pt(2, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newWindow(t, image.Pt(200, 100), tt.sys)
			f := ui.NewFrame(w, ui.FrameConfig{Place: tt.place})
			if f.Pos() != tt.wantPos || f.Dims() != tt.wantDims {
				t.Errorf("got pos %v dims %v; want pos %v dims %v",
					f.Pos(), f.Dims(), tt.wantPos, tt.wantDims)
			}
			if got := f.Surface().Size(); got != tt.wantDims {
				t.Errorf("surface size = %v; want %v", got, tt.wantDims)
			}
		})
	}
}

// counter returns a command that counts its calls.
func counter(n *int) func() {
	return func() { *n++ }
}

func TestFrameTranslatesPointer(t *testing.T) {
	w, b := newWindow(t, image.Pt(400, 300), coord.Absolute)
	f := ui.NewFrame(w, ui.FrameConfig{Place: coord.At(50, 30).Sized(200, 200)})

	var hits int
	ui.NewButton(f, ui.ButtonConfig{Place: coord.At(100, 50).Sized(1, 1), Command: counter(&hits)})
	w.Draw()

	b.Push(uitest.Press(150, 80))
	w.Update()
	if hits != 1 {
		t.Errorf("press at (150,80) through frame at (50,30): %d hits; want 1", hits)
	}

	b.Push(uitest.Press(100, 50), uitest.Press(151, 80))
	w.Update()
	if hits != 1 {
		t.Errorf("presses outside the translated hitbox: %d hits; want 1", hits)
	}
}

func TestFrameTranslationComposes(t *testing.T) {
	w, b := newWindow(t, image.Pt(400, 300), coord.Absolute)
	outer := ui.NewFrame(w, ui.FrameConfig{Place: coord.At(50, 30).Sized(200, 200)})
	inner := ui.NewFrame(outer, ui.FrameConfig{Place: coord.At(10, 5).Sized(150, 150)})

	var hits int
	ui.NewButton(inner, ui.ButtonConfig{Place: coord.At(90, 45).Sized(1, 1), Command: counter(&hits)})
	w.Draw()

	b.Push(uitest.Press(150, 80))
	w.Update()
	if hits != 1 {
		t.Errorf("nested press: %d hits; want 1", hits)
	}
}

func TestSiblingsSeeOriginalEvent(t *testing.T) {
	w, b := newWindow(t, image.Pt(400, 300), coord.Absolute)
	left := ui.NewFrame(w, ui.FrameConfig{Place: coord.At(10, 0).Sized(100, 100)})
	right := ui.NewFrame(w, ui.FrameConfig{Place: coord.At(100, 0).Sized(100, 100)})

	var leftHits, rightHits int
	ui.NewButton(left, ui.ButtonConfig{Place: coord.At(110, 10).Sized(10, 10), Command: counter(&leftHits)})
	ui.NewButton(right, ui.ButtonConfig{Place: coord.At(20, 10).Sized(10, 10), Command: counter(&rightHits)})
	w.Draw()

	// (125,15) is (115,15) in left and (25,15) in right. A translation
	// leaking from left would put it at (15,15) in right.
	b.Push(uitest.Press(125, 15))
	w.Update()
	if leftHits != 1 || rightHits != 1 {
		t.Errorf("got left=%d right=%d; want 1 and 1", leftHits, rightHits)
	}
}

func TestFrameForwardsKeyEvents(t *testing.T) {
	w, b := newWindow(t, image.Pt(400, 300), coord.Absolute)
	f := ui.NewFrame(w, ui.FrameConfig{Place: coord.At(50, 50).Sized(200, 200)})
	e := ui.NewEntry(f, ui.EntryConfig{Place: coord.At(10, 10)})
	w.Draw()

	b.Push(uitest.Press(65, 65))
	b.Push(uitest.Type("ok")...)
	w.Update()
	if got := e.Text(); got != "ok" {
		t.Errorf("Text() = %q; want %q", got, "ok")
	}
}

func TestFrameDraw(t *testing.T) {
	w, b := newWindow(t, image.Pt(400, 300), coord.Absolute)
	f := ui.NewFrame(w, ui.FrameConfig{Place: coord.At(50, 30).Sized(100, 100)})
	ui.NewButton(f, ui.ButtonConfig{Place: coord.At(5, 5).Sized(20, 10), Text: "x"})
	b.Clear()

	f.Draw()

	want := []string{
		"s1: fill #000000ff",
		"s1: rect (5,5)-(25,15) #ffffffff",
		`s1: text "x" goregular/30 at (5,5) #000000ff`,
		"display: blit s1 (100,100) at (50,30)",
	}
	if diff := cmp.Diff(want, b.DrawOps()); diff != "" {
		t.Errorf("draw ops mismatch (-want +got):\n%s", diff)
	}
}

func TestPackUnpack(t *testing.T) {
	w, _ := newWindow(t, image.Pt(400, 300), coord.Absolute)
	a := ui.NewFrame(w, ui.FrameConfig{})
	c := ui.NewFrame(w, ui.FrameConfig{})

	if diff := cmp.Diff([]ui.ID{a.ID(), c.ID()}, w.Children()); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}

	a.Unpack()
	if diff := cmp.Diff([]ui.ID{c.ID()}, w.Children()); diff != "" {
		t.Errorf("after Unpack (-want +got):\n%s", diff)
	}

	c.Pack()
	if diff := cmp.Diff([]ui.ID{c.ID(), c.ID()}, w.Children()); diff != "" {
		t.Errorf("after double Pack (-want +got):\n%s", diff)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Unpack of an absent frame did not panic")
		}
	}()
	a.Unpack()
}
