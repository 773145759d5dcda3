package ui_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpticalFlyer/pane/coord"
	"github.com/OpticalFlyer/pane/ui"
	"github.com/OpticalFlyer/pane/ui/uitest"
)

// newWindow returns a window of the given size on a fresh recording backend.
func newWindow(t *testing.T, size image.Point, sys coord.System) (*ui.Window, *uitest.Backend) {
	t.Helper()
	b := uitest.NewBackend()
	w, err := ui.NewWindow(b, ui.WindowConfig{Size: size, Title: "test", System: sys})
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	b.Clear()
	return w, b
}

func TestNewWindowInitializesOnce(t *testing.T) {
	b := uitest.NewBackend()
	w, err := ui.NewWindow(b, ui.WindowConfig{Size: image.Pt(320, 240), Title: "first"})
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	if got := w.Surface().Size(); got != image.Pt(320, 240) {
		t.Errorf("display size = %v; want (320,240)", got)
	}
	if w.Title() != "first" {
		t.Errorf("Title() = %q", w.Title())
	}

	_, err = ui.NewWindow(b, ui.WindowConfig{Size: image.Pt(320, 240), Title: "second"})
	if !errors.Is(err, uitest.ErrInitialized) {
		t.Errorf("second NewWindow error = %v; want %v", err, uitest.ErrInitialized)
	}
}

func TestWindowDraw(t *testing.T) {
	b := uitest.NewBackend()
	w, err := ui.NewWindow(b, ui.WindowConfig{
		Size:       image.Pt(200, 100),
		Title:      "draw",
		Background: color.RGBA{1, 2, 3, 255},
	})
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	ui.NewFrame(w, ui.FrameConfig{
		Place:      coord.At(0, 0).Sized(50, 50),
		Background: color.RGBA{R: 255, A: 255},
	})
	ui.NewFrame(w, ui.FrameConfig{Place: coord.At(25, 25).Sized(50, 50)})
	b.Clear()

	w.Draw()

	want := []string{
		"display: fill #010203ff",
		"s1: fill #ff0000ff",
		"display: blit s1 (50,50) at (0,0)",
		"s2: fill #000000ff",
		"display: blit s2 (50,50) at (25,25)",
		"present",
	}
	if diff := cmp.Diff(want, b.DrawOps()); diff != "" {
		t.Errorf("draw ops mismatch (-want +got):\n%s", diff)
	}
}

func TestWindowUpdateDispatchesInOrder(t *testing.T) {
	w, b := newWindow(t, image.Pt(200, 100), coord.Absolute)

	var got []string
	ui.NewButton(w, ui.ButtonConfig{
		Place:   coord.At(0, 0).Sized(100, 100),
		Command: func() { got = append(got, "left") },
	})
	ui.NewButton(w, ui.ButtonConfig{
		Place:   coord.At(50, 0).Sized(100, 100),
		Command: func() { got = append(got, "right") },
	})
	w.Draw()

	b.Push(uitest.Press(75, 50), uitest.Press(10, 10))
	w.Update()

	want := []string{"left", "right", "left"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	if evs := b.Poll(); len(evs) != 0 {
		t.Errorf("Update left %d events queued", len(evs))
	}
}

func TestWindowUpdateQuitExits(t *testing.T) {
	var codes []int
	restore := ui.SetExit(func(code int) { codes = append(codes, code) })
	defer restore()

	w, b := newWindow(t, image.Pt(200, 100), coord.Absolute)
	clicks := 0
	ui.NewButton(w, ui.ButtonConfig{
		Place:   coord.Size(200, 100),
		Command: func() { clicks++ },
	})
	w.Draw()

	b.Push(ui.Event{Type: ui.Quit}, uitest.Press(10, 10))
	w.Update()

	if diff := cmp.Diff([]int{0}, codes); diff != "" {
		t.Errorf("exit codes mismatch (-want +got):\n%s", diff)
	}
	if clicks != 0 {
		t.Errorf("events after quit were dispatched: %d clicks", clicks)
	}
}

func TestWindowLookup(t *testing.T) {
	w, _ := newWindow(t, image.Pt(200, 100), coord.Absolute)
	f := ui.NewFrame(w, ui.FrameConfig{})
	if got := w.Lookup(f.ID()); got != ui.Widget(f) {
		t.Errorf("Lookup(%d) = %v; want the frame", f.ID(), got)
	}
	if got := w.Lookup(w.ID()); got != ui.Widget(w) {
		t.Errorf("Lookup(%d) = %v; want the window", w.ID(), got)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Lookup of unknown id did not panic")
		}
	}()
	w.Lookup(99)
}

func TestWindowLookupForeignID(t *testing.T) {
	w1, _ := newWindow(t, image.Pt(200, 100), coord.Absolute)
	w2, _ := newWindow(t, image.Pt(200, 100), coord.Absolute)
	f1 := ui.NewFrame(w1, ui.FrameConfig{Title: "w1"})
	ui.NewFrame(w2, ui.FrameConfig{Title: "w2"})

	if f1.ID() == w2.Children()[0] {
		t.Fatalf("frames of different windows share id %d", f1.ID())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Lookup of an id from another window did not panic")
		}
	}()
	w2.Lookup(f1.ID())
}
