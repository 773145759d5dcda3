package ui_test

import (
	"image"
	"testing"

	"github.com/OpticalFlyer/pane/coord"
	"github.com/OpticalFlyer/pane/ui"
	"github.com/OpticalFlyer/pane/ui/uitest"
)

func TestButtonActivation(t *testing.T) {
	tests := []struct {
		name string
		ev   ui.Event
		want int
	}{
		{"Press inside", uitest.Press(15, 25), 1},
		{"Press on top-left corner", uitest.Press(10, 20), 1},
		{"Press outside", uitest.Press(5, 25), 0},
		{"Press on far edge", uitest.Press(40, 25), 0},
		{"Release inside", uitest.Release(15, 25), 0},
		{"Move inside", uitest.Move(15, 25), 0},
		{"Secondary press inside", ui.Event{Type: ui.MouseDown, Button: ui.ButtonSecondary, Pos: image.Pt(15, 25)}, 0},
		{"Key press", uitest.KeyDown('a'), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, b := newWindow(t, image.Pt(200, 100), coord.Absolute)
			var n int
			ui.NewButton(w, ui.ButtonConfig{
				Place:   coord.At(10, 20).Sized(30, 10),
				Command: counter(&n),
			})
			w.Draw()

			b.Push(tt.ev)
			w.Update()
			if n != tt.want {
				t.Errorf("command ran %d times; want %d", n, tt.want)
			}
		})
	}
}

func TestButtonIgnoresEventsBeforeDraw(t *testing.T) {
	w, b := newWindow(t, image.Pt(200, 100), coord.Absolute)
	var n int
	ui.NewButton(w, ui.ButtonConfig{Place: coord.Size(200, 100), Command: counter(&n)})

	b.Push(uitest.Press(10, 10))
	w.Update()
	if n != 0 {
		t.Errorf("command ran %d times before the first draw", n)
	}
}

func TestButtonWithoutCommand(t *testing.T) {
	w, b := newWindow(t, image.Pt(200, 100), coord.Absolute)
	btn := ui.NewButton(w, ui.ButtonConfig{Place: coord.Size(200, 100), Text: "idle"})
	w.Draw()

	b.Push(uitest.Press(10, 10))
	w.Update()

	var n int
	btn.SetCommand(counter(&n))
	b.Push(uitest.Press(10, 10))
	w.Update()
	if n != 1 {
		t.Errorf("command ran %d times after SetCommand; want 1", n)
	}
}

func TestButtonDefaultSize(t *testing.T) {
	for _, sys := range []coord.System{coord.Absolute, coord.Relative} {
		t.Run(sys.String(), func(t *testing.T) {
			w, _ := newWindow(t, image.Pt(400, 300), sys)
			btn := ui.NewButton(w, ui.ButtonConfig{
				Text:  "Hello",
				Style: ui.Style{Font: ui.Font{Size: 20}},
			})
			// Five glyphs of 10 pixels, one 20 pixel line.
			if got := btn.Dims(); got != image.Pt(50, 20) {
				t.Errorf("Dims() = %v; want (50,20)", got)
			}
			if got := btn.Pos(); got != image.Pt(0, 0) {
				t.Errorf("Pos() = %v; want (0,0)", got)
			}
		})
	}
}
