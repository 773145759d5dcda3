package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/OpticalFlyer/pane/backend"
	"github.com/OpticalFlyer/pane/coord"
	"github.com/OpticalFlyer/pane/ui"
)

// Constants for the demo window
const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "Pane"
)

var (
	panelColor = color.RGBA{R: 0x30, G: 0x30, B: 0x40, A: 0xff}
	tabColor   = color.RGBA{R: 0x20, G: 0x40, B: 0x30, A: 0xff}
)

func main() {
	b := backend.New()
	win, err := ui.NewWindow(b, ui.WindowConfig{
		Size:  image.Pt(windowWidth, windowHeight),
		Title: windowTitle,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Controls panel; its children are laid out in percentages of it
	controls := ui.NewFrame(win, ui.FrameConfig{
		Place:      coord.At(0, 0).Sized(320, windowHeight),
		System:     coord.Relative,
		Background: panelColor,
		Title:      "Controls",
	})

	status := ui.NewEntry(controls, ui.EntryConfig{
		Place: coord.At(5, 5).Sized(90, 8),
		Text:  "ready",
	})
	count := 0
	ui.NewButton(controls, ui.ButtonConfig{
		Place: coord.At(5, 20),
		Text:  "Click me",
		Command: func() {
			count++
			status.SetText(fmt.Sprintf("clicked %d times", count))
		},
	})
	ui.NewSlider(controls, ui.SliderConfig{
		Place: coord.At(5, 40).Sized(80, 3),
		Scale: ui.Scale{Start: 0, Stop: 100, Step: 1},
		Text:  "Volume",
	})

	// Tabbed area on the right, in pixels
	pages := make([]*ui.Frame, 0, 3)
	for _, title := range []string{"One", "Two", "Three"} {
		page := ui.NewFrame(win, ui.FrameConfig{
			Place:      coord.At(0, 30).Sized(480, 570),
			Background: tabColor,
			Title:      title,
		})
		ui.NewButton(page, ui.ButtonConfig{
			Place: coord.At(20, 20),
			Text:  "Page " + title,
		})
		pages = append(pages, page)
	}

	area := ui.NewFrame(win, ui.FrameConfig{
		Place: coord.At(320, 0).Sized(480, 600),
	})
	tabs := ui.NewTabs(area, pages...)
	for i := range tabs.Len() {
		tabs.Button(i).SetCommand(func() { tabs.SetActive(i) })
	}

	if err := b.Run(win); err != nil {
		log.Fatal(err)
	}
}
