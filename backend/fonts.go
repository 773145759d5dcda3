package backend

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/OpticalFlyer/pane/ui"
)

// fallbackFont replaces names missing from fontData.
const fallbackFont = "goregular"

var fontData = map[string][]byte{
	"goregular": goregular.TTF,
	"gobold":    gobold.TTF,
	"goitalic":  goitalic.TTF,
	"gomono":    gomono.TTF,
}

// fonts caches parsed face sources by name. ebiten calls Update and Draw
// on one goroutine, so no locking is needed.
type fonts struct {
	sources map[string]*text.GoTextFaceSource
	warned  map[string]bool
}

func newFonts() *fonts {
	return &fonts{
		sources: make(map[string]*text.GoTextFaceSource),
		warned:  make(map[string]bool),
	}
}

func (fs *fonts) source(name string) (*text.GoTextFaceSource, error) {
	if _, ok := fontData[name]; !ok {
		if !fs.warned[name] {
			log.Printf("backend: unknown font %q, using %s", name, fallbackFont)
			fs.warned[name] = true
		}
		name = fallbackFont
	}
	if src, ok := fs.sources[name]; ok {
		return src, nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fontData[name]))
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, err)
	}
	fs.sources[name] = src
	return src, nil
}

func (fs *fonts) face(f ui.Font) (text.Face, error) {
	f = withDefaults(f)
	src, err := fs.source(f.Name)
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: src, Size: float64(f.Size)}, nil
}

func (fs *fonts) measure(s string, f ui.Font) image.Point {
	face, err := fs.face(f)
	if err != nil {
		log.Printf("backend: measuring %q: %v", s, err)
		return image.Point{}
	}
	w, _ := text.Measure(s, face, 0)
	return image.Pt(int(math.Ceil(w)), fs.lineHeight(f))
}

func (fs *fonts) lineHeight(f ui.Font) int {
	face, err := fs.face(f)
	if err != nil {
		log.Printf("backend: line height: %v", err)
		return 0
	}
	m := face.Metrics()
	return int(math.Ceil(m.HAscent + m.HDescent + m.HLineGap))
}

func withDefaults(f ui.Font) ui.Font {
	if f.Name == "" {
		f.Name = ui.DefaultFont.Name
	}
	if f.Size == 0 {
		f.Size = ui.DefaultFont.Size
	}
	return f
}
