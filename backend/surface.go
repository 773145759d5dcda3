package backend

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/pane/ui"
)

var _ ui.Surface = (*surface)(nil)

// surface implements ui.Surface on an ebiten image.
type surface struct {
	img   *ebiten.Image
	fonts *fonts
}

func newSurface(img *ebiten.Image, f *fonts) *surface {
	return &surface{img: img, fonts: f}
}

func (s *surface) Size() image.Point {
	return s.img.Bounds().Size()
}

func (s *surface) Fill(c color.Color) {
	s.img.Fill(c)
}

func (s *surface) FillRect(r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(s.img, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), c, true)
}

func (s *surface) FillCircle(center image.Point, radius int, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(center.X), float32(center.Y), float32(radius), c, true)
}

func (s *surface) Line(from, to image.Point, width int, c color.Color) {
	vector.StrokeLine(s.img, float32(from.X), float32(from.Y),
		float32(to.X), float32(to.Y), float32(width), c, true)
}

func (s *surface) Blit(src ui.Surface, at image.Point) {
	ss, ok := src.(*surface)
	if !ok {
		log.Printf("backend: cannot blit %T", src)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	s.img.DrawImage(ss.img, op)
}

// Sub returns a view of r. Blitting the view places r.Min at the target.
func (s *surface) Sub(r image.Rectangle) ui.Surface {
	r = r.Add(s.img.Bounds().Min)
	return newSurface(s.img.SubImage(r).(*ebiten.Image), s.fonts)
}

func (s *surface) Text(str string, f ui.Font, at image.Point, c color.Color) error {
	face, err := s.fonts.face(f)
	if err != nil {
		return err
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.img, str, face, op)
	return nil
}
