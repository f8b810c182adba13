package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/SvenDH/go-card-flip/tray"
)

// Surface draws tray output onto an ebiten image.
type Surface struct {
	Target *ebiten.Image
	Face   font.Face
}

func NewSurface(target *ebiten.Image) *Surface {
	return &Surface{Target: target, Face: basicfont.Face7x13}
}

func (s *Surface) FillRect(r tray.Rect, c color.Color) {
	vector.DrawFilledRect(s.Target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawText draws s with its baseline at at.Y. Right-aligned text ends at at.X,
// centred text is centred on it.
func (s *Surface) DrawText(str string, at tray.Point, align tray.Align, c color.Color) {
	w := float64(font.MeasureString(s.Face, str).Ceil())
	x := int(at.X + align.Offset(w))
	text.Draw(s.Target, str, s.Face, x, int(at.Y), c)
}
