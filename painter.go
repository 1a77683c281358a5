package lantern

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/lantern/ui"
)

// interfaceFace is the bitmap face windows are drawn with.
var interfaceFace = text.NewGoXFace(basicfont.Face7x13)

// EbitenPainter draws interface primitives onto an ebiten image.
type EbitenPainter struct {
	dst  *ebiten.Image
	face text.Face
}

// NewEbitenPainter creates a painter targeting dst.
func NewEbitenPainter(dst *ebiten.Image) *EbitenPainter {
	return &EbitenPainter{dst: dst, face: interfaceFace}
}

func (p *EbitenPainter) FillRect(x, y, width, height float32, c color.Color) {
	vector.DrawFilledRect(p.dst, x, y, width, height, c, false)
}

func (p *EbitenPainter) DrawText(s string, x, y float32, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(p.dst, s, p.face, op)
}

var _ ui.Painter = (*EbitenPainter)(nil)
