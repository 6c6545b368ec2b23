//go:build ebiten

package render

import (
	"image/color"
	"strconv"

	"popnum/internal/popnum"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// labelScale enlarges the 7x13 bitmap font for circle numbers.
const labelScale = 3

// ScenePainter draws circles and their numbers onto an ebiten image.
type ScenePainter struct {
	palette Palette
}

// NewScenePainter constructs a painter using the provided palette.
func NewScenePainter(p Palette) *ScenePainter {
	if len(p) == 0 {
		p = DefaultPalette()
	}
	return &ScenePainter{palette: p}
}

// Draw renders every circle of scene, mapping logical coordinates onto a
// viewW x viewH screen.
func (sp *ScenePainter) Draw(screen *ebiten.Image, scene popnum.Scene, viewW, viewH int) {
	sx := float32(viewW) / popnum.Width
	sy := float32(viewH) / popnum.Height
	rs := sx
	if sy < rs {
		rs = sy
	}
	label := WithAlpha(TextColor, CircleAlpha)
	for _, c := range scene.Circles {
		cx := float32(c.X) * sx
		cy := float32(c.Y) * sy
		vector.DrawFilledCircle(screen, cx, cy, float32(c.Radius)*rs, sp.palette.Fill(c.ColorIndex), true)
		drawCentered(screen, strconv.Itoa(c.Value), float64(cx), float64(cy), labelScale, label)
	}
}

func drawCentered(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s)
	w := float64(bounds.Dx()) * scale
	h := float64(bounds.Dy()) * scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-w/2, y+h/2)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, face, op)
}
