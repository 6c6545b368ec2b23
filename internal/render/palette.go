package render

import "image/color"

// CircleAlpha is the opacity used for circle fills and labels.
const CircleAlpha = 0.5

// Palette holds the fill colors a circle can select by index.
type Palette []color.NRGBA

// DefaultPalette returns the four greens and yellow used for circles.
func DefaultPalette() Palette {
	return Palette{
		{R: 0, G: 128, B: 0, A: 255},
		{R: 24, G: 255, B: 0, A: 255},
		{R: 131, G: 245, B: 44, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
	}
}

// At returns the color for idx. Indices outside the palette use entry 0.
// An empty palette yields opaque black.
func (p Palette) At(idx int) color.NRGBA {
	if len(p) == 0 {
		return color.NRGBA{A: 255}
	}
	if idx < 0 || idx >= len(p) {
		return p[0]
	}
	return p[idx]
}

// Fill returns the translucent fill color for idx.
func (p Palette) Fill(idx int) color.NRGBA {
	return WithAlpha(p.At(idx), CircleAlpha)
}

// WithAlpha scales the alpha channel of c by a, clamped to [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}

var (
	// TextColor is used for circle labels and the status line.
	TextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	// Background clears the playfield before each frame.
	Background = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)
