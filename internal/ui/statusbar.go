//go:build ebiten

package ui

import (
	"image/color"

	"popnum/internal/popnum"
	"popnum/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	barHeight    = 40
	barPadding   = 12
	textScale    = 2
	textBaseline = 26
)

// StatusBar draws the score line across the top of the playfield.
type StatusBar struct {
	band color.NRGBA
	won  color.NRGBA
	fg   color.NRGBA
}

// NewStatusBar constructs a status bar with the default colors.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		band: color.NRGBA{R: 16, G: 16, B: 20, A: 200},
		won:  color.NRGBA{R: 120, G: 90, B: 0, A: 220},
		fg:   render.TextColor,
	}
}

// Draw paints the band and the status line for scene.
func (s *StatusBar) Draw(screen *ebiten.Image, scene popnum.Scene) {
	if s == nil {
		return
	}
	band := s.band
	if scene.Status == popnum.Won {
		band = s.won
	}
	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, w, barHeight, band, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(barPadding, textBaseline)
	op.ColorScale.ScaleWithColor(s.fg)
	text.DrawWithOptions(screen, scene.StatusLine(), basicfont.Face7x13, op)
}
