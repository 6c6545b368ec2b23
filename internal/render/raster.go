package render

import (
	"strconv"

	"popnum/internal/core"
	"popnum/internal/popnum"
)

// Label is a piece of text anchored at a grid cell.
type Label struct {
	X, Y int
	Text string
}

// Rasterize paints the scene into grid, one logical sample per cell. Empty
// cells hold 0; covered cells hold the circle's color index plus one. Later
// circles paint over earlier ones, matching draw order.
func Rasterize(grid *core.ByteGrid, scene popnum.Scene) {
	grid.Clear()
	w, h := grid.W, grid.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := CellCenter(x, y, w, h)
			for i := len(scene.Circles) - 1; i >= 0; i-- {
				c := scene.Circles[i]
				if c.Contains(p.X, p.Y) {
					grid.Set(x, y, uint8(c.ColorIndex)+1)
					break
				}
			}
		}
	}
}

// CellCenter maps the center of cell (x, y) in a w x h grid to logical
// coordinates.
func CellCenter(x, y, w, h int) popnum.Point {
	return popnum.MapPoint(2*x+1, 2*y+1, 2*w, 2*h)
}

// Labels returns the value label for each circle, centered on the cell that
// contains the circle's center.
func Labels(scene popnum.Scene, w, h int) []Label {
	labels := make([]Label, 0, len(scene.Circles))
	for _, c := range scene.Circles {
		x, y := popnum.ToView(c.X, c.Y, w, h)
		text := strconv.Itoa(c.Value)
		labels = append(labels, Label{X: x - len(text)/2, Y: y, Text: text})
	}
	return labels
}
