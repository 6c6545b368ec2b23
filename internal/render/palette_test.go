package render

import (
	"image/color"
	"testing"
)

func TestPaletteOutOfRangeUsesFirstEntry(t *testing.T) {
	p := DefaultPalette()
	if len(p) != 4 {
		t.Fatalf("palette size = %d, want 4", len(p))
	}
	for _, idx := range []int{-1, 4, 17} {
		if got := p.At(idx); got != p[0] {
			t.Fatalf("At(%d) = %v, want %v", idx, got, p[0])
		}
	}
	if got := p.At(3); got != (color.NRGBA{R: 255, G: 255, B: 0, A: 255}) {
		t.Fatalf("At(3) = %v", got)
	}
	var empty Palette
	if got := empty.At(0); got != (color.NRGBA{A: 255}) {
		t.Fatalf("empty palette At(0) = %v", got)
	}
}

func TestFillIsSemiTransparent(t *testing.T) {
	fill := DefaultPalette().Fill(1)
	if fill.A != 128 {
		t.Fatalf("fill alpha = %d, want 128", fill.A)
	}
	if fill.R != 24 || fill.G != 255 || fill.B != 0 {
		t.Fatalf("fill rgb changed: %v", fill)
	}
	if got := WithAlpha(TextColor, 2); got.A != 255 {
		t.Fatalf("alpha should clamp to 1, got %d", got.A)
	}
}
