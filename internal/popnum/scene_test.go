package popnum

import (
	"slices"
	"testing"
)

func TestSceneIsIdempotent(t *testing.T) {
	g := New(&scriptedRand{vals: []int{3, 5, 7, 1, 9, 2, 4, 6}})
	g.Tick()
	g.Click(100, 100)

	a := g.Scene()
	b := g.Scene()
	if !slices.Equal(a.Circles, b.Circles) || a.StatusLine() != b.StatusLine() || a.Status != b.Status {
		t.Fatal("consecutive scenes differ")
	}
	if _, ok := g.Pending(); !ok {
		t.Fatal("Scene consumed the pending click")
	}
}

func TestSceneIsACopy(t *testing.T) {
	g := New(&scriptedRand{})
	s := g.Scene()
	s.Circles[0].Radius = 190
	if g.Circles()[0].Radius != StartRadius {
		t.Fatal("mutating a scene leaked into the game state")
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		scene Scene
		want  string
	}{
		{Scene{Score: 0, Target: 99, Status: Playing}, "0 / 99  Click Circle to reach 99"},
		{Scene{Score: 42, Target: 99, Status: Playing}, "42 / 99  Click Circle to reach 99"},
		{Scene{Score: 99, Target: 99, Status: Won}, "99 / 99  Congratulations!!"},
	}
	for _, tt := range tests {
		if got := tt.scene.StatusLine(); got != tt.want {
			t.Errorf("StatusLine() = %q, want %q", got, tt.want)
		}
	}
}
