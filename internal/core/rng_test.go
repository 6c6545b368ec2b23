package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if v := r.Range(1, 10); v < 1 || v >= 10 {
			t.Fatalf("Range(1,10) = %d", v)
		}
	}
	if r.IntN(0) != 0 || r.Range(5, 5) != 5 {
		t.Fatal("empty ranges should return their lower bound")
	}
}
