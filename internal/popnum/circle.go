package popnum

// Circle is a growing target. Only Radius changes after spawn.
type Circle struct {
	X, Y       int
	Radius     int
	Value      int
	ColorIndex int
}

// Contains reports whether (x, y) lies inside the circle or on its edge.
func (c Circle) Contains(x, y int) bool {
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy-c.Radius*c.Radius <= 0
}

func seedCircle() Circle {
	return Circle{X: 100, Y: 100, Radius: StartRadius, Value: 1, ColorIndex: 0}
}

func randomCircle(rng Rand) Circle {
	return Circle{
		X:          1 + rng.IntN(Width-1),
		Y:          1 + rng.IntN(Height-1),
		Radius:     StartRadius,
		Value:      1 + rng.IntN(MaxValue),
		ColorIndex: rng.IntN(PaletteSize),
	}
}
