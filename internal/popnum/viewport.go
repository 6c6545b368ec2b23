package popnum

// MapPointer converts a raw device coordinate into logical units along one
// axis: raw * logical / viewport, truncated. A non-positive viewport leaves
// raw unchanged.
func MapPointer(raw, logical, viewport int) int {
	if viewport <= 0 {
		return raw
	}
	return raw * logical / viewport
}

// MapPoint maps a raw pointer position on a viewW x viewH surface into the
// logical playfield.
func MapPoint(rawX, rawY, viewW, viewH int) Point {
	return Point{
		X: MapPointer(rawX, Width, viewW),
		Y: MapPointer(rawY, Height, viewH),
	}
}

// ToView is the inverse of MapPoint for drawing: it scales a logical
// position onto a viewW x viewH surface.
func ToView(x, y, viewW, viewH int) (int, int) {
	return x * viewW / Width, y * viewH / Height
}
