package icoview

// Vector2 is a 2D point, either in normalized device coordinates (y up)
// or in window coordinates (y down).
type Vector2 struct {
	X float64
	Y float64
}
