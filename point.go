package sketch

// Point represents a 2D point in floating-point coordinates.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Pixel is a pixel coordinate on the canvas. The origin is the top-left
// corner, X grows right and Y grows down.
type Pixel struct {
	X, Y uint32
}

// Px is a convenience function to create a Pixel.
func Px(x, y uint32) Pixel {
	return Pixel{X: x, Y: y}
}
