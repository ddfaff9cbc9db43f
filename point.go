package softrast

import (
	"fmt"
	"image"
)

// Vertex is a point in logical vertex space, as supplied by the host.
type Vertex [2]float32

// PixelPoint is a point in pixel space. Both coordinates are non-negative;
// (0, 0) is the top-left pixel and y grows downwards.
type PixelPoint struct {
	X, Y int
}

// Pt is a convenience function to create a PixelPoint.
func Pt(x, y int) PixelPoint {
	return PixelPoint{X: x, Y: y}
}

// less orders points by ascending y, then ascending x.
func (p PixelPoint) less(q PixelPoint) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// String returns "(x, y)".
func (p PixelPoint) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Image converts p to an image.Point.
func (p PixelPoint) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}
