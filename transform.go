package softrast

import (
	"github.com/chewxy/math32"
	"seehuhn.de/go/geom/matrix"
)

// VertexMapper converts logical vertices to pixel points.
// Transform and CenterOrigin are the two mapping policies.
type VertexMapper interface {
	Map(v Vertex) PixelPoint
}

// Transform is an affine mapping from vertex space to pixel space:
//
//	x' = m00*x + m01*y + tx
//	y' = m10*x + m11*y + ty
//
// Transforms are immutable values. WithOrigin and WithScale return new
// transforms. The zero Transform maps every vertex to the origin; start
// from Identity instead.
type Transform struct {
	// m holds the coefficients in PDF order: m00, m10, m01, m11, tx, ty.
	m matrix.Matrix
}

// Identity is the identity matrix with zero translation.
var Identity = Transform{m: matrix.Identity}

// NewTransform creates a transform from its 2×2 matrix [m00, m01, m10, m11]
// and its translation.
func NewTransform(m00, m01, m10, m11, tx, ty float64) Transform {
	return Transform{m: matrix.Matrix{m00, m10, m01, m11, tx, ty}}
}

// Matrix returns the 2×2 linear part as [m00, m01, m10, m11].
func (t Transform) Matrix() [4]float64 {
	return [4]float64{t.m[0], t.m[2], t.m[1], t.m[3]}
}

// Translation returns the translation component.
func (t Transform) Translation() [2]float64 {
	return [2]float64{t.m[4], t.m[5]}
}

// WithOrigin returns a transform whose translation is shifted by -origin.
func (t Transform) WithOrigin(origin Vertex) Transform {
	m := t.m
	m[4] -= float64(origin[0])
	m[5] -= float64(origin[1])
	return Transform{m: m}
}

// WithScale returns a transform whose first matrix row is scaled by sx and
// whose second row is scaled by sy. The translation is unchanged.
func (t Transform) WithScale(sx, sy float32) Transform {
	m := t.m
	m[0] *= float64(sx)
	m[2] *= float64(sx)
	m[1] *= float64(sy)
	m[3] *= float64(sy)
	return Transform{m: m}
}

// Apply maps v to pixel space, truncating toward zero. Results below zero
// saturate to 0 and results above maxPixel saturate to maxPixel. No
// other upper bound is applied, so callers writing pixels must clip
// against their target.
func (t Transform) Apply(v Vertex) PixelPoint {
	x, y := float64(v[0]), float64(v[1])
	px := t.m[0]*x + t.m[2]*y + t.m[4]
	py := t.m[1]*x + t.m[3]*y + t.m[5]
	return PixelPoint{X: truncPixel(px), Y: truncPixel(py)}
}

// Map implements VertexMapper.
func (t Transform) Map(v Vertex) PixelPoint {
	return t.Apply(v)
}

// maxPixel is the largest coordinate Apply returns. It lies beyond any
// surface a buffer can back and leaves room for span arithmetic.
const maxPixel = 1<<30 - 1

func truncPixel(f float64) int {
	switch {
	case !(f > 0):
		return 0
	case f >= maxPixel:
		return maxPixel
	}
	return int(f)
}

// CenterOrigin is the clamped center-origin mapping: vertex (0, 0) is the
// center of a Width×Height pixel grid, and vertices beyond ±dimension/2
// clamp to the nearest edge pixel. Every result is a valid pixel of the
// grid.
type CenterOrigin struct {
	Width, Height int
}

// Map implements VertexMapper.
func (c CenterOrigin) Map(v Vertex) PixelPoint {
	return PixelPoint{
		X: centerAxis(v[0], c.Width),
		Y: centerAxis(v[1], c.Height),
	}
}

func centerAxis(v float32, dim int) int {
	half := float32(dim) / 2
	switch {
	case dim <= 0:
		return 0
	case !(v >= -half):
		// Also catches NaN.
		return 0
	case v > half:
		return dim - 1
	}
	// v == half lands one past the last pixel.
	return min(int(math32.Floor(v+half)), dim-1)
}
