// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/chewxy/math32"

// Point is an integer pixel position (internal copy to avoid import cycle).
type Point struct {
	X, Y int
}

// Edge is a triangle edge in pixel space, stored top to bottom.
type Edge struct {
	x0, y0 int     // Start point (smaller y)
	x1, y1 int     // End point
	dxdy   float32 // Inverse slope, 0 for horizontal edges
}

// NewEdge creates an edge between two points. The point with the smaller
// y becomes the start.
func NewEdge(p0, p1 Point) Edge {
	if p1.Y < p0.Y {
		p0, p1 = p1, p0
	}

	var dxdy float32
	if dy := p1.Y - p0.Y; dy != 0 {
		dxdy = float32(p1.X-p0.X) / float32(dy)
	}

	return Edge{
		x0:   p0.X,
		y0:   p0.Y,
		x1:   p1.X,
		y1:   p1.Y,
		dxdy: dxdy,
	}
}

// Horizontal reports whether both endpoints share a scanline.
func (e Edge) Horizontal() bool {
	return e.y0 == e.y1
}

// XAt returns the edge's x position at scanline y, rounded to the nearest
// pixel.
func (e Edge) XAt(y int) int {
	x := float32(e.x0) + float32(y-e.y0)*e.dxdy
	return int(math32.Floor(x + 0.5))
}
