// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEdge(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1     Point
		wantStart  Point
		wantEnd    Point
		wantDxDy   float32
		horizontal bool
	}{
		{"downward", Point{0, 0}, Point{10, 10}, Point{0, 0}, Point{10, 10}, 1, false},
		{"upward normalized", Point{10, 10}, Point{0, 0}, Point{0, 0}, Point{10, 10}, 1, false},
		{"vertical", Point{5, 0}, Point{5, 20}, Point{5, 0}, Point{5, 20}, 0, false},
		{"leftward", Point{8, 0}, Point{0, 4}, Point{8, 0}, Point{0, 4}, -2, false},
		{"horizontal", Point{0, 5}, Point{10, 5}, Point{0, 5}, Point{10, 5}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEdge(tt.p0, tt.p1)
			assert.Equal(t, tt.wantStart, Point{e.x0, e.y0})
			assert.Equal(t, tt.wantEnd, Point{e.x1, e.y1})
			assert.Equal(t, tt.wantDxDy, e.dxdy)
			assert.Equal(t, tt.horizontal, e.Horizontal())
		})
	}
}

func TestEdgeXAt(t *testing.T) {
	e := NewEdge(Point{0, 0}, Point{3, 2})
	assert.Equal(t, 0, e.XAt(0))
	assert.Equal(t, 2, e.XAt(1), "1.5 rounds up")
	assert.Equal(t, 3, e.XAt(2))

	e = NewEdge(Point{6, 0}, Point{0, 3})
	assert.Equal(t, 6, e.XAt(0))
	assert.Equal(t, 4, e.XAt(1))
	assert.Equal(t, 0, e.XAt(3))
}

func TestEdgesOrder(t *testing.T) {
	v := [3]Point{{1, 0}, {0, 2}, {3, 5}}
	edges := Edges(v)
	assert.Equal(t, NewEdge(v[0], v[1]), edges[0])
	assert.Equal(t, NewEdge(v[0], v[2]), edges[1])
	assert.Equal(t, NewEdge(v[1], v[2]), edges[2])
}
