// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster provides triangle scan conversion.
//
// A triangle is decomposed into its three edges, taken in increasing y
// order. Horizontal edges are emitted directly as spans. Every other edge
// is paired with each later non-horizontal edge, and for each scanline in
// the pair's vertical overlap the span between the two x-intercepts is
// filled.
//
// Neighbouring pairs share their boundary scanline, so spans are merged
// per row before being emitted. Each pixel is therefore reported exactly
// once, which keeps alpha compositing deterministic.
package raster

// SpanFunc receives one filled span: pixels x0 through x1 inclusive on
// scanline y, with x0 <= x1.
type SpanFunc func(y, x0, x1 int)

type row struct {
	x0, x1 int
	set    bool
}

// Scanner performs triangle scan conversion. Its row buffer grows as
// needed and is reused across triangles.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	top  int
	rows []row
}

// NewScanner creates a new scanner.
func NewScanner() *Scanner {
	return &Scanner{rows: make([]row, 0, 64)}
}

// Edges returns the three edges of a sorted triangle in scan order:
// (v0,v1), (v0,v2), (v1,v2).
func Edges(v [3]Point) [3]Edge {
	return [3]Edge{
		NewEdge(v[0], v[1]),
		NewEdge(v[0], v[2]),
		NewEdge(v[1], v[2]),
	}
}

// Triangle scan-converts the triangle v and calls emit once per covered
// scanline, in increasing y order. Only scanlines yMin through yMax are
// visited; rows outside that range are neither walked nor emitted. The
// vertices must be sorted by ascending y, ties broken by ascending x. It
// returns the number of spans emitted.
func (s *Scanner) Triangle(v [3]Point, yMin, yMax int, emit SpanFunc) int {
	top, bottom := max(v[0].Y, yMin), min(v[2].Y, yMax)
	if top > bottom {
		return 0
	}
	s.reset(top, bottom)

	edges := Edges(v)
	for i, e := range edges {
		if e.Horizontal() {
			s.add(e.y0, e.x0, e.x1)
			continue
		}
		for _, f := range edges[i+1:] {
			if f.Horizontal() {
				continue
			}
			lo := max(e.y0, f.y0, top)
			hi := min(e.y1, f.y1, bottom)
			for y := lo; y <= hi; y++ {
				s.add(y, e.XAt(y), f.XAt(y))
			}
		}
	}

	n := 0
	for i, r := range s.rows {
		if r.set {
			emit(s.top+i, r.x0, r.x1)
			n++
		}
	}
	return n
}

func (s *Scanner) reset(top, bottom int) {
	n := bottom - top + 1
	if cap(s.rows) < n {
		s.rows = make([]row, n)
	} else {
		s.rows = s.rows[:n]
		clear(s.rows)
	}
	s.top = top
}

// add merges the span [x0, x1] into scanline y.
func (s *Scanner) add(y, x0, x1 int) {
	i := y - s.top
	if i < 0 || i >= len(s.rows) {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	r := &s.rows[i]
	if !r.set {
		*r = row{x0: x0, x1: x1, set: true}
		return
	}
	r.x0 = min(r.x0, x0)
	r.x1 = max(r.x1, x1)
}
