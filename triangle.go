package softrast

import (
	"image"
	"slices"
)

// Triangle is a triangle in pixel space.
//
// Its vertices are ordered by ascending y, ties broken by ascending x.
// The order is fixed at construction; scan conversion relies on it.
type Triangle struct {
	vertices [3]PixelPoint
}

// NewTriangle creates a triangle from three pixel points in any order.
func NewTriangle(a, b, c PixelPoint) Triangle {
	v := [3]PixelPoint{a, b, c}
	slices.SortStableFunc(v[:], comparePoints)
	return Triangle{vertices: v}
}

func comparePoints(p, q PixelPoint) int {
	switch {
	case p.less(q):
		return -1
	case q.less(p):
		return 1
	}
	return 0
}

// Vertices returns the sorted vertices.
func (t Triangle) Vertices() [3]PixelPoint {
	return t.vertices
}

// Bounds returns the smallest rectangle containing every pixel the
// triangle can fill. Max is exclusive, as for image.Rectangle.
func (t Triangle) Bounds() image.Rectangle {
	v := t.vertices
	return image.Rect(
		min(v[0].X, v[1].X, v[2].X),
		v[0].Y,
		max(v[0].X, v[1].X, v[2].X)+1,
		v[2].Y+1,
	)
}

// Fill scan-converts the triangle onto s, taking each pixel's color from
// src. Pixels outside the surface are skipped.
func (t Triangle) Fill(s *Surface, src ColorSource) {
	s.fillTriangle(t.vertices, src)
}

// Render fills the triangle with a flat color.
func (t Triangle) Render(s *Surface, c RGBA) {
	t.Fill(s, c.Bytes())
}

// TextureTriangle is a triangle in pixel space whose vertices are paired
// with points of a texture.
//
// Pairs are sorted by their framebuffer point using the Triangle order;
// framebuffer vertex i always belongs with texture vertex i.
type TextureTriangle struct {
	vertices        [3]PixelPoint
	textureVertices [3]PixelPoint
	texture         *Texture
}

// TexturePair couples a framebuffer point with a texture point.
type TexturePair struct {
	Pixel, Texel PixelPoint
}

// NewTextureTriangle creates a textured triangle from three pairs in any
// order. The triangle reads from tex but does not own it.
func NewTextureTriangle(a, b, c TexturePair, tex *Texture) TextureTriangle {
	pairs := [3]TexturePair{a, b, c}
	slices.SortStableFunc(pairs[:], func(p, q TexturePair) int {
		return comparePoints(p.Pixel, q.Pixel)
	})

	t := TextureTriangle{texture: tex}
	for i, p := range pairs {
		t.vertices[i] = p.Pixel
		t.textureVertices[i] = p.Texel
	}
	return t
}

// Vertices returns the sorted framebuffer vertices.
func (t TextureTriangle) Vertices() [3]PixelPoint {
	return t.vertices
}

// TextureVertices returns the texture vertices, index-aligned with
// Vertices.
func (t TextureTriangle) TextureVertices() [3]PixelPoint {
	return t.textureVertices
}

// Texture returns the texture the triangle samples.
func (t TextureTriangle) Texture() *Texture {
	return t.texture
}

// Degenerate reports whether all three framebuffer vertices coincide.
func (t TextureTriangle) Degenerate() bool {
	v := t.vertices
	return v[0] == v[1] && v[1] == v[2]
}

// Render draws the textured triangle onto s. A degenerate triangle writes
// the single texel at its first texture vertex.
func (t TextureTriangle) Render(s *Surface) {
	if t.Degenerate() {
		i, err := s.IndexOf(t.vertices[0])
		if err != nil {
			s.clipped++
			return
		}
		tv := t.textureVertices[0]
		s.WritePixelBytes(i, t.texture.GetPixel(tv.X, tv.Y))
		return
	}
	s.fillTriangle(t.vertices, newTextureSampler(t))
}
