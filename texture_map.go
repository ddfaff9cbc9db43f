package softrast

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// textureSampler maps framebuffer pixels of a TextureTriangle to texels.
//
// The third vertex is the local origin. A pixel p is projected separately
// onto the two framebuffer edges va = v0-v2 and vb = v1-v2:
//
//	a = va·(p-v2) / va·va
//	b = vb·(p-v2) / vb·vb
//
// and the texel is ceil(a)*ta + ceil(b)*tb + t2, with ta and tb the
// matching texture edges. This is not a barycentric solve; texels near
// the triangle edges can be over- or under-sampled.
type textureSampler struct {
	origin  vec.Vec2 // v2
	va, vb  vec.Vec2
	vaLen2  float64
	vbLen2  float64
	texBase vec.Vec2 // t2
	ta, tb  vec.Vec2
	texture *Texture
}

func toVec(p PixelPoint) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func newTextureSampler(t TextureTriangle) *textureSampler {
	v := t.vertices
	tv := t.textureVertices

	s := &textureSampler{
		origin:  toVec(v[2]),
		texBase: toVec(tv[2]),
		texture: t.texture,
	}
	s.va = toVec(v[0]).Sub(s.origin)
	s.vb = toVec(v[1]).Sub(s.origin)
	s.vaLen2 = s.va.Dot(s.va)
	s.vbLen2 = s.vb.Dot(s.vb)
	s.ta = toVec(tv[0]).Sub(s.texBase)
	s.tb = toVec(tv[1]).Sub(s.texBase)
	return s
}

// coefficients returns a and b, rounded up, for the pixel at (x, y).
// A zero-length edge contributes a coefficient of 0.
func (s *textureSampler) coefficients(x, y int) (a, b float64) {
	d := vec.Vec2{X: float64(x), Y: float64(y)}.Sub(s.origin)
	if s.vaLen2 != 0 {
		a = math.Ceil(s.va.Dot(d) / s.vaLen2)
	}
	if s.vbLen2 != 0 {
		b = math.Ceil(s.vb.Dot(d) / s.vbLen2)
	}
	return a, b
}

// texel returns the texture coordinate sampled for pixel (x, y).
func (s *textureSampler) texel(x, y int) PixelPoint {
	a, b := s.coefficients(x, y)
	tex := s.ta.Mul(a).Add(s.tb.Mul(b)).Add(s.texBase)
	return PixelPoint{X: int(tex.X), Y: int(tex.Y)}
}

// ColorAt implements ColorSource.
func (s *textureSampler) ColorAt(x, y int) RGBA8 {
	p := s.texel(x, y)
	return s.texture.GetPixel(p.X, p.Y)
}
