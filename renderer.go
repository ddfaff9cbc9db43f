package softrast

import (
	"errors"
	"fmt"
	"iter"
)

// Renderer is the entry point a host graphics layer drives. It feeds
// batches of vertices to the triangle primitives and draws them onto a
// single Surface.
//
// Each draw runs to completion before returning. A Renderer is not safe
// for concurrent use.
type Renderer struct {
	surface   *Surface
	uvMapping VertexMapper
}

// NewRenderer creates a renderer that draws onto s.
func NewRenderer(s *Surface, opts ...RendererOption) *Renderer {
	var o rendererOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		surface:   s,
		uvMapping: o.uvMapping,
	}
}

// Surface returns the surface being drawn to.
func (r *Renderer) Surface() *Surface {
	return r.surface
}

// Batches adapts vertex slices to the sequence DrawTriangles consumes.
func Batches(batches ...[]Vertex) iter.Seq[[]Vertex] {
	return func(yield func([]Vertex) bool) {
		for _, b := range batches {
			if !yield(b) {
				return
			}
		}
	}
}

// UVBatch is a vertex batch with its texture coordinates.
type UVBatch struct {
	Vertices []Vertex
	UVs      []Vertex
}

// UVBatches adapts UVBatch values to the sequence DrawTexturedTriangles
// consumes.
func UVBatches(batches ...UVBatch) iter.Seq2[[]Vertex, []Vertex] {
	return func(yield func([]Vertex, []Vertex) bool) {
		for _, b := range batches {
			if !yield(b.Vertices, b.UVs) {
				return
			}
		}
	}
}

// Clear fills the surface with c. A translucent c composites over the
// current contents.
func (r *Renderer) Clear(c RGBA) {
	r.surface.Clear(c)
}

// ClearStencil is accepted for compatibility and does nothing: the
// rasterizer has no stencil buffer, and no draw consults one.
func (r *Renderer) ClearStencil(value uint8) {
	Logger().Warn("softrast: stencil clear ignored", "value", value)
}

// DrawTriangles fills every triangle in batches with the flat color c. Each
// batch is a list of vertices, three per triangle.
//
// A batch whose length is not a multiple of 3 has its trailing partial
// triangle dropped; the complete triangles are still drawn and the
// returned error wraps ErrBatchLength.
func (r *Renderer) DrawTriangles(c RGBA, batches iter.Seq[[]Vertex]) error {
	src := c.Bytes()
	var errs []error
	var triangles, batch int

	for verts := range batches {
		if err := checkBatch(batch, len(verts)); err != nil {
			errs = append(errs, err)
		}
		for i := 0; i+3 <= len(verts); i += 3 {
			t := NewTriangle(
				r.surface.VertexToPixel(verts[i]),
				r.surface.VertexToPixel(verts[i+1]),
				r.surface.VertexToPixel(verts[i+2]),
			)
			t.Fill(r.surface, src)
			triangles++
		}
		batch++
	}

	r.logDraw("draw triangles", batch, triangles)
	return errors.Join(errs...)
}

// DrawTexturedTriangles draws every triangle in batches textured from tex.
// Each batch pairs a vertex list with a UV list of the same length. UVs
// are mapped to texels with the renderer's UV mapping, or tex's own
// center-origin mapping by default.
//
// The color c is accepted for interface parity and is not applied: texels
// are written unmodulated.
//
// A batch whose UV list differs in length is skipped and reported with
// ErrUVMismatch. A trailing partial triangle is handled as in
// DrawTriangles.
func (r *Renderer) DrawTexturedTriangles(c RGBA, tex *Texture, batches iter.Seq2[[]Vertex, []Vertex]) error {
	if tex == nil {
		return fmt.Errorf("draw textured triangles: %w: nil texture", ErrUnsupported)
	}
	uvMap := r.uvMapping
	if uvMap == nil {
		uvMap = tex.Mapping()
	}

	var errs []error
	var triangles, batch int

	for verts, uvs := range batches {
		if len(uvs) != len(verts) {
			errs = append(errs, fmt.Errorf("batch %d: %d vertices, %d uvs: %w",
				batch, len(verts), len(uvs), ErrUVMismatch))
			Logger().Warn("softrast: uv batch skipped", "batch", batch,
				"vertices", len(verts), "uvs", len(uvs))
			batch++
			continue
		}
		if err := checkBatch(batch, len(verts)); err != nil {
			errs = append(errs, err)
		}
		for i := 0; i+3 <= len(verts); i += 3 {
			var pairs [3]TexturePair
			for j := range pairs {
				pairs[j] = TexturePair{
					Pixel: r.surface.VertexToPixel(verts[i+j]),
					Texel: uvMap.Map(uvs[i+j]),
				}
			}
			NewTextureTriangle(pairs[0], pairs[1], pairs[2], tex).Render(r.surface)
			triangles++
		}
		batch++
	}

	r.logDraw("draw textured triangles", batch, triangles)
	return errors.Join(errs...)
}

// DrawPolygon fills a convex polygon with c. Only triangles are supported;
// any other vertex count returns ErrUnsupported and draws nothing.
func (r *Renderer) DrawPolygon(c RGBA, verts []Vertex) error {
	if len(verts) != 3 {
		return fmt.Errorf("draw polygon with %d vertices: %w", len(verts), ErrUnsupported)
	}
	return r.DrawTriangles(c, Batches(verts))
}

// checkBatch reports a batch whose length is not a whole number of
// triangles.
func checkBatch(batch, n int) error {
	if n%3 == 0 {
		return nil
	}
	Logger().Warn("softrast: partial triangle dropped", "batch", batch, "vertices", n)
	return fmt.Errorf("batch %d: %d vertices: %w", batch, n, ErrBatchLength)
}

func (r *Renderer) logDraw(msg string, batches, triangles int) {
	pixels, rows := r.surface.takeClipped()
	Logger().Debug("softrast: "+msg, "batches", batches, "triangles", triangles,
		"clipped_pixels", pixels, "clipped_rows", rows)
}
