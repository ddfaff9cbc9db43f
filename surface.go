package softrast

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/softrast/internal/blend"
	"github.com/gogpu/softrast/internal/raster"
)

// BlendMode selects the output alpha of partially transparent writes.
type BlendMode = blend.Mode

const (
	// BlendOpaque forces the output alpha of a blended write to 255.
	// This is the default.
	BlendOpaque = blend.ModeOpaque

	// BlendSaturating sets the output alpha to min(255, dstA+srcA).
	BlendSaturating = blend.ModeSaturating
)

// Surface is a rectangular RGBA pixel buffer that primitives draw into.
//
// The buffer is row-major, 4 bytes per pixel (R, G, B, A, not
// premultiplied). A Surface has exclusive use of its buffer for as long as
// it is drawn to; the caller must not read or write the slice concurrently
// with a draw.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	width  int
	height int
	data   []uint8

	mapping VertexMapper
	mode    BlendMode
	scanner *raster.Scanner

	// clipped and clippedRows count pixels dropped by span clipping and
	// scanlines skipped outside the surface since the last takeClipped.
	clipped     int
	clippedRows int
}

// NewSurface wraps buf as a width×height surface. buf must be exactly
// width*height*4 bytes; it is used in place, not copied.
//
// Without WithTransform, vertices are mapped with CenterOrigin for the
// surface dimensions.
func NewSurface(width, height int, buf []uint8, opts ...SurfaceOption) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new surface %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if len(buf) != width*height*4 {
		return nil, fmt.Errorf("new surface %dx%d: got %d bytes, want %d: %w",
			width, height, len(buf), width*height*4, ErrBufferSize)
	}

	o := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Surface{
		width:   width,
		height:  height,
		data:    buf,
		mapping: o.mapping,
		mode:    o.mode,
		scanner: raster.NewScanner(),
	}
	if s.mapping == nil {
		s.mapping = CenterOrigin{Width: width, Height: height}
	}
	return s, nil
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Data returns the underlying pixel buffer.
func (s *Surface) Data() []uint8 {
	return s.data
}

// BlendMode returns the surface's blend mode.
func (s *Surface) BlendMode() BlendMode {
	return s.mode
}

// Mapping returns the vertex mapper used by VertexToPixel.
func (s *Surface) Mapping() VertexMapper {
	return s.mapping
}

// VertexToPixel maps a logical vertex to a pixel point using the
// surface's mapping.
func (s *Surface) VertexToPixel(v Vertex) PixelPoint {
	return s.mapping.Map(v)
}

// IndexOf returns the pixel index x + y*width of p. It returns an error
// wrapping ErrOutOfBounds if p lies outside the surface.
func (s *Surface) IndexOf(p PixelPoint) (int, error) {
	if p.X < 0 || p.X >= s.width || p.Y < 0 || p.Y >= s.height {
		return 0, fmt.Errorf("pixel %v on %dx%d surface: %w", p, s.width, s.height, ErrOutOfBounds)
	}
	return p.X + p.Y*s.width, nil
}

// Clear writes c to every pixel through the blending path, so a
// translucent clear composites over the existing contents.
func (s *Surface) Clear(c RGBA) {
	b := c.Bytes()
	for i := range s.width * s.height {
		s.WritePixelBytes(i, b)
	}
}

// WritePixel converts c to bytes and composites it onto pixel index.
func (s *Surface) WritePixel(index int, c RGBA) {
	s.WritePixelBytes(index, c.Bytes())
}

// WritePixelBytes composites c onto pixel index. Every pixel write on a
// surface goes through here.
//
// Indexes outside the buffer are ignored. A transparent c leaves the pixel
// unchanged; an opaque c, or any c written onto a transparent pixel,
// replaces it. Otherwise the color channels are interpolated by c's alpha
// and the alpha is set by the surface's BlendMode.
func (s *Surface) WritePixelBytes(index int, c RGBA8) {
	if index < 0 || index >= s.width*s.height {
		return
	}
	px := s.data[index*4 : index*4+4 : index*4+4]
	out := blend.Composite([4]uint8(px), c, s.mode)
	copy(px, out[:])
}

// PixelBytes returns the bytes of the pixel at p, or zero if p is outside
// the surface.
func (s *Surface) PixelBytes(p PixelPoint) RGBA8 {
	i, err := s.IndexOf(p)
	if err != nil {
		return RGBA8{}
	}
	return RGBA8(s.data[i*4 : i*4+4])
}

// fillSpan writes src over pixels x0..x1 of row y, clipped to the surface.
func (s *Surface) fillSpan(y, x0, x1 int, src ColorSource) {
	if y < 0 || y >= s.height {
		s.clipped += x1 - x0 + 1
		return
	}
	lo, hi := max(x0, 0), min(x1, s.width-1)
	s.clipped += (x1 - x0 + 1) - max(hi-lo+1, 0)
	row := y * s.width
	for x := lo; x <= hi; x++ {
		s.WritePixelBytes(row+x, src.ColorAt(x, y))
	}
}

// fillTriangle scan-converts sorted vertices v and fills them from src.
// Scanlines outside the surface are never visited.
func (s *Surface) fillTriangle(v [3]PixelPoint, src ColorSource) int {
	pts := [3]raster.Point{
		{X: v[0].X, Y: v[0].Y},
		{X: v[1].X, Y: v[1].Y},
		{X: v[2].X, Y: v[2].Y},
	}
	rows := v[2].Y - v[0].Y + 1
	visible := min(v[2].Y, s.height-1) - max(v[0].Y, 0) + 1
	s.clippedRows += rows - max(visible, 0)

	return s.scanner.Triangle(pts, 0, s.height-1, func(y, x0, x1 int) {
		s.fillSpan(y, x0, x1, src)
	})
}

// takeClipped returns and resets the clipping counters.
func (s *Surface) takeClipped() (pixels, rows int) {
	pixels, rows = s.clipped, s.clippedRows
	s.clipped, s.clippedRows = 0, 0
	return pixels, rows
}

// ToImage copies the surface into a new image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.PixelBytes(Pt(x, y)).NRGBA()
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}
