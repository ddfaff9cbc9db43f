package softrast

import (
	"image/color"

	"github.com/chewxy/math32"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Colors are not premultiplied.
type RGBA struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Transparent = RGBA{}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Bytes converts the color to bytes. Each channel is clamped to [0, 1]
// and then rounded down after scaling by 255.
func (c RGBA) Bytes() RGBA8 {
	return RGBA8{
		channelToByte(c.R),
		channelToByte(c.G),
		channelToByte(c.B),
		channelToByte(c.A),
	}
}

// channelToByte maps a channel in [0, 1] to [0, 255], rounding down.
func channelToByte(f float32) uint8 {
	if !(f > 0) {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(math32.Floor(f * 255))
}

// RGBA8 is a non-premultiplied color stored as R, G, B, A bytes, the same
// layout a pixel occupies in a surface or texture buffer.
type RGBA8 [4]uint8

// ColorAt implements ColorSource: an RGBA8 is a constant color source.
func (c RGBA8) ColorAt(int, int) RGBA8 {
	return c
}

// NRGBA converts the color to the standard library representation.
func (c RGBA8) NRGBA() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// ColorSource yields the color of the pixel at (x, y) in pixel space.
// Triangles fill through a ColorSource, so flat fills and texture
// sampling share one scan-conversion path.
type ColorSource interface {
	ColorAt(x, y int) RGBA8
}

// SourceFunc adapts a function to the ColorSource interface.
type SourceFunc func(x, y int) RGBA8

// ColorAt calls f(x, y).
func (f SourceFunc) ColorAt(x, y int) RGBA8 {
	return f(x, y)
}
