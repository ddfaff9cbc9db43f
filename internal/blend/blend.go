// Package blend implements the byte-level compositing used when a pixel is
// written onto a surface.
//
// Colors are non-premultiplied RGBA bytes. A write with source alpha a
// interpolates each color channel as
//
//	out = src*a/255 + dst*(255-a)/255
//
// truncated to a byte. The modes differ only in the output alpha.
package blend

// Mode selects how the output alpha of a partially transparent write is
// computed.
type Mode int

const (
	// ModeOpaque forces the output alpha to 255.
	ModeOpaque Mode = iota

	// ModeSaturating sets the output alpha to min(255, dstA+srcA).
	// This is the older behavior, kept for callers that depend on it.
	ModeSaturating
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeOpaque:
		return "opaque"
	case ModeSaturating:
		return "saturating"
	default:
		return "unknown"
	}
}

// Composite returns the result of writing src onto dst.
//
//   - src alpha 0 leaves dst unchanged.
//   - src alpha 255, or dst alpha 0, replaces dst with src.
//   - otherwise the color channels are interpolated and the alpha is set
//     according to mode.
func Composite(dst, src [4]uint8, mode Mode) [4]uint8 {
	a := src[3]
	switch {
	case a == 0:
		return dst
	case a == 255 || dst[3] == 0:
		return src
	}

	var out [4]uint8
	for i := 0; i < 3; i++ {
		out[i] = lerp(dst[i], src[i], a)
	}
	if mode == ModeSaturating {
		out[3] = addClamp(dst[3], a)
	} else {
		out[3] = 255
	}
	return out
}
