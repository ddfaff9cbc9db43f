package softrast

import "errors"

// Errors reported by softrast. They are wrapped with context, so compare
// with errors.Is.
var (
	// ErrOutOfBounds is returned when a pixel point lies outside the surface.
	ErrOutOfBounds = errors.New("softrast: coordinates out of bounds")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("softrast: invalid dimensions")

	// ErrBufferSize is returned when a pixel buffer is not width*height*4 bytes.
	ErrBufferSize = errors.New("softrast: buffer size does not match dimensions")

	// ErrBatchLength is returned when a vertex batch is not a whole number
	// of triangles.
	ErrBatchLength = errors.New("softrast: vertex batch length is not a multiple of 3")

	// ErrUVMismatch is returned when a UV batch does not pair up with its
	// vertex batch.
	ErrUVMismatch = errors.New("softrast: uv batch length differs from vertex batch length")

	// ErrUnsupported is returned by operations the rasterizer does not
	// implement, such as filling polygons with more than three vertices.
	ErrUnsupported = errors.New("softrast: unsupported operation")

	// ErrDecode is returned when texture data cannot be decoded.
	ErrDecode = errors.New("softrast: texture decode failed")
)
