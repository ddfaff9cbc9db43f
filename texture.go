package softrast

import (
	"bytes"
	"fmt"
	"image"
	"io"

	// Decoders available to DecodeTexture.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/h2non/filetype"
	xdraw "golang.org/x/image/draw"
)

// sniffLen is the number of leading bytes inspected to detect an image
// format.
const sniffLen = 262

// Texture is an RGBA image sampled by textured triangles with
// nearest-neighbor lookup.
//
// The buffer is row-major, 4 bytes per pixel, not premultiplied, and is
// always exactly width*height*4 bytes long. Textures are read-only while
// being drawn; PutPixel is for building a texture before use.
type Texture struct {
	width  int
	height int
	data   []uint8
}

// NewTexture creates a fully transparent width×height texture.
func NewTexture(width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new texture %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Texture{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// TextureFromBytes creates a texture from a copy of data, which must be
// exactly width*height*4 bytes of row-major RGBA.
func TextureFromBytes(width, height int, data []uint8) (*Texture, error) {
	t, err := NewTexture(width, height)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("texture %dx%d: got %d bytes, want %d: %w",
			width, height, len(data), len(t.data), ErrBufferSize)
	}
	copy(t.data, data)
	return t, nil
}

// TextureFromImage converts img to a texture. Pixels are converted to
// non-premultiplied RGBA.
func TextureFromImage(img image.Image) (*Texture, error) {
	b := img.Bounds()
	t, err := NewTexture(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	dst := &image.NRGBA{Pix: t.data, Stride: t.width * 4, Rect: image.Rect(0, 0, t.width, t.height)}
	xdraw.Draw(dst, dst.Rect, img, b.Min, xdraw.Src)
	return t, nil
}

// DecodeTexture reads an encoded image and converts it to a texture.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported. All failures wrap
// ErrDecode.
func DecodeTexture(r io.Reader) (*Texture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrDecode, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrDecode)
	}

	head := data[:min(len(data), sniffLen)]
	if !filetype.IsImage(head) {
		return nil, fmt.Errorf("%w: data is not a recognized image format", ErrDecode)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		mime := "unknown format"
		if kind, kerr := filetype.Match(head); kerr == nil && kind != filetype.Unknown {
			mime = kind.MIME.Value
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, mime, err)
	}

	t, err := TextureFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}
	Logger().Debug("texture decoded", "format", format, "width", t.width, "height", t.height)
	return t, nil
}

// Width returns the width of the texture in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the height of the texture in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Size returns the width and height of the texture.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Data returns the underlying pixel buffer.
func (t *Texture) Data() []uint8 {
	return t.data
}

// GetPixel returns the texel at (x, y). Coordinates outside the texture
// yield transparent black.
func (t *Texture) GetPixel(x, y int) RGBA8 {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return RGBA8{}
	}
	i := (y*t.width + x) * 4
	if i+4 > len(t.data) {
		return RGBA8{}
	}
	return RGBA8(t.data[i : i+4])
}

// PutPixel sets the texel at (x, y). Coordinates outside the texture are
// ignored.
func (t *Texture) PutPixel(x, y int, c RGBA8) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	i := (y*t.width + x) * 4
	copy(t.data[i:i+4], c[:])
}

// Mapping returns the texture's own vertex mapping: CenterOrigin for its
// dimensions.
func (t *Texture) Mapping() VertexMapper {
	return CenterOrigin{Width: t.width, Height: t.height}
}

// VertexToPixelCoords maps a texture-space vertex to a texel with the
// texture's center-origin mapping.
func (t *Texture) VertexToPixelCoords(v Vertex) PixelPoint {
	return t.Mapping().Map(v)
}
