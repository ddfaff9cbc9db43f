package softrast

// SurfaceOption configures a Surface during creation.
//
// Example:
//
//	// Center-origin mapping, opaque blending
//	s, err := softrast.NewSurface(800, 600, buf)
//
//	// Explicit transform: vertex (0, 0) at the top-left pixel
//	s, err := softrast.NewSurface(800, 600, buf, softrast.WithTransform(softrast.Identity))
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	mapping VertexMapper
	mode    BlendMode
}

// defaultSurfaceOptions returns the default surface options.
func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		mapping: nil, // CenterOrigin for the surface size
		mode:    BlendOpaque,
	}
}

// WithTransform maps vertices to pixels with the explicit transform t
// instead of the default center-origin mapping.
func WithTransform(t Transform) SurfaceOption {
	return func(o *surfaceOptions) {
		o.mapping = t
	}
}

// WithMapping maps vertices with an arbitrary VertexMapper.
func WithMapping(m VertexMapper) SurfaceOption {
	return func(o *surfaceOptions) {
		o.mapping = m
	}
}

// WithBlendMode sets how partially transparent writes compute output
// alpha. The default is BlendOpaque.
func WithBlendMode(m BlendMode) SurfaceOption {
	return func(o *surfaceOptions) {
		o.mode = m
	}
}

// RendererOption configures a Renderer during creation.
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	uvMapping VertexMapper
}

// WithUVMapping maps texture coordinates with m instead of each texture's
// own center-origin mapping.
//
// Example:
//
//	// UVs in [0, 1] for a 256×256 texture
//	r := softrast.NewRenderer(s, softrast.WithUVMapping(softrast.Identity.WithScale(256, 256)))
func WithUVMapping(m VertexMapper) RendererOption {
	return func(o *rendererOptions) {
		o.uvMapping = m
	}
}
