// Package softrast is a CPU triangle rasterizer that draws into RGBA byte
// buffers.
//
// # Overview
//
// softrast scan-converts triangles, either flat-colored or texture-mapped
// with nearest-neighbor sampling, and composites them into a caller-owned
// pixel buffer. It is the drawing core of a software graphics backend: a
// host layer hands it a target buffer and batches of vertices, and
// softrast does the rest synchronously.
//
// # Quick Start
//
//	buf := make([]byte, 320*240*4)
//	s, err := softrast.NewSurface(320, 240, buf)
//	if err != nil {
//		return err
//	}
//	r := softrast.NewRenderer(s)
//	r.Clear(softrast.Black)
//	err = r.DrawTriangles(softrast.RGB(1, 0, 0), softrast.Batches(
//		[]softrast.Vertex{{-50, -50}, {50, -50}, {0, 50}},
//	))
//
// # Coordinate System
//
// Pixel space has its origin at the top-left, with y growing downwards.
// Vertices are mapped to pixels by a VertexMapper:
//   - CenterOrigin (the default): vertex (0, 0) is the buffer center and
//     out-of-range vertices clamp to the nearest edge pixel.
//   - Transform: an explicit 2×2 matrix plus translation, with no clamping
//     other than saturating negative results to 0.
//
// Textures map their UVs with their own CenterOrigin unless the Renderer
// is given WithUVMapping.
//
// # Compositing
//
// Every pixel write goes through Surface.WritePixelBytes. Transparent
// writes are ignored, opaque writes (or writes onto transparent pixels)
// replace, and anything else interpolates by the source alpha. See
// BlendMode for the output alpha.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Surface, Renderer, Triangle, TextureTriangle, Texture, Transform
//   - Internal: raster (edge-pair scan conversion), blend (compositing)
//   - Tools: cmd/trirender renders TOML scene files to PNG
package softrast
