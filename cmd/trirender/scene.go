package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/softrast"
)

// Scene is a TOML scene description.
//
//	width = 64
//	height = 64
//	clear = [0.0, 0.0, 0.0, 1.0]
//
//	[transform]
//	origin = [-32.0, -32.0]
//
//	[[triangles]]
//	color = [1.0, 0.0, 0.0]
//	vertices = [[-20.0, -20.0], [20.0, -20.0], [0.0, 20.0]]
type Scene struct {
	Width     int             `toml:"width"`
	Height    int             `toml:"height"`
	Blend     string          `toml:"blend"`
	Clear     []float32       `toml:"clear"`
	Transform *SceneTransform `toml:"transform"`
	UVScale   []float32       `toml:"uv_scale"`
	Triangles []TriangleBatch `toml:"triangles"`
	Textured  []TexturedBatch `toml:"textured"`
}

// SceneTransform selects an explicit vertex transform instead of the
// default center-origin mapping.
type SceneTransform struct {
	Origin []float32 `toml:"origin"`
	Scale  []float32 `toml:"scale"`
}

// TriangleBatch is a flat-colored batch.
type TriangleBatch struct {
	Color    []float32   `toml:"color"`
	Vertices [][]float32 `toml:"vertices"`
}

// TexturedBatch is a textured batch. Texture paths are relative to the
// scene file.
type TexturedBatch struct {
	Texture  string      `toml:"texture"`
	Vertices [][]float32 `toml:"vertices"`
	UVs      [][]float32 `toml:"uvs"`
}

// TextureLoader loads the texture at path.
type TextureLoader func(path string) (*softrast.Texture, error)

// loadTexture reads any image format imgio supports.
func loadTexture(path string) (*softrast.Texture, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, err
	}
	return softrast.TextureFromImage(img)
}

// ParseScene decodes and validates a scene.
func ParseScene(data []byte) (*Scene, error) {
	var sc Scene
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scene) validate() error {
	var errs []error
	if sc.Width <= 0 || sc.Height <= 0 {
		errs = append(errs, fmt.Errorf("scene size %dx%d: %w", sc.Width, sc.Height, softrast.ErrInvalidDimensions))
	}
	if _, err := sc.blendMode(); err != nil {
		errs = append(errs, err)
	}
	if sc.Clear != nil {
		if _, err := toColor(sc.Clear); err != nil {
			errs = append(errs, fmt.Errorf("clear: %w", err))
		}
	}
	if t := sc.Transform; t != nil {
		if t.Origin != nil && len(t.Origin) != 2 {
			errs = append(errs, fmt.Errorf("transform origin: want 2 values, got %d", len(t.Origin)))
		}
		if t.Scale != nil && len(t.Scale) != 2 {
			errs = append(errs, fmt.Errorf("transform scale: want 2 values, got %d", len(t.Scale)))
		}
	}
	if sc.UVScale != nil && len(sc.UVScale) != 2 {
		errs = append(errs, fmt.Errorf("uv_scale: want 2 values, got %d", len(sc.UVScale)))
	}
	for i, b := range sc.Triangles {
		if _, err := toColor(b.Color); err != nil {
			errs = append(errs, fmt.Errorf("triangles[%d] color: %w", i, err))
		}
		if _, err := toVertices(b.Vertices); err != nil {
			errs = append(errs, fmt.Errorf("triangles[%d] vertices: %w", i, err))
		}
	}
	for i, b := range sc.Textured {
		if b.Texture == "" {
			errs = append(errs, fmt.Errorf("textured[%d]: missing texture", i))
		}
		if _, err := toVertices(b.Vertices); err != nil {
			errs = append(errs, fmt.Errorf("textured[%d] vertices: %w", i, err))
		}
		if _, err := toVertices(b.UVs); err != nil {
			errs = append(errs, fmt.Errorf("textured[%d] uvs: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (sc *Scene) blendMode() (softrast.BlendMode, error) {
	switch sc.Blend {
	case "", "opaque":
		return softrast.BlendOpaque, nil
	case "saturating":
		return softrast.BlendSaturating, nil
	}
	return 0, fmt.Errorf("blend %q: %w", sc.Blend, softrast.ErrUnsupported)
}

func (sc *Scene) surfaceOptions() []softrast.SurfaceOption {
	mode, _ := sc.blendMode()
	opts := []softrast.SurfaceOption{softrast.WithBlendMode(mode)}
	if t := sc.Transform; t != nil {
		xf := softrast.Identity
		if t.Scale != nil {
			xf = xf.WithScale(t.Scale[0], t.Scale[1])
		}
		if t.Origin != nil {
			xf = xf.WithOrigin(softrast.Vertex{t.Origin[0], t.Origin[1]})
		}
		opts = append(opts, softrast.WithTransform(xf))
	}
	return opts
}

// Render draws the scene into a new surface. The scene is validated
// first, so a Scene built without ParseScene is checked too. Textures are
// resolved against dir and loaded once each. Every batch is drawn even if
// an earlier one fails; the errors are joined.
func (sc *Scene) Render(dir string, load TextureLoader) (*softrast.Surface, error) {
	if err := sc.validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, sc.Width*sc.Height*4)
	s, err := softrast.NewSurface(sc.Width, sc.Height, buf, sc.surfaceOptions()...)
	if err != nil {
		return nil, err
	}

	var ropts []softrast.RendererOption
	if sc.UVScale != nil {
		ropts = append(ropts, softrast.WithUVMapping(softrast.Identity.WithScale(sc.UVScale[0], sc.UVScale[1])))
	}
	r := softrast.NewRenderer(s, ropts...)

	if sc.Clear != nil {
		c, _ := toColor(sc.Clear)
		r.Clear(c)
	}

	var errs []error
	for i, b := range sc.Triangles {
		c, _ := toColor(b.Color)
		verts, _ := toVertices(b.Vertices)
		if err := r.DrawTriangles(c, softrast.Batches(verts)); err != nil {
			errs = append(errs, fmt.Errorf("triangles[%d]: %w", i, err))
		}
	}

	textures := make(map[string]*softrast.Texture)
	for i, b := range sc.Textured {
		path := b.Texture
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		tex, ok := textures[path]
		if !ok {
			tex, err = load(path)
			if err != nil {
				errs = append(errs, fmt.Errorf("textured[%d]: load %s: %w", i, b.Texture, err))
				continue
			}
			textures[path] = tex
		}
		verts, _ := toVertices(b.Vertices)
		uvs, _ := toVertices(b.UVs)
		err := r.DrawTexturedTriangles(softrast.White, tex, softrast.UVBatches(softrast.UVBatch{Vertices: verts, UVs: uvs}))
		if err != nil {
			errs = append(errs, fmt.Errorf("textured[%d]: %w", i, err))
		}
	}
	return s, errors.Join(errs...)
}

// toColor accepts [r, g, b] or [r, g, b, a].
func toColor(v []float32) (softrast.RGBA, error) {
	switch len(v) {
	case 3:
		return softrast.RGB(v[0], v[1], v[2]), nil
	case 4:
		return softrast.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
	}
	return softrast.RGBA{}, fmt.Errorf("want 3 or 4 components, got %d", len(v))
}

func toVertices(v [][]float32) ([]softrast.Vertex, error) {
	out := make([]softrast.Vertex, len(v))
	for i, p := range v {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d: want 2 coordinates, got %d", i, len(p))
		}
		out[i] = softrast.Vertex{p[0], p[1]}
	}
	return out, nil
}
