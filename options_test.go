package softrast

import "testing"

// TestNewSurfaceDefaults tests the default mapping and blend mode.
func TestNewSurfaceDefaults(t *testing.T) {
	s := newTestSurface(t, 10, 20)

	if got, want := s.Mapping(), (CenterOrigin{Width: 10, Height: 20}); got != want {
		t.Errorf("Mapping() = %v, want %v", got, want)
	}
	if s.BlendMode() != BlendOpaque {
		t.Errorf("BlendMode() = %v, want %v", s.BlendMode(), BlendOpaque)
	}
}

// TestSurfaceOptions tests that each option is applied.
func TestSurfaceOptions(t *testing.T) {
	xf := Identity.WithScale(2, 2)

	tests := []struct {
		name        string
		opts        []SurfaceOption
		wantMapping VertexMapper
		wantMode    BlendMode
	}{
		{"transform", []SurfaceOption{WithTransform(xf)}, xf, BlendOpaque},
		{"mapping", []SurfaceOption{WithMapping(CenterOrigin{Width: 2, Height: 2})}, CenterOrigin{Width: 2, Height: 2}, BlendOpaque},
		{"blend mode", []SurfaceOption{WithBlendMode(BlendSaturating)}, CenterOrigin{Width: 4, Height: 4}, BlendSaturating},
		{"last wins", []SurfaceOption{WithMapping(CenterOrigin{}), WithTransform(Identity)}, Identity, BlendOpaque},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSurface(t, 4, 4, tt.opts...)
			if s.Mapping() != tt.wantMapping {
				t.Errorf("Mapping() = %v, want %v", s.Mapping(), tt.wantMapping)
			}
			if s.BlendMode() != tt.wantMode {
				t.Errorf("BlendMode() = %v, want %v", s.BlendMode(), tt.wantMode)
			}
		})
	}
}

// TestWithTransformMapsVertices tests that the surface maps through the
// configured transform.
func TestWithTransformMapsVertices(t *testing.T) {
	s := newTestSurface(t, 8, 8, WithTransform(Identity.WithOrigin(Vertex{-1, -2})))
	if got, want := s.VertexToPixel(Vertex{3, 3}), Pt(4, 5); got != want {
		t.Errorf("VertexToPixel() = %v, want %v", got, want)
	}
}

// TestWithUVMapping tests renderer option injection.
func TestWithUVMapping(t *testing.T) {
	s := newTestSurface(t, 4, 4)

	if r := NewRenderer(s); r.uvMapping != nil {
		t.Errorf("default uvMapping = %v, want nil", r.uvMapping)
	}
	if r := NewRenderer(s, WithUVMapping(Identity)); r.uvMapping != Identity {
		t.Errorf("uvMapping = %v, want Identity", r.uvMapping)
	}
	if r := NewRenderer(s); r.Surface() != s {
		t.Error("Surface() does not return the target surface")
	}
}
