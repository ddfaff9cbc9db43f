package softrast

import (
	"image"
	"math/rand/v2"
	"testing"
)

// filled returns the set of pixels whose bytes are non-zero.
func filled(s *Surface) map[image.Point]RGBA8 {
	out := make(map[image.Point]RGBA8)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.PixelBytes(Pt(x, y)); c != (RGBA8{}) {
				out[image.Pt(x, y)] = c
			}
		}
	}
	return out
}

func TestNewTriangle_Sorts(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c PixelPoint
		want    [3]PixelPoint
	}{
		{"by y", Pt(3, 5), Pt(1, 2), Pt(0, 9), [3]PixelPoint{{1, 2}, {3, 5}, {0, 9}}},
		{"ties by x", Pt(3, 5), Pt(1, 2), Pt(0, 2), [3]PixelPoint{{0, 2}, {1, 2}, {3, 5}}},
		{"already sorted", Pt(0, 0), Pt(1, 1), Pt(2, 2), [3]PixelPoint{{0, 0}, {1, 1}, {2, 2}}},
		{"horizontal", Pt(4, 0), Pt(0, 0), Pt(2, 0), [3]PixelPoint{{0, 0}, {2, 0}, {4, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewTriangle(tt.a, tt.b, tt.c).Vertices(); got != tt.want {
				t.Errorf("Vertices() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriangle_HorizontalOnly(t *testing.T) {
	s := newTestSurface(t, 6, 3)
	NewTriangle(Pt(0, 0), Pt(4, 0), Pt(2, 0)).Render(s, White)

	got := filled(s)
	if len(got) != 5 {
		t.Errorf("filled %d pixels, want 5: %v", len(got), got)
	}
	for x := 0; x <= 4; x++ {
		if got[image.Pt(x, 0)] != (RGBA8{255, 255, 255, 255}) {
			t.Errorf("pixel (%d, 0) = %v, want white", x, got[image.Pt(x, 0)])
		}
	}
}

func TestTriangle_RightTriangle(t *testing.T) {
	s := newTestSurface(t, 6, 6)
	NewTriangle(Pt(0, 0), Pt(4, 4), Pt(0, 4)).Render(s, White)

	got := filled(s)
	if len(got) != 15 {
		t.Errorf("filled %d pixels, want 15", len(got))
	}
	for y := 0; y <= 4; y++ {
		for x := 0; x <= y; x++ {
			if _, ok := got[image.Pt(x, y)]; !ok {
				t.Errorf("pixel (%d, %d) not filled", x, y)
			}
		}
	}
}

// TestTriangle_WithinBounds renders random triangles and checks nothing is
// drawn outside their bounding boxes.
func TestTriangle_WithinBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		s := newTestSurface(t, 32, 32)
		tri := NewTriangle(
			Pt(rng.IntN(32), rng.IntN(32)),
			Pt(rng.IntN(32), rng.IntN(32)),
			Pt(rng.IntN(32), rng.IntN(32)),
		)
		tri.Render(s, White)

		box := tri.Bounds()
		got := filled(s)
		if len(got) == 0 {
			t.Fatalf("triangle %v filled nothing", tri.Vertices())
		}
		for p := range got {
			if !p.In(box) {
				t.Fatalf("triangle %v filled %v outside %v", tri.Vertices(), p, box)
			}
		}
	}
}

// TestTriangle_EachPixelOnce draws a translucent triangle over black. A
// pixel composited twice would come out brighter than the rest.
func TestTriangle_EachPixelOnce(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 9))
	for i := 0; i < 100; i++ {
		s := newTestSurface(t, 24, 24)
		s.Clear(Black)
		tri := NewTriangle(
			Pt(rng.IntN(24), rng.IntN(24)),
			Pt(rng.IntN(24), rng.IntN(24)),
			Pt(rng.IntN(24), rng.IntN(24)),
		)
		tri.Render(s, RGBA{R: 1, G: 1, B: 1, A: 0.5})

		for y := 0; y < 24; y++ {
			for x := 0; x < 24; x++ {
				c := s.PixelBytes(Pt(x, y))
				if c[0] != 0 && c[0] != 127 {
					t.Fatalf("triangle %v: pixel (%d, %d) = %v, want 0 or 127", tri.Vertices(), x, y, c)
				}
			}
		}
	}
}

func TestTriangle_ClipsToSurface(t *testing.T) {
	s := newTestSurface(t, 4, 4)
	NewTriangle(Pt(2, 2), Pt(10, 2), Pt(2, 10)).Render(s, White)

	got := filled(s)
	want := []image.Point{{2, 2}, {3, 2}, {2, 3}, {3, 3}}
	if len(got) != len(want) {
		t.Errorf("filled %d pixels, want %d: %v", len(got), len(want), got)
	}
	for _, p := range want {
		if _, ok := got[p]; !ok {
			t.Errorf("pixel %v not filled", p)
		}
	}
	pixels, rows := s.takeClipped()
	if pixels == 0 {
		t.Error("expected clipped pixels to be counted")
	}
	if rows != 7 {
		t.Errorf("clipped rows = %d, want 7", rows)
	}
}

func TestTriangle_FillFromSource(t *testing.T) {
	s := newTestSurface(t, 4, 4)
	src := SourceFunc(func(x, y int) RGBA8 { return RGBA8{uint8(x), uint8(y), 1, 255} })
	NewTriangle(Pt(0, 0), Pt(3, 0), Pt(0, 3)).Fill(s, src)

	if got := s.PixelBytes(Pt(2, 1)); got != (RGBA8{2, 1, 1, 255}) {
		t.Errorf("pixel (2, 1) = %v, want [2 1 1 255]", got)
	}
}

func TestNewTextureTriangle_KeepsPairs(t *testing.T) {
	tex, _ := NewTexture(4, 4)
	tri := NewTextureTriangle(
		TexturePair{Pixel: Pt(5, 5), Texel: Pt(1, 1)},
		TexturePair{Pixel: Pt(0, 0), Texel: Pt(2, 2)},
		TexturePair{Pixel: Pt(3, 0), Texel: Pt(3, 3)},
		tex,
	)

	wantV := [3]PixelPoint{{0, 0}, {3, 0}, {5, 5}}
	wantT := [3]PixelPoint{{2, 2}, {3, 3}, {1, 1}}
	if got := tri.Vertices(); got != wantV {
		t.Errorf("Vertices() = %v, want %v", got, wantV)
	}
	if got := tri.TextureVertices(); got != wantT {
		t.Errorf("TextureVertices() = %v, want %v", got, wantT)
	}
	if tri.Texture() != tex {
		t.Error("Texture() returned a different texture")
	}
}

func TestTextureTriangle_SinglePoint(t *testing.T) {
	tex, _ := NewTexture(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			tex.PutPixel(x, y, RGBA8{uint8(x * 10), uint8(y * 10), 5, 255})
		}
	}

	s := newTestSurface(t, 5, 5)
	p := Pt(2, 1)
	tri := NewTextureTriangle(
		TexturePair{Pixel: p, Texel: Pt(3, 1)},
		TexturePair{Pixel: p, Texel: Pt(0, 0)},
		TexturePair{Pixel: p, Texel: Pt(2, 2)},
		tex,
	)
	if !tri.Degenerate() {
		t.Fatal("Degenerate() = false, want true")
	}
	tri.Render(s)

	got := filled(s)
	if len(got) != 1 {
		t.Fatalf("filled %d pixels, want 1: %v", len(got), got)
	}
	if want := tex.GetPixel(3, 1); got[p.Image()] != want {
		t.Errorf("pixel %v = %v, want %v", p, got[p.Image()], want)
	}
}

func TestTextureSampler_Texel(t *testing.T) {
	tex, _ := NewTexture(10, 10)
	tri := NewTextureTriangle(
		TexturePair{Pixel: Pt(0, 0), Texel: Pt(0, 0)},
		TexturePair{Pixel: Pt(8, 0), Texel: Pt(8, 0)},
		TexturePair{Pixel: Pt(0, 8), Texel: Pt(0, 8)},
		tex,
	)
	s := newTextureSampler(tri)

	tests := []struct {
		pixel, want PixelPoint
	}{
		{Pt(0, 8), Pt(0, 8)}, // the local origin maps to its own texel
		{Pt(0, 0), Pt(8, -8)},
		{Pt(4, 4), Pt(8, -8)},
		{Pt(1, 7), Pt(8, -8)},
	}
	for _, tt := range tests {
		if got := s.texel(tt.pixel.X, tt.pixel.Y); got != tt.want {
			t.Errorf("texel(%v) = %v, want %v", tt.pixel, got, tt.want)
		}
	}
}

// TestTextureTriangle_Render checks the projection mapping end to end:
// every pixel except the local origin samples outside the texture, so
// only that pixel is written.
func TestTextureTriangle_Render(t *testing.T) {
	tex, _ := NewTexture(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			tex.PutPixel(x, y, RGBA8{255, 0, 0, 255})
		}
	}
	tex.PutPixel(0, 8, RGBA8{0, 0, 255, 255})

	s := newTestSurface(t, 10, 10)
	NewTextureTriangle(
		TexturePair{Pixel: Pt(0, 0), Texel: Pt(0, 0)},
		TexturePair{Pixel: Pt(8, 0), Texel: Pt(8, 0)},
		TexturePair{Pixel: Pt(0, 8), Texel: Pt(0, 8)},
		tex,
	).Render(s)

	got := filled(s)
	if len(got) != 1 || got[image.Pt(0, 8)] != (RGBA8{0, 0, 255, 255}) {
		t.Errorf("filled = %v, want only (0,8) blue", got)
	}
}

func TestTextureTriangle_CoincidentEdge(t *testing.T) {
	tex, _ := NewTexture(4, 4)
	s := newTestSurface(t, 4, 4)
	// Two vertices coincide: one framebuffer edge has zero length.
	NewTextureTriangle(
		TexturePair{Pixel: Pt(0, 0), Texel: Pt(0, 0)},
		TexturePair{Pixel: Pt(3, 3), Texel: Pt(3, 3)},
		TexturePair{Pixel: Pt(3, 3), Texel: Pt(3, 3)},
		tex,
	).Render(s)
}
