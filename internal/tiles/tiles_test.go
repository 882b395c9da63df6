package tiles

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Faultbox/ribbon-studio/pkg/ribbon"
)

type fakeUploader struct {
	next    uint32
	layers  [][]*image.RGBA
	failAt  int
	deleted []uint32
}

func (f *fakeUploader) UploadLayers(frames []*image.RGBA) (uint32, error) {
	if f.failAt > 0 && len(f.layers)+1 == f.failAt {
		return 0, errors.New("out of texture memory")
	}
	f.layers = append(f.layers, frames)
	f.next++
	return f.next, nil
}

func (f *fakeUploader) DeleteLayers(textures []uint32) {
	f.deleted = append(f.deleted, textures...)
}

func testParams() Params {
	return Params{Count: 3, Frames: 4, FPS: 2, Size: 16, Saturation: 0.6, Value: 0.9}
}

func TestFrameAt(t *testing.T) {
	tests := []struct {
		time   float64
		fps    float64
		frames int
		want   int
	}{
		{0, 6, 8, 0},
		{0.5, 6, 8, 3},
		{1.0, 6, 8, 6},
		{1.5, 6, 8, 1}, // 9 % 8
		{10, 0, 8, 0},
		{10, 6, 1, 0},
		{10, 6, 0, 0},
		{-1, 6, 8, 0},
	}
	for _, tt := range tests {
		if got := FrameAt(tt.time, tt.fps, tt.frames); got != tt.want {
			t.Errorf("FrameAt(%v, %v, %d) = %d, want %d", tt.time, tt.fps, tt.frames, got, tt.want)
		}
	}
}

func TestPalette(t *testing.T) {
	if Palette(0, 0, 1, 1) != nil {
		t.Error("empty palette should be nil")
	}
	p := Palette(4, 0, 1, 1)
	if len(p) != 4 {
		t.Fatalf("got %d colors, want 4", len(p))
	}
	// Hue 0 at full saturation and value is pure red.
	if r, g, b := p[0].RGB255(); r != 255 || g != 0 || b != 0 {
		t.Errorf("first color = %d,%d,%d, want red", r, g, b)
	}
	for i := 1; i < len(p); i++ {
		if p[i] == p[i-1] {
			t.Errorf("colors %d and %d are identical", i-1, i)
		}
	}
	// Offsets wrap around the hue circle.
	if a, b := Palette(1, 360, 1, 1)[0], Palette(1, 0, 1, 1)[0]; !a.AlmostEqualRgb(b) {
		t.Errorf("hue 360 = %v, want %v", a, b)
	}
}

func TestPaint(t *testing.T) {
	base := Palette(1, 200, 0.7, 0.8)[0]
	img := Paint(base, 32, 0, 4)
	if got := img.Bounds(); got != image.Rect(0, 0, 32, 32) {
		t.Fatalf("bounds = %v", got)
	}

	// Rails along both edges are identical.
	if img.RGBAAt(5, 0) != img.RGBAAt(5, 31) {
		t.Error("edge rails differ")
	}
	if img.RGBAAt(5, 0) == img.RGBAAt(5, 16) {
		t.Error("rail should differ from the tile body")
	}
	for x := 0; x < 32; x++ {
		if a := img.RGBAAt(x, 10).A; a != 255 {
			t.Fatalf("pixel %d not opaque: %d", x, a)
		}
	}
}

func TestPaintFramesAnimate(t *testing.T) {
	base := Palette(1, 0, 0.7, 0.8)[0]
	frames := PaintFrames(base, 24, 4)
	if len(frames) != 4 {
		t.Fatalf("got %d frames, want 4", len(frames))
	}
	if cmp.Equal(frames[0].Pix, frames[1].Pix) {
		t.Error("consecutive frames should differ")
	}
	// The cycle closes: frame n paints like frame 0.
	if diff := cmp.Diff(frames[0].Pix, Paint(base, 24, 4, 4).Pix); diff != "" {
		t.Errorf("frame cycle does not wrap (-want +got):\n%s", diff)
	}
}

func TestPaintWrapsAcrossTiles(t *testing.T) {
	img := Paint(Palette(1, 90, 0.7, 0.8)[0], 30, 0, 1)
	// Three whole stripe periods per tile: the first and last columns sit
	// half a pixel from the seam on either side and match.
	for y := 4; y < 26; y++ {
		if img.RGBAAt(0, y) != img.RGBAAt(10, y) || img.RGBAAt(10, y) != img.RGBAAt(20, y) {
			t.Fatalf("row %d not periodic across the tile", y)
		}
	}
}

func TestNewAnimated(t *testing.T) {
	up := &fakeUploader{}
	a, err := NewAnimated(up, testParams())
	if err != nil {
		t.Fatalf("NewAnimated: %v", err)
	}
	if got := len(a.Textures()); got != 3 {
		t.Fatalf("uploaded %d textures, want 3", got)
	}
	for i, layers := range up.layers {
		if len(layers) != 4 {
			t.Errorf("tile %d has %d layers, want 4", i, len(layers))
		}
	}
}

func TestNewAnimatedErrors(t *testing.T) {
	if _, err := NewAnimated(&fakeUploader{}, Params{}); err == nil {
		t.Error("expected error for empty tile set")
	}
	if _, err := NewAnimated(&fakeUploader{failAt: 2}, testParams()); err == nil {
		t.Error("expected upload error to propagate")
	}
}

func TestNewAnimatedReleasesOnFailure(t *testing.T) {
	up := &fakeUploader{failAt: 3}
	if _, err := NewAnimated(up, testParams()); err == nil {
		t.Fatal("expected upload error")
	}
	if diff := cmp.Diff([]uint32{1, 2}, up.deleted); diff != "" {
		t.Errorf("released textures mismatch (-want +got):\n%s", diff)
	}

	up = &fakeUploader{failAt: 1}
	if _, err := NewAnimated(up, testParams()); err == nil {
		t.Fatal("expected upload error")
	}
	if len(up.deleted) != 0 {
		t.Errorf("nothing was uploaded, but released %v", up.deleted)
	}
}

func TestAnimatedSurface(t *testing.T) {
	a, err := NewAnimated(&fakeUploader{}, testParams())
	if err != nil {
		t.Fatal(err)
	}

	for seg := 0; seg < 7; seg++ {
		s := a.Surface(seg)
		if s.Tile != seg%3 {
			t.Errorf("segment %d got tile %d, want %d", seg, s.Tile, seg%3)
		}
		if s.Texture != a.Textures()[seg%3] {
			t.Errorf("segment %d texture %d", seg, s.Texture)
		}
		if s.IsZero() {
			t.Errorf("segment %d surface is zero", seg)
		}
	}

	if got := a.Surface(0).Layer; got != 0 {
		t.Errorf("layer at time 0 = %d, want 0", got)
	}
	a.SetTime(1.25) // 2.5 frames at 2 fps
	if got := a.Surface(0).Layer; got != 2 {
		t.Errorf("layer at 1.25s = %d, want 2", got)
	}
	if a.Surface(-1) != (ribbon.Surface{}) {
		t.Error("negative segment should report a missing tile")
	}
}

func TestSolidSurface(t *testing.T) {
	s := NewSolid(testParams())
	got := s.Surface(4)
	if got.Tile != 1 || got.Texture != 0 {
		t.Errorf("unexpected surface %+v", got)
	}
	if got.IsZero() {
		t.Error("solid surface should carry a color")
	}
	if got.Color[3] != 1 {
		t.Errorf("alpha = %g, want 1", got.Color[3])
	}

	empty := NewSolid(Params{})
	if !empty.Surface(0).IsZero() {
		t.Error("empty palette should report a missing tile")
	}
}

func TestProvidersSatisfyTileProvider(t *testing.T) {
	a, err := NewAnimated(&fakeUploader{}, testParams())
	if err != nil {
		t.Fatal(err)
	}
	var _ ribbon.TileProvider = a
	var _ ribbon.TileProvider = NewSolid(testParams())
}
