package canvas

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestSurfaceSaveRestoreTracksDepth(t *testing.T) {
	s := NewSurface(64, 64)
	defer s.Close()

	s.Save()
	s.Save()
	if s.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", s.Depth())
	}
	s.Restore()
	s.Restore()
	s.Restore() // unmatched restore is ignored
	if s.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0", s.Depth())
	}
}

func TestSurfaceTranslateScaleCompose(t *testing.T) {
	s := NewSurface(64, 64)
	defer s.Close()

	s.Save()
	s.Translate(10, 20)
	s.Scale(2, 2)
	x, y := s.TransformPoint(3, 4)
	s.Restore()

	if math.Abs(x-16) > 1e-9 || math.Abs(y-28) > 1e-9 {
		t.Errorf("TransformPoint = (%v, %v), want (16, 28)", x, y)
	}

	x, y = s.TransformPoint(3, 4)
	if x != 3 || y != 4 {
		t.Errorf("after Restore TransformPoint = (%v, %v), want (3, 4)", x, y)
	}
}

func TestSurfaceClearResetsStackAndPaints(t *testing.T) {
	s := NewSurface(8, 8)
	defer s.Close()

	s.Save()
	s.Translate(5, 5)
	s.Clear(color.RGBA{R: 255, A: 255})

	if s.Depth() != 0 {
		t.Errorf("Depth() after Clear = %d, want 0", s.Depth())
	}
	img := s.RGBA()
	r, g, b, a := img.At(4, 4).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 || a>>8 != 255 {
		t.Errorf("pixel = (%d,%d,%d,%d), want opaque red", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestToRGBAConvertsOtherModels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 6, 7))
	src.SetNRGBA(4, 5, color.NRGBA{G: 200, A: 255})

	dst := toRGBA(src)
	if dst.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", dst.Bounds(), src.Bounds())
	}
	if got := dst.RGBAAt(4, 5); got != (color.RGBA{G: 200, A: 255}) {
		t.Errorf("pixel = %v, want opaque green", got)
	}
	if got := dst.RGBAAt(2, 3); got != (color.RGBA{}) {
		t.Errorf("untouched pixel = %v, want transparent", got)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if toRGBA(rgba) != rgba {
		t.Error("RGBA source was copied")
	}
}

func TestSurfaceCloseIsIdempotent(t *testing.T) {
	s := NewSurface(8, 8)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if err := s.Resize(16, 16); err != ErrClosed {
		t.Errorf("Resize after Close = %v, want ErrClosed", err)
	}
}
