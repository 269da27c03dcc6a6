package renderer

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-canvas/engine/canvas"
)

func TestPNGRendererWritesEveryNthFrame(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	r := NewPNGRenderer(dir, 2)
	s := canvas.NewSurface(8, 8)
	defer s.Close()
	s.Clear(color.White)

	for i := 0; i < 5; i++ {
		if err := r.Present(s); err != nil {
			t.Fatalf("Present %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	want := []string{"frame_00000.png", "frame_00002.png", "frame_00004.png"}
	if len(got) != len(want) {
		t.Fatalf("files = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPNGRendererReleased(t *testing.T) {
	r := NewPNGRenderer(t.TempDir(), 0)
	if !r.Available() {
		t.Fatal("new PNG renderer should be available")
	}
	r.Release()
	if r.Available() {
		t.Error("released renderer still available")
	}
	s := canvas.NewSurface(2, 2)
	defer s.Close()
	if err := r.Present(s); !errors.Is(err, ErrRendererUnavailable) {
		t.Errorf("Present after Release = %v, want ErrRendererUnavailable", err)
	}
}

func TestUnavailableRenderer(t *testing.T) {
	r := &renderer{mu: &sync.Mutex{}}
	if r.Available() {
		t.Fatal("renderer without backend reports available")
	}
	s := canvas.NewSurface(2, 2)
	defer s.Close()
	if err := r.Present(s); !errors.Is(err, ErrRendererUnavailable) {
		t.Errorf("Present = %v, want ErrRendererUnavailable", err)
	}
	r.Resize(10, 10)
	r.Release()
}

type fakeBackend struct {
	configured [][2]int
	uploads    int
	draws      int
	drawErr    error
	released   bool
}

func (f *fakeBackend) ConfigureSurface(w, h int) error {
	f.configured = append(f.configured, [2]int{w, h})
	return nil
}

func (f *fakeBackend) UploadFrame(pixels []byte, w, h, stride int) error {
	if len(pixels) < stride*h {
		return errors.New("short pixel buffer")
	}
	f.uploads++
	return nil
}

func (f *fakeBackend) DrawFrame() error {
	f.draws++
	return f.drawErr
}

func (f *fakeBackend) Release() { f.released = true }

func TestRendererPresentsThroughBackend(t *testing.T) {
	fb := &fakeBackend{}
	r := &renderer{mu: &sync.Mutex{}, backend: fb, available: true}
	s := canvas.NewSurface(4, 3)
	defer s.Close()

	if err := r.Present(s); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if fb.uploads != 1 || fb.draws != 1 {
		t.Errorf("uploads=%d draws=%d, want 1 and 1", fb.uploads, fb.draws)
	}

	r.Resize(0, 10)
	r.Resize(640, 480)
	if len(fb.configured) != 1 || fb.configured[0] != [2]int{640, 480} {
		t.Errorf("configured = %v, want [[640 480]]", fb.configured)
	}

	fb.drawErr = errors.New("lost surface")
	if err := r.Present(s); !errors.Is(err, fb.drawErr) {
		t.Errorf("Present = %v, want wrapped draw error", err)
	}

	r.Release()
	if !fb.released || r.Available() {
		t.Error("Release did not release the backend")
	}
}
