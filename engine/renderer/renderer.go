package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-canvas/common"
	"github.com/Carmen-Shannon/oxy-canvas/engine/canvas"
	"github.com/Carmen-Shannon/oxy-canvas/engine/window"
)

// ErrRendererUnavailable is returned by Present when no presentation backend could be created.
var ErrRendererUnavailable = errors.New("renderer: no presentation backend available")

// Renderer delivers finished canvas frames to a display or other sink.
//
// Frames are drawn on the CPU into a canvas.Surface; the Renderer only moves the pixels.
// A window Renderer uploads them into a GPU texture and blits it to the window surface.
type Renderer interface {
	// Available reports whether Present can deliver frames.
	//
	// Returns:
	//   - bool: false if the backend failed to initialise
	Available() bool

	// Present delivers one finished frame.
	//
	// Parameters:
	//   - frame: the surface holding the frame
	//
	// Returns:
	//   - error: ErrRendererUnavailable, or an error from the backend
	Present(frame *canvas.Surface) error

	// Resize reconfigures the backend for a new output size.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// Release frees backend resources. The Renderer is unavailable afterwards.
	Release()
}

// renderer is the window Renderer: a GPU presenter that blits canvas frames to a window surface.
type renderer struct {
	mu *sync.Mutex

	backend   RendererBackend
	available bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer presenting to the given window through WebGPU.
// If the GPU backend cannot be created the failure is logged and the returned Renderer reports
// Available() == false instead of panicking, so callers can fall back to headless output.
//
// Parameters:
//   - win: the window to present to
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the renderer
func NewRenderer(win window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		presentMode: PresentModeVSync,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	backend, err := newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, r.presentMode)
	if err != nil {
		common.Logger().Warn("renderer: GPU presentation unavailable", "error", err)
		return r
	}
	if err := backend.ConfigureSurface(win.Width(), win.Height()); err != nil {
		common.Logger().Warn("renderer: surface configuration failed", "error", err)
		backend.Release()
		return r
	}

	r.backend = backend
	r.available = true
	return r
}

func (r *renderer) Available() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.available
}

func (r *renderer) Present(frame *canvas.Surface) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.available {
		return ErrRendererUnavailable
	}

	img := frame.RGBA()
	if err := r.backend.UploadFrame(img.Pix, img.Rect.Dx(), img.Rect.Dy(), img.Stride); err != nil {
		return fmt.Errorf("renderer: uploading frame: %w", err)
	}
	if err := r.backend.DrawFrame(); err != nil {
		return fmt.Errorf("renderer: presenting frame: %w", err)
	}
	return nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.available || width <= 0 || height <= 0 {
		return
	}
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		common.Logger().Warn("renderer: resize failed", "width", width, "height", height, "error", err)
	}
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backend != nil {
		r.backend.Release()
		r.backend = nil
	}
	r.available = false
}
