package renderer

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Carmen-Shannon/oxy-canvas/common"
	"github.com/Carmen-Shannon/oxy-canvas/engine/canvas"
)

// pngRenderer writes frames to numbered PNG files. It is the headless Renderer.
type pngRenderer struct {
	mu       *sync.Mutex
	dir      string
	every    int
	frame    int
	released bool
}

var _ Renderer = &pngRenderer{}

// NewPNGRenderer creates a Renderer that saves every Nth presented frame as dir/frame_NNNNN.png.
// The directory is created on first write. every values below 1 save every frame.
//
// Parameters:
//   - dir: output directory
//   - every: save one frame out of this many
//
// Returns:
//   - Renderer: the headless renderer
func NewPNGRenderer(dir string, every int) Renderer {
	return &pngRenderer{
		mu:    &sync.Mutex{},
		dir:   dir,
		every: max(every, 1),
	}
}

func (p *pngRenderer) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.released
}

func (p *pngRenderer) Present(frame *canvas.Surface) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.released {
		return ErrRendererUnavailable
	}

	n := p.frame
	p.frame++
	if n%p.every != 0 {
		return nil
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("renderer: creating %s: %w", p.dir, err)
	}
	path := filepath.Join(p.dir, fmt.Sprintf("frame_%05d.png", n))
	if err := frame.SavePNG(path); err != nil {
		return fmt.Errorf("renderer: writing %s: %w", path, err)
	}
	common.Logger().Debug("renderer: frame written", "path", path)
	return nil
}

// Resize is a no-op; output size follows the presented surface.
func (p *pngRenderer) Resize(width, height int) {}

func (p *pngRenderer) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.released = true
}
