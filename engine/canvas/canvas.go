// Package canvas provides the 2D drawing target used by depth scenes and game objects.
// Canvas is the transform-stack contract a scene needs; Painter adds the drawing calls shapes use;
// Surface implements both on top of a gg drawing context.
package canvas

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/Carmen-Shannon/oxy-canvas/common"
	"github.com/gogpu/gg"
)

// Canvas is the minimal transform stack a depth scene composes through.
// Save and Restore must be balanced; transforms compose with whatever the children apply themselves.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recently saved transform state.
	Restore()

	// Translate moves the origin by (x, y) in the current coordinate space.
	//
	// Parameters:
	//   - x, y: translation in current units
	Translate(x, y float64)

	// Scale scales the current coordinate space.
	//
	// Parameters:
	//   - x, y: scale factors
	Scale(x, y float64)
}

// Painter is a Canvas that can also draw filled and stroked shapes.
type Painter interface {
	Canvas

	// Rotate rotates the current coordinate space by angle radians.
	Rotate(angle float64)

	// SetRGBA sets the current colour from 0..1 components.
	SetRGBA(r, g, b, a float64)

	// SetLineWidth sets the stroke width in current units.
	SetLineWidth(width float64)

	// DrawCircle adds a circle centred on (x, y) to the current path.
	DrawCircle(x, y, r float64)

	// DrawRectangle adds an axis-aligned rectangle to the current path.
	DrawRectangle(x, y, w, h float64)

	// DrawLine adds a line segment to the current path.
	DrawLine(x1, y1, x2, y2 float64)

	// Fill fills and clears the current path.
	//
	// Returns:
	//   - error: error if rasterisation fails
	Fill() error

	// Stroke strokes and clears the current path.
	//
	// Returns:
	//   - error: error if rasterisation fails
	Stroke() error
}

// ErrClosed is returned by Surface operations after Close.
var ErrClosed = errors.New("canvas: surface is closed")

// Surface is a Painter backed by a gg.Context. Save and Restore map to gg's Push and Pop.
type Surface struct {
	*gg.Context
	depth  int
	closed bool
}

var _ Painter = &Surface{}

// NewSurface creates a software-rasterised surface of the given size in pixels.
//
// Parameters:
//   - width: width in pixels
//   - height: height in pixels
//
// Returns:
//   - *Surface: the surface
func NewSurface(width, height int) *Surface {
	return &Surface{Context: gg.NewContext(width, height)}
}

// NewSurfaceForContext wraps an existing gg context, e.g. one configured with a GPU renderer.
//
// Parameters:
//   - dc: the context to wrap
//
// Returns:
//   - *Surface: the surface
func NewSurfaceForContext(dc *gg.Context) *Surface {
	return &Surface{Context: dc}
}

func (s *Surface) Save() {
	s.depth++
	s.Context.Push()
}

func (s *Surface) Restore() {
	if s.depth == 0 {
		return
	}
	s.depth--
	s.Context.Pop()
}

// Depth returns how many Save calls are currently unmatched by Restore.
//
// Returns:
//   - int: the save stack depth
func (s *Surface) Depth() int {
	return s.depth
}

// Clear fills the whole surface with c and resets the transform to identity.
//
// Parameters:
//   - c: the background colour
func (s *Surface) Clear(c color.Color) {
	for s.depth > 0 {
		s.Restore()
	}
	s.Context.Identity()
	s.Context.ClearWithColor(gg.FromColor(c))
}

// Resize changes the surface's pixel dimensions. Content is discarded.
//
// Parameters:
//   - width: new width in pixels
//   - height: new height in pixels
//
// Returns:
//   - error: ErrClosed after Close, or the context's resize error
func (s *Surface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	return s.Context.Resize(width, height)
}

// RGBA returns the current pixels as an *image.RGBA.
//
// Returns:
//   - *image.RGBA: the rendered frame
func (s *Surface) RGBA() *image.RGBA {
	if err := s.Context.FlushGPU(); err != nil {
		common.Logger().Warn("surface flush failed", "error", err)
	}
	return toRGBA(s.Context.Image())
}

// toRGBA returns src unchanged if it is already RGBA, otherwise a converted copy.
func toRGBA(src image.Image) *image.RGBA {
	if img, ok := src.(*image.RGBA); ok {
		return img
	}
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

// Close releases the underlying context. Close is idempotent.
//
// Returns:
//   - error: error from the underlying context
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.Context.Close()
}
