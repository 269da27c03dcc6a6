package engine

import (
	"image/color"
	"time"

	"github.com/Carmen-Shannon/oxy-canvas/engine/profiler"
	"github.com/Carmen-Shannon/oxy-canvas/engine/renderer"
	"github.com/Carmen-Shannon/oxy-canvas/engine/scene"
	"github.com/Carmen-Shannon/oxy-canvas/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler, e.g. to change its interval.
//
// Parameters:
//   - p: the profiler to record frames into
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets a window for the engine to draw into. The surface follows the window's size.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer frames are presented through, instead of the window's WebGPU
// renderer. Use renderer.NewPNGRenderer to write frames to disk when headless.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithSurfaceSize sets the surface size used when no window is configured.
// Non-positive values are ignored.
//
// Parameters:
//   - width: width in pixels
//   - height: height in pixels
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSurfaceSize(width, height int) EngineBuilderOption {
	return func(e *engine) {
		if width > 0 && height > 0 {
			e.width, e.height = width, height
		}
	}
}

// WithBackground sets the colour the surface is cleared to each frame.
//
// Parameters:
//   - c: the clear colour
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithBackground(c color.Color) EngineBuilderOption {
	return func(e *engine) {
		e.background = c
	}
}

// WithAutoUpdate controls whether Step calls Update on scene cameras and children.
// Enabled by default.
//
// Parameters:
//   - enabled: false to leave all updates to the tick callback
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAutoUpdate(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.autoUpdate = enabled
	}
}

// WithTickCallback registers the function called at the start of each frame.
//
// Parameters:
//   - callback: function receiving the frame delta time in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickCallback(callback func(deltaTime float64)) EngineBuilderOption {
	return func(e *engine) {
		e.tickCallback = callback
	}
}

// WithScene registers a scene at the given z-index key during engine construction.
// Scenes are rendered in ascending key order.
//
// Parameters:
//   - key: the z-index determining render order (lower renders first)
//   - s: the Scene to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit = frameLimit(fps)
	}
}

// WithClock replaces time.Now for the Run loop's delta time.
//
// Parameters:
//   - now: the clock
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(now func() time.Time) EngineBuilderOption {
	return func(e *engine) {
		if now != nil {
			e.now = now
		}
	}
}
