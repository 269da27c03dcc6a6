package engine

import (
	"fmt"
	"image/color"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-canvas/common"
	"github.com/Carmen-Shannon/oxy-canvas/engine/canvas"
	"github.com/Carmen-Shannon/oxy-canvas/engine/profiler"
	"github.com/Carmen-Shannon/oxy-canvas/engine/renderer"
	"github.com/Carmen-Shannon/oxy-canvas/engine/scene"
	"github.com/Carmen-Shannon/oxy-canvas/engine/window"
)

// Updater is implemented by anything that advances once per frame, such as cameras and game objects.
type Updater interface {
	Update(dt float64)
}

// engine implements the Engine interface.
// Everything runs on the calling goroutine: tick, update, draw and present happen in order each frame.
type engine struct {
	mu *sync.Mutex

	window   window.Window
	renderer renderer.Renderer
	surface  *canvas.Surface

	width  int
	height int

	background color.Color

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float64)
	resizeCallback func(width, height int)
	autoUpdate     bool

	scenes map[int]scene.Scene

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	now              func() time.Time

	quit        atomic.Bool
	warnedNoGPU bool
}

// Engine is the main entry point for the engine.
// It owns the drawing surface and drives scenes, the renderer and the window from one loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil when running headless
	Window() window.Window

	// Renderer returns the renderer frames are presented through.
	//
	// Returns:
	//   - renderer.Renderer: the renderer, or nil if frames are not presented
	Renderer() renderer.Renderer

	// Surface returns the canvas every scene draws onto.
	//
	// Returns:
	//   - *canvas.Surface: the frame surface
	Surface() *canvas.Surface

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called at the start of each frame.
	// Use this for game logic and input processing.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetTickCallback(callback func(deltaTime float64))

	// SetResizeCallback sets the function called after the engine has resized its surface and renderer.
	// The engine owns the window's resize callback; register here instead.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetBackground sets the colour the surface is cleared to before scenes draw.
	//
	// Parameters:
	//   - c: the clear colour
	SetBackground(c color.Color)

	// SetRenderFrameLimit sets an optional render frame rate cap for Run, in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given z-index key.
	// Scenes are rendered in ascending key order.
	//
	// Parameters:
	//   - key: the z-index determining render order (lower renders first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Step runs one frame: the tick callback, then Update on each active scene's camera and
	// children (when auto update is on), then every active scene renders onto the surface
	// in ascending key order, then the surface is presented.
	//
	// Parameters:
	//   - dt: seconds since the previous frame
	//
	// Returns:
	//   - error: the first scene render error or presentation error
	Step(dt float64) error

	// RunFrames runs n frames headless with a fixed delta, stopping early on Quit or error.
	//
	// Parameters:
	//   - n: number of frames
	//   - dt: fixed delta time in seconds
	//
	// Returns:
	//   - error: the first Step error
	RunFrames(n int, dt float64) error

	// Run drives Step from the window message loop (blocks until the window closes or Quit is called).
	// Step errors are logged and the loop continues.
	Run()

	// Quit stops Run or RunFrames after the current frame.
	// Safe to call multiple times and from any goroutine.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// With a window the surface takes the window's size and, unless WithRenderer was given, a WebGPU
// renderer is created for it. Without a window the engine is headless.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:         &sync.Mutex{},
		scenes:     make(map[int]scene.Scene),
		background: color.Black,
		width:      1280,
		height:     720,
		autoUpdate: true,
		now:        time.Now,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}

	if e.window != nil {
		e.width = e.window.Width()
		e.height = e.window.Height()
		if e.renderer == nil {
			e.renderer = renderer.NewRenderer(e.window)
		}
		e.window.SetResizeCallback(e.resize)
	}
	e.surface = canvas.NewSurface(e.width, e.height)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Surface() *canvas.Surface {
	return e.surface
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float64)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resizeCallback = callback
}

func (e *engine) SetBackground(c color.Color) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.background = c
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderFrameLimit = frameLimit(fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[int]scene.Scene, len(e.scenes))
	for k, s := range e.scenes {
		out[k] = s
	}
	return out
}

// activeScenes returns the active scenes in ascending key order.
func (e *engine) activeScenes() []scene.Scene {
	e.mu.Lock()
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		if s := e.scenes[k]; s != nil && s.Active() {
			out = append(out, s)
		}
	}
	e.mu.Unlock()
	return out
}

func (e *engine) Step(dt float64) error {
	e.mu.Lock()
	tick := e.tickCallback
	bg := e.background
	profiling := e.profilingEnabled
	autoUpdate := e.autoUpdate
	e.mu.Unlock()

	if tick != nil {
		tick(dt)
	}

	scenes := e.activeScenes()
	if autoUpdate {
		update(scenes, dt)
	}

	e.surface.Clear(bg)
	for _, s := range scenes {
		if err := s.Render(e.surface); err != nil {
			return fmt.Errorf("engine: rendering scene %q: %w", s.Name(), err)
		}
		if profiling {
			e.profiler.Record(s.Stats())
		}
	}

	if err := e.present(); err != nil {
		return err
	}

	if profiling {
		e.profiler.Tick()
	}
	return nil
}

// update advances each distinct camera once, then each distinct child that implements Updater.
// Updaters of non-comparable types cannot be deduplicated and are advanced wherever they appear.
func update(scenes []scene.Scene, dt float64) {
	seen := make(map[Updater]struct{})
	advance := func(v any) {
		u, ok := v.(Updater)
		if !ok {
			return
		}
		if reflect.TypeOf(u).Comparable() {
			if _, dup := seen[u]; dup {
				return
			}
			seen[u] = struct{}{}
		}
		u.Update(dt)
	}
	for _, s := range scenes {
		advance(s.Camera())
	}
	for _, s := range scenes {
		for _, c := range s.Children() {
			advance(c)
		}
	}
}

func (e *engine) present() error {
	if e.renderer == nil {
		return nil
	}
	if !e.renderer.Available() {
		if !e.warnedNoGPU {
			e.warnedNoGPU = true
			common.Logger().Warn("engine: renderer unavailable, frames are drawn but not presented")
		}
		return nil
	}
	if err := e.renderer.Present(e.surface); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}

func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.width, e.height = width, height
	if err := e.surface.Resize(width, height); err != nil {
		common.Logger().Warn("engine: surface resize failed", "width", width, "height", height, "error", err)
	}
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}

	e.mu.Lock()
	cb := e.resizeCallback
	e.mu.Unlock()
	if cb != nil {
		cb(width, height)
	}
}

func (e *engine) RunFrames(n int, dt float64) error {
	for i := 0; i < n && !e.quit.Load(); i++ {
		if err := e.Step(dt); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) Run() {
	if e.window == nil {
		common.Logger().Error("engine: Run requires a window; use RunFrames when headless")
		return
	}

	last := e.now()
	e.window.SetUpdateCallback(func() {
		if e.quit.Load() {
			_ = e.window.Close()
			return
		}

		e.mu.Lock()
		limit := e.renderFrameLimit
		e.mu.Unlock()

		now := e.now()
		elapsed := now.Sub(last)
		if limit > 0 && elapsed < limit {
			return
		}
		last = now

		if err := e.Step(elapsed.Seconds()); err != nil {
			common.Logger().Warn("engine: frame failed", "error", err)
		}
	})
	e.window.ProcessMessages()

	if e.renderer != nil {
		e.renderer.Release()
	}
	_ = e.window.Close()
}

func (e *engine) Quit() {
	e.quit.Store(true)
}

func frameLimit(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
