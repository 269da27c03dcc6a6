package scene

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-canvas/common"
	"github.com/Carmen-Shannon/oxy-canvas/engine/camera"
	"github.com/Carmen-Shannon/oxy-canvas/engine/canvas"
)

// ErrCameraRequired is returned by NewScene when no camera was supplied.
var ErrCameraRequired = errors.New("scene: a camera is required")

// DefaultParallelThreshold is the child count at which projection moves onto the worker pool.
const DefaultParallelThreshold = 1024

// Projector is the part of a camera the scene needs. camera.Camera satisfies it.
type Projector interface {
	// Project converts a world point into a screen offset, depth and scale factor.
	Project(x, y, z float64) camera.Projection
}

// batchProjector is implemented by projectors that can project many points under one lock.
type batchProjector interface {
	ProjectAll(points []common.Point3) []camera.Projection
}

// Child is anything a scene can position and draw. X and Y are world coordinates;
// Draw paints the child centred on the canvas origin, in the child's local units.
type Child interface {
	X() float64
	Y() float64

	// Draw paints the child. The canvas is already translated to the projected position and,
	// if depth scaling is enabled, scaled by the perspective factor.
	//
	// Parameters:
	//   - c: the canvas to draw on
	//
	// Returns:
	//   - error: error if drawing failed; the scene aborts the frame
	Draw(c canvas.Canvas) error
}

// Depther is implemented by children with a world Z coordinate. Children without it sit at z = 0.
type Depther interface {
	Z() float64
}

// Hider is implemented by children that can be hidden. Children without it are always visible.
type Hider interface {
	Visible() bool
}

// Stats describes the most recent Render.
type Stats struct {
	// Drawn is the number of children whose Draw was called.
	Drawn int
	// Culled is the number of visible children skipped because they projected behind the camera.
	Culled int
	// Hidden is the number of children skipped because Visible reported false.
	Hidden int
}

// Scene is a depth-sorted, perspective-scaled container of 2D drawables.
// Each Render projects visible children through the camera, paints them back to front and
// scales each one by its perspective factor around a screen anchor.
// Thread-safe for concurrent access; children are called without the scene lock held.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active reports whether the engine should render this scene.
	Active() bool

	// SetActive sets whether the engine should render this scene.
	SetActive(active bool)

	// Camera returns the scene's projector.
	Camera() Projector

	// SetCamera replaces the scene's projector. A nil projector is ignored.
	//
	// Parameters:
	//   - p: the new projector
	SetCamera(p Projector)

	// Add appends a child. Later children paint after earlier ones at equal depth.
	//
	// Parameters:
	//   - child: the child to add
	//
	// Returns:
	//   - uint64: the assigned child ID
	Add(child Child) uint64

	// Get returns the child with the given ID, or nil.
	//
	// Parameters:
	//   - id: the child ID returned by Add
	//
	// Returns:
	//   - Child: the child or nil
	Get(id uint64) Child

	// Remove removes a child by ID.
	//
	// Parameters:
	//   - id: the child ID returned by Add
	//
	// Returns:
	//   - bool: true if a child was removed
	Remove(id uint64) bool

	// Clear removes all children.
	Clear()

	// Children returns the children in insertion order.
	//
	// Returns:
	//   - []Child: a copy of the child list
	Children() []Child

	// Len returns the number of children.
	Len() int

	// SetPosition sets the screen anchor the projected offsets are relative to.
	//
	// Parameters:
	//   - x, y: anchor in canvas units
	SetPosition(x, y float64)

	// Position returns the screen anchor.
	Position() (x, y float64)

	// SetDepthSort enables or disables back-to-front sorting.
	SetDepthSort(enabled bool)

	// DepthSort reports whether children are sorted by depth before drawing.
	DepthSort() bool

	// SetScaleByDepth enables or disables perspective scaling of each child.
	SetScaleByDepth(enabled bool)

	// ScaleByDepth reports whether children are scaled by their perspective factor.
	ScaleByDepth() bool

	// Stats returns the counters of the most recent Render.
	Stats() Stats

	// Render draws every visible child onto c. The canvas save stack is balanced on return,
	// including when a child's Draw fails, in which case the frame is aborted and the error returned.
	//
	// Parameters:
	//   - c: the canvas to draw on
	//
	// Returns:
	//   - error: the first child draw error, wrapped
	Render(c canvas.Canvas) error
}

type entry struct {
	id    uint64
	child Child
}

// item is a child prepared for drawing within one Render call.
type item struct {
	id    uint64
	child Child
	pt    common.Point3
	proj  camera.Projection
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	cam          Projector
	children     []entry
	nextID       uint64
	anchorX      float64
	anchorY      float64
	depthSort    bool
	scaleByDepth bool
	stats        Stats

	// projectPool projects large child lists in parallel. Drawing always stays on the caller's goroutine.
	projectPool       worker.DynamicWorkerPool
	projectWorkers    int
	parallelThreshold int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene. A camera must be supplied with WithCamera.
// Depth sorting and depth scaling are enabled by default and the anchor is (0, 0).
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
//   - error: ErrCameraRequired if no camera was given
func NewScene(options ...SceneBuilderOption) (Scene, error) {
	s := &scene{
		mu:                &sync.RWMutex{},
		active:            true,
		nextID:            1,
		depthSort:         true,
		scaleByDepth:      true,
		projectWorkers:    max(runtime.NumCPU()-1, 1),
		parallelThreshold: DefaultParallelThreshold,
	}

	for _, option := range options {
		option(s)
	}

	if s.cam == nil {
		return nil, ErrCameraRequired
	}

	// Initialize the pool after options so WithProjectWorkers can override the default.
	s.projectPool = worker.NewDynamicWorkerPool(s.projectWorkers, 256, 1*time.Second)
	return s, nil
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() Projector {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(p Projector) {
	if p == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = p
}

func (s *scene) Add(child Child) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(child)
}

// add appends child and returns its ID. Caller must hold the write lock.
func (s *scene) add(child Child) uint64 {
	id := s.nextID
	s.nextID++
	s.children = append(s.children, entry{id: id, child: child})
	return id
}

func (s *scene) Get(id uint64) Child {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.children {
		if e.id == id {
			return e.child
		}
	}
	return nil
}

func (s *scene) Remove(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.children {
		if e.id == id {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return true
		}
	}
	return false
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.children = nil
}

func (s *scene) Children() []Child {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Child, len(s.children))
	for i, e := range s.children {
		out[i] = e.child
	}
	return out
}

func (s *scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.children)
}

func (s *scene) SetPosition(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anchorX, s.anchorY = x, y
}

func (s *scene) Position() (x, y float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.anchorX, s.anchorY
}

func (s *scene) SetDepthSort(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.depthSort = enabled
}

func (s *scene) DepthSort() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.depthSort
}

func (s *scene) SetScaleByDepth(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scaleByDepth = enabled
}

func (s *scene) ScaleByDepth() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scaleByDepth
}

func (s *scene) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *scene) Render(c canvas.Canvas) error {
	s.mu.RLock()
	entries := make([]entry, len(s.children))
	copy(entries, s.children)
	cam := s.cam
	ax, ay := s.anchorX, s.anchorY
	depthSort := s.depthSort
	scaleByDepth := s.scaleByDepth
	s.mu.RUnlock()

	var stats Stats
	defer func() {
		s.mu.Lock()
		s.stats = stats
		s.mu.Unlock()
	}()

	// Hidden children are dropped before projection so they cost nothing.
	items := make([]item, 0, len(entries))
	for _, e := range entries {
		if h, ok := e.child.(Hider); ok && !h.Visible() {
			stats.Hidden++
			continue
		}
		it := item{id: e.id, child: e.child, pt: common.Pt3(e.child.X(), e.child.Y(), 0)}
		if d, ok := e.child.(Depther); ok {
			it.pt.Z = d.Z()
		}
		items = append(items, it)
	}

	s.project(cam, items)

	// Painter's algorithm: farthest first. Stable so equal depths keep insertion order.
	if depthSort {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].proj.Z > items[j].proj.Z
		})
	}

	c.Save()
	defer c.Restore()
	c.Translate(ax, ay)

	for _, it := range items {
		if !it.proj.Visible() {
			stats.Culled++
			continue
		}
		if err := drawItem(c, it, scaleByDepth); err != nil {
			return fmt.Errorf("scene: drawing child %d: %w", it.id, err)
		}
		stats.Drawn++
	}
	return nil
}

// drawItem isolates one child's transform. The deferred Restore keeps the stack balanced on error.
func drawItem(c canvas.Canvas, it item, scaleByDepth bool) error {
	c.Save()
	defer c.Restore()
	c.Translate(it.proj.X, it.proj.Y)
	if scaleByDepth {
		c.Scale(it.proj.Scale, it.proj.Scale)
	}
	return it.child.Draw(c)
}

// project fills in items[i].proj, calling the projector exactly once per item.
// Lists at or above the parallel threshold are split across the worker pool.
func (s *scene) project(p Projector, items []item) {
	s.mu.RLock()
	workers := s.projectWorkers
	threshold := s.parallelThreshold
	s.mu.RUnlock()

	if len(items) < threshold || workers < 2 {
		projectChunk(p, items)
		return
	}

	chunk := (len(items) + workers - 1) / workers
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(items); start += chunk {
		end := min(start+chunk, len(items))
		part := items[start:end]
		wg.Add(1)
		id := taskID
		taskID++
		s.projectPool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				projectChunk(p, part)
				return nil, nil
			},
		})
	}
	wg.Wait()
	common.Logger().Debug("scene projected in parallel", "scene", s.Name(), "children", len(items), "tasks", taskID)
}

func projectChunk(p Projector, items []item) {
	if bp, ok := p.(batchProjector); ok {
		pts := make([]common.Point3, len(items))
		for i := range items {
			pts[i] = items[i].pt
		}
		for i, proj := range bp.ProjectAll(pts) {
			items[i].proj = proj
		}
		return
	}
	for i := range items {
		items[i].proj = p.Project(items[i].pt.X, items[i].pt.Y, items[i].pt.Z)
	}
}
