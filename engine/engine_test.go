package engine

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-canvas/engine/camera"
	"github.com/Carmen-Shannon/oxy-canvas/engine/canvas"
	"github.com/Carmen-Shannon/oxy-canvas/engine/game_object"
	"github.com/Carmen-Shannon/oxy-canvas/engine/scene"
)

type fakeRenderer struct {
	available bool
	presented int
	err       error
	depths    []int
}

func (f *fakeRenderer) Available() bool { return f.available }

func (f *fakeRenderer) Present(s *canvas.Surface) error {
	f.presented++
	f.depths = append(f.depths, s.Depth())
	return f.err
}

func (f *fakeRenderer) Resize(width, height int) {}
func (f *fakeRenderer) Release()                 {}

// orderChild appends its name to a shared log when drawn.
type orderChild struct {
	name string
	log  *[]string
	err  error
}

func (c *orderChild) X() float64 { return 0 }
func (c *orderChild) Y() float64 { return 0 }
func (c *orderChild) Draw(canvas.Canvas) error {
	*c.log = append(*c.log, c.name)
	return c.err
}

func newScene(t *testing.T, cam camera.Camera, opts ...scene.SceneBuilderOption) scene.Scene {
	t.Helper()
	s, err := scene.NewScene(append([]scene.SceneBuilderOption{scene.WithCamera(cam)}, opts...)...)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func TestStepRendersScenesInKeyOrder(t *testing.T) {
	var drawn []string
	cam := camera.NewCamera()
	r := &fakeRenderer{available: true}
	e := NewEngine(
		WithRenderer(r),
		WithSurfaceSize(64, 48),
		WithScene(10, newScene(t, cam, scene.WithChildren(&orderChild{name: "top", log: &drawn}))),
		WithScene(-5, newScene(t, cam, scene.WithChildren(&orderChild{name: "bottom", log: &drawn}))),
		WithScene(0, newScene(t, cam, scene.WithActive(false), scene.WithChildren(&orderChild{name: "inactive", log: &drawn}))),
	)

	if err := e.Step(1.0 / 60); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(drawn) != 2 || drawn[0] != "bottom" || drawn[1] != "top" {
		t.Errorf("draw order = %v, want [bottom top]", drawn)
	}
	if r.presented != 1 {
		t.Errorf("presented = %d, want 1", r.presented)
	}
	if r.depths[0] != 0 {
		t.Errorf("surface depth at present = %d, want 0", r.depths[0])
	}
	if w, h := e.Surface().Width(), e.Surface().Height(); w != 64 || h != 48 {
		t.Errorf("surface size = %dx%d, want 64x48", w, h)
	}
}

func TestStepUpdatesSharedCameraOnce(t *testing.T) {
	cam := camera.NewCamera(camera.WithAutoRotate(1, camera.AxisY))
	e := NewEngine(
		WithScene(0, newScene(t, cam)),
		WithScene(1, newScene(t, cam)),
	)
	if err := e.Step(0.5); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if _, y, _ := cam.Rotation(); math.Abs(y-0.5) > 1e-12 {
		t.Errorf("yaw = %v, want 0.5 after one update", y)
	}
}

func TestStepUpdatesChildren(t *testing.T) {
	obj := game_object.NewGameObject(game_object.WithRotationSpeed(2))
	e := NewEngine(WithScene(0, newScene(t, camera.NewCamera(), scene.WithChildren(obj))))
	if err := e.RunFrames(3, 0.25); err != nil {
		t.Fatalf("RunFrames: %v", err)
	}
	if got := obj.Rotation(); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("rotation = %v, want 1.5", got)
	}
}

// valueUpdater has a non-comparable underlying type.
type valueUpdater struct {
	counts []int
}

func (v valueUpdater) X() float64               { return 0 }
func (v valueUpdater) Y() float64               { return 0 }
func (v valueUpdater) Draw(canvas.Canvas) error { return nil }
func (v valueUpdater) Update(float64)           { v.counts[0]++ }

func TestStepUpdatesSharedChildOnce(t *testing.T) {
	obj := game_object.NewGameObject(game_object.WithRotationSpeed(2))
	e := NewEngine(
		WithScene(0, newScene(t, camera.NewCamera(), scene.WithChildren(obj))),
		WithScene(1, newScene(t, camera.NewCamera(), scene.WithChildren(obj))),
	)
	if err := e.Step(0.25); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := obj.Rotation(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("rotation = %v, want 0.5 after one update", got)
	}
}

func TestStepNonComparableUpdater(t *testing.T) {
	v := valueUpdater{counts: make([]int, 1)}
	e := NewEngine(WithScene(0, newScene(t, camera.NewCamera(), scene.WithChildren(v))))
	if err := e.Step(0.1); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if v.counts[0] != 1 {
		t.Errorf("updates = %d, want 1", v.counts[0])
	}
}

func TestWithoutAutoUpdate(t *testing.T) {
	cam := camera.NewCamera(camera.WithAutoRotate(1, camera.AxisY))
	ticks := 0
	e := NewEngine(
		WithAutoUpdate(false),
		WithTickCallback(func(float64) { ticks++ }),
		WithScene(0, newScene(t, cam)),
	)
	if err := e.RunFrames(4, 0.1); err != nil {
		t.Fatalf("RunFrames: %v", err)
	}
	if ticks != 4 {
		t.Errorf("ticks = %d, want 4", ticks)
	}
	if _, y, _ := cam.Rotation(); y != 0 {
		t.Errorf("yaw = %v, want 0 with auto update off", y)
	}
}

func TestStepSceneError(t *testing.T) {
	var drawn []string
	boom := errors.New("boom")
	r := &fakeRenderer{available: true}
	e := NewEngine(
		WithRenderer(r),
		WithScene(0, newScene(t, camera.NewCamera(), scene.WithChildren(&orderChild{name: "bad", log: &drawn, err: boom}))),
	)
	if err := e.Step(0); !errors.Is(err, boom) {
		t.Fatalf("Step = %v, want wrapped boom", err)
	}
	if r.presented != 0 {
		t.Error("frame presented after scene error")
	}
	if d := e.Surface().Depth(); d != 0 {
		t.Errorf("surface depth after error = %d, want 0", d)
	}
}

func TestUnavailableRendererIsSkipped(t *testing.T) {
	r := &fakeRenderer{available: false}
	e := NewEngine(WithRenderer(r))
	if err := e.RunFrames(3, 0.1); err != nil {
		t.Fatalf("RunFrames: %v", err)
	}
	if r.presented != 0 {
		t.Errorf("presented = %d, want 0", r.presented)
	}
}

func TestQuitStopsRunFrames(t *testing.T) {
	frames := 0
	var e Engine
	e = NewEngine(WithTickCallback(func(float64) {
		frames++
		if frames == 2 {
			e.Quit()
		}
	}))
	if err := e.RunFrames(10, 0.1); err != nil {
		t.Fatalf("RunFrames: %v", err)
	}
	if frames != 2 {
		t.Errorf("frames = %d, want 2", frames)
	}
}

func TestBackgroundClear(t *testing.T) {
	e := NewEngine(WithSurfaceSize(4, 4), WithBackground(color.RGBA{R: 255, A: 255}))
	if err := e.Step(0); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := e.Surface().RGBA().RGBAAt(1, 1); got.R != 255 || got.G != 0 || got.B != 0 {
		t.Errorf("pixel = %v, want red", got)
	}
}

func TestSceneRegistry(t *testing.T) {
	e := NewEngine()
	s := newScene(t, camera.NewCamera())
	e.AddScene(3, s)
	if e.Scene(3) != s {
		t.Fatal("Scene(3) did not return the added scene")
	}
	copied := e.Scenes()
	delete(copied, 3)
	if e.Scene(3) == nil {
		t.Error("Scenes returned the live map")
	}
	e.RemoveScene(3)
	if e.Scene(3) != nil {
		t.Error("RemoveScene left the scene registered")
	}
}

func TestResizeFollowsWindow(t *testing.T) {
	var got [2]int
	e := NewEngine(WithSurfaceSize(10, 10)).(*engine)
	e.SetResizeCallback(func(w, h int) { got = [2]int{w, h} })

	e.resize(0, 20)
	if e.Surface().Width() != 10 {
		t.Error("non-positive size resized the surface")
	}
	e.resize(30, 20)
	if w, h := e.Surface().Width(), e.Surface().Height(); w != 30 || h != 20 {
		t.Errorf("surface = %dx%d, want 30x20", w, h)
	}
	if got != [2]int{30, 20} {
		t.Errorf("resize callback got %v, want [30 20]", got)
	}
}
