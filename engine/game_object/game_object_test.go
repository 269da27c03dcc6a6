package game_object

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-canvas/engine/camera"
	"github.com/Carmen-Shannon/oxy-canvas/engine/canvas"
	"github.com/Carmen-Shannon/oxy-canvas/engine/scene"
)

var (
	_ scene.Child   = NewGameObject()
	_ scene.Depther = NewGameObject()
	_ scene.Hider   = NewGameObject()
	_ camera.Target = NewGameObject()
)

// transformOnly is a Canvas that cannot paint.
type transformOnly struct{}

func (transformOnly) Save()                  {}
func (transformOnly) Restore()               {}
func (transformOnly) Translate(x, y float64) {}
func (transformOnly) Scale(x, y float64)     {}

func TestPositionAndTranslate(t *testing.T) {
	g := NewGameObject(WithPosition(1, 2, 3))
	g.Translate(10, -2, 0.5)
	x, y, z := g.Position()
	if x != 11 || y != 0 || z != 3.5 {
		t.Errorf("Position() = (%v, %v, %v), want (11, 0, 3.5)", x, y, z)
	}
	if g.X() != x || g.Y() != y || g.Z() != z {
		t.Errorf("X/Y/Z = (%v, %v, %v) disagree with Position", g.X(), g.Y(), g.Z())
	}
}

func TestVisibility(t *testing.T) {
	g := NewGameObject(WithVisible(false))
	if g.Visible() {
		t.Fatal("Visible() = true, want false")
	}
	g.SetVisible(true)
	if !g.Visible() {
		t.Error("Visible() = false after SetVisible(true)")
	}
}

func TestUpdateSpins(t *testing.T) {
	g := NewGameObject(WithRotation(0.5), WithRotationSpeed(2))
	g.Update(0.25)
	if got := g.Rotation(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Rotation() = %v, want 1", got)
	}
}

func TestColorRoundTrip(t *testing.T) {
	g := NewGameObject(WithColor(color.NRGBA{R: 200, G: 100, B: 50, A: 255}))
	if got := g.Color(); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("Color() = %v", got)
	}
}

func TestDrawRequiresPainter(t *testing.T) {
	err := NewGameObject().Draw(transformOnly{})
	if !errors.Is(err, ErrNotPainter) {
		t.Errorf("Draw() error = %v, want ErrNotPainter", err)
	}
}

func TestDrawFuncErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	g := NewGameObject(WithDrawFunc(func(p canvas.Painter) error { return boom }))

	s := canvas.NewSurface(8, 8)
	defer s.Close()
	if err := g.Draw(s); !errors.Is(err, boom) {
		t.Errorf("Draw() error = %v, want boom", err)
	}
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d after failed Draw, want 0", s.Depth())
	}
}

func TestCirclePaintsThroughScene(t *testing.T) {
	surface := canvas.NewSurface(32, 32)
	defer surface.Close()
	surface.Clear(color.Black)

	ball := NewGameObject(WithCircle(4), WithColor(color.RGBA{R: 255, A: 255}))
	sc, err := scene.NewScene(
		scene.WithCamera(camera.NewCamera()),
		scene.WithPosition(16, 16),
		scene.WithChildren(ball),
	)
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	if err := sc.Render(surface); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img := surface.RGBA()
	if got := img.RGBAAt(16, 16); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("centre pixel = %v, want red", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{A: 255}) {
		t.Errorf("corner pixel = %v, want black", got)
	}
}

func TestRectangleSkippedWhenHidden(t *testing.T) {
	surface := canvas.NewSurface(16, 16)
	defer surface.Close()
	surface.Clear(color.Black)

	box := NewGameObject(WithRectangle(10, 10), WithColor(color.White), WithVisible(false))
	sc, err := scene.NewScene(scene.WithCamera(camera.NewCamera()), scene.WithPosition(8, 8), scene.WithChildren(box))
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	if err := sc.Render(surface); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := surface.RGBA().RGBAAt(8, 8); got != (color.RGBA{A: 255}) {
		t.Errorf("centre pixel = %v, want untouched black", got)
	}
	if got := sc.Stats().Hidden; got != 1 {
		t.Errorf("Stats().Hidden = %d, want 1", got)
	}
}
