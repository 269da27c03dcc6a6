package game_object

import (
	"errors"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-canvas/engine/canvas"
)

// ErrNotPainter is returned by Draw when the canvas cannot paint shapes.
var ErrNotPainter = errors.New("game_object: canvas does not support painting")

// Shape selects how a GameObject paints itself.
type Shape int

const (
	// ShapeCircle paints a filled circle with diameter equal to the object's width.
	ShapeCircle Shape = iota
	// ShapeRectangle paints a filled rectangle of the object's size centred on its position.
	ShapeRectangle
	// ShapeCustom paints through the function set with WithDrawFunc or SetDrawFunc.
	ShapeCustom
)

// DrawFunc paints a custom shape centred on the canvas origin. The current colour is already set.
type DrawFunc func(p canvas.Painter) error

type gameObject struct {
	mu      *sync.Mutex
	id      uint64
	visible atomic.Bool

	position      [3]float64
	rotation      float64
	rotationSpeed float64
	scale         float64
	size          [2]float64

	shape    Shape
	drawFunc DrawFunc
	rgba     [4]float64
}

// GameObject is a world-positioned drawable. It can be added to a scene as a child and followed by a camera.
// Position is in world units; size, rotation and scale are in the object's local screen space and are
// applied on top of the perspective scaling done by the scene.
type GameObject interface {
	// ID returns the object's identifier.
	ID() uint64

	// SetID sets the object's identifier.
	SetID(id uint64)

	// Visible reports whether the object should be drawn.
	Visible() bool

	// SetVisible shows or hides the object.
	SetVisible(visible bool)

	// X returns the world X coordinate.
	X() float64

	// Y returns the world Y coordinate.
	Y() float64

	// Z returns the world Z coordinate.
	Z() float64

	// Position returns the world position.
	//
	// Returns:
	//   - x, y, z: world-space coordinates
	Position() (x, y, z float64)

	// SetPosition sets the world position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float64)

	// Translate moves the object by a world-space offset.
	//
	// Parameters:
	//   - dx, dy, dz: offset in world units
	Translate(dx, dy, dz float64)

	// Rotation returns the in-plane rotation in radians.
	Rotation() float64

	// SetRotation sets the in-plane rotation in radians.
	SetRotation(angle float64)

	// RotationSpeed returns the in-plane spin rate in radians per second.
	RotationSpeed() float64

	// SetRotationSpeed sets the in-plane spin rate in radians per second.
	SetRotationSpeed(speed float64)

	// Scale returns the local scale factor.
	Scale() float64

	// SetScale sets the local scale factor.
	SetScale(scale float64)

	// Size returns the local width and height.
	Size() (w, h float64)

	// SetSize sets the local width and height.
	SetSize(w, h float64)

	// Shape returns how the object paints itself.
	Shape() Shape

	// SetShape changes how the object paints itself.
	SetShape(shape Shape)

	// SetDrawFunc sets a custom paint function and switches the shape to ShapeCustom.
	//
	// Parameters:
	//   - fn: the paint function
	SetDrawFunc(fn DrawFunc)

	// Color returns the fill colour.
	Color() color.Color

	// SetColor sets the fill colour.
	//
	// Parameters:
	//   - c: the new colour
	SetColor(c color.Color)

	// Update advances the object's spin by RotationSpeed * dt.
	//
	// Parameters:
	//   - dt: elapsed seconds
	Update(dt float64)

	// Draw paints the object centred on the canvas origin.
	//
	// Parameters:
	//   - c: the canvas to draw on; it must also implement canvas.Painter
	//
	// Returns:
	//   - error: ErrNotPainter, or the error from filling or from the custom draw function
	Draw(c canvas.Canvas) error
}

var _ GameObject = &gameObject{}

// NewGameObject creates a visible, white, 10x10 circle at the world origin.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	g := &gameObject{
		mu:    &sync.Mutex{},
		scale: 1,
		size:  [2]float64{10, 10},
		shape: ShapeCircle,
		rgba:  [4]float64{1, 1, 1, 1},
	}
	g.visible.Store(true)
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) Visible() bool {
	return g.visible.Load()
}

func (g *gameObject) SetVisible(visible bool) {
	g.visible.Store(visible)
}

func (g *gameObject) X() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position[0]
}

func (g *gameObject) Y() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position[1]
}

func (g *gameObject) Z() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position[2]
}

func (g *gameObject) Position() (x, y, z float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) SetPosition(x, y, z float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = [3]float64{x, y, z}
}

func (g *gameObject) Translate(dx, dy, dz float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position[0] += dx
	g.position[1] += dy
	g.position[2] += dz
}

func (g *gameObject) Rotation() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation
}

func (g *gameObject) SetRotation(angle float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = angle
}

func (g *gameObject) RotationSpeed() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotationSpeed
}

func (g *gameObject) SetRotationSpeed(speed float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotationSpeed = speed
}

func (g *gameObject) Scale() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale
}

func (g *gameObject) SetScale(scale float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = scale
}

func (g *gameObject) Size() (w, h float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.size[0], g.size[1]
}

func (g *gameObject) SetSize(w, h float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.size = [2]float64{w, h}
}

func (g *gameObject) Shape() Shape {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.shape
}

func (g *gameObject) SetShape(shape Shape) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.shape = shape
}

func (g *gameObject) SetDrawFunc(fn DrawFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.drawFunc = fn
	g.shape = ShapeCustom
}

func (g *gameObject) Color() color.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return color.NRGBA{
		R: uint8(g.rgba[0]*255 + 0.5),
		G: uint8(g.rgba[1]*255 + 0.5),
		B: uint8(g.rgba[2]*255 + 0.5),
		A: uint8(g.rgba[3]*255 + 0.5),
	}
}

func (g *gameObject) SetColor(c color.Color) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rgba = toRGBA(c)
}

func (g *gameObject) Update(dt float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation += g.rotationSpeed * dt
}

func (g *gameObject) Draw(c canvas.Canvas) error {
	p, ok := c.(canvas.Painter)
	if !ok {
		return ErrNotPainter
	}

	// snapshot so the paint calls run without holding the lock
	g.mu.Lock()
	rotation, scale := g.rotation, g.scale
	w, h := g.size[0], g.size[1]
	shape, fn := g.shape, g.drawFunc
	rgba := g.rgba
	g.mu.Unlock()

	p.Save()
	defer p.Restore()
	if rotation != 0 {
		p.Rotate(rotation)
	}
	if scale != 1 {
		p.Scale(scale, scale)
	}
	p.SetRGBA(rgba[0], rgba[1], rgba[2], rgba[3])

	switch shape {
	case ShapeRectangle:
		p.DrawRectangle(-w/2, -h/2, w, h)
	case ShapeCustom:
		if fn == nil {
			return nil
		}
		return fn(p)
	default:
		p.DrawCircle(0, 0, w/2)
	}
	return p.Fill()
}

// toRGBA converts c to straight-alpha components in 0..1.
func toRGBA(c color.Color) [4]float64 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]float64{
		float64(n.R) / 255,
		float64(n.G) / 255,
		float64(n.B) / 255,
		float64(n.A) / 255,
	}
}
