package camera

import (
	"math"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-canvas/common"
	"github.com/Carmen-Shannon/oxy-canvas/engine/input"
	"github.com/go-gl/mathgl/mgl64"
)

// Axis selects one of the three camera rotation angles.
type Axis int

const (
	// AxisX is pitch (tilt), rotation about the lateral axis.
	AxisX Axis = iota
	// AxisY is yaw (spin), rotation about the vertical axis.
	AxisY
	// AxisZ is roll, rotation about the depth axis.
	AxisZ
)

func (a Axis) valid() bool { return a >= AxisX && a <= AxisZ }

// Mode reports which behaviour currently drives the camera during Update.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeInertia
	ModeAutoRotating
	ModeFollowing
	ModeMovingTo
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeInertia:
		return "inertia"
	case ModeAutoRotating:
		return "auto-rotating"
	case ModeFollowing:
		return "following"
	case ModeMovingTo:
		return "moving-to"
	default:
		return "unknown"
	}
}

// Default tuning values. The throw window, arrival threshold and the two velocity epsilons define the
// feel of the camera and are kept configurable with these defaults.
const (
	DefaultPerspective      = 800.0
	DefaultSensitivity      = 0.005
	DefaultFriction         = 0.92
	DefaultVelocityScale    = 1.0
	DefaultAutoRotateSpeed  = 0.5
	DefaultThrowWindow      = 50 * time.Millisecond
	DefaultArrivalThreshold = 0.1
	DefaultFollowLerp       = 0.1
	DefaultMoveLerp         = 0.1

	// velocityStopEpsilon zeroes inertia velocity components below it.
	velocityStopEpsilon = 0.0001
	// autoRotateVelocityGate suppresses auto-rotation while inertia velocity is above it.
	autoRotateVelocityGate = 0.001
)

// Projection is the screen-space result of projecting a world point.
type Projection struct {
	// X and Y are the screen offsets relative to the caller's centre point.
	X, Y float64
	// Z is the camera-space depth after rotation. Larger is farther away.
	Z float64
	// Scale is perspective / (perspective + Z). Values <= 0 mean the point is behind the camera.
	Scale float64
}

// Visible reports whether the projected point lies in front of the projection plane.
// A zero denominator yields an infinite scale which is also treated as not visible.
//
// Returns:
//   - bool: true if the point should be drawn
func (p Projection) Visible() bool {
	return p.Scale > 0 && !math.IsInf(p.Scale, 0)
}

// Target is anything with a world position the camera can follow or look at.
type Target interface {
	// Position returns the world-space position.
	//
	// Returns:
	//   - x, y, z: world-space coordinates
	Position() (x, y, z float64)
}

// State is a comparable snapshot of the camera's observable state.
type State struct {
	Rotation    [3]float64
	Position    common.Point3
	Perspective float64
	VelocityX   float64
	VelocityY   float64
	Dragging    bool
	AutoRotate  bool
	Mode        Mode
}

// Camera is a pseudo-3D projector: it rotates and perspective-divides world points into screen offsets,
// and owns the interactive state that moves it (pointer drag with inertia, auto-rotation, follow,
// move-to and look-at). Rotation order is roll (Z), then yaw (Y), then pitch (X) in the yawed frame.
// Thread-safe; every method takes the camera's mutex.
type Camera interface {
	// Project converts a world point into a screen offset, depth and scale factor.
	// Pure with respect to camera state.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	//
	// Returns:
	//   - Projection: the projected point
	Project(x, y, z float64) Projection

	// ProjectAll projects every point with a single rotation build.
	//
	// Parameters:
	//   - points: world-space points
	//
	// Returns:
	//   - []Projection: one projection per input point, in order
	ProjectAll(points []common.Point3) []Projection

	// Update advances time-based state. Only the first applicable behaviour runs, in priority order:
	// follow, move-to, inertia coasting, auto-rotate. Nothing runs while a drag is in progress.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous update
	Update(dt float64)

	// Rotation returns the current rotation angles in radians.
	//
	// Returns:
	//   - x, y, z: pitch, yaw and roll
	Rotation() (x, y, z float64)

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space coordinates
	Position() (x, y, z float64)

	// Perspective returns the projection focal distance.
	//
	// Returns:
	//   - float64: the perspective distance
	Perspective() float64

	// Velocity returns the inertia angular velocity.
	//
	// Returns:
	//   - tilt: velocity applied to the vertical drag axis per update
	//   - pan: velocity applied to the horizontal drag axis per update
	Velocity() (tilt, pan float64)

	// Dragging reports whether a pointer drag is in progress.
	//
	// Returns:
	//   - bool: true while the pointer is pressed
	Dragging() bool

	// Mode reports what currently drives the camera.
	//
	// Returns:
	//   - Mode: the active mode
	Mode() Mode

	// State returns a comparable snapshot of the camera.
	//
	// Returns:
	//   - State: the snapshot
	State() State

	// SetRotation sets all three rotation angles.
	//
	// Parameters:
	//   - x, y, z: pitch, yaw and roll in radians
	//
	// Returns:
	//   - Camera: the camera, for chaining
	SetRotation(x, y, z float64) Camera

	// Rotate adds to the rotation angles and clamps pitch if clamping is enabled.
	//
	// Parameters:
	//   - dx, dy, dz: angle deltas in radians
	//
	// Returns:
	//   - Camera: the camera, for chaining
	Rotate(dx, dy, dz float64) Camera

	// SetPosition moves the camera.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	//
	// Returns:
	//   - Camera: the camera, for chaining
	SetPosition(x, y, z float64) Camera

	// SetPerspective sets the focal distance. Values <= 0 are ignored.
	//
	// Parameters:
	//   - perspective: the new focal distance
	//
	// Returns:
	//   - Camera: the camera, for chaining
	SetPerspective(perspective float64) Camera

	// SetAutoRotate enables or disables auto-rotation.
	//
	// Parameters:
	//   - enabled: true to enable
	//
	// Returns:
	//   - Camera: the camera, for chaining
	SetAutoRotate(enabled bool) Camera

	// MoveTo starts a move-to animation toward a position and optionally a rotation.
	// Ignored while following a target.
	//
	// Parameters:
	//   - x, y, z: destination
	//   - options: rotation target and interpolation rate
	//
	// Returns:
	//   - Camera: the camera, for chaining
	MoveTo(x, y, z float64, options ...MoveOption) Camera

	// Follow makes the camera track a moving target. Replaces any move-to animation.
	//
	// Parameters:
	//   - target: the object to follow
	//   - options: offset, interpolation rate and look-at configuration
	//
	// Returns:
	//   - Camera: the camera, for chaining
	Follow(target Target, options ...FollowOption) Camera

	// Unfollow stops following. With returnHome the camera animates back to its initial pose.
	//
	// Parameters:
	//   - returnHome: true to start a move-to back to the constructed pose
	//
	// Returns:
	//   - Camera: the camera, for chaining
	Unfollow(returnHome bool) Camera

	// LookAt turns the camera to face a world point from its current position.
	//
	// Parameters:
	//   - x, y, z: the point to face
	//
	// Returns:
	//   - Camera: the camera, for chaining
	LookAt(x, y, z float64) Camera

	// Reset restores the constructed pose and clears velocity, drag, follow and move-to state.
	//
	// Returns:
	//   - Camera: the camera, for chaining
	Reset() Camera

	// StopInertia zeroes the inertia velocity.
	//
	// Returns:
	//   - Camera: the camera, for chaining
	StopInertia() Camera

	// HandlePointer applies a single pointer event: press starts a drag, move rotates, release or leave
	// ends the drag (throwing into inertia if the last move was recent), double click resets.
	//
	// Parameters:
	//   - ev: the pointer event
	HandlePointer(ev input.PointerEvent)

	// EnableMouseControl subscribes the camera to a pointer source, releasing any previous subscription.
	//
	// Parameters:
	//   - src: the pointer event source
	//
	// Returns:
	//   - input.Subscription: handle that detaches the camera when closed
	EnableMouseControl(src input.PointerSource) input.Subscription

	// DisableMouseControl releases the current pointer subscription, if any.
	DisableMouseControl()
}

// pose is the part of the camera Reset restores.
type pose struct {
	rotation       [3]float64
	position       common.Point3
	perspective    float64
	screenRotation float64
}

type cameraImpl struct {
	mu *sync.Mutex

	rotation       [3]float64
	position       common.Point3
	perspective    float64
	screenRotation float64

	sensitivity  float64
	invertX      bool
	invertY      bool
	clampX       bool
	minRotationX float64
	maxRotationX float64
	hAxis        Axis
	vAxis        Axis

	autoRotate      bool
	autoRotateSpeed float64
	autoRotateAxis  Axis

	inertia          bool
	friction         float64
	velocityScale    float64
	throwWindow      time.Duration
	arrivalThreshold float64

	dragging    bool
	lastPointer [2]float64
	lastMove    time.Time
	swipeH      float64
	swipeV      float64
	velocityX   float64 // tilt, applied to vAxis
	velocityY   float64 // pan, applied to hAxis

	motion motion

	initial      pose
	clock        func() time.Time
	subscription input.Subscription
}

var _ Camera = &cameraImpl{}
var _ Target = &cameraImpl{}

// NewCamera creates a camera at the origin with no rotation and the default perspective.
// The pose after options are applied is what Reset returns to.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:               &sync.Mutex{},
		perspective:      DefaultPerspective,
		sensitivity:      DefaultSensitivity,
		clampX:           true,
		minRotationX:     -math.Pi / 2,
		maxRotationX:     math.Pi / 2,
		hAxis:            AxisY,
		vAxis:            AxisX,
		autoRotateSpeed:  DefaultAutoRotateSpeed,
		autoRotateAxis:   AxisY,
		friction:         DefaultFriction,
		velocityScale:    DefaultVelocityScale,
		throwWindow:      DefaultThrowWindow,
		arrivalThreshold: DefaultArrivalThreshold,
		clock:            time.Now,
	}
	for _, option := range options {
		option(c)
	}
	c.initial = c.currentPose()
	return c
}

// --- projection ---

// projector is an immutable projection setup built once per call under the camera lock.
type projector struct {
	origin      mgl64.Vec3
	rot         mgl64.Mat3
	spin        mgl64.Mat2
	hasSpin     bool
	perspective float64
}

// projector builds the combined rotation Rx * Ry * Rz so a point is rolled, then yawed, then pitched.
// Caller must hold the mutex.
func (c *cameraImpl) projector() projector {
	rot := mgl64.Rotate3DX(c.rotation[AxisX]).Mul3(mgl64.Rotate3DY(c.rotation[AxisY]))
	if c.rotation[AxisZ] != 0 {
		rot = rot.Mul3(mgl64.Rotate3DZ(c.rotation[AxisZ]))
	}
	p := projector{
		origin:      c.position.Vec(),
		rot:         rot,
		perspective: c.perspective,
	}
	if c.screenRotation != 0 {
		p.spin = mgl64.Rotate2D(c.screenRotation)
		p.hasSpin = true
	}
	return p
}

func (p projector) project(x, y, z float64) Projection {
	v := p.rot.Mul3x1(mgl64.Vec3{x, y, z}.Sub(p.origin))
	sx, sy := v[0], v[1]
	if p.hasSpin {
		s := p.spin.Mul2x1(mgl64.Vec2{sx, sy})
		sx, sy = s[0], s[1]
	}
	scale := p.perspective / (p.perspective + v[2])
	return Projection{
		X:     sx * scale,
		Y:     sy * scale,
		Z:     v[2],
		Scale: scale,
	}
}

func (c *cameraImpl) Project(x, y, z float64) Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projector().project(x, y, z)
}

func (c *cameraImpl) ProjectAll(points []common.Point3) []Projection {
	c.mu.Lock()
	p := c.projector()
	c.mu.Unlock()

	out := make([]Projection, len(points))
	for i, pt := range points {
		out[i] = p.project(pt.X, pt.Y, pt.Z)
	}
	return out
}

// --- accessors ---

func (c *cameraImpl) Rotation() (x, y, z float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation[AxisX], c.rotation[AxisY], c.rotation[AxisZ]
}

func (c *cameraImpl) Position() (x, y, z float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position.X, c.position.Y, c.position.Z
}

func (c *cameraImpl) Perspective() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.perspective
}

func (c *cameraImpl) Velocity() (tilt, pan float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.velocityX, c.velocityY
}

func (c *cameraImpl) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragging
}

func (c *cameraImpl) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode()
}

func (c *cameraImpl) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Rotation:    c.rotation,
		Position:    c.position,
		Perspective: c.perspective,
		VelocityX:   c.velocityX,
		VelocityY:   c.velocityY,
		Dragging:    c.dragging,
		AutoRotate:  c.autoRotate,
		Mode:        c.mode(),
	}
}

// mode derives the active Mode. Caller must hold the mutex.
func (c *cameraImpl) mode() Mode {
	switch {
	case c.dragging:
		return ModeDragging
	}
	switch c.motion.(type) {
	case *following:
		return ModeFollowing
	case *movingTo:
		return ModeMovingTo
	}
	switch {
	case c.inertia && c.hasVelocity():
		return ModeInertia
	case c.autoRotate:
		return ModeAutoRotating
	}
	return ModeIdle
}

// --- mutators ---

func (c *cameraImpl) SetRotation(x, y, z float64) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation = [3]float64{x, y, z}
	return c
}

func (c *cameraImpl) Rotate(dx, dy, dz float64) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation[AxisX] += dx
	c.rotation[AxisY] += dy
	c.rotation[AxisZ] += dz
	c.clampPitch()
	return c
}

func (c *cameraImpl) SetPosition(x, y, z float64) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = common.Pt3(x, y, z)
	return c
}

func (c *cameraImpl) SetPerspective(perspective float64) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	if perspective > 0 {
		c.perspective = perspective
	}
	return c
}

func (c *cameraImpl) SetAutoRotate(enabled bool) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoRotate = enabled
	return c
}

func (c *cameraImpl) LookAt(x, y, z float64) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	yaw, pitch := common.YawPitchTowards(c.position, common.Pt3(x, y, z))
	c.rotation[AxisY] = yaw
	c.rotation[AxisX] = pitch
	c.clampPitch()
	return c
}

func (c *cameraImpl) Reset() Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
	return c
}

func (c *cameraImpl) StopInertia() Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.velocityX, c.velocityY = 0, 0
	return c
}

// reset restores the initial pose and clears all dynamic state. Caller must hold the mutex.
func (c *cameraImpl) reset() {
	c.rotation = c.initial.rotation
	c.position = c.initial.position
	c.perspective = c.initial.perspective
	c.screenRotation = c.initial.screenRotation
	c.dragging = false
	c.velocityX, c.velocityY = 0, 0
	c.swipeH, c.swipeV = 0, 0
	c.motion = nil
	common.Logger().Debug("camera reset")
}

// currentPose captures the resettable part of the camera. Caller must hold the mutex or own c exclusively.
func (c *cameraImpl) currentPose() pose {
	return pose{
		rotation:       c.rotation,
		position:       c.position,
		perspective:    c.perspective,
		screenRotation: c.screenRotation,
	}
}

// clampPitch limits rotationX to its configured range when clamping is enabled. Caller must hold the mutex.
func (c *cameraImpl) clampPitch() {
	if c.clampX {
		c.rotation[AxisX] = common.Clamp(c.rotation[AxisX], c.minRotationX, c.maxRotationX)
	}
}

func (c *cameraImpl) hasVelocity() bool {
	return c.velocityX != 0 || c.velocityY != 0
}
