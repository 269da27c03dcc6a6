package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-canvas/common"
)

// motion is the scripted movement driving the camera: nil, *following or *movingTo.
// Holding both in one field keeps follow and move-to mutually exclusive.
type motion interface {
	isMotion()
}

type following struct {
	target      Target
	offset      common.Point3
	lerp        float64
	lookAt      bool
	lookAtPoint common.Point3
	lookAtFrom  Target
}

type movingTo struct {
	position    common.Point3
	rotation    [3]float64
	hasRotation bool
	lerp        float64
}

func (*following) isMotion() {}
func (*movingTo) isMotion()  {}

// FollowOption configures a Follow call.
type FollowOption func(*following)

// WithFollowOffset keeps the camera at target + offset.
//
// Parameters:
//   - x, y, z: offset from the target in world units
//
// Returns:
//   - FollowOption: a function that sets the follow offset
func WithFollowOffset(x, y, z float64) FollowOption {
	return func(f *following) {
		f.offset = common.Pt3(x, y, z)
	}
}

// WithFollowLerp sets the fraction of the remaining distance covered per update. Values outside (0, 1] are ignored.
//
// Parameters:
//   - lerp: interpolation fraction per update
//
// Returns:
//   - FollowOption: a function that sets the follow rate
func WithFollowLerp(lerp float64) FollowOption {
	return func(f *following) {
		if lerp > 0 && lerp <= 1 {
			f.lerp = lerp
		}
	}
}

// WithLookAt turns the camera toward the look-at point (the world origin unless set) while following.
//
// Parameters:
//   - enabled: true to steer yaw and pitch while following
//
// Returns:
//   - FollowOption: a function that toggles look-at
func WithLookAt(enabled bool) FollowOption {
	return func(f *following) {
		f.lookAt = enabled
	}
}

// WithLookAtPoint enables look-at toward a fixed world point.
//
// Parameters:
//   - x, y, z: the point to face
//
// Returns:
//   - FollowOption: a function that sets the look-at point
func WithLookAtPoint(x, y, z float64) FollowOption {
	return func(f *following) {
		f.lookAt = true
		f.lookAtPoint = common.Pt3(x, y, z)
		f.lookAtFrom = nil
	}
}

// WithLookAtTarget enables look-at toward a moving object, read on every update.
//
// Parameters:
//   - t: the object to face
//
// Returns:
//   - FollowOption: a function that sets the look-at target
func WithLookAtTarget(t Target) FollowOption {
	return func(f *following) {
		if t != nil {
			f.lookAt = true
			f.lookAtFrom = t
		}
	}
}

// MoveOption configures a MoveTo call.
type MoveOption func(*movingTo)

// WithMoveRotation also animates the rotation toward the given angles. Yaw takes the short way round.
//
// Parameters:
//   - x, y, z: target pitch, yaw and roll in radians
//
// Returns:
//   - MoveOption: a function that sets the rotation target
func WithMoveRotation(x, y, z float64) MoveOption {
	return func(m *movingTo) {
		m.rotation = [3]float64{x, y, z}
		m.hasRotation = true
	}
}

// WithMoveLerp sets the fraction of the remaining distance covered per update. Values outside (0, 1] are ignored.
//
// Parameters:
//   - lerp: interpolation fraction per update
//
// Returns:
//   - MoveOption: a function that sets the move rate
func WithMoveLerp(lerp float64) MoveOption {
	return func(m *movingTo) {
		if lerp > 0 && lerp <= 1 {
			m.lerp = lerp
		}
	}
}

func (c *cameraImpl) MoveTo(x, y, z float64, options ...MoveOption) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.motion.(*following); ok {
		common.Logger().Debug("camera move-to ignored while following")
		return c
	}
	m := &movingTo{position: common.Pt3(x, y, z), lerp: DefaultMoveLerp}
	for _, option := range options {
		option(m)
	}
	c.motion = m
	return c
}

func (c *cameraImpl) Follow(target Target, options ...FollowOption) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()

	// following ourselves would re-enter the mutex from Update
	if target == nil || target == Target(c) {
		return c
	}
	f := &following{target: target, lerp: DefaultFollowLerp}
	for _, option := range options {
		option(f)
	}
	if f.lookAtFrom == Target(c) {
		f.lookAtFrom = nil
	}
	c.motion = f
	common.Logger().Debug("camera following", "offset", f.offset, "lookAt", f.lookAt)
	return c
}

func (c *cameraImpl) Unfollow(returnHome bool) Camera {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.motion.(*following); ok {
		c.motion = nil
	}
	if returnHome {
		c.motion = &movingTo{
			position:    c.initial.position,
			rotation:    c.initial.rotation,
			hasRotation: true,
			lerp:        DefaultMoveLerp,
		}
	}
	return c
}

func (c *cameraImpl) Update(dt float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dragging {
		return
	}

	switch m := c.motion.(type) {
	case *following:
		c.stepFollow(m)
		return
	case *movingTo:
		c.stepMoveTo(m)
		return
	}

	if c.inertia && c.hasVelocity() {
		c.stepInertia()
		return
	}

	if c.autoRotate && math.Abs(c.velocityX) <= autoRotateVelocityGate && math.Abs(c.velocityY) <= autoRotateVelocityGate {
		c.rotation[c.autoRotateAxis] += c.autoRotateSpeed * dt
	}
}

// stepFollow moves a fixed fraction toward target + offset. Caller must hold the mutex.
func (c *cameraImpl) stepFollow(f *following) {
	tx, ty, tz := f.target.Position()
	goal := common.Pt3(tx, ty, tz).Add(f.offset)
	c.position = common.LerpPoint(c.position, goal, f.lerp)

	if !f.lookAt {
		return
	}
	point := f.lookAtPoint
	if f.lookAtFrom != nil {
		lx, ly, lz := f.lookAtFrom.Position()
		point = common.Pt3(lx, ly, lz)
	}
	yaw, pitch := common.YawPitchTowards(c.position, point)
	c.rotation[AxisY] = common.LerpAngle(c.rotation[AxisY], yaw, f.lerp)
	c.rotation[AxisX] = common.Lerp(c.rotation[AxisX], pitch, f.lerp)
}

// stepMoveTo interpolates toward the destination. Arrival is decided by position alone; on arrival
// position and any rotation target snap exactly. Caller must hold the mutex.
func (c *cameraImpl) stepMoveTo(m *movingTo) {
	c.position = common.LerpPoint(c.position, m.position, m.lerp)
	if m.hasRotation {
		c.rotation[AxisX] = common.Lerp(c.rotation[AxisX], m.rotation[AxisX], m.lerp)
		c.rotation[AxisY] = common.LerpAngle(c.rotation[AxisY], m.rotation[AxisY], m.lerp)
		c.rotation[AxisZ] = common.Lerp(c.rotation[AxisZ], m.rotation[AxisZ], m.lerp)
	}

	if m.position.Sub(c.position).ManhattanLen() >= c.arrivalThreshold {
		return
	}
	c.position = m.position
	if m.hasRotation {
		c.rotation = m.rotation
	}
	c.motion = nil
	common.Logger().Debug("camera arrived", "position", c.position)
}

// stepInertia coasts the drag axes and decays the velocity. Caller must hold the mutex.
func (c *cameraImpl) stepInertia() {
	c.rotation[c.hAxis] += c.velocityY
	c.rotation[c.vAxis] += c.velocityX
	c.clampPitch()

	c.velocityX *= c.friction
	c.velocityY *= c.friction
	if math.Abs(c.velocityX) < velocityStopEpsilon {
		c.velocityX = 0
	}
	if math.Abs(c.velocityY) < velocityStopEpsilon {
		c.velocityY = 0
	}
}
