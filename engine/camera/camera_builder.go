package camera

import (
	"time"

	"github.com/Carmen-Shannon/oxy-canvas/common"
)

type CameraBuilderOption func(*cameraImpl)

// WithPerspective sets the focal distance used by the perspective divide. Values <= 0 are ignored.
//
// Parameters:
//   - perspective: focal distance in world units
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's perspective
func WithPerspective(perspective float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		if perspective > 0 {
			c.perspective = perspective
		}
	}
}

// WithRotation sets the initial rotation angles.
//
// Parameters:
//   - x, y, z: pitch, yaw and roll in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's rotation
func WithRotation(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotation = [3]float64{x, y, z}
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = common.Pt3(x, y, z)
	}
}

// WithScreenRotation spins the projected image in the screen plane after the 3D rotations.
//
// Parameters:
//   - angle: spin in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the screen spin
func WithScreenRotation(angle float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.screenRotation = angle
	}
}

// WithSensitivity sets the drag sensitivity in radians per pixel.
//
// Parameters:
//   - sensitivity: radians per pixel of pointer movement
//
// Returns:
//   - CameraBuilderOption: a function that sets the drag sensitivity
func WithSensitivity(sensitivity float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.sensitivity = common.Coalesce(sensitivity, DefaultSensitivity)
	}
}

// WithInvert flips the direction of horizontal and/or vertical drags.
//
// Parameters:
//   - x: invert horizontal drags
//   - y: invert vertical drags
//
// Returns:
//   - CameraBuilderOption: a function that sets drag inversion
func WithInvert(x, y bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.invertX = x
		c.invertY = y
	}
}

// WithPitchClamp sets the allowed range of rotationX and enables clamping.
//
// Parameters:
//   - lo: lower pitch limit in radians
//   - hi: upper pitch limit in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the pitch clamp
func WithPitchClamp(lo, hi float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		if lo > hi {
			lo, hi = hi, lo
		}
		c.clampX = true
		c.minRotationX = lo
		c.maxRotationX = hi
	}
}

// WithoutPitchClamp lets drags and inertia rotate pitch without limit.
//
// Returns:
//   - CameraBuilderOption: a function that disables the pitch clamp
func WithoutPitchClamp() CameraBuilderOption {
	return func(c *cameraImpl) {
		c.clampX = false
	}
}

// WithDragAxes chooses which rotation axes horizontal and vertical drags drive.
// The defaults are yaw for horizontal drags and pitch for vertical drags. An axis outside
// AxisX..AxisZ is ignored and the default for that direction kept.
//
// Parameters:
//   - horizontal: axis driven by horizontal pointer movement
//   - vertical: axis driven by vertical pointer movement
//
// Returns:
//   - CameraBuilderOption: a function that sets the drag axes
func WithDragAxes(horizontal, vertical Axis) CameraBuilderOption {
	return func(c *cameraImpl) {
		if horizontal.valid() {
			c.hAxis = horizontal
		}
		if vertical.valid() {
			c.vAxis = vertical
		}
	}
}

// WithAutoRotate enables auto-rotation about axis at speed radians per second.
// A zero speed keeps the default of 0.5 and an unknown axis keeps the default yaw.
//
// Parameters:
//   - speed: angular speed in radians per second
//   - axis: the axis to rotate about
//
// Returns:
//   - CameraBuilderOption: a function that enables auto-rotation
func WithAutoRotate(speed float64, axis Axis) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.autoRotate = true
		c.autoRotateSpeed = common.Coalesce(speed, DefaultAutoRotateSpeed)
		if axis.valid() {
			c.autoRotateAxis = axis
		}
	}
}

// WithInertia enables momentum after a drag is released.
// Zero values keep the defaults (friction 0.92, velocity scale 1).
//
// Parameters:
//   - friction: per-update velocity multiplier in (0, 1)
//   - velocityScale: multiplier applied to the last swipe delta on release
//
// Returns:
//   - CameraBuilderOption: a function that enables inertia
func WithInertia(friction, velocityScale float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.inertia = true
		c.friction = common.Coalesce(friction, DefaultFriction)
		c.velocityScale = common.Coalesce(velocityScale, DefaultVelocityScale)
	}
}

// WithThrowWindow sets how recent the last drag movement must be for a release to start inertia.
//
// Parameters:
//   - window: maximum time between the last move and the release
//
// Returns:
//   - CameraBuilderOption: a function that sets the throw window
func WithThrowWindow(window time.Duration) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.throwWindow = common.Coalesce(window, DefaultThrowWindow)
	}
}

// WithArrivalThreshold sets the summed absolute distance below which a move-to animation snaps and ends.
//
// Parameters:
//   - threshold: arrival distance in world units (radians for the rotation target)
//
// Returns:
//   - CameraBuilderOption: a function that sets the arrival threshold
func WithArrivalThreshold(threshold float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.arrivalThreshold = common.Coalesce(threshold, DefaultArrivalThreshold)
	}
}

// WithClock replaces the time source used to time drag throws.
//
// Parameters:
//   - clock: function returning the current time
//
// Returns:
//   - CameraBuilderOption: a function that sets the clock
func WithClock(clock func() time.Time) CameraBuilderOption {
	return func(c *cameraImpl) {
		if clock != nil {
			c.clock = clock
		}
	}
}
