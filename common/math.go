package common

import (
	"math"
)

// Lerp moves a toward b by fraction t. With t applied once per frame this is an exponential approach,
// so convergence speed depends on the frame rate.
//
// Parameters:
//   - a: the current value
//   - b: the target value
//   - t: interpolation fraction (0 = stay, 1 = snap)
//
// Returns:
//   - float64: the interpolated value
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint applies Lerp to each component of a Point3.
//
// Parameters:
//   - a: the current point
//   - b: the target point
//   - t: interpolation fraction
//
// Returns:
//   - Point3: the interpolated point
func LerpPoint(a, b Point3, t float64) Point3 {
	return Point3{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
	}
}

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float64: the clamped value
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle maps an angle in radians into the half-open range [-π, π).
//
// Parameters:
//   - a: the angle in radians
//
// Returns:
//   - float64: the equivalent angle in [-π, π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// ShortestAngleDelta returns the signed difference to - from, wrapped so that interpolating by it
// always takes the short way around the circle.
//
// Parameters:
//   - from: the current angle in radians
//   - to: the target angle in radians
//
// Returns:
//   - float64: the wrapped difference in [-π, π)
func ShortestAngleDelta(from, to float64) float64 {
	return WrapAngle(to - from)
}

// LerpAngle interpolates from toward to along the shortest arc.
//
// Parameters:
//   - from: the current angle in radians
//   - to: the target angle in radians
//   - t: interpolation fraction
//
// Returns:
//   - float64: the interpolated angle (not wrapped, so accumulated rotation is preserved)
func LerpAngle(from, to, t float64) float64 {
	return from + ShortestAngleDelta(from, to)*t
}

// YawPitchTowards returns the yaw (rotation about Y) and pitch (rotation about X) that make a camera at
// eye face the point target, for the camera projection's roll → yaw → pitch rotation order.
// If eye and target coincide both angles are zero.
//
// Parameters:
//   - eye: the camera position
//   - target: the point to face
//
// Returns:
//   - yaw: rotation about Y in radians
//   - pitch: rotation about X in radians
func YawPitchTowards(eye, target Point3) (yaw, pitch float64) {
	d := target.Sub(eye)
	yaw = math.Atan2(-d.X, d.Z)
	pitch = math.Atan2(d.Y, math.Hypot(d.X, d.Z))
	return yaw, pitch
}

func abs(v float64) float64 {
	return math.Abs(v)
}
