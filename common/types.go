// package common contains small value types and helpers shared by the camera, scene and engine packages.
// They are plain structs and functions, not interface-wrapped components.
package common

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Point3 is a world-space position.
type Point3 struct {
	X, Y, Z float64
}

// Pt3 builds a Point3 from its components.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - Point3: the point
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Vec returns the point as an mgl64.Vec3 for matrix math.
//
// Returns:
//   - mgl64.Vec3: the point as a vector
func (p Point3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// Add returns the component-wise sum of p and o.
func (p Point3) Add(o Point3) Point3 {
	return Point3{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Sub returns the component-wise difference p - o.
func (p Point3) Sub(o Point3) Point3 {
	return Point3{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// ManhattanLen returns |X| + |Y| + |Z|.
// Used as the arrival metric for camera move-to animations.
//
// Returns:
//   - float64: the summed absolute components
func (p Point3) ManhattanLen() float64 {
	return abs(p.X) + abs(p.Y) + abs(p.Z)
}

// PointFromVec converts an mgl64.Vec3 back into a Point3.
//
// Parameters:
//   - v: the vector to convert
//
// Returns:
//   - Point3: the point
func PointFromVec(v mgl64.Vec3) Point3 {
	return Point3{X: v[0], Y: v[1], Z: v[2]}
}
