package game_object

import (
	"image/color"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithVisible sets whether the GameObject is drawn.
//
// Parameters:
//   - visible: true to draw the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set visibility
func WithVisible(visible bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.visible.Store(visible)
	}
}

// WithPosition sets the initial world position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = [3]float64{x, y, z}
	}
}

// WithRotation sets the initial in-plane rotation.
//
// Parameters:
//   - angle: rotation in radians
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(angle float64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = angle
	}
}

// WithRotationSpeed sets the in-plane spin rate applied by Update.
//
// Parameters:
//   - speed: radians per second
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the spin rate
func WithRotationSpeed(speed float64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotationSpeed = speed
	}
}

// WithScale sets the local scale factor.
//
// Parameters:
//   - scale: uniform scale
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(scale float64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = scale
	}
}

// WithCircle makes the object a circle of the given radius.
//
// Parameters:
//   - radius: circle radius in local units
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the shape
func WithCircle(radius float64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.shape = ShapeCircle
		obj.size = [2]float64{radius * 2, radius * 2}
	}
}

// WithRectangle makes the object a rectangle of the given size.
//
// Parameters:
//   - w: width in local units
//   - h: height in local units
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the shape
func WithRectangle(w, h float64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.shape = ShapeRectangle
		obj.size = [2]float64{w, h}
	}
}

// WithDrawFunc paints the object with a custom function.
//
// Parameters:
//   - fn: the paint function
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the paint function
func WithDrawFunc(fn DrawFunc) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.shape = ShapeCustom
		obj.drawFunc = fn
	}
}

// WithColor sets the fill colour.
//
// Parameters:
//   - c: the colour
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the colour
func WithColor(c color.Color) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rgba = toRGBA(c)
	}
}
