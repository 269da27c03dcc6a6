package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithCamera sets the projector the scene renders through. Required.
//
// Parameters:
//   - p: the projector, usually a camera.Camera
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(p Projector) SceneBuilderOption {
	return func(s *scene) {
		s.cam = p
	}
}

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithActive sets whether the engine renders the scene. Scenes are active by default.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithPosition sets the screen anchor, typically the centre of the canvas.
//
// Parameters:
//   - x, y: anchor in canvas units
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPosition(x, y float64) SceneBuilderOption {
	return func(s *scene) {
		s.anchorX, s.anchorY = x, y
	}
}

// WithDepthSort enables or disables back-to-front sorting. Enabled by default.
//
// Parameters:
//   - enabled: whether to sort by depth
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDepthSort(enabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.depthSort = enabled
	}
}

// WithScaleByDepth enables or disables perspective scaling of children. Enabled by default.
//
// Parameters:
//   - enabled: whether to scale by the perspective factor
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithScaleByDepth(enabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.scaleByDepth = enabled
	}
}

// WithChildren adds initial children in order.
//
// Parameters:
//   - children: the children to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithChildren(children ...Child) SceneBuilderOption {
	return func(s *scene) {
		for _, child := range children {
			s.add(child)
		}
	}
}

// WithProjectWorkers sets the number of worker goroutines used to project large scenes.
// Defaults to runtime.NumCPU()-1. A value of 1 keeps projection on the rendering goroutine.
//
// Parameters:
//   - n: the number of projection workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithProjectWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.projectWorkers = n
	}
}

// WithParallelThreshold sets the child count at which projection moves onto the worker pool.
//
// Parameters:
//   - n: minimum number of visible children for parallel projection (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithParallelThreshold(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.parallelThreshold = n
	}
}
