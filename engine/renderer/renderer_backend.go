package renderer

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// RendererBackend is the GPU side of the window Renderer: it owns a frame texture and
// draws it over the whole window surface.
type RendererBackend interface {
	// ConfigureSurface (re)configures the window surface for the given size.
	//
	// Parameters:
	//   - width: the surface width in pixels
	//   - height: the surface height in pixels
	//
	// Returns:
	//   - error: error if the surface cannot be configured
	ConfigureSurface(width, height int) error

	// UploadFrame copies RGBA pixels into the frame texture, recreating it if the size changed.
	//
	// Parameters:
	//   - pixels: tightly or loosely packed RGBA rows
	//   - width: frame width in pixels
	//   - height: frame height in pixels
	//   - stride: bytes per row in pixels
	//
	// Returns:
	//   - error: error if texture creation fails
	UploadFrame(pixels []byte, width, height, stride int) error

	// DrawFrame blits the frame texture to the current surface image and presents it.
	//
	// Returns:
	//   - error: error if the surface image cannot be acquired or the commands cannot be recorded
	DrawFrame() error

	// Release frees every GPU object owned by the backend.
	Release()
}
