// Package input defines the pointer event model shared by windows, touch surfaces and camera controls.
// Sources publish events to subscribers; every subscription is released through its Close method.
package input

// PointerAction identifies what happened to the pointer.
type PointerAction int

const (
	// PointerDown is a button press or touch start.
	PointerDown PointerAction = iota
	// PointerMove is pointer motion, pressed or not.
	PointerMove
	// PointerUp is a button release or touch end.
	PointerUp
	// PointerLeave is the pointer exiting the drawing surface. Treated as a release by drag handlers.
	PointerLeave
	// PointerDoubleClick is a double click or double tap.
	PointerDoubleClick
)

// String returns a readable action name.
func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	case PointerDoubleClick:
		return "double-click"
	default:
		return "unknown"
	}
}

// PointerKind is the device that produced an event.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// PointerEvent is a single pointer or touch event in surface (client) coordinates.
type PointerEvent struct {
	// Action is what happened.
	Action PointerAction
	// Kind is the originating device.
	Kind PointerKind
	// X and Y are the client-space coordinates in pixels. For touch events they are the first touch point.
	X, Y float64
}

// PointerHandler receives pointer events. Handlers run synchronously on the goroutine that emits the event.
type PointerHandler func(ev PointerEvent)

// Subscription is the handle for a registered PointerHandler.
type Subscription interface {
	// Close detaches the handler. Close is idempotent and always returns nil for in-process sources.
	//
	// Returns:
	//   - error: an error if the source failed to release the handler
	Close() error
}

// PointerSource is anything that can deliver pointer events: a window, a canvas element, a test dispatcher.
type PointerSource interface {
	// SubscribePointer registers h for every subsequent pointer event.
	//
	// Parameters:
	//   - h: the handler to register
	//
	// Returns:
	//   - Subscription: handle that detaches h when closed
	SubscribePointer(h PointerHandler) Subscription
}
