package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-canvas/engine/input"
)

func TestDragRotatesConfiguredAxes(t *testing.T) {
	tests := []struct {
		name    string
		options []CameraBuilderOption
		dx, dy  float64
		want    [3]float64
	}{
		{"defaults", nil, 100, 40, [3]float64{0.2, 0.5, 0}},
		{"inverted", []CameraBuilderOption{WithInvert(true, true)}, 100, 40, [3]float64{-0.2, -0.5, 0}},
		{"custom sensitivity", []CameraBuilderOption{WithSensitivity(0.01)}, 10, 0, [3]float64{0, 0.1, 0}},
		{"roll on horizontal", []CameraBuilderOption{WithDragAxes(AxisZ, AxisX)}, 100, 0, [3]float64{0, 0, 0.5}},
		{"unknown axes keep defaults", []CameraBuilderOption{WithDragAxes(Axis(3), Axis(-1))}, 100, 40, [3]float64{0.2, 0.5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(tt.options...)
			cam.HandlePointer(input.PointerEvent{Action: input.PointerDown, X: 10, Y: 10})
			cam.HandlePointer(input.PointerEvent{Action: input.PointerMove, X: 10 + tt.dx, Y: 10 + tt.dy})
			cam.HandlePointer(input.PointerEvent{Action: input.PointerUp, X: 10 + tt.dx, Y: 10 + tt.dy})

			x, y, z := cam.Rotation()
			got := [3]float64{x, y, z}
			for i := range got {
				if !approx(got[i], tt.want[i], eps) {
					t.Fatalf("rotation = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestAutoRotateUnknownAxisKeepsYaw(t *testing.T) {
	cam := NewCamera(WithAutoRotate(1, Axis(3)))
	cam.Update(1)
	if x, y, z := cam.Rotation(); x != 0 || !approx(y, 1, eps) || z != 0 {
		t.Errorf("rotation = (%v, %v, %v), want yaw 1 only", x, y, z)
	}
}

func TestMoveWithoutPressIsIgnored(t *testing.T) {
	cam := NewCamera()
	cam.HandlePointer(input.PointerEvent{Action: input.PointerMove, X: 500, Y: 500})
	if x, y, _ := cam.Rotation(); x != 0 || y != 0 {
		t.Errorf("rotation = (%v, %v), want unchanged", x, y)
	}
}

func TestDragClampsPitch(t *testing.T) {
	cam := NewCamera()
	cam.HandlePointer(input.PointerEvent{Action: input.PointerDown})
	cam.HandlePointer(input.PointerEvent{Action: input.PointerMove, Y: -10000})
	if x, _, _ := cam.Rotation(); x != -math.Pi/2 {
		t.Errorf("rotationX = %v, want -π/2", x)
	}
}

func TestLeaveEndsDrag(t *testing.T) {
	cam := NewCamera()
	cam.HandlePointer(input.PointerEvent{Action: input.PointerDown, Kind: input.PointerTouch})
	cam.HandlePointer(input.PointerEvent{Action: input.PointerLeave, Kind: input.PointerTouch})
	if cam.Dragging() {
		t.Error("Dragging() = true after leave")
	}
}

func TestNoInertiaMeansNoVelocity(t *testing.T) {
	clock := newFakeClock()
	cam := NewCamera(WithClock(clock.Now))
	throw(cam, clock, 100, 0)
	if tilt, pan := cam.Velocity(); tilt != 0 || pan != 0 {
		t.Errorf("velocity = (%v, %v), want zero without inertia", tilt, pan)
	}
}

func TestDoubleClickResets(t *testing.T) {
	cam := NewCamera(WithRotation(0.1, 0.2, 0))
	want := cam.State()
	cam.Rotate(0.5, 0.5, 0.5).SetPosition(3, 3, 3)
	cam.HandlePointer(input.PointerEvent{Action: input.PointerDoubleClick})
	if got := cam.State(); got != want {
		t.Errorf("State() = %+v, want %+v", got, want)
	}
}

func TestMouseControlSubscription(t *testing.T) {
	d := input.NewDispatcher()
	cam := NewCamera()

	sub := cam.EnableMouseControl(d)
	d.Emit(input.PointerEvent{Action: input.PointerDown})
	d.Emit(input.PointerEvent{Action: input.PointerMove, X: 100})
	d.Emit(input.PointerEvent{Action: input.PointerUp, X: 100})

	_, y, _ := cam.Rotation()
	if !approx(y, 0.5, eps) {
		t.Fatalf("rotationY = %v, want 0.5", y)
	}

	if err := sub.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	d.Emit(input.PointerEvent{Action: input.PointerDown})
	d.Emit(input.PointerEvent{Action: input.PointerMove, X: 300})
	if _, y2, _ := cam.Rotation(); y2 != y {
		t.Errorf("rotationY changed to %v after Close", y2)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}

	// releasing an already closed subscription is harmless
	cam.DisableMouseControl()
}

func TestEnableMouseControlReplacesSubscription(t *testing.T) {
	first := input.NewDispatcher()
	second := input.NewDispatcher()
	cam := NewCamera()

	cam.EnableMouseControl(first)
	cam.EnableMouseControl(second)
	if first.Len() != 0 || second.Len() != 1 {
		t.Fatalf("handlers = (%d, %d), want (0, 1)", first.Len(), second.Len())
	}

	cam.DisableMouseControl()
	if second.Len() != 0 {
		t.Errorf("Len() = %d after DisableMouseControl, want 0", second.Len())
	}
}
