package input

import (
	"testing"
)

func TestDispatcherDeliversInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []int
	for i := 0; i < 3; i++ {
		i := i
		d.SubscribePointer(func(PointerEvent) { got = append(got, i) })
	}

	d.Emit(PointerEvent{Action: PointerMove, X: 1, Y: 2})

	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("delivery order = %v, want [0 1 2]", got)
	}
}

func TestSubscriptionCloseDetachesHandler(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	sub := d.SubscribePointer(func(PointerEvent) { calls++ })

	d.Emit(PointerEvent{Action: PointerDown})
	if err := sub.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := sub.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	d.Emit(PointerEvent{Action: PointerUp})

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d after Close, want 0", d.Len())
	}
}

func TestHandlerMayUnsubscribeDuringEmit(t *testing.T) {
	d := NewDispatcher()
	var sub Subscription
	calls := 0
	sub = d.SubscribePointer(func(PointerEvent) {
		calls++
		_ = sub.Close()
	})

	d.Emit(PointerEvent{})
	d.Emit(PointerEvent{})

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestPointerActionString(t *testing.T) {
	tests := []struct {
		action PointerAction
		want   string
	}{
		{PointerDown, "down"},
		{PointerMove, "move"},
		{PointerUp, "up"},
		{PointerLeave, "leave"},
		{PointerDoubleClick, "double-click"},
		{PointerAction(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}
