package input

import (
	"testing"
	"time"
)

func TestClickTracker(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	type press struct {
		x, y  float64
		after time.Duration
	}
	tests := []struct {
		name    string
		presses []press
		want    []bool
	}{
		{"quick pair", []press{{0, 0, 0}, {1, 1, 100 * time.Millisecond}}, []bool{false, true}},
		{"too slow", []press{{0, 0, 0}, {0, 0, 400 * time.Millisecond}}, []bool{false, false}},
		{"too far", []press{{0, 0, 0}, {10, 0, 50 * time.Millisecond}}, []bool{false, false}},
		{"triple starts new pair", []press{{0, 0, 0}, {0, 0, 50 * time.Millisecond}, {0, 0, 100 * time.Millisecond}}, []bool{false, true, false}},
		{"slow then quick", []press{{0, 0, 0}, {0, 0, time.Second}, {0, 0, time.Second + 100*time.Millisecond}}, []bool{false, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c ClickTracker
			for i, p := range tt.presses {
				if got := c.Press(p.x, p.y, t0.Add(p.after)); got != tt.want[i] {
					t.Errorf("press %d: got %v, want %v", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestClickTrackerCustomTolerance(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := ClickTracker{Interval: time.Second, Distance: 20}
	c.Press(0, 0, t0)
	if !c.Press(15, 0, t0.Add(800*time.Millisecond)) {
		t.Error("press within custom tolerance not detected")
	}
}
