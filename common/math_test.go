package common

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"plus pi wraps to minus pi", math.Pi, -math.Pi},
		{"minus pi is kept", -math.Pi, -math.Pi},
		{"just below pi", math.Pi - 1e-6, math.Pi - 1e-6},
		{"just above pi", math.Pi + 1e-6, -math.Pi + 1e-6},
		{"full turn", 2 * math.Pi, 0},
		{"negative quarter turn past a full turn", -2*math.Pi - math.Pi/2, -math.Pi / 2},
		{"several turns", 7*math.Pi/2 + 8*math.Pi, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAngle(tt.in)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got < -math.Pi || got >= math.Pi {
				t.Errorf("WrapAngle(%v) = %v, outside [-π, π)", tt.in, got)
			}
		})
	}
}

func TestShortestAngleDelta(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"same angle", 1, 1, 0},
		{"small positive", 0, 0.5, 0.5},
		{"small negative", 0.5, 0, -0.5},
		{"across pi", 3.1, -3.1, 2*math.Pi - 6.2},
		{"across minus pi", -3.1, 3.1, 6.2 - 2*math.Pi},
		{"unwrapped inputs", 4 * math.Pi, 0.25, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortestAngleDelta(tt.from, tt.to); math.Abs(got-tt.want) > eps {
				t.Errorf("ShortestAngleDelta(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestLerpAngleTakesShortArc(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		t        float64
		want     float64
	}{
		{"halfway across pi", 3.1, -3.1, 0.5, math.Pi},
		{"full step lands past pi", 3.1, -3.1, 1, 2*math.Pi - 3.1},
		{"halfway across minus pi", -3.1, 3.1, 0.5, -math.Pi},
		{"no step", 3.1, -3.1, 0, 3.1},
		{"ordinary arc", 0, 1, 0.25, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LerpAngle(tt.from, tt.to, tt.t)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("LerpAngle(%v, %v, %v) = %v, want %v", tt.from, tt.to, tt.t, got, tt.want)
			}
		})
	}
}

func TestYawPitchTowards(t *testing.T) {
	tests := []struct {
		name       string
		eye        Point3
		target     Point3
		yaw, pitch float64
	}{
		{"same point", Point3{X: 3, Y: -2, Z: 7}, Point3{X: 3, Y: -2, Z: 7}, 0, 0},
		{"straight ahead", Point3{}, Point3{Z: 10}, 0, 0},
		{"to the right", Point3{}, Point3{X: 5}, -math.Pi / 2, 0},
		{"straight up", Point3{}, Point3{Y: 4}, 0, math.Pi / 2},
		{"offset eye", Point3{X: 1, Z: 1}, Point3{X: 1, Y: 1, Z: 2}, 0, math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaw, pitch := YawPitchTowards(tt.eye, tt.target)
			if math.IsNaN(yaw) || math.IsNaN(pitch) {
				t.Fatalf("YawPitchTowards = (%v, %v), want finite angles", yaw, pitch)
			}
			if math.Abs(yaw-tt.yaw) > eps || math.Abs(pitch-tt.pitch) > eps {
				t.Errorf("YawPitchTowards = (%v, %v), want (%v, %v)", yaw, pitch, tt.yaw, tt.pitch)
			}
		})
	}
}
