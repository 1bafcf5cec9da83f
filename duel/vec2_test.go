package duel

import (
	"math"
	"testing"
)

func TestDistanceAndDistanceSquared(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"same point", Vec2{1, 1}, Vec2{1, 1}, 0},
		{"3-4-5 triangle", Vec2{0, 0}, Vec2{3, 4}, 5},
		{"negative coordinates", Vec2{-1, -1}, Vec2{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := DistanceSquared(tt.a, tt.b); math.Abs(got-tt.want*tt.want) > 1e-9 {
				t.Errorf("DistanceSquared(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want*tt.want)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"already in range", math.Pi / 2, math.Pi / 2},
		{"negative wraps up", -math.Pi / 2, 3 * math.Pi / 2},
		{"exactly two pi wraps to zero", TwoPi, 0},
		{"large negative multiple", -TwoPi - math.Pi/2, 3 * math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.angle)
			if got < 0 || got >= TwoPi {
				t.Fatalf("NormalizeAngle(%v) = %v, out of [0, 2pi) range", tt.angle, got)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestNormalizeSigned(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"zero", 0, 0},
		{"just over pi wraps negative", math.Pi + 0.1, -math.Pi + 0.1},
		{"exactly pi stays pi", math.Pi, math.Pi},
		{"negative two pi collapses to zero", -TwoPi, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSigned(tt.angle)
			if got <= -math.Pi || got > math.Pi+1e-9 {
				t.Fatalf("NormalizeSigned(%v) = %v, out of (-pi, pi] range", tt.angle, got)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeSigned(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestAngularOffset(t *testing.T) {
	tests := []struct {
		name             string
		heading, bearing float64
		want             float64
	}{
		{"bearing ahead of heading", 0, math.Pi / 4, math.Pi / 4},
		{"bearing behind heading (ccw positive wrap)", 0, -math.Pi / 4, -math.Pi / 4},
		{"identical heading and bearing", math.Pi, math.Pi, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularOffset(tt.heading, tt.bearing)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngularOffset(%v, %v) = %v, want %v", tt.heading, tt.bearing, got, tt.want)
			}
		})
	}
}

func TestInArc(t *testing.T) {
	tests := []struct {
		name                string
		heading, bearing    float64
		arcWidthRad         float64
		want                bool
	}{
		{"dead center of arc", 0, 0, math.Pi / 3, true},
		{"exactly at half-width boundary", 0, math.Pi / 6, math.Pi / 3, true},
		{"just outside half-width", 0, math.Pi/6 + 0.01, math.Pi / 3, false},
		{"behind ship, wide arc misses", 0, math.Pi, math.Pi / 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InArc(tt.heading, tt.bearing, tt.arcWidthRad); got != tt.want {
				t.Errorf("InArc(%v, %v, %v) = %v, want %v", tt.heading, tt.bearing, tt.arcWidthRad, got, tt.want)
			}
		})
	}
}

func TestInCircle(t *testing.T) {
	center := Vec2{10, 10}
	tests := []struct {
		name string
		p    Vec2
		r    float64
		want bool
	}{
		{"at center", center, 5, true},
		{"exactly on boundary", Vec2{15, 10}, 5, true},
		{"just outside boundary", Vec2{15.1, 10}, 5, false},
		{"far away", Vec2{1000, 1000}, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InCircle(tt.p, center, tt.r); got != tt.want {
				t.Errorf("InCircle(%v, %v, %v) = %v, want %v", tt.p, center, tt.r, got, tt.want)
			}
		})
	}
}

func TestVecFromAngle(t *testing.T) {
	tests := []struct {
		name      string
		theta     float64
		magnitude float64
		want      Vec2
	}{
		{"zero heading points +x", 0, 5, Vec2{5, 0}},
		{"quarter turn points +y", math.Pi / 2, 5, Vec2{0, 5}},
		{"zero magnitude is origin regardless of angle", 1.23, 0, Vec2{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VecFromAngle(tt.theta, tt.magnitude)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("VecFromAngle(%v, %v) = %v, want %v", tt.theta, tt.magnitude, got, tt.want)
			}
		})
	}
}
