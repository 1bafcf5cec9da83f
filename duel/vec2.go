package duel

import "math"

// Vec2 is a 2-D vector or position in world units. It is a value type and
// is never owned by an entity; ships, torpedoes, and blast zones hold
// Vec2 values rather than a *Vec2 so that copying a Ship or Torpedo
// copies its position by value.
type Vec2 struct {
	X, Y float64
}

// Add returns the vector sum v+w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns the vector difference v-w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Length()
}

// DistanceSquared avoids the sqrt when only a comparison against a radius
// is needed.
func DistanceSquared(a, b Vec2) float64 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y
}

// VecFromAngle builds a unit-length-scaled vector pointing at angle theta
// (radians, 0 facing +x, counter-clockwise positive) with the given
// magnitude.
func VecFromAngle(theta, magnitude float64) Vec2 {
	return Vec2{math.Cos(theta) * magnitude, math.Sin(theta) * magnitude}
}

// TwoPi is used throughout instead of repeating 2*math.Pi so that every
// wrap uses the identical literal evaluation order (determinism, §5).
const TwoPi = 2 * math.Pi

// NormalizeAngle wraps an angle into [0, 2*Pi).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, TwoPi)
	if angle < 0 {
		angle += TwoPi
	}
	return angle
}

// NormalizeSigned wraps an angle into (-Pi, Pi], used for bearing offsets
// where the sign indicates left/right rather than an absolute heading.
func NormalizeSigned(angle float64) float64 {
	angle = math.Mod(angle, TwoPi)
	if angle <= -math.Pi {
		angle += TwoPi
	} else if angle > math.Pi {
		angle -= TwoPi
	}
	return angle
}

// BearingTo returns the world-frame angle from a to b, 0 facing +x,
// counter-clockwise positive (§6 coordinate frame).
func BearingTo(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// AngularOffset returns the signed difference between a target bearing and
// a reference heading, normalized to (-Pi, Pi]. A positive result means
// the bearing is counter-clockwise of the heading.
func AngularOffset(heading, bearing float64) float64 {
	return NormalizeSigned(bearing - heading)
}

// InArc reports whether bearing lies within a symmetric arc of the given
// total width (degrees-equivalent already converted to radians by the
// caller) centered on heading. arcWidth is the full angular width, so the
// half-width used for the comparison is arcWidth/2 (§4.4).
func InArc(heading, bearing, arcWidth float64) bool {
	offset := AngularOffset(heading, bearing)
	return math.Abs(offset) <= arcWidth/2
}

// InCircle reports whether point p lies within radius r of center c,
// inclusive (§4.6 containment test is "point inside circle").
func InCircle(p, c Vec2, r float64) bool {
	return DistanceSquared(p, c) <= r*r
}
