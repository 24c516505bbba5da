// Package vec provides the small float32 2-D vector type used by the
// simulation engine and its renderer.
package vec

import "math"

// Vec2 is a 2-D vector with float32 components.
type Vec2 struct {
	X, Y float32
}

// Zero is the zero vector.
var Zero = Vec2{}

// New returns the vector (x, y).
func New(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// Angled returns the unit vector pointing at the given angle in radians.
func Angled(angle float32) Vec2 {
	s, c := math.Sincos(float64(angle))
	return Vec2{X: float32(c), Y: float32(s)}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float32 { return v.X*v.X + v.Y*v.Y }

// Normalized returns the unit vector in the direction of v, or the zero
// vector when v has no direction.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

