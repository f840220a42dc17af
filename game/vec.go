package game

import "math"

// Vec is a 2D vector in world units (pixels, pixels/s or pixels/s^2)
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Magnitude returns the length of v
func Magnitude(v Vec) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector when v is zero
func Normalize(v Vec) Vec {
	mag := Magnitude(v)
	if mag == 0 {
		return Vec{}
	}
	return Vec{X: v.X / mag, Y: v.Y / mag}
}

// Intersecting reports whether two entities overlap or touch.
// Touching circles (distance == r1+r2) count as intersecting.
func Intersecting(a, b *Entity) bool {
	return Distance(a.Pos, b.Pos) <= a.Radius+b.Radius
}
