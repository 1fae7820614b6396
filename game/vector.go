package game

import "math"

// Vector2 is a 2D vector in screen units; +Y points down.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector in v's direction, or the zero vector.
func (v Vector2) Normalized() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Rotated returns v rotated by angle radians (clockwise on screen).
func (v Vector2) Rotated(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the direction of v in radians.
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Clamp limits each axis independently to [lo, hi].
func (v Vector2) Clamp(lo, hi Vector2) Vector2 {
	return Vector2{
		X: min(max(v.X, lo.X), hi.X),
		Y: min(max(v.Y, lo.Y), hi.Y),
	}
}
