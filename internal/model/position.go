package model

import "math"

// Position представляет точку на боевой плоскости.
// Value type, передаётся по значению (immutable).
type Position struct {
	X float64
	Y float64
}

// NewPosition создаёт Position с указанными координатами.
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Add returns the point shifted by v.
func (p Position) Add(v Vector) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from other to p.
func (p Position) Sub(other Position) Vector {
	return Vector{X: p.X - other.X, Y: p.Y - other.Y}
}

// DistanceSquared возвращает квадрат расстояния до другой точки (без sqrt для производительности).
func (p Position) DistanceSquared(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Distance возвращает расстояние до другой точки.
func (p Position) Distance(other Position) float64 {
	return math.Sqrt(p.DistanceSquared(other))
}

// Vector is a displacement on the combat plane.
type Vector struct {
	X float64
	Y float64
}

// Length returns the vector magnitude.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns the unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector) Normalized() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Scaled returns the vector multiplied by s.
func (v Vector) Scaled(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Rotated returns the vector rotated by angle radians (counterclockwise).
func (v Vector) Rotated(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
