// Package core provides fundamental types and utilities shared by the
// simulation and the platform layer. It has no external dependencies so the
// game logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned box in world units, used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports strict intersection: touching edges do not collide.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by d on every side.
// The result never has negative size.
func (r Rect) Inset(d float64) Rect {
	w := math.Max(0, r.W-2*d)
	h := math.Max(0, r.H-2*d)
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Outside reports whether r lies completely outside a w×h field.
func (r Rect) Outside(w, h float64) bool {
	return r.Right() < 0 || r.X > w || r.Bottom() < 0 || r.Y > h
}

// Normalize returns the unit vector of (dx, dy).
// A zero-length vector falls back to straight down (0, 1).
func Normalize(dx, dy float64) (float64, float64) {
	l := math.Hypot(dx, dy)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return 0, 1
	}
	return dx / l, dy / l
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
