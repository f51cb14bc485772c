// Package core provides fundamental types and utilities for the invaders engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Point is a position in world space.
type Point struct {
	X, Y float64
}

// Box is a world-space rectangle anchored at its center.
// World space has its origin at the bottom-left corner with y growing upward.
type Box struct {
	X, Y float64 // Center position
	W, H float64 // Width and height
}

// NewBox creates a box centered at (x, y).
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.X - b.W/2
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W/2
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y + b.H/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y - b.H/2
}

// Contains reports whether p lies within the box's half-extents.
// Edges are inclusive.
func (b Box) Contains(p Point) bool {
	dx := p.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx <= b.W/2 && dy <= b.H/2
}

// TopCorners returns the top-left and top-right corners.
func (b Box) TopCorners() [2]Point {
	return [2]Point{
		{X: b.Left(), Y: b.Top()},
		{X: b.Right(), Y: b.Top()},
	}
}

// BottomCorners returns the bottom-left and bottom-right corners.
func (b Box) BottomCorners() [2]Point {
	return [2]Point{
		{X: b.Left(), Y: b.Bottom()},
		{X: b.Right(), Y: b.Bottom()},
	}
}

// ContainsAny reports whether any of the given points lies inside the box.
// Hit tests sample a projectile's leading corners rather than overlapping
// full rectangles.
func (b Box) ContainsAny(points [2]Point) bool {
	return b.Contains(points[0]) || b.Contains(points[1])
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
