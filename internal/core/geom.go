// Package core provides fundamental types and utilities for CyberRunner.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

// Vec2 is a 2D offset in screen pixels.
type Vec2 struct {
	X, Y float64
}

// Rect represents an axis-aligned rectangle in screen pixels.
// Used both for sprite-sheet source selection and for screen placement.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
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

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap
// and empty rectangles never overlap anything.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Shrink returns the hit box used for forgiving collisions: the rectangle is
// moved in by pad on the top-left and loses 6*pad of width and 3*pad of height.
// The result may be empty for sprites narrower than 6*pad.
func (r Rect) Shrink(pad float64) Rect {
	return Rect{
		X: r.X + pad,
		Y: r.Y + pad,
		W: r.W - 6*pad,
		H: r.H - 3*pad,
	}
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
