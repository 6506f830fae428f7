// Package core provides fundamental types and utilities for the cansat game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned bounding box in play-area units.
// Y grows downwards, so Top is the smaller edge.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether a and b overlap.
// Rectangles only miss when one is strictly above, below, left of or right of
// the other, so shared edges count as a hit.
func Overlaps(a, b Rect) bool {
	return !(a.Top() > b.Bottom() ||
		a.Bottom() < b.Top() ||
		a.Right() < b.Left() ||
		a.Left() > b.Right())
}

// Overlaps is the method form of the package-level Overlaps.
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}

// ClampF restricts a float64 value to be within [min, max].
// If max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
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
