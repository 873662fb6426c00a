// Package core provides fundamental types and utilities shared by the game
// simulation and its frontends. It contains no external dependencies
// (especially no Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

// Rect represents an integer cell rectangle on a Screen.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Bounds is an axis-aligned bounding box in arena coordinates (pixels, Y down).
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// BoundsOf builds a box from a top-left corner and a size.
func BoundsOf(x, y, w, h float64) Bounds {
	return Bounds{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// CenterX returns the horizontal midpoint.
func (b Bounds) CenterX() float64 {
	return b.Left + b.Width()/2
}

// Separated reports whether a strict gap exists between b and other on
// either axis. Touching edges are not separated.
func (b Bounds) Separated(other Bounds) bool {
	return b.Right < other.Left ||
		b.Bottom < other.Top ||
		other.Right < b.Left ||
		other.Bottom < b.Top
}

// ContainsX reports whether x lies within [Left, Right].
func (b Bounds) ContainsX(x float64) bool {
	return b.Left <= x && x <= b.Right
}

// ContainsY reports whether y lies within [Top, Bottom].
func (b Bounds) ContainsY(y float64) bool {
	return b.Top <= y && y <= b.Bottom
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
