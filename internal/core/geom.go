// Package core provides renderer-neutral types shared by the engine and the
// terminal front-end. It has no Bubble Tea dependency so game logic stays pure
// and testable.
package core

// Rect is an axis-aligned rectangle in the units of whoever produced it
// (pixels for the grid model, terminal cells for the screen buffer).
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// WrapF wraps val into [0, limit]. Values past either edge reappear on the
// opposite side.
func WrapF(val, limit float64) float64 {
	if val < 0 {
		return limit
	}
	if val > limit {
		return 0
	}
	return val
}
