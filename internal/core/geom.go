// Package core provides the shared primitives of the shooter: hitboxes,
// the cell screen buffer, input actions, audio cue names and runtime config.
// It has no external dependencies so the simulation stays pure and testable.
package core

// Rect is an axis-aligned hitbox in field pixels.
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

// Intersects reports whether two hitboxes overlap.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// Scale maps the rectangle from a field of fieldW x fieldH into a grid of
// cols x rows cells. Non-empty rectangles always cover at least one cell.
func (r Rect) Scale(fieldW, fieldH, cols, rows int) Rect {
	if fieldW <= 0 || fieldH <= 0 {
		return Rect{}
	}
	x0 := floorDiv(r.X*cols, fieldW)
	y0 := floorDiv(r.Y*rows, fieldH)
	x1 := ceilDiv(r.Right()*cols, fieldW)
	y1 := ceilDiv(r.Bottom()*rows, fieldH)
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
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

// ClampFloat restricts a float to be within [lo, hi].
func ClampFloat(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
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

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
