// Package core holds the frontend-independent building blocks: the screen
// buffer, cell colors, layout rectangles, player actions with their key map,
// and the runtime settings passed to a game. Nothing here imports a UI library.
package core

// Rect is an axis-aligned area of the screen measured in cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with its top-left corner at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenterAt returns a w×h rectangle centered on (cx, cy).
// The corner is kept at non-negative coordinates.
func CenterAt(cx, cy, w, h int) Rect {
	return Rect{X: max(cx-w/2, 0), Y: max(cy-h/2, 0), W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r. Right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks r by n cells on every side; the size never goes negative.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}
