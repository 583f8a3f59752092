// Package physics provides collision detection primitives.
package physics

// Rect is an axis-aligned rectangle. All four edges are inclusive, so
// Right and Bottom are the last covered column and row, not one past them.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromSize builds a closed rectangle covering w×h units starting at (x, y).
func RectFromSize(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w - 1, Bottom: y + h - 1}
}

// Width returns the horizontal extent between the edges.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent between the edges.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Intersect reports whether a and b overlap. Touching edges count.
func Intersect(a, b Rect) bool {
	return a.Left <= b.Right &&
		b.Left <= a.Right &&
		a.Top <= b.Bottom &&
		b.Top <= a.Bottom
}
