// Package geom provides the small amount of 2D geometry the selection
// engine needs: points and axis-aligned rectangles in a shared float32
// coordinate space.
package geom

import "github.com/chewxy/math32"

// Point is a position in the shared coordinate space.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float32 {
	return math32.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned rectangle. A well-formed Rect has
// Left <= Right and Top <= Bottom; use RectFromPoints to normalize.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// RectFromPoints returns the normalized rectangle spanned by two
// opposite corners, regardless of their relative position.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Left:   math32.Min(a.X, b.X),
		Top:    math32.Min(a.Y, b.Y),
		Right:  math32.Max(a.X, b.X),
		Bottom: math32.Max(a.Y, b.Y),
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Intersects reports whether r and o share a region of positive area.
// Rectangles that merely touch along an edge or corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right &&
		r.Top < o.Bottom && o.Top < r.Bottom
}

// Contains reports whether the point lies inside the rectangle,
// including its edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
