package canvas

import "math"

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// reflect mirrors q through p.
func (p Point) reflect(q Point) Point {
	return Point{X: 2*p.X - q.X, Y: 2*p.Y - q.Y}
}

// Rect is an axis-aligned rectangle in floating-point coordinates.
type Rect struct {
	Min, Max Point
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the rectangle's height.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.Min.X < r.Max.X) || !(r.Min.Y < r.Max.Y)
}
