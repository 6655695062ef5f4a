package stroke

import "math"

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{X: v.X + w.X, Y: v.Y + w.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }
func (v Vec2) Neg() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Perp returns v rotated by 90 degrees.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Normalize returns the unit vector in v's direction, or zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < 1e-12 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Element is one path command. The concrete types are MoveTo, LineTo,
// QuadTo, CubicTo and Close.
type Element interface {
	isElement()
}

// MoveTo starts a subpath.
type MoveTo struct{ Point Point }

// LineTo draws a straight segment.
type LineTo struct{ Point Point }

// QuadTo draws a quadratic Bezier segment.
type QuadTo struct{ Control, Point Point }

// CubicTo draws a cubic Bezier segment.
type CubicTo struct{ Control1, Control2, Point Point }

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isElement() {}
func (LineTo) isElement() {}
func (QuadTo) isElement() {}
func (CubicTo) isElement() {}
func (Close) isElement() {}

func endPoint(el Element) Point {
	switch e := el.(type) {
	case MoveTo:
		return e.Point
	case LineTo:
		return e.Point
	case QuadTo:
		return e.Point
	case CubicTo:
		return e.Point
	}
	return Point{}
}

// builder accumulates elements.
type builder struct {
	elements []Element
}

func newBuilder() *builder {
	return &builder{elements: make([]Element, 0, 32)}
}

func (b *builder) isEmpty() bool { return len(b.elements) == 0 }
func (b *builder) moveTo(p Point) { b.elements = append(b.elements, MoveTo{Point: p}) }
func (b *builder) lineTo(p Point) { b.elements = append(b.elements, LineTo{Point: p}) }
func (b *builder) cubicTo(c1, c2, p Point) {
	b.elements = append(b.elements, CubicTo{Control1: c1, Control2: c2, Point: p})
}
func (b *builder) close() { b.elements = append(b.elements, Close{}) }

func (b *builder) current() Point {
	if len(b.elements) == 0 {
		return Point{}
	}
	return endPoint(b.elements[len(b.elements)-1])
}
