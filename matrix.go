package canvas

import "math"

// Matrix is a 2D affine transform in row-major 2x3 form:
//
//	| a  b  c |
//	| d  e  f |
//
// mapping
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scale by (x, y) about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a rotation by angle radians about the origin. Positive
// angles turn +X toward +Y, which is clockwise on screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Skew returns a skew by angles x and y, in radians.
func Skew(x, y float64) Matrix {
	return Matrix{A: 1, B: math.Tan(x), D: math.Tan(y), E: 1}
}

// Multiply returns m * other: the transform that applies other first and
// then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transform to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transform without translation.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Determinant returns a*e - b*d.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transform. ok is false when m is singular or
// not finite.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.Determinant()
	if det == 0 || !finite(det, m.C, m.F) {
		return Identity(), false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation reports whether m only translates.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsAxisAligned reports whether m maps axis-aligned rectangles to
// axis-aligned rectangles without swapping axes.
func (m Matrix) IsAxisAligned() bool {
	return m.B == 0 && m.D == 0
}

// scaleFactor returns the geometric mean scale of m, used to convert a
// device tolerance to user units.
func (m Matrix) scaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}
