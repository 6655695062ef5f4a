package canvas

import "math"

// ArcTo adds an elliptical arc around (cx, cy) with radii (rx, ry), from
// angle start sweeping by sweep radians. Sweeps larger than a full turn are
// clamped to one turn.
//
// When forceMoveTo is set, or the path has no current point, the arc starts
// a new subpath at its own start point. Otherwise a line joins the current
// point to the arc's start.
func (p *Path) ArcTo(cx, cy, rx, ry, start, sweep float64, forceMoveTo bool) {
	sweep = max(-2*math.Pi, min(2*math.Pi, sweep))
	c := Pt(cx, cy)
	p0 := ellipsePoint(c, rx, ry, 0, start)

	if forceMoveTo || !p.hasCurrent {
		p.MoveTo(p0.X, p0.Y)
	} else {
		p.beginSegment()
		if p.current != p0 {
			p.LineTo(p0.X, p0.Y)
		}
	}
	p.appendArc(c, rx, ry, 0, start, sweep)
	p.lastKind = curveNone
}

// EllipticArcTo adds an SVG-style arc from the current point to (x, y). The
// ellipse has radii (rx, ry) rotated by xAxisRotation radians; largeArc and
// sweep select one of the four candidate arcs, sweep choosing the
// positive-angle direction.
//
// Radii too small to reach (x, y) are scaled up. A zero radius draws a
// line, and an arc to the current point draws nothing.
func (p *Path) EllipticArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) {
	p.beginSegment()
	p0, p1 := p.current, Pt(x, y)
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.LineTo(x, y)
		return
	}

	sinPhi, cosPhi := math.Sincos(xAxisRotation)
	dx, dy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	coef := math.Sqrt(max(0, num/den))
	if largeArc == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	c := Point{
		X: cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2,
	}

	ux, uy := (x1-cx1)/rx, (y1-cy1)/ry
	vx, vy := (-x1-cx1)/rx, (-y1-cy1)/ry
	theta := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	p.appendArc(c, rx, ry, xAxisRotation, theta, delta)
	// Snap to the exact end point.
	if last, ok := p.elements[len(p.elements)-1].(CubicTo); ok {
		last.Point = p1
		p.elements[len(p.elements)-1] = last
	}
	p.current = p1
	p.lastKind = curveNone
}

// appendArc appends cubic segments of at most a quarter turn each. The
// current point must already be the arc's start.
func (p *Path) appendArc(c Point, rx, ry, rotation, start, sweep float64) {
	if sweep == 0 {
		return
	}
	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9)), 1)
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	a0 := start
	for range n {
		a1 := a0 + step
		q0 := ellipsePoint(c, rx, ry, rotation, a0)
		q1 := ellipsePoint(c, rx, ry, rotation, a1)
		d0 := ellipseTangent(rx, ry, rotation, a0)
		d1 := ellipseTangent(rx, ry, rotation, a1)
		p.cubicTo(q0.Add(d0.Mul(k)), q1.Sub(d1.Mul(k)), q1)
		a0 = a1
	}
}

func ellipsePoint(c Point, rx, ry, rotation, angle float64) Point {
	sin, cos := math.Sincos(angle)
	sinR, cosR := math.Sincos(rotation)
	x, y := rx*cos, ry*sin
	return Point{X: c.X + cosR*x - sinR*y, Y: c.Y + sinR*x + cosR*y}
}

// ellipseTangent is the derivative of ellipsePoint with respect to angle.
func ellipseTangent(rx, ry, rotation, angle float64) Point {
	sin, cos := math.Sincos(angle)
	sinR, cosR := math.Sincos(rotation)
	x, y := -rx*sin, ry*cos
	return Point{X: cosR*x - sinR*y, Y: sinR*x + cosR*y}
}
