package stroke

import "math"

// maxFlattenDepth bounds curve subdivision.
const maxFlattenDepth = 16

// Expander converts stroked paths to fill outlines.
type Expander struct {
	style     Style
	hw        float64
	tolerance float64

	forward  *builder
	backward *builder
	output   *builder

	startPt   Point
	startNorm Vec2
	startTan  Vec2
	lastPt    Point
	lastTan   Vec2
	lastNorm  Vec2

	joinThresh float64
}

// NewExpander creates an expander for style.
func NewExpander(style Style) *Expander {
	if style.MiterLimit < 1 {
		style.MiterLimit = 1
	}
	return &Expander{
		style:     style,
		hw:        0.5 * style.Width,
		tolerance: 0.25,
	}
}

// SetTolerance sets the curve flattening tolerance. Non-positive values are
// ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Tolerance returns the curve flattening tolerance.
func (e *Expander) Tolerance() float64 {
	return e.tolerance
}

// Expand returns the fill outline of elements stroked with the expander's
// style. Zero-length subpaths produce nothing.
func (e *Expander) Expand(elements []Element) []Element {
	e.reset()
	if e.hw <= 0 {
		return nil
	}

	for _, el := range elements {
		switch elem := el.(type) {
		case MoveTo:
			e.finish()
			e.startPt = elem.Point
			e.lastPt = elem.Point
		case LineTo:
			e.lineTo(elem.Point)
		case QuadTo:
			pts := []Point{e.lastPt}
			e.flattenQuad(e.lastPt, elem.Control, elem.Point, &pts, 0)
			for _, p := range pts[1:] {
				e.lineTo(p)
			}
		case CubicTo:
			pts := []Point{e.lastPt}
			e.flattenCubic(e.lastPt, elem.Control1, elem.Control2, elem.Point, &pts, 0)
			for _, p := range pts[1:] {
				e.lineTo(p)
			}
		case Close:
			e.lineTo(e.startPt)
			e.finishClosed()
			e.lastPt = e.startPt
		}
	}

	e.finish()
	return e.output.elements
}

func (e *Expander) reset() {
	e.forward = newBuilder()
	e.backward = newBuilder()
	e.output = newBuilder()
	e.startPt, e.lastPt = Point{}, Point{}
	e.startNorm, e.startTan = Vec2{}, Vec2{}
	e.lastTan, e.lastNorm = Vec2{}, Vec2{}
	if e.hw > 0 {
		e.joinThresh = e.tolerance / e.hw
	}
}

func (e *Expander) lineTo(p Point) {
	tan := p.Sub(e.lastPt)
	if tan.LengthSquared() < 1e-18 {
		return
	}
	e.join(tan)
	e.lastTan = tan

	norm := tan.Perp().Scale(e.hw / tan.Length())
	e.forward.lineTo(p.Add(norm.Neg()))
	e.backward.lineTo(p.Add(norm))
	e.lastPt = p
	e.lastNorm = norm
}

// join connects the offsets of the previous segment to a segment that
// starts at lastPt with tangent tan.
func (e *Expander) join(tan Vec2) {
	norm := tan.Perp().Scale(e.hw / tan.Length())
	p0 := e.lastPt

	if e.forward.isEmpty() {
		e.forward.moveTo(p0.Add(norm.Neg()))
		e.backward.moveTo(p0.Add(norm))
		e.startTan = tan
		e.startNorm = norm
		return
	}

	ab, cd := e.lastTan, tan
	cross, dot := ab.Cross(cd), ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Nearly collinear: connect without a join.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
		return
	}

	lastNorm := ab.Perp().Scale(e.hw / ab.Length())

	switch e.style.Join {
	case JoinBevel:
	case JoinRound:
		angle := math.Atan2(cross, dot)
		if angle > 0 {
			e.backward.lineTo(p0)
			e.arc(e.forward, p0, lastNorm.Neg(), angle)
		} else {
			e.forward.lineTo(p0)
			e.arc(e.backward, p0, lastNorm, angle)
		}
	default:
		e.miter(p0, lastNorm, norm, ab, cd, cross, dot, hypot)
	}

	e.forward.lineTo(p0.Add(norm.Neg()))
	e.backward.lineTo(p0.Add(norm))
}

func (e *Expander) miter(p0 Point, lastNorm, norm, ab, cd Vec2, cross, dot, hypot float64) {
	outer, inner := e.forward, e.backward
	s := -1.0
	if cross < 0 {
		outer, inner = e.backward, e.forward
		s = 1.0
	}
	fpLast := p0.Add(lastNorm.Scale(s))
	fpThis := p0.Add(norm.Scale(s))

	limit := e.style.MiterLimit
	if 2*hypot < (hypot+dot)*limit*limit && cross != 0 {
		h := ab.Cross(fpThis.Sub(fpLast)) / cross
		outer.lineTo(fpThis.Add(cd.Scale(-h)))
		inner.lineTo(p0)
		return
	}
	if e.style.Join != JoinMiterClip {
		return
	}

	// Clip the miter with the line perpendicular to the bisector at
	// distance limit*hw from the vertex.
	u := lastNorm.Add(norm).Scale(s).Normalize()
	if u == (Vec2{}) {
		u = ab.Normalize()
	}
	clipDist := limit * e.hw
	abu, cdu := ab.Normalize(), cd.Normalize()

	g1 := abu.Dot(u)
	g2 := cdu.Dot(u)
	if math.Abs(g1) < 1e-12 || math.Abs(g2) < 1e-12 {
		return
	}
	d1 := (clipDist - fpLast.Sub(p0).Dot(u)) / g1
	d2 := (fpThis.Sub(p0).Dot(u) - clipDist) / g2
	outer.lineTo(fpLast.Add(abu.Scale(d1)))
	outer.lineTo(fpThis.Add(cdu.Scale(-d2)))
	inner.lineTo(p0)
}

// finish closes an open subpath with its caps.
func (e *Expander) finish() {
	if e.forward.isEmpty() {
		return
	}

	e.output.elements = append(e.output.elements, e.forward.elements...)
	e.cap(e.style.EndCap, e.lastPt, e.lastNorm.Neg(), false)
	e.appendReversed(e.backward)
	e.cap(e.style.StartCap, e.startPt, e.startNorm, true)

	e.forward = newBuilder()
	e.backward = newBuilder()
}

// finishClosed emits the two contours of a closed subpath.
func (e *Expander) finishClosed() {
	if e.forward.isEmpty() {
		return
	}

	e.join(e.startTan)

	e.output.elements = append(e.output.elements, e.forward.elements...)
	e.output.close()

	e.output.moveTo(e.backward.current())
	e.appendReversed(e.backward)
	e.output.close()

	e.forward = newBuilder()
	e.backward = newBuilder()
}

// cap draws a cap around center. The output's current point is
// center+norm; the cap ends at center-norm, or closes when closePath is set.
func (e *Expander) cap(c Cap, center Point, norm Vec2, closePath bool) {
	out := e.output
	ext := norm.Perp() // points away from the stroke body

	switch c {
	case CapSquare:
		out.lineTo(center.Add(norm).Add(ext))
		out.lineTo(center.Add(norm.Neg()).Add(ext))
	case CapRound:
		e.arc(out, center, norm, math.Pi)
	case CapRoundRev:
		out.lineTo(center.Add(norm).Add(ext))
		e.arc(out, center.Add(ext), norm, -math.Pi)
	case CapTriangle:
		out.lineTo(center.Add(ext))
	case CapTriangleRev:
		out.lineTo(center.Add(norm).Add(ext))
		out.lineTo(center)
		out.lineTo(center.Add(norm.Neg()).Add(ext))
	}

	if closePath {
		out.close()
		return
	}
	out.lineTo(center.Add(norm.Neg()))
}

// arc appends a circular arc around center, starting at center+norm and
// sweeping angle radians, as cubic segments of at most 90 degrees.
func (e *Expander) arc(out *builder, center Point, norm Vec2, angle float64) {
	n := max(int(math.Ceil(math.Abs(angle)/(math.Pi/2))), 1)
	step := angle / float64(n)
	a := norm.Angle()
	r := norm.Length()

	k := 4.0 / 3.0 * math.Tan(step/4)
	for range n {
		a1 := a + step
		cos0, sin0 := math.Cos(a), math.Sin(a)
		cos1, sin1 := math.Cos(a1), math.Sin(a1)

		p1 := Point{X: center.X + r*cos0, Y: center.Y + r*sin0}
		p2 := Point{X: center.X + r*cos1, Y: center.Y + r*sin1}
		c1 := Point{X: p1.X - k*r*sin0, Y: p1.Y + k*r*cos0}
		c2 := Point{X: p2.X + k*r*sin1, Y: p2.Y - k*r*cos1}
		out.cubicTo(c1, c2, p2)
		a = a1
	}
}

func (e *Expander) appendReversed(b *builder) {
	elems := b.elements
	for i := len(elems) - 1; i >= 1; i-- {
		prev := endPoint(elems[i-1])
		switch el := elems[i].(type) {
		case LineTo:
			e.output.lineTo(prev)
		case CubicTo:
			e.output.cubicTo(el.Control2, el.Control1, prev)
		}
	}
}

func (e *Expander) flattenQuad(p0, p1, p2 Point, pts *[]Point, depth int) {
	if depth >= maxFlattenDepth || distanceToLine(p1, p0, p2) < e.tolerance {
		*pts = append(*pts, p2)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	m := q0.Lerp(q1, 0.5)
	e.flattenQuad(p0, q0, m, pts, depth+1)
	e.flattenQuad(m, q1, p2, pts, depth+1)
}

func (e *Expander) flattenCubic(p0, p1, p2, p3 Point, pts *[]Point, depth int) {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxFlattenDepth || d < e.tolerance {
		*pts = append(*pts, p3)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	m := r0.Lerp(r1, 0.5)
	e.flattenCubic(p0, q0, r0, m, pts, depth+1)
	e.flattenCubic(m, r1, q2, p3, pts, depth+1)
}

// distanceToLine returns the distance from p to segment ab.
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Scale(t)))
}
