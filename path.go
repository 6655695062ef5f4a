package canvas

// PathElement is a single command of a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight segment.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath with a straight segment to its start.
type Close struct{}

func (Close) isPathElement() {}

// curveKind records which curve, if any, ended the current subpath, so a
// smooth command can mirror its last control point.
type curveKind uint8

const (
	curveNone curveKind = iota
	curveQuad
	curveCubic
)

// Path is an append-only sequence of MoveTo, LineTo, QuadTo, CubicTo and
// Close commands, in user coordinates.
//
// Segment commands issued without a current point start a subpath at the
// origin. After Close the current point is the closed subpath's start, and
// the next segment begins a new subpath there.
//
// Smooth commands reflect the previous control point of the same subpath
// through the current point. When the previous command is not a curve of
// the same degree, the current point itself is used, so SmoothQuadTo
// degrades to a straight line.
type Path struct {
	elements []PathElement
	start    Point // start of the current subpath
	current  Point

	hasCurrent bool
	// reopen is set after Close: the next segment must emit MoveTo(start).
	reopen bool

	lastCtrl Point
	lastKind curveKind
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.hasCurrent = true
	p.reopen = false
	p.lastKind = curveNone
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.beginSegment()
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
	p.lastKind = curveNone
}

// QuadTo draws a quadratic curve with control (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.quadTo(Pt(cx, cy), Pt(x, y))
}

// CubicTo draws a cubic curve with controls (c1x, c1y), (c2x, c2y) to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.cubicTo(Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
}

// SmoothQuadTo draws a quadratic curve to (x, y) whose control point is the
// previous quadratic control reflected through the current point.
func (p *Path) SmoothQuadTo(x, y float64) {
	p.beginSegment()
	ctrl := p.current
	if p.lastKind == curveQuad {
		ctrl = p.current.reflect(p.lastCtrl)
	}
	p.quadTo(ctrl, Pt(x, y))
}

// SmoothCubicTo draws a cubic curve to (x, y) with second control
// (c2x, c2y). The first control is the previous cubic's second control
// reflected through the current point.
func (p *Path) SmoothCubicTo(c2x, c2y, x, y float64) {
	p.beginSegment()
	c1 := p.current
	if p.lastKind == curveCubic {
		c1 = p.current.reflect(p.lastCtrl)
	}
	p.cubicTo(c1, Pt(c2x, c2y), Pt(x, y))
}

// Close closes the current subpath. It does nothing when there is no open
// subpath.
func (p *Path) Close() {
	if !p.hasCurrent || p.reopen {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
	p.reopen = true
	p.lastKind = curveNone
}

func (p *Path) quadTo(ctrl, pt Point) {
	p.beginSegment()
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
	p.lastCtrl = ctrl
	p.lastKind = curveQuad
}

func (p *Path) cubicTo(c1, c2, pt Point) {
	p.beginSegment()
	p.elements = append(p.elements, CubicTo{Control1: c1, Control2: c2, Point: pt})
	p.current = pt
	p.lastCtrl = c2
	p.lastKind = curveCubic
}

// beginSegment makes sure a segment has a subpath to extend.
func (p *Path) beginSegment() {
	switch {
	case !p.hasCurrent:
		p.MoveTo(0, 0)
	case p.reopen:
		p.MoveTo(p.start.X, p.start.Y)
	}
}

// Reset removes all commands.
func (p *Path) Reset() {
	*p = Path{elements: p.elements[:0]}
}

// Elements returns a copy of the path's commands.
func (p *Path) Elements() []PathElement {
	return append([]PathElement(nil), p.elements...)
}

// Len returns the number of commands.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point, or false for an empty path.
func (p *Path) CurrentPoint() (Point, bool) {
	return p.current, p.hasCurrent
}

// HasCurrentPoint reports whether the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return p.hasCurrent
}

// Clone returns an independent copy of p.
func (p *Path) Clone() *Path {
	c := *p
	c.elements = append(make([]PathElement, 0, len(p.elements)), p.elements...)
	return &c
}

// Transform returns a copy of p with every point mapped by m.
func (p *Path) Transform(m Matrix) *Path {
	out := p.Clone()
	for i, elem := range out.elements {
		switch e := elem.(type) {
		case MoveTo:
			out.elements[i] = MoveTo{Point: m.TransformPoint(e.Point)}
		case LineTo:
			out.elements[i] = LineTo{Point: m.TransformPoint(e.Point)}
		case QuadTo:
			out.elements[i] = QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			}
		case CubicTo:
			out.elements[i] = CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			}
		}
	}
	out.start = m.TransformPoint(p.start)
	out.current = m.TransformPoint(p.current)
	out.lastCtrl = m.TransformPoint(p.lastCtrl)
	return out
}

// Bounds returns the bounding box of every point and control point. It is
// empty for a path without commands.
func (p *Path) Bounds() Rect {
	var r Rect
	first := true
	add := func(pt Point) {
		if first {
			r = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		r.Min.X = min(r.Min.X, pt.X)
		r.Min.Y = min(r.Min.Y, pt.Y)
		r.Max.X = max(r.Max.X, pt.X)
		r.Max.Y = max(r.Max.Y, pt.Y)
	}
	p.walkPoints(add)
	return r
}

// finite reports whether every coordinate is a finite number.
func (p *Path) finite() bool {
	ok := true
	p.walkPoints(func(pt Point) {
		if ok && !finite(pt.X, pt.Y) {
			ok = false
		}
	})
	return ok
}

func (p *Path) walkPoints(fn func(Point)) {
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			fn(e.Point)
		case LineTo:
			fn(e.Point)
		case QuadTo:
			fn(e.Control)
			fn(e.Point)
		case CubicTo:
			fn(e.Control1)
			fn(e.Control2)
			fn(e.Point)
		}
	}
}
