package canvas

import (
	"image"

	"github.com/gogpu/canvas/internal/stroke"
)

// FillAll fills the whole clip region with the fill style.
func (c *Context) FillAll() error {
	if err := c.checkActive(); err != nil {
		return err
	}
	c.draw(c.state.clip.Rect(), nil, c.state.fill, c.state.compOp, to8(c.state.alpha))
	return nil
}

// ClearAll sets every pixel in the clip region to transparent black,
// regardless of style, operator and global alpha.
func (c *Context) ClearAll() error {
	if err := c.checkActive(); err != nil {
		return err
	}
	c.draw(c.state.clip.Rect(), nil, Solid(Transparent), CompClear, 255)
	return nil
}

// ClearRect clears a rectangle to transparent black, regardless of style,
// operator and global alpha.
func (c *Context) ClearRect(x, y, w, h float64) error {
	if err := c.checkRect(x, y, w, h); err != nil {
		return err
	}
	c.rect(x, y, w, h, Solid(Transparent), CompClear, 255)
	return nil
}

// FillRect fills a rectangle. Non-positive sizes draw nothing.
func (c *Context) FillRect(x, y, w, h float64) error {
	if err := c.checkRect(x, y, w, h); err != nil {
		return err
	}
	c.rect(x, y, w, h, c.state.fill, c.state.compOp, to8(c.state.alpha))
	return nil
}

// FillCircle fills a circle of radius r.
func (c *Context) FillCircle(cx, cy, r float64) error {
	return c.FillEllipse(cx, cy, r, r)
}

// FillEllipse fills an axis-aligned ellipse.
func (c *Context) FillEllipse(cx, cy, rx, ry float64) error {
	p, err := c.ellipsePath(cx, cy, rx, ry)
	if err != nil || p == nil {
		return err
	}
	c.fill(p.elements)
	return nil
}

// FillPie fills the circular sector around (cx, cy) from angle start
// sweeping by sweep radians.
func (c *Context) FillPie(cx, cy, r, start, sweep float64) error {
	if err := c.checkShape(r, cx, cy, r, start, sweep); err != nil {
		return err
	}
	if r == 0 || sweep == 0 {
		return nil
	}
	p := NewPath()
	p.AddPie(cx, cy, r, start, sweep)
	c.fill(p.elements)
	return nil
}

// FillRoundRect fills a rectangle with corners of radius r.
func (c *Context) FillRoundRect(x, y, w, h, r float64) error {
	if err := c.checkRect(x, y, w, h); err != nil {
		return err
	}
	if err := c.checkShape(r, r); err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	p := NewPath()
	p.AddRoundRect(x, y, w, h, r)
	c.fill(p.elements)
	return nil
}

// FillPath fills p with the nonzero winding rule. Open subpaths are closed
// implicitly.
func (c *Context) FillPath(p *Path) error {
	if err := c.checkPath(p); err != nil {
		return err
	}
	c.fill(p.elements)
	return nil
}

// StrokeRect strokes a rectangle outline.
func (c *Context) StrokeRect(x, y, w, h float64) error {
	if err := c.checkRect(x, y, w, h); err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	p := NewPath()
	p.AddRect(x, y, w, h)
	c.stroke(p.elements)
	return nil
}

// StrokeCircle strokes a circle of radius r.
func (c *Context) StrokeCircle(cx, cy, r float64) error {
	return c.StrokeEllipse(cx, cy, r, r)
}

// StrokeEllipse strokes an axis-aligned ellipse.
func (c *Context) StrokeEllipse(cx, cy, rx, ry float64) error {
	p, err := c.ellipsePath(cx, cy, rx, ry)
	if err != nil || p == nil {
		return err
	}
	c.stroke(p.elements)
	return nil
}

// StrokeArc strokes an open circular arc.
func (c *Context) StrokeArc(cx, cy, r, start, sweep float64) error {
	if err := c.checkShape(r, cx, cy, r, start, sweep); err != nil {
		return err
	}
	if r == 0 || sweep == 0 {
		return nil
	}
	p := NewPath()
	p.ArcTo(cx, cy, r, r, start, sweep, true)
	c.stroke(p.elements)
	return nil
}

// StrokeLine strokes the segment from (x0, y0) to (x1, y1) with the current
// caps.
func (c *Context) StrokeLine(x0, y0, x1, y1 float64) error {
	if err := c.checkShape(0, x0, y0, x1, y1); err != nil {
		return err
	}
	p := NewPath()
	p.AddLine(x0, y0, x1, y1)
	c.stroke(p.elements)
	return nil
}

// StrokePath strokes p with the current stroke parameters.
func (c *Context) StrokePath(p *Path) error {
	if err := c.checkPath(p); err != nil {
		return err
	}
	c.stroke(p.elements)
	return nil
}

func (c *Context) checkRect(x, y, w, h float64) error {
	if err := c.checkActive(); err != nil {
		return err
	}
	if !finite(x, y, w, h) {
		return invalidArg("rectangle has non-finite coordinates")
	}
	return nil
}

// checkShape validates a radius-like value r and the shape's coordinates.
func (c *Context) checkShape(r float64, coords ...float64) error {
	if err := c.checkActive(); err != nil {
		return err
	}
	if !finite(coords...) || !finite(r) {
		return invalidArg("shape has non-finite coordinates")
	}
	if r < 0 {
		return invalidArg("negative radius %v", r)
	}
	return nil
}

func (c *Context) checkPath(p *Path) error {
	if err := c.checkActive(); err != nil {
		return err
	}
	if p == nil {
		return invalidArg("nil path")
	}
	if !p.finite() {
		return invalidArg("path has non-finite coordinates")
	}
	return nil
}

// ellipsePath validates and builds an ellipse. It returns a nil path when
// a zero radius leaves nothing to draw.
func (c *Context) ellipsePath(cx, cy, rx, ry float64) (*Path, error) {
	if err := c.checkShape(min(rx, ry), cx, cy, rx, ry); err != nil {
		return nil, err
	}
	if rx == 0 || ry == 0 {
		return nil, nil
	}
	p := NewPath()
	p.AddEllipse(cx, cy, rx, ry)
	return p, nil
}

// rect fills a user rectangle, skipping rasterization when it maps to whole
// device pixels.
func (c *Context) rect(x, y, w, h float64, st Style, op CompOp, alpha byte) {
	if w <= 0 || h <= 0 {
		return
	}
	if r, ok := c.deviceRect(x, y, w, h); ok {
		c.draw(r, nil, st, op, alpha)
		return
	}
	p := NewPath()
	p.AddRect(x, y, w, h)
	c.rasterize(p.elements, nil, st, op, alpha)
}

func (c *Context) fill(elems []PathElement) {
	c.rasterize(elems, nil, c.state.fill, c.state.compOp, to8(c.state.alpha))
}

func (c *Context) stroke(elems []PathElement) {
	m := c.state.matrix
	scale := m.scaleFactor()
	if scale == 0 || !finite(scale) {
		Logger().Warn("canvas: singular transform, stroke skipped")
		return
	}
	e := stroke.NewExpander(c.state.strokeParams.style())
	e.SetTolerance(c.tolerance / scale)
	out := e.Expand(toStrokeElements(elems))
	if len(out) == 0 {
		return
	}
	c.rasterize(nil, out, c.state.stroke, c.state.compOp, to8(c.state.alpha))
}

// rasterize fills either path elements or expanded stroke elements, mapped
// by the current transform, and submits the result.
func (c *Context) rasterize(elems []PathElement, strokes []stroke.Element, st Style, op CompOp, alpha byte) {
	if st.kind == StyleNone || alpha == 0 {
		return
	}
	c.outline.Reset()
	if strokes != nil {
		c.addStroke(strokes, c.state.matrix)
	} else {
		c.addFill(elems, c.state.matrix)
	}
	mask := c.raster.Fill(&c.outline, c.state.clip.Rect())
	if mask == nil {
		return
	}
	c.draw(mask.Rect, mask, st, op, alpha)
}

// draw resolves st and submits a command covering rect.
func (c *Context) draw(rect image.Rectangle, mask *image.Alpha, st Style, op CompOp, alpha byte) {
	rect = rect.Intersect(c.state.clip.Rect())
	if rect.Empty() || alpha == 0 {
		return
	}
	src, ok := resolve(st, c.state.matrix, c.dispatch != nil)
	if !ok {
		return
	}
	c.submit(&command{
		rect:  rect,
		mask:  mask,
		clip:  c.state.clip,
		src:   src,
		op:    op.fn(),
		alpha: alpha,
	})
}

func (c *Context) addFill(elems []PathElement, m Matrix) {
	o := &c.outline
	for _, elem := range elems {
		switch e := elem.(type) {
		case MoveTo:
			p := m.TransformPoint(e.Point)
			o.MoveTo(p.X, p.Y)
		case LineTo:
			p := m.TransformPoint(e.Point)
			o.LineTo(p.X, p.Y)
		case QuadTo:
			q := m.TransformPoint(e.Control)
			p := m.TransformPoint(e.Point)
			o.QuadTo(q.X, q.Y, p.X, p.Y)
		case CubicTo:
			q1 := m.TransformPoint(e.Control1)
			q2 := m.TransformPoint(e.Control2)
			p := m.TransformPoint(e.Point)
			o.CubeTo(q1.X, q1.Y, q2.X, q2.Y, p.X, p.Y)
		case Close:
			o.ClosePath()
		}
	}
}

func (c *Context) addStroke(elems []stroke.Element, m Matrix) {
	o := &c.outline
	tp := func(p stroke.Point) Point { return m.TransformPoint(Point{X: p.X, Y: p.Y}) }
	for _, elem := range elems {
		switch e := elem.(type) {
		case stroke.MoveTo:
			p := tp(e.Point)
			o.MoveTo(p.X, p.Y)
		case stroke.LineTo:
			p := tp(e.Point)
			o.LineTo(p.X, p.Y)
		case stroke.QuadTo:
			q, p := tp(e.Control), tp(e.Point)
			o.QuadTo(q.X, q.Y, p.X, p.Y)
		case stroke.CubicTo:
			q1, q2, p := tp(e.Control1), tp(e.Control2), tp(e.Point)
			o.CubeTo(q1.X, q1.Y, q2.X, q2.Y, p.X, p.Y)
		case stroke.Close:
			o.ClosePath()
		}
	}
}

func toStrokeElements(elems []PathElement) []stroke.Element {
	sp := func(p Point) stroke.Point { return stroke.Point{X: p.X, Y: p.Y} }
	out := make([]stroke.Element, 0, len(elems))
	for _, elem := range elems {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, stroke.MoveTo{Point: sp(e.Point)})
		case LineTo:
			out = append(out, stroke.LineTo{Point: sp(e.Point)})
		case QuadTo:
			out = append(out, stroke.QuadTo{Control: sp(e.Control), Point: sp(e.Point)})
		case CubicTo:
			out = append(out, stroke.CubicTo{
				Control1: sp(e.Control1),
				Control2: sp(e.Control2),
				Point:    sp(e.Point),
			})
		case Close:
			out = append(out, stroke.Close{})
		}
	}
	return out
}
