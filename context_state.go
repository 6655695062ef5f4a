package canvas

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/canvas/internal/clip"
)

// Save pushes a snapshot of the whole current state.
func (c *Context) Save() error {
	if err := c.checkActive(); err != nil {
		return err
	}
	c.stack = append(c.stack, c.state)
	return nil
}

// Restore pops the most recent snapshot into the current state. It fails
// with ErrStateUnderflow when nothing was saved.
func (c *Context) Restore() error {
	if err := c.checkActive(); err != nil {
		return err
	}
	n := len(c.stack)
	if n == 0 {
		return fmt.Errorf("%w: state stack is empty", ErrStateUnderflow)
	}
	c.state = c.stack[n-1]
	c.stack[n-1] = state{}
	c.stack = c.stack[:n-1]
	return nil
}

// SavedStates returns the depth of the save stack.
func (c *Context) SavedStates() int {
	return len(c.stack)
}

// FillStyle returns the fill style.
func (c *Context) FillStyle() Style {
	return c.state.fill
}

// SetFillStyle sets the fill style. A pattern whose source is this
// context's surface is rejected.
func (c *Context) SetFillStyle(s Style) error {
	if err := c.checkStyle(s); err != nil {
		return err
	}
	c.state.fill = s
	return nil
}

// SetFillColor sets a solid fill color.
func (c *Context) SetFillColor(col RGBA) error {
	return c.SetFillStyle(Solid(col))
}

// StrokeStyle returns the stroke style.
func (c *Context) StrokeStyle() Style {
	return c.state.stroke
}

// SetStrokeStyle sets the stroke style. A pattern whose source is this
// context's surface is rejected.
func (c *Context) SetStrokeStyle(s Style) error {
	if err := c.checkStyle(s); err != nil {
		return err
	}
	c.state.stroke = s
	return nil
}

// SetStrokeColor sets a solid stroke color.
func (c *Context) SetStrokeColor(col RGBA) error {
	return c.SetStrokeStyle(Solid(col))
}

func (c *Context) checkStyle(s Style) error {
	if err := c.checkActive(); err != nil {
		return err
	}
	if s.kind > StylePattern {
		return invalidArg("unknown style kind %d", s.kind)
	}
	if s.kind == StylePattern && s.pattern.source == c.surface {
		return invalidArg("pattern source is the context's own surface")
	}
	return nil
}

// StrokeParams returns the stroke parameters.
func (c *Context) StrokeParams() StrokeParams {
	return c.state.strokeParams
}

// SetStrokeParams replaces all stroke parameters.
func (c *Context) SetStrokeParams(p StrokeParams) error {
	if err := c.checkActive(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	c.state.strokeParams = p
	return nil
}

// SetStrokeWidth sets the stroke width, which must be positive.
func (c *Context) SetStrokeWidth(w float64) error {
	return c.SetStrokeParams(c.state.strokeParams.WithWidth(w))
}

// SetStrokeMiterLimit sets the miter limit, which must be at least 1.
func (c *Context) SetStrokeMiterLimit(limit float64) error {
	return c.SetStrokeParams(c.state.strokeParams.WithMiterLimit(limit))
}

// SetStrokeJoin sets the join.
func (c *Context) SetStrokeJoin(j LineJoin) error {
	return c.SetStrokeParams(c.state.strokeParams.WithJoin(j))
}

// SetStrokeCaps sets both caps.
func (c *Context) SetStrokeCaps(lc LineCap) error {
	return c.SetStrokeParams(c.state.strokeParams.WithCaps(lc))
}

// SetStrokeStartCap sets the cap at the start of open subpaths.
func (c *Context) SetStrokeStartCap(lc LineCap) error {
	p := c.state.strokeParams
	p.StartCap = lc
	return c.SetStrokeParams(p)
}

// SetStrokeEndCap sets the cap at the end of open subpaths.
func (c *Context) SetStrokeEndCap(lc LineCap) error {
	p := c.state.strokeParams
	p.EndCap = lc
	return c.SetStrokeParams(p)
}

// CompOp returns the compositing operator.
func (c *Context) CompOp() CompOp {
	return c.state.compOp
}

// SetCompOp sets the compositing operator.
func (c *Context) SetCompOp(op CompOp) error {
	if err := c.checkActive(); err != nil {
		return err
	}
	if !op.valid() {
		return invalidArg("unknown compositing operator %d", op)
	}
	c.state.compOp = op
	return nil
}

// GlobalAlpha returns the global alpha.
func (c *Context) GlobalAlpha() float64 {
	return c.state.alpha
}

// SetGlobalAlpha sets the opacity, in [0, 1], applied to every draw.
func (c *Context) SetGlobalAlpha(a float64) error {
	if err := c.checkActive(); err != nil {
		return err
	}
	if !(a >= 0 && a <= 1) {
		return invalidArg("global alpha %v outside [0, 1]", a)
	}
	c.state.alpha = a
	return nil
}

// Matrix returns the current user-to-device transform.
func (c *Context) Matrix() Matrix {
	return c.state.matrix
}

// SetMatrix replaces the current transform. Like every transform method it
// has no error result: after End it still updates the state, which nothing
// can draw with any more.
func (c *Context) SetMatrix(m Matrix) {
	c.state.matrix = m
}

// ResetTransform restores the identity transform. It also applies after End.
func (c *Context) ResetTransform() {
	c.state.matrix = Identity()
}

// Transform applies m in user space: subsequent geometry is mapped by m
// and then by the previous transform. After End it still updates the state
// but has no visible effect.
func (c *Context) Transform(m Matrix) {
	c.state.matrix = c.state.matrix.Multiply(m)
}

// Translate moves the user-space origin by (x, y). See Transform for its
// behavior after End.
func (c *Context) Translate(x, y float64) {
	c.Transform(Translate(x, y))
}

// Scale scales user space by (sx, sy).
func (c *Context) Scale(sx, sy float64) {
	c.Transform(Scale(sx, sy))
}

// Rotate rotates user space by angle radians about the origin.
func (c *Context) Rotate(angle float64) {
	c.Transform(Rotate(angle))
}

// RotateAbout rotates user space by angle radians about (x, y).
func (c *Context) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// Skew skews user space by angles x and y, in radians.
func (c *Context) Skew(x, y float64) {
	c.Transform(Skew(x, y))
}

// ClipBounds returns the device rectangle that drawing may touch.
func (c *Context) ClipBounds() image.Rectangle {
	return c.state.clip.Rect()
}

// ClipToRect intersects the clip with a rectangle in user space. With an
// axis-aligned transform and pixel-aligned edges the clip stays a plain
// rectangle; otherwise it gains an antialiased mask.
func (c *Context) ClipToRect(x, y, w, h float64) error {
	if err := c.checkActive(); err != nil {
		return err
	}
	if !finite(x, y, w, h) {
		return invalidArg("clip rectangle has non-finite coordinates")
	}
	if w <= 0 || h <= 0 {
		c.state.clip = clip.Region{}
		return nil
	}
	if r, ok := c.deviceRect(x, y, w, h); ok {
		c.state.clip = c.state.clip.IntersectRect(r)
		return nil
	}
	p := NewPath()
	p.AddRect(x, y, w, h)
	c.clipToPath(p)
	return nil
}

// ClipToPath intersects the clip with the nonzero fill of p.
func (c *Context) ClipToPath(p *Path) error {
	if err := c.checkActive(); err != nil {
		return err
	}
	if p == nil || !p.finite() {
		return invalidArg("clip path is nil or has non-finite coordinates")
	}
	c.clipToPath(p)
	return nil
}

func (c *Context) clipToPath(p *Path) {
	c.outline.Reset()
	c.addFill(p.elements, c.state.matrix)
	mask := c.raster.Fill(&c.outline, c.state.clip.Rect())
	c.state.clip = c.state.clip.IntersectMask(mask)
}

// ResetClip removes all clipping.
func (c *Context) ResetClip() error {
	if err := c.checkActive(); err != nil {
		return err
	}
	c.state.clip = clip.NewRegion(c.surface.bounds())
	return nil
}

// deviceRect maps a user rectangle to an integer device rectangle when the
// transform keeps it axis-aligned with integer edges.
func (c *Context) deviceRect(x, y, w, h float64) (image.Rectangle, bool) {
	m := c.state.matrix
	if !m.IsAxisAligned() {
		return image.Rectangle{}, false
	}
	p0 := m.TransformPoint(Pt(x, y))
	p1 := m.TransformPoint(Pt(x+w, y+h))
	x0, x1 := min(p0.X, p1.X), max(p0.X, p1.X)
	y0, y1 := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
	for _, v := range [...]float64{x0, y0, x1, y1} {
		if v != math.Trunc(v) || math.Abs(v) > 1<<30 {
			return image.Rectangle{}, false
		}
	}
	return image.Rect(int(x0), int(y0), int(x1), int(y1)), true
}
