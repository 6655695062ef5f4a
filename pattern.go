package canvas

import (
	"image"

	cimage "github.com/gogpu/canvas/internal/image"
)

// Filter selects how pattern texels are interpolated.
type Filter uint8

const (
	// FilterNearest picks the texel under the sample point.
	FilterNearest Filter = iota
	// FilterBilinear blends the four nearest texels.
	FilterBilinear
)

// String returns the filter's name.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterBilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// Pattern paints with the pixels of a source surface, or of a
// sub-rectangle of it, tiled according to its extend modes.
//
// The pattern references its source; pixels are read when draws using it
// are composited. Installing a pattern as a style snapshots its settings.
type Pattern struct {
	source    *Surface
	area      image.Rectangle
	extendX   ExtendMode
	extendY   ExtendMode
	filter    Filter
	transform Matrix
}

// NewPattern creates a pattern over the whole of src.
func NewPattern(src *Surface, extend ExtendMode) (*Pattern, error) {
	if !src.valid() {
		return nil, invalidArg("pattern source must be a non-empty surface")
	}
	if !extend.valid() {
		return nil, invalidArg("unknown extend mode %d", extend)
	}
	return &Pattern{
		source:    src,
		area:      src.bounds(),
		extendX:   extend,
		extendY:   extend,
		filter:    FilterNearest,
		transform: Identity(),
	}, nil
}

// Source returns the source surface.
func (p *Pattern) Source() *Surface {
	return p.source
}

// Area returns the source sub-rectangle in use.
func (p *Pattern) Area() image.Rectangle {
	return p.area
}

// SetArea restricts the pattern to the w x h rectangle at (x, y) of the
// source. The rectangle must be non-empty and inside the source bounds.
func (p *Pattern) SetArea(x, y, w, h int) error {
	r := image.Rect(x, y, x+w, y+h)
	if w <= 0 || h <= 0 || !r.In(p.source.bounds()) {
		return invalidArg("pattern area %v outside source bounds %v", r, p.source.bounds())
	}
	p.area = r
	return nil
}

// ResetArea selects the whole source again.
func (p *Pattern) ResetArea() {
	p.area = p.source.bounds()
}

// Extend returns the horizontal and vertical extend modes.
func (p *Pattern) Extend() (x, y ExtendMode) {
	return p.extendX, p.extendY
}

// SetExtend sets both extend modes.
func (p *Pattern) SetExtend(m ExtendMode) error {
	return p.SetExtendXY(m, m)
}

// SetExtendXY sets the horizontal and vertical extend modes.
func (p *Pattern) SetExtendXY(x, y ExtendMode) error {
	if !x.valid() || !y.valid() {
		return invalidArg("unknown extend mode %d/%d", x, y)
	}
	p.extendX, p.extendY = x, y
	return nil
}

// Filter returns the texel filter.
func (p *Pattern) Filter() Filter {
	return p.filter
}

// SetFilter sets the texel filter.
func (p *Pattern) SetFilter(f Filter) error {
	if f > FilterBilinear {
		return invalidArg("unknown filter %d", f)
	}
	p.filter = f
	return nil
}

// Transform returns the pattern-to-user transform.
func (p *Pattern) Transform() Matrix {
	return p.transform
}

// SetTransform sets the transform from pattern space, where one unit is one
// texel and (0, 0) is the area's top-left corner, to user space.
func (p *Pattern) SetTransform(m Matrix) {
	p.transform = m
}

func (p *Pattern) clone() *Pattern {
	c := *p
	return &c
}

// texture returns a sampling view of the pattern's area. Draws still queued
// on the source are composited first. With snapshot set the view holds a
// copy of the texels, so later writes to the source do not reach it.
func (p *Pattern) texture(snapshot bool) *cimage.Texture {
	p.source.settle()
	t := &cimage.Texture{
		Pix:     p.source.data,
		Stride:  p.source.Stride(),
		X0:      p.area.Min.X,
		Y0:      p.area.Min.Y,
		Width:   p.area.Dx(),
		Height:  p.area.Dy(),
		SpreadX: spreadOf(p.extendX),
		SpreadY: spreadOf(p.extendY),
		Filter:  cimage.Filter(p.filter),
	}
	if snapshot {
		stride := t.Width * 4
		pix := make([]byte, stride*t.Height)
		for y := range t.Height {
			copy(pix[y*stride:], p.source.row(p.area.Min.Y+y, p.area.Min.X, p.area.Max.X))
		}
		t.Pix, t.Stride, t.X0, t.Y0 = pix, stride, 0, 0
	}
	return t
}

func spreadOf(m ExtendMode) cimage.Spread {
	switch m {
	case ExtendRepeat:
		return cimage.SpreadRepeat
	case ExtendReflect:
		return cimage.SpreadReflect
	}
	return cimage.SpreadPad
}
