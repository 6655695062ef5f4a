// Package clip tracks the device-space region that drawing may touch.
//
// A Region is an integer rectangle optionally refined by an antialiased
// coverage mask. Regions are immutable: every intersection returns a new
// value, so saved states can share them.
package clip

import "image"

// Region is a device clip.
type Region struct {
	rect image.Rectangle
	// mask, if non-nil, has bounds equal to rect.
	mask *image.Alpha
}

// NewRegion returns a rectangle-only region.
func NewRegion(r image.Rectangle) Region {
	return Region{rect: r.Canon()}
}

// Rect returns the region's bounding rectangle.
func (r Region) Rect() image.Rectangle {
	return r.rect
}

// Mask returns the coverage mask, or nil for a plain rectangle.
func (r Region) Mask() *image.Alpha {
	return r.mask
}

// HasMask reports whether the region carries a coverage mask.
func (r Region) HasMask() bool {
	return r.mask != nil
}

// Empty reports whether nothing can be drawn.
func (r Region) Empty() bool {
	return r.rect.Empty()
}

// IntersectRect returns r restricted to rc.
func (r Region) IntersectRect(rc image.Rectangle) Region {
	nr := r.rect.Intersect(rc)
	if nr.Empty() {
		return Region{}
	}
	if r.mask == nil || nr == r.rect {
		return Region{rect: nr, mask: r.mask}
	}
	m := image.NewAlpha(nr)
	for y := nr.Min.Y; y < nr.Max.Y; y++ {
		copy(m.Pix[m.PixOffset(nr.Min.X, y):m.PixOffset(nr.Max.X-1, y)+1],
			r.mask.Pix[r.mask.PixOffset(nr.Min.X, y):r.mask.PixOffset(nr.Max.X-1, y)+1])
	}
	return Region{rect: nr, mask: m}
}

// IntersectMask returns r restricted to the coverage in m. Pixels outside
// m's bounds have zero coverage.
func (r Region) IntersectMask(m *image.Alpha) Region {
	if m == nil {
		return Region{}
	}
	nr := r.rect.Intersect(m.Rect)
	if nr.Empty() {
		return Region{}
	}
	out := image.NewAlpha(nr)
	for y := nr.Min.Y; y < nr.Max.Y; y++ {
		dst := out.Pix[out.PixOffset(nr.Min.X, y):]
		src := m.Pix[m.PixOffset(nr.Min.X, y):]
		for x := range nr.Dx() {
			c := src[x]
			if r.mask != nil {
				c = mul255(c, r.mask.Pix[r.mask.PixOffset(nr.Min.X+x, y)])
			}
			dst[x] = c
		}
	}
	return Region{rect: nr, mask: out}
}

// ApplyRow scales a coverage row that starts at device pixel (x0, y) by
// the region's mask. Rows outside the mask are left alone; callers
// restrict drawing to Rect first.
func (r Region) ApplyRow(cov []byte, x0, y int) {
	if r.mask == nil {
		return
	}
	off := r.mask.PixOffset(x0, y)
	row := r.mask.Pix[off : off+len(cov)]
	for i, m := range row {
		cov[i] = mul255(cov[i], m)
	}
}

// CoverageRow returns the mask coverage for len(dst) pixels starting at
// (x0, y) into dst. A plain rectangle yields full coverage.
func (r Region) CoverageRow(dst []byte, x0, y int) {
	if r.mask == nil {
		for i := range dst {
			dst[i] = 255
		}
		return
	}
	off := r.mask.PixOffset(x0, y)
	copy(dst, r.mask.Pix[off:off+len(dst)])
}

func mul255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}
