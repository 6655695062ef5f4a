package text

import (
	"fmt"
	"slices"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
)

// AppendString appends the outlines of s to p, starting at pen position
// (x, y) on the baseline, at size pixels per em. Each glyph contour becomes
// a closed subpath. It returns the advance width.
func (f *Face) AppendString(p *canvas.Path, x, y, size float64, s string) (float64, error) {
	if p == nil {
		return 0, fmt.Errorf("text: nil path")
	}
	return f.run(size, s, func(gi sfnt.GlyphIndex, pen, ppem fixed.Int26_6) error {
		segs, err := f.outline(gi, ppem)
		if err != nil {
			return err
		}
		appendSegments(p, segs, x+fixedToFloat64(pen), y)
		return nil
	})
}

// outline returns the cached segments of glyph gi. f.mu must be held.
func (f *Face) outline(gi sfnt.GlyphIndex, ppem fixed.Int26_6) (sfnt.Segments, error) {
	return f.glyphs.GetOrCreate(glyphKey{gi, ppem}, func() (sfnt.Segments, error) {
		segs, err := f.font.LoadGlyph(&f.buf, gi, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("text: load glyph %d: %w", gi, err)
		}
		// segs aliases f.buf.
		return slices.Clone(segs), nil
	})
}

// appendSegments copies sfnt segments, which are y-down relative to the
// glyph origin, into p at (ox, oy).
func appendSegments(p *canvas.Path, segs sfnt.Segments, ox, oy float64) {
	pt := func(q fixed.Point26_6) (float64, float64) {
		return ox + fixedToFloat64(q.X), oy + fixedToFloat64(q.Y)
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			x, y := pt(seg.Args[0])
			p.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			p.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			p.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		p.Close()
	}
}
