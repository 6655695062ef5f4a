// Package raster turns device-space outlines into antialiased coverage
// masks.
//
// Scan conversion is delegated to golang.org/x/image/vector. This package
// records the outline, sizes the raster to the part of it that can be
// visible, and hands back an *image.Alpha positioned in device coordinates.
package raster

import (
	"image"
	"math"
)

type verb uint8

const (
	verbMove verb = iota
	verbLine
	verbQuad
	verbCubic
	verbClose
)

// Outline records device-space path commands. The zero value is empty and
// ready to use.
type Outline struct {
	verbs []verb
	pts   []float64

	minX, minY, maxX, maxY float64
	invalid                bool
}

// Reset clears the outline for reuse.
func (o *Outline) Reset() {
	o.verbs = o.verbs[:0]
	o.pts = o.pts[:0]
	o.invalid = false
}

func (o *Outline) add(v verb, coords ...float64) {
	if len(o.pts) == 0 {
		o.minX, o.minY = math.Inf(1), math.Inf(1)
		o.maxX, o.maxY = math.Inf(-1), math.Inf(-1)
	}
	for i := 0; i < len(coords); i += 2 {
		x, y := coords[i], coords[i+1]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			o.invalid = true
		}
		o.minX, o.maxX = math.Min(o.minX, x), math.Max(o.maxX, x)
		o.minY, o.maxY = math.Min(o.minY, y), math.Max(o.maxY, y)
	}
	o.verbs = append(o.verbs, v)
	o.pts = append(o.pts, coords...)
}

// MoveTo starts a subpath.
func (o *Outline) MoveTo(x, y float64) { o.add(verbMove, x, y) }

// LineTo adds a line.
func (o *Outline) LineTo(x, y float64) { o.add(verbLine, x, y) }

// QuadTo adds a quadratic Bezier segment.
func (o *Outline) QuadTo(cx, cy, x, y float64) { o.add(verbQuad, cx, cy, x, y) }

// CubeTo adds a cubic Bezier segment.
func (o *Outline) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	o.add(verbCubic, c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (o *Outline) ClosePath() {
	o.verbs = append(o.verbs, verbClose)
}

// Empty reports whether the outline encloses nothing drawable.
func (o *Outline) Empty() bool {
	return len(o.pts) == 0 || o.invalid
}

// Bounds returns the integer rectangle covering every recorded point.
func (o *Outline) Bounds() image.Rectangle {
	if o.Empty() {
		return image.Rectangle{}
	}
	const lim = 1 << 30
	clampI := func(f float64) int {
		return int(math.Max(-lim, math.Min(lim, f)))
	}
	return image.Rect(
		clampI(math.Floor(o.minX)), clampI(math.Floor(o.minY)),
		clampI(math.Ceil(o.maxX)), clampI(math.Ceil(o.maxY)),
	)
}
