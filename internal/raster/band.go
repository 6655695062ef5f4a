package raster

import (
	"math"

	"golang.org/x/image/vector"
)

// maxBandDepth bounds curve subdivision against the guard band.
const maxBandDepth = 32

// bandPen feeds segments to a vector.Rasterizer after clipping them to a
// band one pixel wider than the mask on every side. Parts of a segment above
// or below the band become horizontal runs on its edge and parts to the left
// or right become vertical runs, so nonzero winding inside the mask is kept
// while the scan converter only ever sees small coordinates.
//
// Points are in mask-local pixel units.
type bandPen struct {
	z *vector.Rasterizer

	x0, y0, x1, y1 float64 // band
	px, py         float64 // pen, unclipped
	sx, sy         float64 // subpath start, unclipped
}

func newBandPen(z *vector.Rasterizer, w, h int) *bandPen {
	return &bandPen{z: z, x0: -1, y0: -1, x1: float64(w + 1), y1: float64(h + 1)}
}

func clampBand(v, lo, hi float64) float64 {
	switch {
	case v >= hi:
		return hi
	case v > lo:
		return v
	}
	// Below lo, or NaN.
	return lo
}

func (b *bandPen) clamp(x, y float64) (float32, float32) {
	return float32(clampBand(x, b.x0, b.x1)), float32(clampBand(y, b.y0, b.y1))
}

func (b *bandPen) inside(x, y float64) bool {
	return x >= b.x0 && x <= b.x1 && y >= b.y0 && y <= b.y1
}

func (b *bandPen) moveTo(x, y float64) {
	b.px, b.py, b.sx, b.sy = x, y, x, y
	b.z.MoveTo(b.clamp(x, y))
}

// closePath draws the closing edge through the band so the scan converter's
// own close is zero length.
func (b *bandPen) closePath() {
	b.lineTo(b.sx, b.sy)
	b.z.ClosePath()
}

// mid halves before adding so it cannot overflow.
func mid(a, b float64) float64 { return a/2 + b/2 }

type crossing struct {
	t, x, y float64
	k       float64 // position along the segment, for ties in t
}

func (c crossing) before(d crossing) bool {
	if c.t != d.t {
		return c.t < d.t
	}
	return c.k < d.k
}

func straddles(a, c, v float64) bool {
	return (a < v && c > v) || (a > v && c < v)
}

func (b *bandPen) lineTo(x, y float64) {
	ax, ay := b.px, b.py
	b.px, b.py = x, y
	if b.inside(ax, ay) && b.inside(x, y) {
		b.z.LineTo(float32(x), float32(y))
		return
	}

	// Split where the segment crosses a band edge. A crossing takes the edge
	// coordinate exactly and interpolates only the other one.
	var cs [4]crossing
	n := 0
	for _, v := range [2]float64{b.x0, b.x1} {
		if straddles(ax, x, v) {
			f := (v - ax) / (x - ax)
			cs[n] = crossing{t: f, x: v, y: ay + f*(y-ay)}
			n++
		}
	}
	for _, v := range [2]float64{b.y0, b.y1} {
		if straddles(ay, y, v) {
			f := (v - ay) / (y - ay)
			cs[n] = crossing{t: f, x: ax + f*(x-ax), y: v}
			n++
		}
	}
	// On huge spans t rounds to the same value for several crossings;
	// order those by the dominant axis instead.
	byX, sign := math.Abs(x-ax) >= math.Abs(y-ay), 1.0
	if (byX && x < ax) || (!byX && y < ay) {
		sign = -1
	}
	for i := range cs[:n] {
		if byX {
			cs[i].k = sign * cs[i].x
		} else {
			cs[i].k = sign * cs[i].y
		}
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0 && cs[j].before(cs[j-1]); j-- {
			cs[j], cs[j-1] = cs[j-1], cs[j]
		}
	}
	// Between crossings every coordinate stays on one side of each edge,
	// so clamping the endpoints clamps the whole piece.
	for _, c := range cs[:n] {
		b.z.LineTo(b.clamp(c.x, c.y))
	}
	b.z.LineTo(b.clamp(x, y))
}

// outside reports whether the points all lie beyond one edge of the band.
// The chord of such a curve then has the same winding as the curve at every
// point of the band.
func (b *bandPen) outside(pts ...float64) bool {
	left, right, above, below := true, true, true, true
	for i := 0; i < len(pts); i += 2 {
		x, y := pts[i], pts[i+1]
		left = left && x < b.x0
		right = right && x > b.x1
		above = above && y < b.y0
		below = below && y > b.y1
	}
	return left || right || above || below
}

func (b *bandPen) quadTo(cx, cy, x, y float64) {
	b.quad(b.px, b.py, cx, cy, x, y, 0)
}

func (b *bandPen) quad(ax, ay, cx, cy, x, y float64, depth int) {
	switch {
	case b.inside(ax, ay) && b.inside(cx, cy) && b.inside(x, y):
		b.z.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
		b.px, b.py = x, y
	case depth >= maxBandDepth || b.outside(ax, ay, cx, cy, x, y):
		b.lineTo(x, y)
	default:
		m1x, m1y := mid(ax, cx), mid(ay, cy)
		m2x, m2y := mid(cx, x), mid(cy, y)
		mx, my := mid(m1x, m2x), mid(m1y, m2y)
		b.quad(ax, ay, m1x, m1y, mx, my, depth+1)
		b.quad(mx, my, m2x, m2y, x, y, depth+1)
	}
}

func (b *bandPen) cubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.cube(b.px, b.py, c1x, c1y, c2x, c2y, x, y, 0)
}

func (b *bandPen) cube(ax, ay, c1x, c1y, c2x, c2y, x, y float64, depth int) {
	switch {
	case b.inside(ax, ay) && b.inside(c1x, c1y) && b.inside(c2x, c2y) && b.inside(x, y):
		b.z.CubeTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
		b.px, b.py = x, y
	case depth >= maxBandDepth || b.outside(ax, ay, c1x, c1y, c2x, c2y, x, y):
		b.lineTo(x, y)
	default:
		abx, aby := mid(ax, c1x), mid(ay, c1y)
		bcx, bcy := mid(c1x, c2x), mid(c1y, c2y)
		cdx, cdy := mid(c2x, x), mid(c2y, y)
		abcx, abcy := mid(abx, bcx), mid(aby, bcy)
		bcdx, bcdy := mid(bcx, cdx), mid(bcy, cdy)
		mx, my := mid(abcx, bcdx), mid(abcy, bcdy)
		b.cube(ax, ay, abx, aby, abcx, abcy, mx, my, depth+1)
		b.cube(mx, my, bcdx, bcdy, cdx, cdy, x, y, depth+1)
	}
}
