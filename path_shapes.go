package canvas

import "math"

// AddRect adds a closed rectangle subpath.
func (p *Path) AddRect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// AddCircle adds a closed circle subpath.
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddEllipse(cx, cy, r, r)
}

// AddEllipse adds a closed axis-aligned ellipse subpath, starting at
// (cx+rx, cy) and turning toward +Y.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	p.ArcTo(cx, cy, rx, ry, 0, 2*math.Pi, true)
	p.Close()
}

// AddRoundRect adds a closed rectangle with corners of radius r. The radius
// is clamped to half the smaller side.
func (p *Path) AddRoundRect(x, y, w, h, r float64) {
	r = max(0, min(r, math.Abs(w)/2, math.Abs(h)/2))
	if r == 0 {
		p.AddRect(x, y, w, h)
		return
	}
	const quarter = math.Pi / 2
	p.MoveTo(x+r, y)
	p.ArcTo(x+w-r, y+r, r, r, -quarter, quarter, false)
	p.ArcTo(x+w-r, y+h-r, r, r, 0, quarter, false)
	p.ArcTo(x+r, y+h-r, r, r, quarter, quarter, false)
	p.ArcTo(x+r, y+r, r, r, 2*quarter, quarter, false)
	p.Close()
}

// AddPolygon adds a closed polygon through pts. Fewer than two points add
// nothing.
func (p *Path) AddPolygon(pts ...Point) {
	if len(pts) < 2 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// AddPie adds a closed circular sector around (cx, cy).
func (p *Path) AddPie(cx, cy, r, start, sweep float64) {
	p.MoveTo(cx, cy)
	p.ArcTo(cx, cy, r, r, start, sweep, false)
	p.Close()
}

// AddLine adds an open two-point subpath.
func (p *Path) AddLine(x0, y0, x1, y1 float64) {
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
}
