package stroke

import (
	"math"
	"testing"
)

func pointsOf(elems []Element) []Point {
	var pts []Point
	for _, el := range elems {
		switch e := el.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

func bounds(elems []Element) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pointsOf(elems) {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return
}

func hasPoint(elems []Element, want Point) bool {
	for _, p := range pointsOf(elems) {
		if p.Distance(want) < 1e-3 {
			return true
		}
	}
	return false
}

func countCloses(elems []Element) int {
	n := 0
	for _, el := range elems {
		if _, ok := el.(Close); ok {
			n++
		}
	}
	return n
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

var hline = []Element{
	MoveTo{Point: Point{X: 0, Y: 0}},
	LineTo{Point: Point{X: 10, Y: 0}},
}

var corner = []Element{
	MoveTo{Point: Point{X: 0, Y: 0}},
	LineTo{Point: Point{X: 10, Y: 0}},
	LineTo{Point: Point{X: 10, Y: 10}},
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.Width != 1 || s.StartCap != CapButt || s.EndCap != CapButt || s.Join != JoinMiterClip || s.MiterLimit != 4 {
		t.Errorf("DefaultStyle() = %+v", s)
	}
}

func TestExpander_SetTolerance(t *testing.T) {
	e := NewExpander(DefaultStyle())
	if e.Tolerance() != 0.25 {
		t.Errorf("default tolerance = %v, want 0.25", e.Tolerance())
	}
	e.SetTolerance(0.1)
	e.SetTolerance(0)
	e.SetTolerance(-1)
	if e.Tolerance() != 0.1 {
		t.Errorf("tolerance = %v, want 0.1", e.Tolerance())
	}
}

func TestExpand_Caps(t *testing.T) {
	tests := []struct {
		name       string
		cap        Cap
		minX, maxX float64
	}{
		{"butt", CapButt, 0, 10},
		{"square", CapSquare, -1, 11},
		{"round", CapRound, -1, 11},
		{"triangle", CapTriangle, -1, 11},
		{"triangle-rev", CapTriangleRev, -1, 11},
		{"round-rev", CapRoundRev, -1, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := Style{Width: 2, StartCap: tt.cap, EndCap: tt.cap, Join: JoinMiterClip, MiterLimit: 4}
			out := NewExpander(style).Expand(hline)

			if _, ok := out[0].(MoveTo); !ok {
				t.Fatalf("first element = %T, want MoveTo", out[0])
			}
			if n := countCloses(out); n != 1 {
				t.Errorf("open subpath produced %d closes, want 1", n)
			}
			minX, minY, maxX, maxY := bounds(out)
			if !near(minX, tt.minX) || !near(maxX, tt.maxX) {
				t.Errorf("x range = [%v, %v], want [%v, %v]", minX, maxX, tt.minX, tt.maxX)
			}
			if !near(minY, -1) || !near(maxY, 1) {
				t.Errorf("y range = [%v, %v], want [-1, 1]", minY, maxY)
			}
		})
	}
}

func TestExpand_MixedCaps(t *testing.T) {
	style := Style{Width: 2, StartCap: CapButt, EndCap: CapSquare, MiterLimit: 4}
	minX, _, maxX, _ := bounds(NewExpander(style).Expand(hline))
	if !near(minX, 0) || !near(maxX, 11) {
		t.Errorf("x range = [%v, %v], want [0, 11]", minX, maxX)
	}
}

func TestExpand_TriangleApex(t *testing.T) {
	style := Style{Width: 2, StartCap: CapTriangle, EndCap: CapTriangle, MiterLimit: 4}
	out := NewExpander(style).Expand(hline)
	if !hasPoint(out, Point{X: 11, Y: 0}) || !hasPoint(out, Point{X: -1, Y: 0}) {
		t.Error("triangle caps should put apexes at (-1,0) and (11,0)")
	}
}

func TestExpand_Joins(t *testing.T) {
	tip := Point{X: 11, Y: -1}
	clipA := Point{X: 10 + math.Sqrt2 - 1, Y: -1}
	clipB := Point{X: 11, Y: -(math.Sqrt2 - 1)}

	tests := []struct {
		name    string
		join    Join
		limit   float64
		tip     bool
		clipped bool
	}{
		{"miter-clip within limit", JoinMiterClip, 4, true, false},
		{"miter-bevel within limit", JoinMiterBevel, 4, true, false},
		{"miter-clip past limit", JoinMiterClip, 1, false, true},
		{"miter-bevel past limit", JoinMiterBevel, 1, false, false},
		{"bevel", JoinBevel, 4, false, false},
		{"round", JoinRound, 4, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := Style{Width: 2, Join: tt.join, MiterLimit: tt.limit}
			out := NewExpander(style).Expand(corner)

			if got := hasPoint(out, tip); got != tt.tip {
				t.Errorf("miter tip present = %v, want %v", got, tt.tip)
			}
			if got := hasPoint(out, clipA) && hasPoint(out, clipB); got != tt.clipped {
				t.Errorf("clip points present = %v, want %v", got, tt.clipped)
			}
		})
	}
}

func TestExpand_RoundJoinUsesCurves(t *testing.T) {
	out := NewExpander(Style{Width: 4, Join: JoinRound, MiterLimit: 4}).Expand(corner)
	cubics := 0
	for _, el := range out {
		if _, ok := el.(CubicTo); ok {
			cubics++
		}
	}
	if cubics == 0 {
		t.Error("round join should emit cubic arcs")
	}
	_, _, maxX, _ := bounds(out)
	if maxX > 12+1e-6 {
		t.Errorf("round join extends to x=%v, want <= 12", maxX)
	}
}

func TestExpand_ClosedSubpath(t *testing.T) {
	square := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
		LineTo{Point: Point{X: 0, Y: 10}},
		Close{},
	}
	out := NewExpander(Style{Width: 2, StartCap: CapSquare, EndCap: CapSquare, MiterLimit: 4}).Expand(square)

	if n := countCloses(out); n != 2 {
		t.Errorf("closed subpath produced %d closes, want 2", n)
	}
	minX, minY, maxX, maxY := bounds(out)
	if !near(minX, -1) || !near(minY, -1) || !near(maxX, 11) || !near(maxY, 11) {
		t.Errorf("bounds = [%v %v %v %v], want [-1 -1 11 11]", minX, minY, maxX, maxY)
	}
}

func TestExpand_MultipleSubpaths(t *testing.T) {
	in := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		MoveTo{Point: Point{X: 0, Y: 20}},
		LineTo{Point: Point{X: 10, Y: 20}},
	}
	out := NewExpander(DefaultStyle()).Expand(in)
	moves := 0
	for _, el := range out {
		if _, ok := el.(MoveTo); ok {
			moves++
		}
	}
	if moves != 2 || countCloses(out) != 2 {
		t.Errorf("got %d moves and %d closes, want 2 and 2", moves, countCloses(out))
	}
}

func TestExpand_Degenerate(t *testing.T) {
	e := NewExpander(DefaultStyle())
	if out := e.Expand([]Element{MoveTo{Point: Point{X: 5, Y: 5}}, LineTo{Point: Point{X: 5, Y: 5}}}); len(out) != 0 {
		t.Errorf("zero-length line produced %d elements", len(out))
	}
	if out := NewExpander(Style{Width: 0, MiterLimit: 4}).Expand(hline); len(out) != 0 {
		t.Errorf("zero width produced %d elements", len(out))
	}
	if out := e.Expand(nil); len(out) != 0 {
		t.Errorf("empty input produced %d elements", len(out))
	}
}

func TestExpand_CurvesAreFlattened(t *testing.T) {
	in := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		CubicTo{Control1: Point{X: 0, Y: 50}, Control2: Point{X: 100, Y: 50}, Point: Point{X: 100, Y: 0}},
	}
	e := NewExpander(Style{Width: 2, MiterLimit: 4})
	coarse := len(e.Expand(in))
	e.SetTolerance(0.01)
	fine := len(e.Expand(in))
	if coarse <= 4 {
		t.Errorf("cubic produced only %d elements", coarse)
	}
	if fine <= coarse {
		t.Errorf("finer tolerance should produce more elements: %d <= %d", fine, coarse)
	}

	q := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		QuadTo{Control: Point{X: 50, Y: 50}, Point: Point{X: 100, Y: 0}},
	}
	_, _, _, maxY := bounds(NewExpander(Style{Width: 2, MiterLimit: 4}).Expand(q))
	if maxY < 25 || maxY > 27 {
		t.Errorf("quad stroke max y = %v, want about 26", maxY)
	}
}

func TestDistanceToLine(t *testing.T) {
	a, b := Point{X: 0, Y: 0}, Point{X: 10, Y: 0}
	tests := []struct {
		p    Point
		want float64
	}{
		{Point{X: 5, Y: 3}, 3},
		{Point{X: -4, Y: 3}, 5},
		{Point{X: 13, Y: 4}, 5},
	}
	for _, tt := range tests {
		if got := distanceToLine(tt.p, a, b); !near(got, tt.want) {
			t.Errorf("distanceToLine(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := distanceToLine(Point{X: 3, Y: 4}, a, a); !near(got, 5) {
		t.Errorf("degenerate segment distance = %v, want 5", got)
	}
}
