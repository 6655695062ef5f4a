package raster

import (
	"image"
	"math"
	"testing"
)

func rect(o *Outline, x0, y0, x1, y1 float64) {
	o.MoveTo(x0, y0)
	o.LineTo(x1, y0)
	o.LineTo(x1, y1)
	o.LineTo(x0, y1)
	o.ClosePath()
}

func TestOutline_Bounds(t *testing.T) {
	var o Outline
	if !o.Empty() || !o.Bounds().Empty() {
		t.Fatal("zero outline should be empty")
	}
	o.MoveTo(1.5, 2.5)
	o.CubeTo(10.2, -3, 4, 4, 7, 8.1)

	if got, want := o.Bounds(), image.Rect(1, -3, 11, 9); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	o.Reset()
	if !o.Empty() {
		t.Error("Reset outline should be empty")
	}
}

func TestOutline_Invalid(t *testing.T) {
	var o Outline
	o.MoveTo(0, 0)
	o.LineTo(math.NaN(), 3)
	o.LineTo(3, 3)
	if !o.Empty() {
		t.Error("outline with NaN should report empty")
	}
	if m := NewRasterizer().Fill(&o, image.Rect(0, 0, 10, 10)); m != nil {
		t.Error("Fill of invalid outline should return nil")
	}
}

func TestRasterizer_FillRect(t *testing.T) {
	var o Outline
	rect(&o, 2, 3, 8, 7)

	m := NewRasterizer().Fill(&o, image.Rect(0, 0, 20, 20))
	if m == nil {
		t.Fatal("Fill returned nil")
	}
	if got, want := m.Rect, image.Rect(2, 3, 8, 7); got != want {
		t.Fatalf("mask bounds = %v, want %v", got, want)
	}
	for y := 3; y < 7; y++ {
		for x := 2; x < 8; x++ {
			if a := m.AlphaAt(x, y).A; a < 254 {
				t.Fatalf("coverage at (%d,%d) = %d, want full", x, y, a)
			}
		}
	}
}

func TestRasterizer_FillClipped(t *testing.T) {
	var o Outline
	rect(&o, -50, 5, 15, 15)

	m := NewRasterizer().Fill(&o, image.Rect(0, 0, 10, 10))
	if m == nil {
		t.Fatal("Fill returned nil")
	}
	if got, want := m.Rect, image.Rect(0, 5, 10, 10); got != want {
		t.Fatalf("mask bounds = %v, want %v", got, want)
	}
	for y := 5; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if a := m.AlphaAt(x, y).A; a < 254 {
				t.Fatalf("coverage at (%d,%d) = %d, want full", x, y, a)
			}
		}
	}
}

func TestRasterizer_PartialCoverage(t *testing.T) {
	var o Outline
	rect(&o, 0, 0, 0.5, 4)

	m := NewRasterizer().Fill(&o, image.Rect(0, 0, 4, 4))
	if a := m.AlphaAt(0, 1).A; a < 120 || a > 136 {
		t.Errorf("half-covered pixel = %d, want about 128", a)
	}
}

func TestRasterizer_ImplicitClose(t *testing.T) {
	var open, closed Outline
	open.MoveTo(0, 0)
	open.LineTo(10, 0)
	open.LineTo(0, 10)
	open.MoveTo(20, 20)
	open.LineTo(30, 20)
	open.LineTo(20, 30)

	closed.MoveTo(0, 0)
	closed.LineTo(10, 0)
	closed.LineTo(0, 10)
	closed.ClosePath()
	closed.MoveTo(20, 20)
	closed.LineTo(30, 20)
	closed.LineTo(20, 30)
	closed.ClosePath()

	r := NewRasterizer()
	a := r.Fill(&open, image.Rect(0, 0, 40, 40))
	b := r.Fill(&closed, image.Rect(0, 0, 40, 40))
	if a.Rect != b.Rect {
		t.Fatalf("bounds differ: %v vs %v", a.Rect, b.Rect)
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("open and closed outlines differ at %d", i)
		}
	}
}

func TestRasterizer_OutsideClip(t *testing.T) {
	var o Outline
	rect(&o, 50, 50, 60, 60)
	if m := NewRasterizer().Fill(&o, image.Rect(0, 0, 10, 10)); m != nil {
		t.Error("outline outside clip should return nil")
	}
}

func TestRasterizer_FarGeometry(t *testing.T) {
	triangle := func(v float64) func(o *Outline) {
		return func(o *Outline) {
			o.MoveTo(-v, 50)
			o.LineTo(v, 60)
			o.LineTo(50, 70)
			o.ClosePath()
		}
	}
	type px struct {
		x, y int
		full bool
	}
	tests := []struct {
		name  string
		build func(o *Outline)
		check []px
	}{
		{"triangle 1e6", triangle(1e6), []px{{50, 60, true}, {50, 40, false}, {50, 75, false}}},
		{"triangle 1e8", triangle(1e8), []px{{50, 60, true}, {50, 40, false}, {50, 75, false}}},
		{"triangle 1e10", triangle(1e10), []px{{50, 60, true}, {50, 40, false}, {50, 75, false}}},
		{"triangle 1e30", triangle(1e30), []px{{50, 60, true}, {50, 40, false}, {50, 75, false}}},
		{"wide band", func(o *Outline) { rect(o, -1e30, 20, 1e30, 30) }, []px{{0, 25, true}, {99, 25, true}, {50, 35, false}}},
		{"tall band", func(o *Outline) { rect(o, 40, -1e30, 60, 1e30) }, []px{{50, 0, true}, {50, 99, true}, {30, 50, false}}},
		{"cover", func(o *Outline) { rect(o, -1e30, -1e30, 1e30, 1e30) }, []px{{0, 0, true}, {99, 99, true}}},
		{"far cubic", func(o *Outline) {
			o.MoveTo(-1e30, 50)
			o.CubeTo(-1e30, 1e30, 1e30, 1e30, 1e30, 50)
			o.ClosePath()
		}, []px{{50, 75, true}, {0, 99, true}, {50, 25, false}}},
		{"far quad", func(o *Outline) {
			o.MoveTo(-1e8, 50)
			o.QuadTo(0, -1e8, 1e8, 50)
			o.ClosePath()
		}, []px{{50, 25, true}, {50, 75, false}}},
	}

	r := NewRasterizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Outline
			tt.build(&o)
			m := r.Fill(&o, image.Rect(0, 0, 100, 100))
			if m == nil {
				t.Fatal("Fill returned nil")
			}
			for _, p := range tt.check {
				a := m.AlphaAt(p.x, p.y).A
				if p.full && a < 254 {
					t.Errorf("coverage at (%d,%d) = %d, want full", p.x, p.y, a)
				}
				if !p.full && a != 0 {
					t.Errorf("coverage at (%d,%d) = %d, want none", p.x, p.y, a)
				}
			}
		})
	}
}

func TestRasterizer_FarEdgeMatchesNear(t *testing.T) {
	// An edge far to the left covers the same pixels as one just outside.
	var near, far Outline
	near.MoveTo(-5, 2)
	near.LineTo(7.5, 2)
	near.LineTo(7.5, 9)
	near.LineTo(-5, 9)
	near.ClosePath()
	far.MoveTo(-1e12, 2)
	far.LineTo(7.5, 2)
	far.LineTo(7.5, 9)
	far.LineTo(-1e12, 9)
	far.ClosePath()

	r := NewRasterizer()
	a := r.Fill(&near, image.Rect(0, 0, 10, 10))
	b := r.Fill(&far, image.Rect(0, 0, 10, 10))
	if a.Rect != b.Rect {
		t.Fatalf("bounds differ: %v vs %v", a.Rect, b.Rect)
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("near and far outlines differ at %d: %d vs %d", i, a.Pix[i], b.Pix[i])
		}
	}
}
