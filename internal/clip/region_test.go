package clip

import (
	"image"
	"testing"
)

func filledMask(r image.Rectangle, v byte) *image.Alpha {
	m := image.NewAlpha(r)
	for i := range m.Pix {
		m.Pix[i] = v
	}
	return m
}

func TestRegion_IntersectRect(t *testing.T) {
	r := NewRegion(image.Rect(0, 0, 100, 100))
	r = r.IntersectRect(image.Rect(10, 20, 200, 50))

	if got, want := r.Rect(), image.Rect(10, 20, 100, 50); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
	if r.HasMask() {
		t.Error("rect intersection should not create a mask")
	}

	if e := r.IntersectRect(image.Rect(500, 500, 600, 600)); !e.Empty() {
		t.Error("disjoint intersection should be empty")
	}
}

func TestRegion_IntersectMask(t *testing.T) {
	r := NewRegion(image.Rect(0, 0, 10, 10))
	r = r.IntersectMask(filledMask(image.Rect(5, 5, 20, 20), 128))

	if got, want := r.Rect(), image.Rect(5, 5, 10, 10); got != want {
		t.Fatalf("Rect() = %v, want %v", got, want)
	}
	if !r.HasMask() {
		t.Fatal("mask intersection should carry a mask")
	}

	r = r.IntersectMask(filledMask(image.Rect(0, 0, 10, 10), 128))
	if got := r.Mask().AlphaAt(7, 7).A; got != 64 {
		t.Errorf("combined coverage = %d, want 64", got)
	}
}

func TestRegion_IntersectRectCropsMask(t *testing.T) {
	m := image.NewAlpha(image.Rect(0, 0, 4, 4))
	for i := range m.Pix {
		m.Pix[i] = byte(i)
	}
	r := NewRegion(image.Rect(0, 0, 4, 4)).IntersectMask(m).IntersectRect(image.Rect(1, 1, 3, 3))

	if r.Mask().Rect != image.Rect(1, 1, 3, 3) {
		t.Fatalf("mask bounds = %v", r.Mask().Rect)
	}
	if got := r.Mask().AlphaAt(2, 2).A; got != 10 {
		t.Errorf("AlphaAt(2,2) = %d, want 10", got)
	}
}

func TestRegion_Rows(t *testing.T) {
	plain := NewRegion(image.Rect(0, 0, 4, 1))
	row := make([]byte, 4)
	plain.CoverageRow(row, 0, 0)
	for _, v := range row {
		if v != 255 {
			t.Fatalf("plain coverage row = %v", row)
		}
	}

	masked := plain.IntersectMask(filledMask(image.Rect(0, 0, 4, 1), 51))
	cov := []byte{255, 255, 0, 100}
	masked.ApplyRow(cov, 0, 0)
	want := []byte{51, 51, 0, 20}
	for i := range want {
		if cov[i] != want[i] {
			t.Fatalf("ApplyRow = %v, want %v", cov, want)
		}
	}

	before := []byte{1, 2, 3, 4}
	plain.ApplyRow(before, 0, 0)
	if before[0] != 1 || before[3] != 4 {
		t.Error("plain region should not alter coverage")
	}
}
