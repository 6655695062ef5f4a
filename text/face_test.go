package text

import (
	"errors"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/canvas"
)

func mustDefault(t *testing.T) *Face {
	t.Helper()
	f, err := DefaultFace()
	if err != nil {
		t.Fatalf("DefaultFace() error = %v", err)
	}
	return f
}

func TestNewFace_Errors(t *testing.T) {
	if _, err := NewFace(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFace(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFace([]byte("not a font")); err == nil {
		t.Error("NewFace(garbage) should fail")
	}
}

func TestDefaultFace(t *testing.T) {
	f := mustDefault(t)
	if f.Name() == "" {
		t.Error("default face has no family name")
	}
	if g := mustDefault(t); g != f {
		t.Error("DefaultFace should return the same face")
	}
}

func TestMeasure(t *testing.T) {
	f := mustDefault(t)

	if w, err := f.Measure(16, ""); err != nil || w != 0 {
		t.Errorf("Measure(empty) = %v, %v", w, err)
	}
	one, _ := f.Measure(16, "i")
	two, _ := f.Measure(16, "ii")
	if one <= 0 || two <= one {
		t.Errorf("Measure: i=%v ii=%v", one, two)
	}

	small, _ := f.Measure(10, "Hello")
	large, _ := f.Measure(20, "Hello")
	if math.Abs(large-2*small) > 0.5 {
		t.Errorf("Measure should scale with size: 10px=%v 20px=%v", small, large)
	}
}

func TestMeasure_InvalidSize(t *testing.T) {
	f := mustDefault(t)
	for _, size := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := f.Measure(size, "x"); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Measure(size=%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestMeasure_Normalizes(t *testing.T) {
	f := mustDefault(t)
	composed, _ := f.Measure(16, "café")
	decomposed, _ := f.Measure(16, "cafe\u0301")
	if composed != decomposed {
		t.Errorf("NFC forms measure differently: %v vs %v", composed, decomposed)
	}
}

func TestMetrics(t *testing.T) {
	m, err := mustDefault(t).Metrics(20)
	if err != nil {
		t.Fatalf("Metrics() error = %v", err)
	}
	if m.Ascent <= 0 || m.Descent <= 0 || m.Height < m.Ascent {
		t.Errorf("Metrics(20) = %+v", m)
	}
}

func TestAppendString(t *testing.T) {
	f := mustDefault(t)
	p := canvas.NewPath()
	adv, err := f.AppendString(p, 10, 50, 32, "H")
	if err != nil {
		t.Fatalf("AppendString() error = %v", err)
	}
	want, _ := f.Measure(32, "H")
	if adv != want {
		t.Errorf("advance = %v, Measure = %v", adv, want)
	}
	if p.Len() == 0 {
		t.Fatal("no outline appended")
	}

	b := p.Bounds()
	if b.Min.X < 10 || b.Max.X > 10+adv {
		t.Errorf("x bounds [%v, %v] outside pen range [10, %v]", b.Min.X, b.Max.X, 10+adv)
	}
	if b.Max.Y > 50.5 || b.Min.Y > 50-16 {
		t.Errorf("y bounds [%v, %v]: glyph should sit on baseline 50", b.Min.Y, b.Max.Y)
	}

	last := p.Elements()[p.Len()-1]
	if _, ok := last.(canvas.Close); !ok {
		t.Errorf("last element = %T, want Close", last)
	}
}

func TestAppendString_Space(t *testing.T) {
	p := canvas.NewPath()
	adv, err := mustDefault(t).AppendString(p, 0, 0, 16, " ")
	if err != nil {
		t.Fatal(err)
	}
	if adv <= 0 || p.Len() != 0 {
		t.Errorf("space: advance=%v elements=%d", adv, p.Len())
	}
}

func TestFill(t *testing.T) {
	s, err := canvas.NewSurface(64, 40)
	if err != nil {
		t.Fatal(err)
	}
	err = canvas.Draw(s, func(c *canvas.Context) error {
		return Fill(c, mustDefault(t), 4, 32, 28, "H")
	})
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	painted := 0
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Pixel(x, y).A > 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("Fill painted no pixels")
	}
	if s.Pixel(1, 1).A != 0 {
		t.Error("pixel outside the glyph was painted")
	}
}

func TestAppendString_CachesOutlines(t *testing.T) {
	f, err := NewFace(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	first, second := canvas.NewPath(), canvas.NewPath()
	if _, err := f.AppendString(first, 0, 20, 18, "abab"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AppendString(second, 0, 20, 18, "abab"); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(first.Elements(), second.Elements()) {
		t.Error("cached outlines differ from freshly loaded ones")
	}
	st := f.glyphs.Stats()
	if st.Len != 2 || st.Misses != 2 || st.Hits != 6 {
		t.Errorf("glyph cache stats = %+v, want 2 entries, 2 misses, 6 hits", st)
	}
}
