package canvas

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewSurface(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		ok   bool
	}{
		{"valid", 4, 3, true},
		{"zero width", 0, 3, false},
		{"zero height", 4, 0, false},
		{"negative", -1, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSurface(tt.w, tt.h)
			if !tt.ok {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("NewSurface(%d, %d) error = %v, want ErrInvalidArgument", tt.w, tt.h, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSurface() error = %v", err)
			}
			if s.Width() != tt.w || s.Height() != tt.h || s.Stride() != tt.w*4 {
				t.Errorf("size = %dx%d stride %d", s.Width(), s.Height(), s.Stride())
			}
			if len(s.Data()) != tt.w*tt.h*4 {
				t.Errorf("len(Data()) = %d", len(s.Data()))
			}
			for _, b := range s.Data() {
				if b != 0 {
					t.Fatal("new surface is not transparent")
				}
			}
		})
	}
}

func TestSurface_ImageSharesPixels(t *testing.T) {
	s, _ := NewSurface(3, 2)
	img := s.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Image bounds = %v", img.Bounds())
	}
	img.SetRGBA(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 40})
	if got := s.Pixel(2, 1); got != (color.RGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("Pixel(2, 1) = %v after writing through Image", got)
	}
	off := 1*s.Stride() + 2*4
	if s.Data()[off] != 10 || s.Data()[off+3] != 40 {
		t.Error("Data() does not alias the image pixels")
	}
}

func TestSurface_PixelOutOfRange(t *testing.T) {
	s, _ := NewSurface(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := s.Pixel(p[0], p[1]); got != (color.RGBA{}) {
			t.Errorf("Pixel(%d, %d) = %v, want zero", p[0], p[1], got)
		}
	}
}

func TestSurface_Bound(t *testing.T) {
	s, _ := NewSurface(2, 2)
	if s.Bound() {
		t.Fatal("new surface reports bound")
	}
	c, err := NewContext(s)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Bound() {
		t.Error("surface not bound while context is active")
	}
	c.End()
	if s.Bound() {
		t.Error("surface still bound after End")
	}
}
