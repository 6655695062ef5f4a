package canvas

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#ff0000", RGBA8(255, 0, 0, 255)},
		{"00ff00", RGBA8(0, 255, 0, 255)},
		{"#f00", RGBA8(255, 0, 0, 255)},
		{"#0000ff80", RGBA8(0, 0, 255, 128)},
		{"#f008", RGBA8(255, 0, 0, 136)},
		{"nonsense", Black},
		{"", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestRGBA_Premul(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want [4]byte
	}{
		{"opaque red", Red, [4]byte{255, 0, 0, 255}},
		{"half red", RGBA8(255, 0, 0, 128), [4]byte{128, 0, 0, 128}},
		{"transparent", Transparent, [4]byte{}},
		{"clamped", RGBAf(2, -1, 0.5, 1), [4]byte{255, 0, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.premul(); got != tt.want {
				t.Errorf("premul() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	if c != RGBA8(10, 20, 30, 40) {
		t.Errorf("FromColor = %+v", c)
	}
	if got := c.Color(); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("Color() = %v", got)
	}
}
