package canvas

import (
	"image/color"
	"math"
)

// RGBA is a straight-alpha color. Each component is in [0, 1]; values
// outside that range are clamped when the color is used.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// RGBAf creates a color from floating-point components.
func RGBAf(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// RGBA8 creates a color from 8-bit straight-alpha components.
func RGBA8(r, g, b, a uint8) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Hex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an optional
// leading '#'. Malformed input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3, 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
		if len(hex) == 4 {
			parseHex(hex[3:4], &a)
			a *= 17
		}
	case 6, 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		if len(hex) == 8 {
			parseHex(hex[6:8], &a)
		}
	default:
		return Black
	}
	return RGBA8(uint8(r), uint8(g), uint8(b), uint8(a))
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// FromColor converts a standard library color.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

// Color converts c to a color.NRGBA.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Lerp interpolates between two colors component-wise.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// premul returns the 8-bit premultiplied form of c.
func (c RGBA) premul() [4]byte {
	a := clamp01(c.A)
	return [4]byte{
		to8(clamp01(c.R) * a),
		to8(clamp01(c.G) * a),
		to8(clamp01(c.B) * a),
		to8(a),
	}
}

// premulFloat returns c premultiplied, with components clamped.
func (c RGBA) premulFloat() [4]float64 {
	a := clamp01(c.A)
	return [4]float64{clamp01(c.R) * a, clamp01(c.G) * a, clamp01(c.B) * a, a}
}

func clamp01(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x > 0:
		return x
	}
	return 0 // negative and NaN
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBAf(0, 0, 0, 0)
)
