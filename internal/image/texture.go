// Package image samples premultiplied RGBA texels for pattern fills.
package image

import "math"

// Spread determines how texel indices outside the texture are resolved.
type Spread uint8

const (
	// SpreadPad clamps to the nearest edge texel.
	SpreadPad Spread = iota
	// SpreadRepeat wraps around.
	SpreadRepeat
	// SpreadReflect mirrors every other repetition.
	SpreadReflect
)

// String returns the spread mode's name.
func (s Spread) String() string {
	switch s {
	case SpreadPad:
		return "Pad"
	case SpreadRepeat:
		return "Repeat"
	case SpreadReflect:
		return "Reflect"
	default:
		return "Unknown"
	}
}

// Filter selects the interpolation used between texels.
type Filter uint8

const (
	FilterNearest Filter = iota
	FilterBilinear
)

// String returns the filter's name.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// maxCoord keeps texture coordinates inside int range.
const maxCoord = 1 << 30

// Texture is a read-only view of a rectangle of premultiplied RGBA pixels.
// Texel (i, j) covers [i, i+1) x [j, j+1) in texture space, with (0, 0) at
// the view's origin.
type Texture struct {
	Pix     []byte
	Stride  int
	X0, Y0  int
	Width   int
	Height  int
	SpreadX Spread
	SpreadY Spread
	Filter  Filter
}

// Sample returns the premultiplied color at texture-space point (u, v).
func (t *Texture) Sample(u, v float64) (r, g, b, a byte) {
	if t.Width <= 0 || t.Height <= 0 {
		return 0, 0, 0, 0
	}
	if t.Filter == FilterBilinear {
		return t.bilinear(u, v)
	}
	return t.texel(floorInt(u), floorInt(v))
}

func (t *Texture) texel(i, j int) (r, g, b, a byte) {
	i = spread(i, t.Width, t.SpreadX)
	j = spread(j, t.Height, t.SpreadY)
	o := (t.Y0+j)*t.Stride + (t.X0+i)*4
	p := t.Pix[o : o+4 : o+4]
	return p[0], p[1], p[2], p[3]
}

func (t *Texture) bilinear(u, v float64) (r, g, b, a byte) {
	fu, fv := u-0.5, v-0.5
	if math.IsNaN(fu) || math.IsNaN(fv) {
		return 0, 0, 0, 0
	}
	fu = math.Max(-maxCoord, math.Min(maxCoord, fu))
	fv = math.Max(-maxCoord, math.Min(maxCoord, fv))
	i0, j0 := int(math.Floor(fu)), int(math.Floor(fv))
	tx, ty := fu-float64(i0), fv-float64(j0)

	r00, g00, b00, a00 := t.texel(i0, j0)
	r10, g10, b10, a10 := t.texel(i0+1, j0)
	r01, g01, b01, a01 := t.texel(i0, j0+1)
	r11, g11, b11, a11 := t.texel(i0+1, j0+1)

	return lerp2D(r00, r10, r01, r11, tx, ty),
		lerp2D(g00, g10, g01, g11, tx, ty),
		lerp2D(b00, b10, b01, b11, tx, ty),
		lerp2D(a00, a10, a01, a11, tx, ty)
}

func lerp2D(v00, v10, v01, v11 byte, tx, ty float64) byte {
	top := float64(v00) + (float64(v10)-float64(v00))*tx
	bot := float64(v01) + (float64(v11)-float64(v01))*tx
	return byte(top + (bot-top)*ty + 0.5)
}

func floorInt(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	return int(math.Floor(math.Max(-maxCoord, math.Min(maxCoord, f))))
}

// spread maps index i into [0, n).
func spread(i, n int, mode Spread) int {
	switch mode {
	case SpreadRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case SpreadReflect:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	default:
		return max(0, min(i, n-1))
	}
}
