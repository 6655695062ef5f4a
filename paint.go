package canvas

import (
	cimage "github.com/gogpu/canvas/internal/image"
)

// sampler writes premultiplied source pixels for len(dst)/4 device pixels
// of row y starting at x0. Samples are taken at pixel centers.
type sampler interface {
	sample(dst []byte, x0, y int)
}

// source is a style resolved against a transform.
type source struct {
	solid   bool
	color   [4]byte
	sampler sampler
}

type gradientSampler struct {
	g    *Gradient
	ramp *ramp
	inv  Matrix // device to gradient space
}

func (s *gradientSampler) sample(dst []byte, x0, y int) {
	cy := float64(y) + 0.5
	for i := range len(dst) / 4 {
		px := dst[i*4 : i*4+4 : i*4+4]
		pt := s.inv.TransformPoint(Point{X: float64(x0+i) + 0.5, Y: cy})
		t, ok := s.g.offsetAt(pt)
		if !ok {
			px[0], px[1], px[2], px[3] = 0, 0, 0, 0
			continue
		}
		c := s.ramp.lookup(t, s.g.extend)
		px[0], px[1], px[2], px[3] = c[0], c[1], c[2], c[3]
	}
}

type patternSampler struct {
	tex *cimage.Texture
	inv Matrix // device to pattern space
}

func (s *patternSampler) sample(dst []byte, x0, y int) {
	cy := float64(y) + 0.5
	for i := range len(dst) / 4 {
		px := dst[i*4 : i*4+4 : i*4+4]
		pt := s.inv.TransformPoint(Point{X: float64(x0+i) + 0.5, Y: cy})
		px[0], px[1], px[2], px[3] = s.tex.Sample(pt.X, pt.Y)
	}
}

// resolve turns a style into a source under transform m. ok is false when
// the style cannot paint anything: StyleNone, a gradient without stops or
// with degenerate geometry, or a singular paint transform. Deferred sources
// copy pattern texels now, since compositing happens later.
func resolve(st Style, m Matrix, deferred bool) (src source, ok bool) {
	switch st.kind {
	case StyleSolid:
		return source{solid: true, color: st.color.premul()}, true

	case StyleGradient:
		g := st.gradient
		if len(g.stops) == 0 || g.degenerate() {
			return source{}, false
		}
		inv, ok := m.Multiply(g.transform).Invert()
		if !ok {
			Logger().Warn("canvas: singular gradient transform, draw skipped")
			return source{}, false
		}
		return source{sampler: &gradientSampler{g: g, ramp: buildRamp(g.stops), inv: inv}}, true

	case StylePattern:
		p := st.pattern
		inv, ok := m.Multiply(p.transform).Invert()
		if !ok {
			Logger().Warn("canvas: singular pattern transform, draw skipped")
			return source{}, false
		}
		return source{sampler: &patternSampler{tex: p.texture(deferred), inv: inv}}, true
	}
	return source{}, false
}
