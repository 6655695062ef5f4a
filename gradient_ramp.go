package canvas

import "math"

const rampSize = 256

// ramp is a premultiplied lookup table over offsets [0, 1].
type ramp [rampSize][4]byte

// buildRamp samples the stop list. It returns nil when there are no stops.
func buildRamp(stops []ColorStop) *ramp {
	if len(stops) == 0 {
		return nil
	}
	var r ramp
	for i := range rampSize {
		c := colorAtOffset(stops, float64(i)/(rampSize-1))
		r[i] = [4]byte{to8(c[0]), to8(c[1]), to8(c[2]), to8(c[3])}
	}
	return &r
}

// colorAtOffset interpolates premultiplied stop colors at t.
func colorAtOffset(stops []ColorStop, t float64) [4]float64 {
	first, last := stops[0], stops[len(stops)-1]
	if t <= first.Offset {
		return first.Color.premulFloat()
	}
	if t >= last.Offset {
		return last.Color.premulFloat()
	}
	for i := 1; i < len(stops); i++ {
		s1 := stops[i]
		if t > s1.Offset {
			continue
		}
		s0 := stops[i-1]
		f := (t - s0.Offset) / (s1.Offset - s0.Offset)
		c0, c1 := s0.Color.premulFloat(), s1.Color.premulFloat()
		return [4]float64{
			c0[0] + (c1[0]-c0[0])*f,
			c0[1] + (c1[1]-c0[1])*f,
			c0[2] + (c1[2]-c0[2])*f,
			c0[3] + (c1[3]-c0[3])*f,
		}
	}
	return last.Color.premulFloat()
}

// lookup returns the ramp entry for an unbounded offset.
func (r *ramp) lookup(t float64, mode ExtendMode) [4]byte {
	t = applyExtendMode(t, mode)
	return r[int(t*(rampSize-1)+0.5)]
}

// applyExtendMode maps t into [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if math.Mod(period, 2) == 1 {
			t = 1 - t
		}
	}
	return clamp01(t)
}

// degenerate reports whether the geometry defines no ramp direction.
func (g *Gradient) degenerate() bool {
	switch g.kind {
	case GradientLinear:
		return g.p0 == g.p1
	case GradientRadial:
		return g.r0 == 0 && g.r1 == 0
	}
	return false
}

// offsetAt returns the unbounded ramp offset at gradient-space point p.
// ok is false where a radial gradient is undefined.
func (g *Gradient) offsetAt(p Point) (t float64, ok bool) {
	switch g.kind {
	case GradientLinear:
		d := g.p1.Sub(g.p0)
		return p.Sub(g.p0).Dot(d) / d.Dot(d), true
	case GradientRadial:
		return g.radialOffset(p)
	case GradientConic:
		d := p.Sub(g.p0)
		a := math.Atan2(d.Y, d.X) - g.angle
		turn := a / (2 * math.Pi)
		turn -= math.Floor(turn)
		// Every cycle spans the whole ramp; reflect mirrors odd cycles.
		t = turn * g.repeat
		if g.extend != ExtendReflect {
			t -= math.Floor(t)
		}
		return t, true
	}
	return 0, false
}

// radialOffset solves the two-point conical gradient: the largest t with
// |p - c(t)| = r(t) and r(t) >= 0, where c and r interpolate from the focal
// circle at t=0 to the center circle at t=1.
func (g *Gradient) radialOffset(p Point) (float64, bool) {
	cd := g.p0.Sub(g.p1)
	pd := p.Sub(g.p1)
	dr := g.r0 - g.r1

	a := cd.Dot(cd) - dr*dr
	b := pd.Dot(cd) + g.r1*dr
	c := pd.Dot(pd) - g.r1*g.r1
	radius := func(t float64) float64 { return g.r1 + t*dr }

	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return t, radius(t) >= 0
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1, t2 := (b+sq)/a, (b-sq)/a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if radius(t1) >= 0 {
		return t1, true
	}
	if radius(t2) >= 0 {
		return t2, true
	}
	return 0, false
}
