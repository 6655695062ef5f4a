package canvas

import (
	"math"
	"slices"
)

// GradientKind is the geometry of a gradient.
type GradientKind uint8

const (
	// GradientLinear varies along the line from a start to an end point.
	GradientLinear GradientKind = iota
	// GradientRadial varies between a focal circle and a center circle.
	GradientRadial
	// GradientConic varies with the angle around a center.
	GradientConic
)

// String returns the kind's name.
func (k GradientKind) String() string {
	switch k {
	case GradientLinear:
		return "linear"
	case GradientRadial:
		return "radial"
	case GradientConic:
		return "conic"
	default:
		return "unknown"
	}
}

// ExtendMode defines how gradients and patterns continue past their
// defined range.
type ExtendMode uint8

const (
	// ExtendPad extends edge colors beyond bounds.
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats.
	ExtendRepeat
	// ExtendReflect mirrors every other repetition.
	ExtendReflect
)

// String returns the mode's name.
func (m ExtendMode) String() string {
	switch m {
	case ExtendPad:
		return "pad"
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	default:
		return "unknown"
	}
}

func (m ExtendMode) valid() bool {
	return m <= ExtendReflect
}

// ColorStop is a color at an offset in [0, 1] along a gradient.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// Gradient is a color ramp over linear, radial or conic geometry. Its stop
// list is kept sorted by offset with unique offsets.
//
// A Gradient is a mutable description. Installing it as a style takes a
// snapshot, so later changes affect only later draws.
type Gradient struct {
	kind GradientKind

	// Linear: p0 -> p1. Radial: p0 is the center, p1 the focal point.
	// Conic: p0 is the center.
	p0, p1 Point
	// Radial: r0 is the center radius, r1 the focal radius.
	r0, r1 float64
	// Conic: start angle and number of repetitions per turn.
	angle  float64
	repeat float64

	extend    ExtendMode
	stops     []ColorStop
	transform Matrix
}

// NewLinearGradient creates a gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return &Gradient{
		kind:      GradientLinear,
		p0:        Pt(x0, y0),
		p1:        Pt(x1, y1),
		transform: Identity(),
	}
}

// NewRadialGradient creates a gradient around center (cx, cy) with radius
// r, focused at (fx, fy). Offset 0 is at the focal point and offset 1 on the
// center circle. The focal radius starts at 0; see SetFocalRadius.
func NewRadialGradient(cx, cy, fx, fy, r float64) *Gradient {
	return &Gradient{
		kind:      GradientRadial,
		p0:        Pt(cx, cy),
		p1:        Pt(fx, fy),
		r0:        math.Abs(r),
		transform: Identity(),
	}
}

// NewConicGradient creates a gradient sweeping once around (cx, cy),
// starting at angle radians.
func NewConicGradient(cx, cy, angle float64) *Gradient {
	return &Gradient{
		kind:      GradientConic,
		p0:        Pt(cx, cy),
		angle:     angle,
		repeat:    1,
		transform: Identity(),
	}
}

// Kind returns the gradient's geometry.
func (g *Gradient) Kind() GradientKind {
	return g.kind
}

// AddStop inserts a color stop. Offsets outside [0, 1] fail with
// ErrInvalidArgument. A stop at an existing offset replaces its color.
func (g *Gradient) AddStop(offset float64, c RGBA) error {
	if !(offset >= 0 && offset <= 1) {
		return invalidArg("gradient stop offset %v outside [0, 1]", offset)
	}
	i, found := slices.BinarySearchFunc(g.stops, offset, func(s ColorStop, o float64) int {
		switch {
		case s.Offset < o:
			return -1
		case s.Offset > o:
			return 1
		}
		return 0
	})
	if found {
		g.stops[i].Color = c
		return nil
	}
	g.stops = slices.Insert(g.stops, i, ColorStop{Offset: offset, Color: c})
	return nil
}

// ResetStops removes every stop.
func (g *Gradient) ResetStops() {
	g.stops = g.stops[:0]
}

// Stops returns a copy of the sorted stop list.
func (g *Gradient) Stops() []ColorStop {
	return slices.Clone(g.stops)
}

// StopCount returns the number of stops.
func (g *Gradient) StopCount() int {
	return len(g.stops)
}

// Extend returns the extend mode.
func (g *Gradient) Extend() ExtendMode {
	return g.extend
}

// SetExtend sets the extend mode.
func (g *Gradient) SetExtend(m ExtendMode) error {
	if !m.valid() {
		return invalidArg("unknown extend mode %d", m)
	}
	g.extend = m
	return nil
}

// Transform returns the gradient-to-user transform.
func (g *Gradient) Transform() Matrix {
	return g.transform
}

// SetTransform sets the transform from gradient space to user space. It is
// applied before the context transform.
func (g *Gradient) SetTransform(m Matrix) {
	g.transform = m
}

// SetFocalRadius sets the radius of a radial gradient's focal circle.
func (g *Gradient) SetFocalRadius(r float64) error {
	if g.kind != GradientRadial {
		return invalidArg("focal radius on a %s gradient", g.kind)
	}
	if !(r >= 0) || !finite(r) {
		return invalidArg("focal radius must be >= 0, got %v", r)
	}
	g.r1 = r
	return nil
}

// SetRepeat sets how many times a conic gradient's ramp repeats per turn.
// Each cycle runs through the full ramp under every extend mode; with
// ExtendReflect alternate cycles run backwards.
func (g *Gradient) SetRepeat(n float64) error {
	if g.kind != GradientConic {
		return invalidArg("repeat on a %s gradient", g.kind)
	}
	if !(n > 0) || !finite(n) {
		return invalidArg("conic repeat must be > 0, got %v", n)
	}
	g.repeat = n
	return nil
}

// clone returns a deep copy.
func (g *Gradient) clone() *Gradient {
	c := *g
	c.stops = slices.Clone(g.stops)
	return &c
}
