package canvas

// StyleKind identifies the variant held by a Style.
type StyleKind uint8

const (
	// StyleNone paints nothing.
	StyleNone StyleKind = iota
	StyleSolid
	StyleGradient
	StylePattern
)

// String returns the kind's name.
func (k StyleKind) String() string {
	switch k {
	case StyleNone:
		return "none"
	case StyleSolid:
		return "solid"
	case StyleGradient:
		return "gradient"
	case StylePattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Style is what a fill or stroke paints with: nothing, a solid color, a
// gradient or a pattern. Gradient and pattern styles hold private
// snapshots, so editing the original after building the style has no
// effect on it.
type Style struct {
	kind     StyleKind
	color    RGBA
	gradient *Gradient
	pattern  *Pattern
}

// Solid returns a solid color style.
func Solid(c RGBA) Style {
	return Style{kind: StyleSolid, color: c}
}

// GradientStyle returns a style painting with a snapshot of g. A nil
// gradient yields StyleNone.
func GradientStyle(g *Gradient) Style {
	if g == nil {
		return Style{}
	}
	return Style{kind: StyleGradient, gradient: g.clone()}
}

// PatternStyle returns a style painting with a snapshot of p. A nil
// pattern yields StyleNone.
func PatternStyle(p *Pattern) Style {
	if p == nil {
		return Style{}
	}
	return Style{kind: StylePattern, pattern: p.clone()}
}

// Kind returns the style's variant.
func (s Style) Kind() StyleKind {
	return s.kind
}

// Color returns the color of a solid style.
func (s Style) Color() (RGBA, bool) {
	return s.color, s.kind == StyleSolid
}

// Gradient returns a copy of a gradient style's gradient, or nil.
func (s Style) Gradient() *Gradient {
	if s.gradient == nil {
		return nil
	}
	return s.gradient.clone()
}

// Pattern returns a copy of a pattern style's pattern, or nil.
func (s Style) Pattern() *Pattern {
	if s.pattern == nil {
		return nil
	}
	return s.pattern.clone()
}
