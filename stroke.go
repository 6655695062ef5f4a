package canvas

import "github.com/gogpu/canvas/internal/stroke"

// LineCap is the shape drawn at the ends of open subpaths.
type LineCap uint8

const (
	// CapButt ends flat at the end point.
	CapButt LineCap = iota
	// CapSquare extends by half the width past the end point.
	CapSquare
	// CapRound adds a half circle.
	CapRound
	// CapRoundRev cuts a half circle into a square extension.
	CapRoundRev
	// CapTriangle adds a point half the width past the end point.
	CapTriangle
	// CapTriangleRev cuts a triangle notch into a square extension.
	CapTriangleRev
)

var capNames = [...]string{"butt", "square", "round", "round-rev", "triangle", "triangle-rev"}

// String returns the cap's name.
func (c LineCap) String() string {
	if int(c) < len(capNames) {
		return capNames[c]
	}
	return "unknown"
}

// LineJoin is the shape drawn where two segments meet.
type LineJoin uint8

const (
	// JoinMiterClip draws a miter, clipped at the miter limit.
	JoinMiterClip LineJoin = iota
	// JoinMiterBevel draws a miter, or a bevel past the miter limit.
	JoinMiterBevel
	// JoinRound draws a circular arc.
	JoinRound
	// JoinBevel connects the outer corners with a straight line.
	JoinBevel
)

var joinNames = [...]string{"miter-clip", "miter-bevel", "round", "bevel"}

// String returns the join's name.
func (j LineJoin) String() string {
	if int(j) < len(joinNames) {
		return joinNames[j]
	}
	return "unknown"
}

// StrokeParams describes stroke geometry in user units.
type StrokeParams struct {
	// Width is the stroke width. Default: 1.
	Width float64
	// StartCap and EndCap shape the ends of open subpaths. Default: butt.
	StartCap LineCap
	EndCap   LineCap
	// Join shapes corners. Default: miter-clip.
	Join LineJoin
	// MiterLimit is the ratio of miter length to half the width past which
	// miters are clipped or beveled. Default: 4.
	MiterLimit float64
}

// DefaultStrokeParams returns width 1, butt caps, miter-clip joins and a
// miter limit of 4.
func DefaultStrokeParams() StrokeParams {
	return StrokeParams{
		Width:      1,
		StartCap:   CapButt,
		EndCap:     CapButt,
		Join:       JoinMiterClip,
		MiterLimit: 4,
	}
}

// WithWidth returns a copy with the given width.
func (s StrokeParams) WithWidth(w float64) StrokeParams {
	s.Width = w
	return s
}

// WithCaps returns a copy with both caps set to c.
func (s StrokeParams) WithCaps(c LineCap) StrokeParams {
	s.StartCap, s.EndCap = c, c
	return s
}

// WithJoin returns a copy with the given join.
func (s StrokeParams) WithJoin(j LineJoin) StrokeParams {
	s.Join = j
	return s
}

// WithMiterLimit returns a copy with the given miter limit.
func (s StrokeParams) WithMiterLimit(limit float64) StrokeParams {
	s.MiterLimit = limit
	return s
}

// Validate reports ErrInvalidArgument for a non-positive width, a miter
// limit below 1, or an unknown cap or join.
func (s StrokeParams) Validate() error {
	if !(s.Width > 0) || !finite(s.Width) {
		return invalidArg("stroke width must be > 0, got %v", s.Width)
	}
	if !(s.MiterLimit >= 1) || !finite(s.MiterLimit) {
		return invalidArg("miter limit must be >= 1, got %v", s.MiterLimit)
	}
	if int(s.StartCap) >= len(capNames) || int(s.EndCap) >= len(capNames) {
		return invalidArg("unknown line cap %d/%d", s.StartCap, s.EndCap)
	}
	if int(s.Join) >= len(joinNames) {
		return invalidArg("unknown line join %d", s.Join)
	}
	return nil
}

func (s StrokeParams) style() stroke.Style {
	return stroke.Style{
		Width:      s.Width,
		StartCap:   stroke.Cap(s.StartCap),
		EndCap:     stroke.Cap(s.EndCap),
		Join:       stroke.Join(s.Join),
		MiterLimit: s.MiterLimit,
	}
}
