package stroke

// Cap is the shape drawn at an open subpath end.
type Cap uint8

const (
	CapButt Cap = iota
	CapSquare
	CapRound
	CapRoundRev
	CapTriangle
	CapTriangleRev
)

// Join is the shape drawn where two segments meet.
type Join uint8

const (
	// JoinMiterClip extends the outer edges to their intersection and clips
	// the tip at MiterLimit * Width/2 from the vertex.
	JoinMiterClip Join = iota
	// JoinMiterBevel falls back to a bevel past the miter limit.
	JoinMiterBevel
	JoinRound
	JoinBevel
)

// Style is the stroke geometry in user units.
type Style struct {
	Width      float64
	StartCap   Cap
	EndCap     Cap
	Join       Join
	MiterLimit float64
}

// DefaultStyle returns width 1, butt caps, miter-clip joins, miter limit 4.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		StartCap:   CapButt,
		EndCap:     CapButt,
		Join:       JoinMiterClip,
		MiterLimit: 4.0,
	}
}
