package canvas

import "github.com/gogpu/canvas/internal/blend"

// CompOp is a compositing operator. Each draw combines the source (the
// style's color) with the destination (the surface) through the operator,
// then blends the result over the destination by coverage times global
// alpha. Pixels outside the drawn shape are never touched.
type CompOp uint8

// Porter-Duff operators.
const (
	CompSrcOver = CompOp(blend.OpSrcOver)
	CompSrcCopy = CompOp(blend.OpSrcCopy)
	CompSrcIn   = CompOp(blend.OpSrcIn)
	CompSrcOut  = CompOp(blend.OpSrcOut)
	CompSrcAtop = CompOp(blend.OpSrcAtop)
	CompDstOver = CompOp(blend.OpDstOver)
	CompDstCopy = CompOp(blend.OpDstCopy)
	CompDstIn   = CompOp(blend.OpDstIn)
	CompDstOut  = CompOp(blend.OpDstOut)
	CompDstAtop = CompOp(blend.OpDstAtop)
	CompXor     = CompOp(blend.OpXor)
	CompClear   = CompOp(blend.OpClear)
	CompPlus    = CompOp(blend.OpPlus)
)

// Separable blend modes.
const (
	CompMultiply   = CompOp(blend.OpMultiply)
	CompScreen     = CompOp(blend.OpScreen)
	CompOverlay    = CompOp(blend.OpOverlay)
	CompDarken     = CompOp(blend.OpDarken)
	CompLighten    = CompOp(blend.OpLighten)
	CompColorDodge = CompOp(blend.OpColorDodge)
	CompColorBurn  = CompOp(blend.OpColorBurn)
	CompHardLight  = CompOp(blend.OpHardLight)
	CompSoftLight  = CompOp(blend.OpSoftLight)
	CompDifference = CompOp(blend.OpDifference)
	CompExclusion  = CompOp(blend.OpExclusion)
)

// String returns the operator's name, such as "src-over".
func (o CompOp) String() string {
	return blend.Op(o).String()
}

func (o CompOp) valid() bool {
	return blend.Op(o).Valid()
}

func (o CompOp) fn() blend.Func {
	return blend.Lookup(blend.Op(o))
}
