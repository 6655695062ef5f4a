// Package canvas is a software 2D vector-graphics rendering context.
//
// # Overview
//
// A [Context] draws into a [Surface], a premultiplied 32-bit RGBA pixel
// buffer. It keeps a current state (transform, fill and stroke styles,
// stroke parameters, compositing operator, global alpha and clip) and a
// save/restore stack of complete state snapshots. Geometry is described by
// a [Path] or by rectangle and ellipse shortcuts; paints are a solid
// [RGBA] color, a [Gradient] or a [Pattern].
//
// # Quick Start
//
//	s, _ := canvas.NewSurface(256, 256)
//	err := canvas.Draw(s, func(c *canvas.Context) error {
//		g := canvas.NewLinearGradient(0, 0, 256, 0)
//		g.AddStop(0, canvas.Hex("#ff0000"))
//		g.AddStop(1, canvas.Hex("#0000ff"))
//		if err := c.SetFillStyle(canvas.GradientStyle(g)); err != nil {
//			return err
//		}
//		return c.FillCircle(128, 128, 100)
//	})
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left corner of the surface
//   - X increases right, Y increases down
//   - Pixel (x, y) covers [x, x+1) x [y, y+1); sampling uses its center
//   - Angles in radians, positive angles turn from +X toward +Y
//
// # Lifecycle
//
// A Context is Active from [NewContext] until [Context.End], after which
// every draw and every setter that returns an error fails with
// [ErrLifecycle]. A Surface has
// at most one Active context at a time. [Draw] pairs creation with End, even
// when the callback fails or panics.
//
// # Threads
//
// [WithThreadCount] selects how draws are resolved. With 0 or 1 every draw is
// composited before the call returns. With N > 1 draws are queued and
// composited by N workers over 64x64 tiles at [Context.Flush] or End; every
// pixel sees the draws in submission order, so the final pixels are identical
// for every thread count.
package canvas
