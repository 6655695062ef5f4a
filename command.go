package canvas

import (
	"image"

	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/internal/clip"
)

// command is a fully resolved draw. Everything it needs is captured when it
// is submitted, so it can be composited later and in any tile order.
type command struct {
	// rect is the device area touched, inside the clip rectangle.
	rect image.Rectangle
	// mask is the shape coverage over rect; nil means full coverage.
	mask  *image.Alpha
	clip  clip.Region
	src   source
	op    blend.Func
	alpha byte
}

// apply composites the part of cmd inside area onto s.
func (cmd *command) apply(s *Surface, area image.Rectangle) {
	r := cmd.rect.Intersect(area)
	if r.Empty() {
		return
	}
	w := r.Dx()

	var cov, px []byte
	withCov := cmd.mask != nil || cmd.clip.HasMask()
	if withCov {
		cov = make([]byte, w)
	}
	if !cmd.src.solid {
		px = make([]byte, w*4)
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		if withCov {
			if cmd.mask != nil {
				off := cmd.mask.PixOffset(r.Min.X, y)
				copy(cov, cmd.mask.Pix[off:off+w])
			} else {
				for i := range cov {
					cov[i] = 255
				}
			}
			cmd.clip.ApplyRow(cov, r.Min.X, y)
		}

		dst := s.row(y, r.Min.X, r.Max.X)
		if cmd.src.solid {
			c := cmd.src.color
			blend.SpanSolid(cmd.op, dst, c[0], c[1], c[2], c[3], cov, cmd.alpha)
			continue
		}
		cmd.src.sampler.sample(px, r.Min.X, y)
		blend.Span(cmd.op, dst, px, cov, cmd.alpha)
	}
}
