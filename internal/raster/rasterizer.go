package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Rasterizer fills outlines into coverage masks. It reuses its scan
// converter between calls and is not safe for concurrent use.
type Rasterizer struct {
	z *vector.Rasterizer
}

// NewRasterizer creates a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Fill rasterizes o with nonzero winding. The mask covers the part of the
// outline's bounds inside clip; it is nil when that part is empty. Open
// subpaths are closed implicitly. Geometry may extend arbitrarily far past
// clip; see bandPen.
func (r *Rasterizer) Fill(o *Outline, clip image.Rectangle) *image.Alpha {
	if o.Empty() {
		return nil
	}
	rect := o.Bounds().Intersect(clip)
	if rect.Empty() {
		return nil
	}

	w, h := rect.Dx(), rect.Dy()
	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	} else {
		r.z.Reset(w, h)
	}
	r.z.DrawOp = xdraw.Src

	ox, oy := float64(rect.Min.X), float64(rect.Min.Y)
	pen := newBandPen(r.z, w, h)

	open := false
	pts := o.pts
	for _, v := range o.verbs {
		switch v {
		case verbMove:
			if open {
				pen.closePath()
			}
			pen.moveTo(pts[0]-ox, pts[1]-oy)
			pts = pts[2:]
			open = true
		case verbLine:
			pen.lineTo(pts[0]-ox, pts[1]-oy)
			pts = pts[2:]
			open = true
		case verbQuad:
			pen.quadTo(pts[0]-ox, pts[1]-oy, pts[2]-ox, pts[3]-oy)
			pts = pts[4:]
			open = true
		case verbCubic:
			pen.cubeTo(pts[0]-ox, pts[1]-oy, pts[2]-ox, pts[3]-oy, pts[4]-ox, pts[5]-oy)
			pts = pts[6:]
			open = true
		case verbClose:
			if open {
				pen.closePath()
				open = false
			}
		}
	}
	if open {
		pen.closePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = rect
	return mask
}
