package canvas

import (
	"fmt"
	"image"
	"image/color"
	"sync"
)

// Surface is a width x height buffer of premultiplied RGBA pixels, 8 bits
// per channel in R, G, B, A byte order, rows packed top to bottom. A new
// surface is fully transparent.
//
// A Surface may be bound to at most one active Context.
type Surface struct {
	width  int
	height int
	data   []byte

	mu    sync.Mutex
	owner *Context
}

// NewSurface creates a transparent surface. Both dimensions must be
// positive.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidArg("surface size %dx%d has zero area", width, height)
	}
	return &Surface{
		width:  width,
		height: height,
		data:   make([]byte, width*height*4),
	}, nil
}

// Width returns the width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Stride returns the number of bytes per row.
func (s *Surface) Stride() int {
	return s.width * 4
}

// Data returns the pixel bytes. The slice aliases the surface; do not read
// it while a multi-threaded context has unflushed draws.
func (s *Surface) Data() []byte {
	return s.data
}

// Image returns an *image.RGBA sharing the surface's pixels. image.RGBA is
// premultiplied, so the view needs no conversion.
func (s *Surface) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    s.data,
		Stride: s.Stride(),
		Rect:   s.bounds(),
	}
}

// Pixel returns the premultiplied pixel at (x, y), or transparent black
// outside the surface.
func (s *Surface) Pixel(x, y int) color.RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	i := y*s.Stride() + x*4
	p := s.data[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Bound reports whether an active Context currently targets s.
func (s *Surface) Bound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner != nil
}

func (s *Surface) bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

func (s *Surface) valid() bool {
	return s != nil && s.width > 0 && s.height > 0 && len(s.data) == s.width*s.height*4
}

// bind makes c the surface's active context.
func (s *Surface) bind(c *Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner != nil {
		return fmt.Errorf("%w: surface already has an active context", ErrLifecycle)
	}
	s.owner = c
	return nil
}

func (s *Surface) unbind(c *Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner == c {
		s.owner = nil
	}
}

// settle composites the draws still queued on s by its owning context.
func (s *Surface) settle() {
	s.mu.Lock()
	owner := s.owner
	s.mu.Unlock()
	if owner != nil {
		owner.flush()
	}
}

// row returns the bytes of pixels [x0, x1) on row y.
func (s *Surface) row(y, x0, x1 int) []byte {
	off := y * s.Stride()
	return s.data[off+x0*4 : off+x1*4 : off+x1*4]
}
