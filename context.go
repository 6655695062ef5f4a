package canvas

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/canvas/internal/clip"
	"github.com/gogpu/canvas/internal/parallel"
	"github.com/gogpu/canvas/internal/raster"
)

// state is one complete snapshot of the drawing state. Every field is a
// value or points to immutable data, so copying it is a full snapshot.
type state struct {
	matrix       Matrix
	fill         Style
	stroke       Style
	strokeParams StrokeParams
	compOp       CompOp
	alpha        float64
	clip         clip.Region
}

func defaultState(s *Surface) state {
	return state{
		matrix:       Identity(),
		fill:         Solid(Black),
		stroke:       Solid(Black),
		strokeParams: DefaultStrokeParams(),
		compOp:       CompSrcOver,
		alpha:        1,
		clip:         clip.NewRegion(s.bounds()),
	}
}

// Context draws into a Surface. It is Active from NewContext until End.
//
// A Context is not safe for concurrent use; with WithThreadCount it uses
// worker goroutines internally.
type Context struct {
	surface *Surface
	state   state
	stack   []state
	ended   bool

	tolerance  float64
	queueLimit int

	raster  *raster.Rasterizer
	outline raster.Outline

	// Parallel mode only.
	dispatch *parallel.Dispatcher
	queue    []*command
	dirty    image.Rectangle
}

// Ensure Context implements io.Closer.
var _ io.Closer = (*Context)(nil)

// NewContext binds a new Active context to s with the default state:
// identity transform, opaque black fill and stroke, default stroke
// parameters, src-over, global alpha 1 and no clip.
//
// It fails with ErrInvalidArgument for a nil or zero-area surface or an
// invalid option, and with ErrLifecycle if s already has an active context.
func NewContext(s *Surface, opts ...Option) (*Context, error) {
	if !s.valid() {
		return nil, invalidArg("context needs a non-empty surface")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	c := &Context{
		surface:    s,
		state:      defaultState(s),
		tolerance:  o.tolerance,
		queueLimit: o.queueLimit,
		raster:     raster.NewRasterizer(),
	}
	if err := s.bind(c); err != nil {
		return nil, err
	}
	if o.threadCount > 1 {
		c.dispatch = parallel.NewDispatcher(o.threadCount, s.width, s.height)
	}

	Logger().Debug("canvas: context created",
		"width", s.width, "height", s.height, "threads", o.threadCount)
	return c, nil
}

// Draw runs fn with a new context on s and always ends the context
// afterwards, also when fn fails or panics; a panic is re-raised after End.
// It returns the error from NewContext or fn.
func Draw(s *Surface, fn func(*Context) error, opts ...Option) error {
	c, err := NewContext(s, opts...)
	if err != nil {
		return err
	}
	defer c.End()
	return fn(c)
}

// Surface returns the target surface.
func (c *Context) Surface() *Surface {
	return c.surface
}

// Ended reports whether End has been called.
func (c *Context) Ended() bool {
	return c.ended
}

// ThreadCount returns the number of compositing workers, or 0 when draws
// are composited synchronously.
func (c *Context) ThreadCount() int {
	if c.dispatch == nil {
		return 0
	}
	return c.dispatch.Workers()
}

// End waits for all submitted draws to reach the surface, releases the
// surface for other contexts, and moves the context to Ended. Calling End
// again does nothing.
func (c *Context) End() {
	if c.ended {
		return
	}
	c.flush()
	if c.dispatch != nil {
		c.dispatch.Close()
		c.dispatch = nil
	}
	c.ended = true
	c.stack = nil
	c.surface.unbind(c)
	Logger().Debug("canvas: context ended")
}

// Close is End, for io.Closer. It always returns nil.
func (c *Context) Close() error {
	c.End()
	return nil
}

// Flush composites every queued draw before returning. Synchronous contexts
// have nothing queued.
func (c *Context) Flush() error {
	if err := c.checkActive(); err != nil {
		return err
	}
	c.flush()
	return nil
}

func (c *Context) checkActive() error {
	if c.ended {
		return fmt.Errorf("%w: context has ended", ErrLifecycle)
	}
	return nil
}

// submit composites cmd now, or queues it in parallel mode.
func (c *Context) submit(cmd *command) {
	if c.dispatch == nil {
		cmd.apply(c.surface, cmd.rect)
		return
	}
	c.queue = append(c.queue, cmd)
	c.dirty = c.dirty.Union(cmd.rect)
	if len(c.queue) >= c.queueLimit {
		c.flush()
	}
}

func (c *Context) flush() {
	if len(c.queue) == 0 {
		return
	}
	queue := c.queue
	c.dispatch.Run(c.dirty, func(tile image.Rectangle) {
		for _, cmd := range queue {
			cmd.apply(c.surface, tile)
		}
	})
	Logger().Debug("canvas: flushed", "commands", len(queue), "dirty", c.dirty)

	clear(c.queue)
	c.queue = c.queue[:0]
	c.dirty = image.Rectangle{}
}
