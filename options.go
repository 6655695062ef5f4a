package canvas

// Option configures a Context during creation.
//
// Example:
//
//	// Composite queued draws with four workers.
//	c, err := canvas.NewContext(s, canvas.WithThreadCount(4))
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	threadCount int
	tolerance   float64
	queueLimit  int
}

const (
	defaultTolerance  = 0.25
	defaultQueueLimit = 64
)

func defaultOptions() options {
	return options{
		threadCount: 0,
		tolerance:   defaultTolerance,
		queueLimit:  defaultQueueLimit,
	}
}

func (o options) validate() error {
	if o.threadCount < 0 {
		return invalidArg("thread count must be >= 0, got %d", o.threadCount)
	}
	if !(o.tolerance > 0) || !finite(o.tolerance) {
		return invalidArg("tolerance must be a positive number, got %v", o.tolerance)
	}
	if o.queueLimit < 1 {
		return invalidArg("queue limit must be >= 1, got %d", o.queueLimit)
	}
	return nil
}

// WithThreadCount sets the number of workers that composite draws.
// 0 and 1 composite every draw synchronously.
func WithThreadCount(n int) Option {
	return func(o *options) {
		o.threadCount = n
	}
}

// WithTolerance sets the maximum device-space distance, in pixels, between a
// flattened curve and the true curve when strokes are expanded. The default
// is 0.25.
func WithTolerance(t float64) Option {
	return func(o *options) {
		o.tolerance = t
	}
}

// WithQueueLimit sets how many draws a multi-threaded context queues before
// it flushes on its own. The default is 64. It has no effect on
// synchronous contexts.
func WithQueueLimit(n int) Option {
	return func(o *options) {
		o.queueLimit = n
	}
}
