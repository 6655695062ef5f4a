package canvas

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.threadCount != 0 || o.tolerance != defaultTolerance || o.queueLimit != defaultQueueLimit {
		t.Errorf("defaultOptions() = %+v", o)
	}
	if err := o.validate(); err != nil {
		t.Errorf("default options invalid: %v", err)
	}
}

func TestOptions_Apply(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{WithThreadCount(3), WithTolerance(0.1), WithQueueLimit(8)} {
		opt(&o)
	}
	if o.threadCount != 3 || o.tolerance != 0.1 || o.queueLimit != 8 {
		t.Errorf("options = %+v", o)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"negative threads", WithThreadCount(-2)},
		{"zero tolerance", WithTolerance(0)},
		{"infinite tolerance", WithTolerance(math.Inf(1))},
		{"zero queue", WithQueueLimit(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			if err := o.validate(); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("validate() = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestWithThreadCount_ZeroAndOneAreSynchronous(t *testing.T) {
	for _, n := range []int{0, 1} {
		_, c := newTestContext(t, 4, 4, WithThreadCount(n))
		if c.ThreadCount() != 0 {
			t.Errorf("WithThreadCount(%d): ThreadCount() = %d, want 0", n, c.ThreadCount())
		}
	}
}
