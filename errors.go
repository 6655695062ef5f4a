package canvas

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is returned for out-of-range or non-finite
	// arguments, unknown enum values and zero-area surfaces.
	ErrInvalidArgument = errors.New("canvas: invalid argument")

	// ErrLifecycle is returned when a context is used after End, or when a
	// surface already has an active context.
	ErrLifecycle = errors.New("canvas: lifecycle violation")

	// ErrStateUnderflow is returned by Restore when no state was saved.
	ErrStateUnderflow = errors.New("canvas: restore without matching save")
)

func invalidArg(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
