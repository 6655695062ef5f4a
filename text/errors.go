package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned for a non-positive or non-finite size.
	ErrInvalidSize = errors.New("text: invalid size")
)
