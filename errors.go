package aoc

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput is returned when a puzzle input cannot be read.
	ErrMissingInput = errors.New("missing input")
	// ErrMalformedInput is returned when input text does not have the
	// shape its parser expects.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInsufficientRecords is returned by aggregations that need more
	// values than they were given.
	ErrInsufficientRecords = errors.New("insufficient records")
)

// Malformed returns an error wrapping ErrMalformedInput with the formatted
// detail.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
