package gen

import "errors"

// Generator errors.
var (
	// ErrInvalidArgument is returned when a generator is built or drawn with a
	// missing or out-of-range argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrExhausted is returned when a resampling generator gives up after its
	// attempt limit without producing an acceptable value.
	ErrExhausted = errors.New("generator exhausted")
)
