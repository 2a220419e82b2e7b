package gen

import (
	"fmt"
)

// SuchThat returns a generator that draws from base until accept returns
// true. Each call to Next makes at most DefaultMaxAttempts draws (see
// WithMaxAttempts) and then fails with ErrExhausted. Errors from base are
// returned as is.
//
// base must be able to produce acceptable values with reasonable probability;
// the attempt limit only bounds how long a hopeless search runs.
func SuchThat[T any](base Generator[T], accept func(T) bool, opts ...Option) (Generator[T], error) {
	if base == nil {
		return nil, fmt.Errorf("such that: base generator is required: %w", ErrInvalidArgument)
	}
	if accept == nil {
		return nil, fmt.Errorf("such that: predicate is required: %w", ErrInvalidArgument)
	}
	o := applyOptions(opts)
	if o.maxAttempts < 1 {
		return nil, fmt.Errorf("such that: max attempts must be positive, got %d: %w", o.maxAttempts, ErrInvalidArgument)
	}

	return Func[T](func() (T, error) {
		for range o.maxAttempts {
			v, err := base.Next()
			if err != nil {
				return v, err
			}
			if accept(v) {
				return v, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("no acceptable value after %d attempts: %w", o.maxAttempts, ErrExhausted)
	}), nil
}

// ExcludeValues returns a generator that never produces a member of
// forbidden. It resamples base under the same attempt limit as SuchThat, so
// a base whose whole domain is forbidden fails with ErrExhausted instead of
// looping forever. An empty forbidden set passes every draw through.
func ExcludeValues[T comparable](base Generator[T], forbidden []T, opts ...Option) (Generator[T], error) {
	set := make(map[T]struct{}, len(forbidden))
	for _, v := range forbidden {
		set[v] = struct{}{}
	}
	return SuchThat(base, func(v T) bool {
		_, excluded := set[v]
		return !excluded
	}, opts...)
}
