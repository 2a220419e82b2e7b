package gen

import (
	"fmt"
	mathrand "math/rand/v2"
	"slices"
)

// FixedValues returns a generator that samples uniformly from values.
// The slice is copied; values must not be empty.
func FixedValues[T any](r *mathrand.Rand, values []T) (Generator[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("fixed values: at least one value is required: %w", ErrInvalidArgument)
	}
	pool := slices.Clone(values)
	return Func[T](func() (T, error) {
		return pool[intN(r, len(pool))], nil
	}), nil
}
