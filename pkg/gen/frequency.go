package gen

import (
	"fmt"
	"math"
	mathrand "math/rand/v2"
)

// Weighted pairs a generator with its relative weight in a Frequency mix.
type Weighted[T any] struct {
	Gen    Generator[T]
	Weight int
}

// Frequency returns a generator that picks one of choices with probability
// weight/total and delegates the draw to it.
func Frequency[T any](r *mathrand.Rand, choices ...Weighted[T]) (Generator[T], error) {
	if len(choices) == 0 {
		return nil, fmt.Errorf("frequency: at least one choice is required: %w", ErrInvalidArgument)
	}
	total := 0
	for i, c := range choices {
		if c.Gen == nil {
			return nil, fmt.Errorf("frequency: choice %d has no generator: %w", i, ErrInvalidArgument)
		}
		if c.Weight <= 0 {
			return nil, fmt.Errorf("frequency: choice %d has non-positive weight %d: %w", i, c.Weight, ErrInvalidArgument)
		}
		if c.Weight > math.MaxInt-total {
			return nil, fmt.Errorf("frequency: total weight exceeds %d at choice %d: %w", math.MaxInt, i, ErrInvalidArgument)
		}
		total += c.Weight
	}
	pool := append([]Weighted[T](nil), choices...)

	return Func[T](func() (T, error) {
		n := intN(r, total)
		for _, c := range pool {
			if n < c.Weight {
				return c.Gen.Next()
			}
			n -= c.Weight
		}
		// Unreachable while n < total.
		return pool[len(pool)-1].Gen.Next()
	}), nil
}
