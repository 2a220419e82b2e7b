package gen

import (
	"fmt"
	mathrand "math/rand/v2"
	"slices"
)

// ensureValues spreads its outstanding mandatory values at random positions
// over the first window draws. With k values outstanding and w window draws
// left, a mandatory value is emitted with probability k/w, so once w == k
// every remaining draw is mandatory. Invariant: window >= len(remaining).
type ensureValues[T any] struct {
	r         *mathrand.Rand
	remaining []T
	window    int
	fallback  Generator[T]
}

// EnsureValues returns a generator that produces every value in mandatory at
// least once within its first W draws, where W defaults to twice the number of
// mandatory values (see WithWindow). All other draws come from fallback, as do
// all draws after the window. The order in which mandatory values appear is
// random.
//
// An empty mandatory slice makes the generator equivalent to fallback. A nil
// mandatory slice or nil fallback is rejected.
func EnsureValues[T any](r *mathrand.Rand, mandatory []T, fallback Generator[T], opts ...Option) (Generator[T], error) {
	if mandatory == nil {
		return nil, fmt.Errorf("ensure values: mandatory values are required: %w", ErrInvalidArgument)
	}
	if fallback == nil {
		return nil, fmt.Errorf("ensure values: fallback generator is required: %w", ErrInvalidArgument)
	}
	o := applyOptions(opts)
	window := o.window
	if window == 0 {
		window = 2 * len(mandatory)
	}
	window = max(window, len(mandatory))

	return &ensureValues[T]{
		r:         r,
		remaining: slices.Clone(mandatory),
		window:    window,
		fallback:  fallback,
	}, nil
}

func (g *ensureValues[T]) Next() (T, error) {
	if k := len(g.remaining); k > 0 {
		w := g.window
		g.window--
		if intN(g.r, w) < k {
			i := intN(g.r, k)
			v := g.remaining[i]
			g.remaining[i] = g.remaining[k-1]
			g.remaining = g.remaining[:k-1]
			return v, nil
		}
	}
	return g.fallback.Next()
}
