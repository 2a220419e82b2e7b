package gen

import (
	mathrand "math/rand/v2"
)

// NewRand returns a PCG-backed RNG seeded with seed. A zero seed picks a
// random one; use RandomSeed first when the seed has to be reported.
func NewRand(seed uint64) *mathrand.Rand {
	if seed == 0 {
		seed = RandomSeed()
	}
	return mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSeed returns a non-zero seed from the global source.
func RandomSeed() uint64 {
	for {
		if s := mathrand.Uint64(); s != 0 {
			return s
		}
	}
}

// intN returns a random int in [0, n) using rng if non-nil,
// otherwise the global math/rand/v2 source.
func intN(rng *mathrand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	if rng != nil {
		return rng.IntN(n)
	}
	return mathrand.IntN(n)
}

// uint64N returns a random uint64 in [0, n), or any uint64 when n is 0.
func uint64N(rng *mathrand.Rand, n uint64) uint64 {
	switch {
	case n == 0 && rng != nil:
		return rng.Uint64()
	case n == 0:
		return mathrand.Uint64()
	case rng != nil:
		return rng.Uint64N(n)
	default:
		return mathrand.Uint64N(n)
	}
}
