package fixturetest

import (
	"fmt"
	mathrand "math/rand/v2"
	"os"
	"strconv"
	"testing"

	"github.com/getmockd/httpfixture/pkg/gen"
)

// SeedEnv names the environment variable that fixes the seed used by Seeded.
const SeedEnv = "HTTPFIXTURE_SEED"

// Seeded returns an RNG for one test. The seed comes from SeedEnv when set,
// otherwise it is random; either way it is logged if the test fails.
func Seeded(t testing.TB) *mathrand.Rand {
	t.Helper()

	seed := gen.RandomSeed()
	if s := os.Getenv(SeedEnv); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			t.Fatalf("invalid %s %q: %v", SeedEnv, s, err)
		}
		seed = v
	}
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("generator seed: %d (rerun with %s=%d)", seed, SeedEnv, seed)
		}
	})
	return gen.NewRand(seed)
}

// Draw returns n values from g, failing the test on the first draw error.
func Draw[T any](t testing.TB, g gen.Generator[T], n int) []T {
	t.Helper()

	values, err := gen.Take(g, n)
	if err != nil {
		t.Fatalf("draw %d of %d failed: %v", len(values)+1, n, err)
	}
	return values
}

// ForAll draws n values from g and runs check against each one. It stops at
// the first value whose check fails; failures from before the call do not
// count.
func ForAll[T any](t testing.TB, g gen.Generator[T], n int, check func(t testing.TB, v T)) {
	t.Helper()

	failedBefore := t.Failed()
	for _, v := range Draw(t, g, n) {
		check(t, v)
		if !failedBefore && t.Failed() {
			t.Logf("failing value: %s", describe(v))
			return
		}
	}
}

// Covers draws up to maxDraws values from g and fails the test unless every
// value in want has been observed. It stops early once all are seen and
// returns how often each value was drawn.
func Covers[T comparable](t testing.TB, g gen.Generator[T], want []T, maxDraws int) map[T]int {
	t.Helper()

	pending := make(map[T]struct{}, len(want))
	for _, w := range want {
		pending[w] = struct{}{}
	}
	seen := make(map[T]int)
	for i := 0; i < maxDraws && len(pending) > 0; i++ {
		v, err := g.Next()
		if err != nil {
			t.Fatalf("draw %d failed: %v", i+1, err)
		}
		seen[v]++
		delete(pending, v)
	}

	if len(pending) > 0 {
		missing := make([]string, 0, len(pending))
		for _, w := range want {
			if _, ok := pending[w]; ok {
				missing = append(missing, describe(w))
				delete(pending, w)
			}
		}
		t.Errorf("%d value(s) not produced within %d draws: %v", len(missing), maxDraws, missing)
	}
	return seen
}

func describe(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%#v", v)
}
