package httpgen

import (
	mathrand "math/rand/v2"

	"github.com/getmockd/httpfixture/pkg/gen"
)

// Option configures a generator in this package. Options that do not apply
// to a generator are ignored by it.
type Option func(*options)

type options struct {
	rand        *mathrand.Rand
	maxAttempts int

	depth         gen.Generator[int]
	depthRange    *[2]int
	segments      gen.Generator[string]
	trailingSlash bool

	recurringNames bool
}

// WithRand sets the RNG shared by the generator and everything it builds.
// Without it the global math/rand/v2 source is used.
func WithRand(r *mathrand.Rand) Option {
	return func(o *options) { o.rand = r }
}

// WithMaxAttempts bounds how many draws an exclusion generator makes per
// value before failing with gen.ErrExhausted. Values below 1 keep
// gen.DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(o *options) { o.maxAttempts = n }
}

// WithDepth sets the generator for the number of path segments.
func WithDepth(g gen.Generator[int]) Option {
	return func(o *options) { o.depth = g }
}

// WithDepthRange draws the number of path segments uniformly from [lo, hi].
func WithDepthRange(lo, hi int) Option {
	return func(o *options) { o.depthRange = &[2]int{lo, hi} }
}

// WithSegments sets the generator for individual path segment names.
func WithSegments(g gen.Generator[string]) Option {
	return func(o *options) { o.segments = g }
}

// WithTrailingSeparator appends a '/' after the last path segment.
func WithTrailingSeparator(on bool) Option {
	return func(o *options) { o.trailingSlash = on }
}

// WithRecurringNames keeps curated header names in the mix after every one
// of them has been produced once. Without it later names are random, which
// starves filters that select particular headers.
func WithRecurringNames(on bool) Option {
	return func(o *options) { o.recurringNames = on }
}

func applyOptions(opts []Option) options {
	o := options{maxAttempts: gen.DefaultMaxAttempts}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.maxAttempts < 1 {
		o.maxAttempts = gen.DefaultMaxAttempts
	}
	return o
}

// must unwraps constructors whose arguments are package constants.
func must[T any](g gen.Generator[T], err error) gen.Generator[T] {
	if err != nil {
		panic("httpgen: " + err.Error())
	}
	return g
}
