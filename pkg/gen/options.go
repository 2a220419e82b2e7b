package gen

// DefaultMaxAttempts is the number of draws a resampling generator makes
// before giving up with ErrExhausted.
const DefaultMaxAttempts = 1000

// Option configures a combinator. Options that do not apply to a combinator
// are ignored by it.
type Option func(*options)

type options struct {
	window      int
	maxAttempts int
}

// WithWindow sets the number of draws over which EnsureValues spreads its
// mandatory values. Windows smaller than the mandatory set are raised to its
// size.
func WithWindow(n int) Option {
	return func(o *options) { o.window = n }
}

// WithMaxAttempts sets how many draws SuchThat and ExcludeValues make per
// value before failing with ErrExhausted.
func WithMaxAttempts(n int) Option {
	return func(o *options) { o.maxAttempts = n }
}

func applyOptions(opts []Option) options {
	o := options{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
