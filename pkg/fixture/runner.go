package fixture

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/getmockd/httpfixture/pkg/gen"
	"github.com/getmockd/httpfixture/pkg/httpgen"
	"github.com/getmockd/httpfixture/pkg/logging"
)

// Runner generates the batches of a plan.
type Runner struct {
	logger *slog.Logger
}

// NewRunner returns a runner that logs to logger (nil discards logs).
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logging.OrNop(logger)}
}

// Run generates every fixture of the plan in order. Each fixture gets its
// own seed derived from the plan seed and its position, so adding a fixture
// at the end of a plan does not change the values of the ones before it.
func (r *Runner) Run(plan *Plan) ([]Batch, error) {
	if result := plan.Validate(); !result.IsValid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, result)
	}

	seed := plan.Seed
	if seed == 0 {
		seed = gen.RandomSeed()
		r.logger.Info("plan has no seed, using a random one", "seed", seed)
	}

	batches := make([]Batch, 0, len(plan.Fixtures))
	for i := range plan.Fixtures {
		f := &plan.Fixtures[i]
		fseed := FixtureSeed(seed, i)

		g, err := Build(f, fseed)
		if err != nil {
			return nil, fmt.Errorf("fixture %q: %w", f.Name, err)
		}
		values, err := gen.Take(g, f.count())
		if err != nil {
			return nil, fmt.Errorf("fixture %q: value %d: %w", f.Name, len(values)+1, err)
		}

		batch := Batch{
			ID:     uuid.NewString(),
			Name:   f.Name,
			Kind:   f.Kind,
			Seed:   fseed,
			Values: values,
		}
		r.logger.Debug("generated fixture batch",
			"id", batch.ID,
			"fixture", f.Name,
			"kind", f.Kind,
			"count", len(values),
			"seed", fseed,
		)
		batches = append(batches, batch)
	}
	return batches, nil
}

// FixtureSeed derives the seed of the fixture at index i from a plan seed.
func FixtureSeed(planSeed uint64, i int) uint64 {
	s := planSeed ^ (uint64(i+1) * 0x9e3779b97f4a7c15)
	if s == 0 {
		return 1
	}
	return s
}

// Build returns the generator for a fixture, seeded with seed.
func Build(f *Fixture, seed uint64) (gen.Generator[any], error) {
	rng := gen.NewRand(seed)
	opts := []httpgen.Option{httpgen.WithRand(rng)}
	maxAttempts := f.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = gen.DefaultMaxAttempts
	}
	opts = append(opts, httpgen.WithMaxAttempts(maxAttempts))

	var (
		g   gen.Generator[any]
		err error
	)
	switch f.Kind {
	case KindStatus:
		g, err = buildStatus(f.Status, maxAttempts, opts)
	case KindMime:
		g, err = buildMime(f.Mime, opts)
	case KindPath:
		g, err = buildPath(f.Path, maxAttempts, opts)
	case KindHeader:
		// A where clause usually selects names; keep offering curated ones.
		if f.Where != "" {
			opts = append(opts, httpgen.WithRecurringNames(true))
		}
		g, err = boxed[httpgen.Header](httpgen.NewHeaders(opts...), nil)
	default:
		return nil, fmt.Errorf("unknown kind %q: %w", f.Kind, gen.ErrInvalidArgument)
	}
	if err != nil {
		return nil, err
	}

	if f.Where == "" {
		return g, nil
	}
	w, err := CompileWhere(f.Where, f.Kind)
	if err != nil {
		return nil, err
	}
	return w.filter(g, maxAttempts)
}

func buildStatus(s *StatusSettings, maxAttempts int, opts []httpgen.Option) (gen.Generator[any], error) {
	if s == nil {
		s = &StatusSettings{}
	}
	if s.Class == "" {
		return boxed[int](httpgen.ExcludeCodes(s.Exclude, opts...), nil)
	}

	class, err := httpgen.ParseStatusClass(s.Class)
	if err != nil {
		return nil, err
	}
	codes, err := httpgen.CodesOf(class, opts...)
	if err != nil {
		return nil, err
	}
	if len(s.Exclude) == 0 {
		return boxed[int](codes, nil)
	}
	return boxed(gen.ExcludeValues[int](codes, s.Exclude, gen.WithMaxAttempts(maxAttempts)))
}

func buildMime(m *MimeSettings, opts []httpgen.Option) (gen.Generator[any], error) {
	if m == nil || isAllCategories(m.Category) {
		return boxed[string](httpgen.AllMimeTypes(opts...), nil)
	}
	c, err := httpgen.ParseMimeCategory(m.Category)
	if err != nil {
		return nil, err
	}
	return boxed[string](httpgen.MimeTypesOf(c, opts...))
}

func buildPath(p *PathSettings, maxAttempts int, opts []httpgen.Option) (gen.Generator[any], error) {
	if p == nil {
		p = &PathSettings{}
	}
	lo, hi := p.depthRange()
	opts = append(opts,
		httpgen.WithDepthRange(lo, hi),
		httpgen.WithTrailingSeparator(p.TrailingSeparator),
	)
	paths, err := httpgen.NewPath(opts...)
	if err != nil {
		return nil, err
	}
	if len(p.Exclude) == 0 {
		return boxed[string](paths, nil)
	}

	patterns := p.Exclude
	return boxed(gen.SuchThat[string](paths, func(path string) bool {
		return !matchesAny(patterns, path)
	}, gen.WithMaxAttempts(maxAttempts)))
}

// matchesAny reports whether path matches one of the doublestar patterns.
// A trailing separator is ignored so "/admin/**" also excludes "/admin/x/".
func matchesAny(patterns []string, path string) bool {
	trimmed := strings.TrimSuffix(path, "/")
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, trimmed); ok {
			return true
		}
	}
	return false
}

// boxed erases a typed generator to gen.Generator[any] for batch output.
func boxed[T any](g gen.Generator[T], err error) (gen.Generator[any], error) {
	if err != nil {
		return nil, err
	}
	return gen.Map(g, func(v T) any { return v })
}
