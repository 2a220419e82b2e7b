package httpgen

import (
	"fmt"
	"strings"

	"github.com/getmockd/httpfixture/pkg/gen"
)

// Path defaults.
const (
	DefaultMinDepth       = 1
	DefaultMaxDepth       = 5
	DefaultMinSegmentSize = 3
	DefaultMaxSegmentSize = 25
)

const pathSeparator = "/"

// Paths generates URL paths such as "/abc/defgh". Each segment is preceded by
// a separator; with a trailing separator configured one more is appended.
// A depth of zero produces "" (or "/" with a trailing separator).
type Paths struct {
	depth    gen.Generator[int]
	segments gen.Generator[string]
	trailing bool
}

// NewPath returns a path generator. By default the depth is uniform in
// [DefaultMinDepth, DefaultMaxDepth] and each segment is 3-25 lowercase
// letters; see WithDepth, WithDepthRange, WithSegments and
// WithTrailingSeparator.
func NewPath(opts ...Option) (*Paths, error) {
	o := applyOptions(opts)

	depth := o.depth
	if depth == nil {
		lo, hi := DefaultMinDepth, DefaultMaxDepth
		if o.depthRange != nil {
			lo, hi = o.depthRange[0], o.depthRange[1]
		}
		if lo < 0 {
			return nil, fmt.Errorf("path: negative minimum depth %d: %w", lo, gen.ErrInvalidArgument)
		}
		g, err := gen.Ints(o.rand, lo, hi)
		if err != nil {
			return nil, fmt.Errorf("path depth: %w", err)
		}
		depth = g
	}

	segments := o.segments
	if segments == nil {
		segments = must(gen.LowerStrings(o.rand, DefaultMinSegmentSize, DefaultMaxSegmentSize))
	}

	return &Paths{depth: depth, segments: segments, trailing: o.trailingSlash}, nil
}

// Next returns the next path.
func (p *Paths) Next() (string, error) {
	n, err := p.depth.Next()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", fmt.Errorf("path: negative depth %d: %w", n, gen.ErrInvalidArgument)
	}

	var b strings.Builder
	for range n {
		seg, err := p.segments.Next()
		if err != nil {
			return "", err
		}
		if seg == "" || strings.Contains(seg, pathSeparator) {
			return "", fmt.Errorf("path: invalid segment %q: %w", seg, gen.ErrInvalidArgument)
		}
		b.WriteString(pathSeparator)
		b.WriteString(seg)
	}
	if p.trailing {
		b.WriteString(pathSeparator)
	}
	return b.String(), nil
}
