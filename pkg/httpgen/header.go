package httpgen

import (
	"fmt"
	"slices"

	"github.com/getmockd/httpfixture/pkg/gen"
)

// Header value bounds for random names and text values.
const (
	MinHeaderLength = 5
	MaxHeaderLength = 20
)

// headerNames is reproduced as published, including the repeated
// Accept-Charset entry and the literal "Referer [sic]".
var headerNames = []string{
	"Accept-Charset", "Accept", "Accept-Charset", "Accept-Encoding",
	"Accept-Language", "Accept-Datetime", "Authorization", "Cache-Control",
	"Connection", "Cookie", "Content-Length", "Content-MD5", "Content-Type",
	"Date", "Expect", "Forwarded", "From", "Host", "If-Match",
	"If-Modified-Since", "If-None-Match", "If-Range", "If-Unmodified-Since",
	"Max-Forwards", "Origin", "Pragma", "Proxy-Authorization", "Range",
	"Referer [sic]", "TE", "User-Agent", "Upgrade", "Via", "Warning",
}

// HeaderNames returns a copy of the curated header name table.
func HeaderNames() []string {
	return slices.Clone(headerNames)
}

// Header is a generated header name/value pair. Names may repeat across
// draws.
type Header struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

func (h Header) String() string {
	return h.Name + ": " + h.Value
}

// ValueKind selects how a header's value is generated.
type ValueKind int

// Value kinds.
const (
	// ValueText is a random letter string. It is the kind of every name
	// without an entry in valueKinds.
	ValueText ValueKind = iota
	// ValueMimeType is drawn from AllMimeTypes.
	ValueMimeType
)

func (k ValueKind) String() string {
	switch k {
	case ValueText:
		return "text"
	case ValueMimeType:
		return "mime-type"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

var valueKinds = map[string]ValueKind{
	"Accept":       ValueMimeType,
	"Content-Type": ValueMimeType,
}

// ValueKindOf returns the value kind for a header name. Every non-empty name
// has a kind; an empty name is rejected.
func ValueKindOf(name string) (ValueKind, error) {
	if name == "" {
		return 0, fmt.Errorf("header name is required: %w", gen.ErrInvalidArgument)
	}
	if k, ok := valueKinds[name]; ok {
		return k, nil
	}
	return ValueText, nil
}

// recurringNameWeight is how many curated names are drawn for each random
// one once WithRecurringNames is on.
const recurringNameWeight = 3

// Headers generates header pairs. Every curated name in HeaderNames appears
// early in the sequence; random letter names fill the rest, mixed with
// curated ones again under WithRecurringNames.
type Headers struct {
	names  gen.Generator[string]
	values map[ValueKind]gen.Generator[string]
}

// NewHeaders returns a header generator.
func NewHeaders(opts ...Option) *Headers {
	o := applyOptions(opts)
	fallback := must(gen.LetterStrings(o.rand, MinHeaderLength, MaxHeaderLength))
	if o.recurringNames {
		fallback = must(gen.Frequency(o.rand,
			gen.Weighted[string]{Gen: must(gen.FixedValues(o.rand, headerNames)), Weight: recurringNameWeight},
			gen.Weighted[string]{Gen: fallback, Weight: 1},
		))
	}
	return &Headers{
		names: must(gen.EnsureValues(o.rand, headerNames, fallback)),
		values: map[ValueKind]gen.Generator[string]{
			ValueText:     must(gen.LetterStrings(o.rand, MinHeaderLength, MaxHeaderLength)),
			ValueMimeType: AllMimeTypes(opts...),
		},
	}
}

// ValueFor returns the generator used for values of the named header.
func (h *Headers) ValueFor(name string) (gen.Generator[string], error) {
	k, err := ValueKindOf(name)
	if err != nil {
		return nil, err
	}
	g, ok := h.values[k]
	if !ok {
		return nil, fmt.Errorf("no value generator for %s header %q: %w", k, name, gen.ErrInvalidArgument)
	}
	return g, nil
}

// Next returns the next header.
func (h *Headers) Next() (Header, error) {
	name, err := h.names.Next()
	if err != nil {
		return Header{}, err
	}
	values, err := h.ValueFor(name)
	if err != nil {
		return Header{}, err
	}
	value, err := values.Next()
	if err != nil {
		return Header{}, fmt.Errorf("header %q value: %w", name, err)
	}
	return Header{Name: name, Value: value}, nil
}
