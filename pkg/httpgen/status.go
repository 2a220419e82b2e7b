package httpgen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getmockd/httpfixture/pkg/gen"
)

// StatusClass partitions the curated status codes by their first digit.
type StatusClass int

// Status code classes.
const (
	Informational StatusClass = iota // 1xx
	Success                          // 2xx
	Redirect                         // 3xx
	ClientError                      // 4xx
	ServerError                      // 5xx
)

var statusClassNames = [...]string{"informational", "success", "redirect", "client-error", "server-error"}

// StatusClasses lists every class in table order.
func StatusClasses() []StatusClass {
	return []StatusClass{Informational, Success, Redirect, ClientError, ServerError}
}

func (c StatusClass) String() string {
	if c < 0 || int(c) >= len(statusClassNames) {
		return fmt.Sprintf("StatusClass(%d)", int(c))
	}
	return statusClassNames[c]
}

// ParseStatusClass parses a class name such as "client-error". Matching is
// case insensitive and also accepts the "4xx" form.
func ParseStatusClass(s string) (StatusClass, error) {
	for i, name := range statusClassNames {
		if strings.EqualFold(s, name) {
			return StatusClass(i), nil
		}
	}
	if len(s) == 3 && strings.EqualFold(s[1:], "xx") && s[0] >= '1' && s[0] <= '5' {
		return StatusClass(s[0] - '1'), nil
	}
	return 0, fmt.Errorf("unknown status class %q: %w", s, gen.ErrInvalidArgument)
}

var statusTables = [...][]int{
	Informational: {100, 101, 102},
	Success:       {200, 201, 202, 203, 204, 205, 206, 207, 208, 226},
	Redirect:      {301, 302, 303, 304, 305, 306, 307, 308},
	ClientError: {
		400, 401, 402, 403, 404, 405, 406, 407, 408, 409, 410, 411, 412, 413, 414, 415, 416,
		417, 418, 421, 422, 423, 424, 426, 428, 429, 431, 451,
	},
	ServerError: {500, 501, 502, 503, 504, 505, 506, 507, 508, 510, 511},
}

// StatusCodeValues returns a copy of the curated table for c, or nil for an
// unknown class.
func StatusCodeValues(c StatusClass) []int {
	if c < 0 || int(c) >= len(statusTables) {
		return nil
	}
	return slices.Clone(statusTables[c])
}

// AllStatusCodeValues returns every curated status code in class order.
func AllStatusCodeValues() []int {
	var all []int
	for _, table := range statusTables {
		all = append(all, table...)
	}
	return all
}

// ClassOf reports the class whose table contains code.
func ClassOf(code int) (StatusClass, bool) {
	for i, table := range statusTables {
		if slices.Contains(table, code) {
			return StatusClass(i), true
		}
	}
	return 0, false
}

// StatusCodes generates HTTP status codes from the curated tables.
type StatusCodes struct {
	g gen.Generator[int]
}

// Next returns the next status code. Only generators built with ExcludeCodes
// can fail, with gen.ErrExhausted, when every code is excluded.
func (s *StatusCodes) Next() (int, error) {
	return s.g.Next()
}

// AllCodes samples uniformly from every curated status code.
func AllCodes(opts ...Option) *StatusCodes {
	o := applyOptions(opts)
	return &StatusCodes{g: must(gen.FixedValues(o.rand, AllStatusCodeValues()))}
}

// CodesOf samples uniformly from the table of a single class.
func CodesOf(c StatusClass, opts ...Option) (*StatusCodes, error) {
	values := StatusCodeValues(c)
	if values == nil {
		return nil, fmt.Errorf("status codes: unknown class %d: %w", int(c), gen.ErrInvalidArgument)
	}
	o := applyOptions(opts)
	g, err := gen.FixedValues(o.rand, values)
	if err != nil {
		return nil, err
	}
	return &StatusCodes{g: g}, nil
}

func codesOf(c StatusClass, opts []Option) *StatusCodes {
	s, err := CodesOf(c, opts...)
	if err != nil {
		panic("httpgen: " + err.Error())
	}
	return s
}

// InformationalCodes samples the 1xx table.
func InformationalCodes(opts ...Option) *StatusCodes { return codesOf(Informational, opts) }

// SuccessCodes samples the 2xx table.
func SuccessCodes(opts ...Option) *StatusCodes { return codesOf(Success, opts) }

// RedirectCodes samples the 3xx table.
func RedirectCodes(opts ...Option) *StatusCodes { return codesOf(Redirect, opts) }

// ClientErrorCodes samples the 4xx table.
func ClientErrorCodes(opts ...Option) *StatusCodes { return codesOf(ClientError, opts) }

// ServerErrorCodes samples the 5xx table.
func ServerErrorCodes(opts ...Option) *StatusCodes { return codesOf(ServerError, opts) }

// ExcludeCodes samples uniformly from every curated status code except those
// in exclude. Excluding every curated code makes Next fail with
// gen.ErrExhausted after the attempt limit (see WithMaxAttempts).
func ExcludeCodes(exclude []int, opts ...Option) *StatusCodes {
	o := applyOptions(opts)
	base := must(gen.FixedValues(o.rand, AllStatusCodeValues()))
	return &StatusCodes{
		g: must(gen.ExcludeValues(base, exclude, gen.WithMaxAttempts(o.maxAttempts))),
	}
}
