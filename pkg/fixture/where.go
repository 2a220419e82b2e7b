package fixture

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/getmockd/httpfixture/pkg/gen"
	"github.com/getmockd/httpfixture/pkg/httpgen"
)

// Where is a compiled fixture filter.
type Where struct {
	source  string
	kind    Kind
	program *vm.Program
}

// CompileWhere compiles a boolean expr-lang expression for fixtures of the
// given kind. In scope are:
//
//   - value: the generated value (int for status, string otherwise; for
//     header fixtures, the header value)
//   - kind: the fixture kind
//   - header: for header fixtures, {name, value}
//
// For example "value >= 500", "len(value) < 40" or
// `header.name startsWith "Accept"`.
func CompileWhere(expression string, kind Kind) (*Where, error) {
	program, err := expr.Compile(expression, expr.Env(whereEnv(kind, sampleValue(kind))), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return &Where{source: expression, kind: kind, program: program}, nil
}

// String returns the source expression.
func (w *Where) String() string {
	return w.source
}

// Match evaluates the expression against v.
func (w *Where) Match(v any) (bool, error) {
	out, err := expr.Run(w.program, whereEnv(w.kind, v))
	if err != nil {
		return false, fmt.Errorf("eval %q: %w", w.source, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

func sampleValue(kind Kind) any {
	switch kind {
	case KindStatus:
		return 0
	case KindHeader:
		return httpgen.Header{}
	default:
		return ""
	}
}

func whereEnv(kind Kind, v any) map[string]any {
	env := map[string]any{
		"kind":  string(kind),
		"value": v,
	}
	if h, ok := v.(httpgen.Header); ok {
		env["value"] = h.Value
		env["header"] = map[string]any{"name": h.Name, "value": h.Value}
	}
	return env
}

// filter redraws from g until w matches. An evaluation error ends the draw
// and is returned from Next.
func (w *Where) filter(g gen.Generator[any], maxAttempts int) (gen.Generator[any], error) {
	var evalErr error
	filtered, err := gen.SuchThat(g, func(v any) bool {
		ok, err := w.Match(v)
		if err != nil {
			evalErr = err
			return true
		}
		return ok
	}, gen.WithMaxAttempts(maxAttempts))
	if err != nil {
		return nil, err
	}

	return gen.Func[any](func() (any, error) {
		v, err := filtered.Next()
		if evalErr != nil {
			err, evalErr = evalErr, nil
			return nil, err
		}
		return v, err
	}), nil
}
