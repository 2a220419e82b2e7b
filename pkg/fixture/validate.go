package fixture

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/getmockd/httpfixture/pkg/httpgen"
)

//go:embed plan.schema.json
var planSchemaJSON []byte

const planSchemaURL = "plan.schema.json"

var (
	planSchemaOnce sync.Once
	planSchema     *jsonschema.Schema
	planSchemaErr  error
)

// ValidationError is a single problem found in a plan.
type ValidationError struct {
	Path    string // Plan path, e.g. "fixtures[2].path.maxDepth"
	Message string
}

func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationResult collects every problem found in a plan.
type ValidationResult struct {
	Errors []ValidationError
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Error returns the problems one per line.
func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// AddError records a problem at path.
func (r *ValidationResult) AddError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

func compiledPlanSchema() (*jsonschema.Schema, error) {
	planSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(planSchemaURL, bytes.NewReader(planSchemaJSON)); err != nil {
			planSchemaErr = fmt.Errorf("failed to add plan schema: %w", err)
			return
		}
		planSchema, planSchemaErr = compiler.Compile(planSchemaURL)
	})
	return planSchema, planSchemaErr
}

// validateDocument checks a decoded JSON document against the plan schema.
func validateDocument(doc any, result *ValidationResult) error {
	schema, err := compiledPlanSchema()
	if err != nil {
		return err
	}
	err = schema.Validate(doc)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	collectSchemaErrors(verr, result)
	return nil
}

func collectSchemaErrors(err *jsonschema.ValidationError, result *ValidationResult) {
	if len(err.Causes) == 0 {
		result.AddError(pointerToPath(err.InstanceLocation), err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, result)
	}
}

// pointerToPath turns "/fixtures/2/kind" into "fixtures[2].kind".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for i, part := range strings.Split(ptr, "/") {
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Validate checks the semantic rules the schema cannot express.
func (p *Plan) Validate() *ValidationResult {
	result := &ValidationResult{}

	if p.Version != PlanVersion {
		result.AddError("version", fmt.Sprintf("unsupported version %q, expected %q", p.Version, PlanVersion))
	}
	if len(p.Fixtures) == 0 {
		result.AddError("fixtures", "at least one fixture is required")
	}

	names := make(map[string]bool)
	for i := range p.Fixtures {
		path := fmt.Sprintf("fixtures[%d]", i)
		f := &p.Fixtures[i]
		if f.Name == "" {
			result.AddError(path+".name", "required")
		} else if names[f.Name] {
			result.AddError(path+".name", fmt.Sprintf("duplicate fixture name %q", f.Name))
		}
		names[f.Name] = true
		validateFixture(f, path, result)
	}
	return result
}

func validateFixture(f *Fixture, path string, result *ValidationResult) {
	switch f.Kind {
	case KindStatus, KindMime, KindPath, KindHeader:
	default:
		result.AddError(path+".kind", fmt.Sprintf("unknown kind %q", f.Kind))
		return
	}

	if f.Status != nil && f.Kind != KindStatus {
		result.AddError(path+".status", "only applies to status fixtures")
	}
	if f.Mime != nil && f.Kind != KindMime {
		result.AddError(path+".mime", "only applies to mime fixtures")
	}
	if f.Path != nil && f.Kind != KindPath {
		result.AddError(path+".path", "only applies to path fixtures")
	}
	if f.Count < 0 {
		result.AddError(path+".count", "must not be negative")
	}

	if f.Status != nil && f.Status.Class != "" {
		if _, err := httpgen.ParseStatusClass(f.Status.Class); err != nil {
			result.AddError(path+".status.class", fmt.Sprintf("unknown status class %q", f.Status.Class))
		}
	}
	if f.Mime != nil && !isAllCategories(f.Mime.Category) {
		if _, err := httpgen.ParseMimeCategory(f.Mime.Category); err != nil {
			result.AddError(path+".mime.category", fmt.Sprintf("unknown MIME category %q", f.Mime.Category))
		}
	}
	if p := f.Path; p != nil {
		lo, hi := p.depthRange()
		if lo < 0 || hi < 0 {
			result.AddError(path+".path", "depth must not be negative")
		} else if lo > hi {
			result.AddError(path+".path", fmt.Sprintf("minDepth %d is greater than maxDepth %d", lo, hi))
		}
		for j, pattern := range p.Exclude {
			if !doublestar.ValidatePattern(pattern) {
				result.AddError(fmt.Sprintf("%s.path.exclude[%d]", path, j), fmt.Sprintf("invalid glob pattern %q", pattern))
			}
		}
	}
	if f.Where != "" {
		if _, err := CompileWhere(f.Where, f.Kind); err != nil {
			result.AddError(path+".where", err.Error())
		}
	}
}

func isAllCategories(s string) bool {
	return s == "" || strings.EqualFold(s, "all")
}

func (p *PathSettings) depthRange() (int, int) {
	lo, hi := httpgen.DefaultMinDepth, httpgen.DefaultMaxDepth
	if p.MinDepth != nil {
		lo = *p.MinDepth
		if p.MaxDepth == nil && lo > hi {
			hi = lo
		}
	}
	if p.MaxDepth != nil {
		hi = *p.MaxDepth
		if p.MinDepth == nil && hi < lo {
			lo = hi
		}
	}
	return lo, hi
}
