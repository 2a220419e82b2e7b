package fixture

// PlanVersion is the only supported plan format version.
const PlanVersion = "1"

// DefaultCount is the number of values generated for a fixture without a
// count.
const DefaultCount = 10

// Kind selects the generator behind a fixture.
type Kind string

// Fixture kinds.
const (
	KindStatus Kind = "status"
	KindMime   Kind = "mime"
	KindPath   Kind = "path"
	KindHeader Kind = "header"
)

// Kinds lists every fixture kind.
func Kinds() []Kind {
	return []Kind{KindStatus, KindMime, KindPath, KindHeader}
}

// Plan is a set of fixtures generated together from one seed.
type Plan struct {
	Version string `json:"version" yaml:"version"`
	// Seed makes a run reproducible. Zero picks a random seed, reported in
	// every Batch.
	Seed     uint64    `json:"seed,omitempty" yaml:"seed,omitempty"`
	Fixtures []Fixture `json:"fixtures" yaml:"fixtures"`
}

// Fixture describes one batch of generated values.
type Fixture struct {
	Name  string `json:"name" yaml:"name"`
	Kind  Kind   `json:"kind" yaml:"kind"`
	Count int    `json:"count,omitempty" yaml:"count,omitempty"`
	// Where is an expr-lang boolean expression; values for which it is false
	// are redrawn. See CompileWhere for the variables in scope.
	Where string `json:"where,omitempty" yaml:"where,omitempty"`
	// MaxAttempts bounds redraws per value for Where and exclusions.
	MaxAttempts int `json:"maxAttempts,omitempty" yaml:"maxAttempts,omitempty"`

	Status *StatusSettings `json:"status,omitempty" yaml:"status,omitempty"`
	Mime   *MimeSettings   `json:"mime,omitempty" yaml:"mime,omitempty"`
	Path   *PathSettings   `json:"path,omitempty" yaml:"path,omitempty"`
}

// StatusSettings configures a status fixture.
type StatusSettings struct {
	// Class restricts codes to one class ("success", "4xx", ...).
	Class   string `json:"class,omitempty" yaml:"class,omitempty"`
	Exclude []int  `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// MimeSettings configures a mime fixture.
type MimeSettings struct {
	// Category restricts values to one curated table. Empty or "all" mixes
	// every table with random MIME types.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// PathSettings configures a path fixture.
type PathSettings struct {
	MinDepth          *int `json:"minDepth,omitempty" yaml:"minDepth,omitempty"`
	MaxDepth          *int `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"`
	TrailingSeparator bool `json:"trailingSeparator,omitempty" yaml:"trailingSeparator,omitempty"`
	// Exclude holds doublestar glob patterns; matching paths are redrawn.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// Batch is the output of one fixture.
type Batch struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Kind   Kind   `json:"kind" yaml:"kind"`
	Seed   uint64 `json:"seed" yaml:"seed"`
	Values []any  `json:"values" yaml:"values"`
}

func (f *Fixture) count() int {
	if f.Count <= 0 {
		return DefaultCount
	}
	return f.Count
}
