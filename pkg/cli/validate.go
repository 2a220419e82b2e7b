package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/httpfixture/pkg/cli/internal/output"
	"github.com/getmockd/httpfixture/pkg/fixture"
)

var (
	validateFile string
	showResolved bool
)

// ValidateOutput is the result of validate.
type ValidateOutput struct {
	File     string           `json:"file" yaml:"file"`
	Valid    bool             `json:"valid" yaml:"valid"`
	Fixtures []FixtureSummary `json:"fixtures,omitempty" yaml:"fixtures,omitempty"`
	Errors   []ValidateIssue  `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// FixtureSummary describes one fixture of a valid plan.
type FixtureSummary struct {
	Name  string       `json:"name" yaml:"name"`
	Kind  fixture.Kind `json:"kind" yaml:"kind"`
	Count int          `json:"count" yaml:"count"`
}

// ValidateIssue is one problem found in a plan.
type ValidateIssue struct {
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Message string `json:"message" yaml:"message"`
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a plan file without generating anything",
	Long: `Validate a plan file without generating anything.

This command checks:
  - YAML or JSON syntax
  - Schema validation (required fields, value ranges, unknown keys)
  - Unique fixture names and settings matching the fixture kind
  - Status classes, MIME categories, depth ranges and exclude globs
  - That every where expression compiles to a boolean`,
	Example: `  httpfixture validate -f fixtures.yaml
  httpfixture validate -f fixtures.yaml --show-resolved
  httpfixture validate -f fixtures.json -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := fixture.LoadFile(validateFile)
		var result *fixture.ValidationResult
		if err != nil && !errors.As(err, &result) {
			return err
		}

		out := ValidateOutput{File: validateFile, Valid: err == nil}
		if result != nil {
			for _, e := range result.Errors {
				out.Errors = append(out.Errors, ValidateIssue{Path: e.Path, Message: e.Message})
			}
		}
		if plan != nil {
			for _, f := range plan.Fixtures {
				n := f.Count
				if n <= 0 {
					n = fixture.DefaultCount
				}
				out.Fixtures = append(out.Fixtures, FixtureSummary{Name: f.Name, Kind: f.Kind, Count: n})
			}
		}

		if printErr := printResult(cmd, out, func(w io.Writer) error {
			return printValidation(w, out, plan)
		}); printErr != nil {
			return printErr
		}
		if !out.Valid {
			return fmt.Errorf("%w: %s has %d error(s)", ErrPlanInvalid, validateFile, len(out.Errors))
		}
		return nil
	},
}

func printValidation(w io.Writer, out ValidateOutput, plan *fixture.Plan) error {
	if !out.Valid {
		fmt.Fprintln(w, "Validation failed:")
		for _, e := range out.Errors {
			if e.Path != "" {
				fmt.Fprintf(w, "  - %s: %s\n", e.Path, e.Message)
			} else {
				fmt.Fprintf(w, "  - %s\n", e.Message)
			}
		}
		return nil
	}

	fmt.Fprintf(w, "Plan is valid: %d fixture(s)\n", len(out.Fixtures))
	tw := output.Table(w)
	fmt.Fprintln(tw, "NAME\tKIND\tCOUNT")
	for _, f := range out.Fixtures {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", f.Name, f.Kind, f.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if showResolved {
		data, err := fixture.Marshal(plan, fixture.FormatYAML)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "\nResolved plan:")
		_, err = w.Write(data)
		return err
	}
	return nil
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Plan file to validate")
	validateCmd.Flags().BoolVar(&showResolved, "show-resolved", false, "Print the plan as it was understood")
	_ = validateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(validateCmd)
}
