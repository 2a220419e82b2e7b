package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/httpfixture/pkg/fixture"
)

var (
	// Flags shared by every generator command
	where       string
	maxAttempts int
)

// addGenerateFlags registers the filtering flags of a generator command.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&where, "where", "", "expr-lang filter; values for which it is false are redrawn")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "Redraws allowed per value before giving up (0 uses the default)")
}

// generate runs f as a single-fixture plan so that command-line generation
// goes through the same validation, seeding and filtering as plan files.
func generate(cmd *cobra.Command, f fixture.Fixture) error {
	f.Count = count
	f.Where = where
	f.MaxAttempts = maxAttempts

	plan := &fixture.Plan{
		Version:  fixture.PlanVersion,
		Seed:     seed,
		Fixtures: []fixture.Fixture{f},
	}
	batches, err := fixture.NewRunner(logger).Run(plan)
	if err != nil {
		return unwrapPlanError(err)
	}
	batch := batches[0]

	return printResult(cmd, batch, func(w io.Writer) error {
		return writeValues(w, batch.Values)
	})
}

// unwrapPlanError drops the plan framing from errors caused by flags, since
// the user never wrote a plan.
func unwrapPlanError(err error) error {
	var result *fixture.ValidationResult
	if !errors.As(err, &result) {
		return err
	}
	msgs := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		field := strings.TrimPrefix(strings.TrimPrefix(e.Path, "fixtures[0]"), ".")
		if field == "" {
			msgs = append(msgs, e.Message)
			continue
		}
		msgs = append(msgs, field+": "+e.Message)
	}
	return fmt.Errorf("%w: %s", ErrInvalidFlags, strings.Join(msgs, "; "))
}

func writeValues(w io.Writer, values []any) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
