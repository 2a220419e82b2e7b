package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/httpfixture/pkg/cli/internal/output"
)

// printResult outputs a command result.
//
// Contract: in json and yaml mode ONLY the encoding of data is written to
// stdout. Human-readable prose must go to stderr or be omitted entirely.
// textFn is called only in text mode.
func printResult(cmd *cobra.Command, data any, textFn func(w io.Writer) error) error {
	w := cmd.OutOrStdout()
	switch format {
	case output.FormatJSON:
		return output.JSON(w, data)
	case output.FormatYAML:
		return output.YAML(w, data)
	default:
		return textFn(w)
	}
}
