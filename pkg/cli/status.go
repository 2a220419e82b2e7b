package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/httpfixture/pkg/cli/internal/output"
	"github.com/getmockd/httpfixture/pkg/fixture"
	"github.com/getmockd/httpfixture/pkg/httpgen"
)

var (
	statusClass   string
	statusExclude []int
	statusList    bool
)

// StatusTable is one status class, as printed by status --list.
type StatusTable struct {
	Class string `json:"class" yaml:"class"`
	Codes []int  `json:"codes" yaml:"codes"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Generate HTTP status codes",
	Long: `Generate HTTP status codes.

Codes are drawn uniformly from the selected class, or from every class when
no class is given. Codes passed to --exclude are never produced.`,
	Example: `  httpfixture status --class client-error
  httpfixture status --class 5xx -n 3
  httpfixture status --exclude 404,500 --seed 42 -o json
  httpfixture status --list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if statusList {
			return listStatusCodes(cmd)
		}
		var settings *fixture.StatusSettings
		if statusClass != "" || len(statusExclude) > 0 {
			settings = &fixture.StatusSettings{Class: statusClass, Exclude: statusExclude}
		}
		return generate(cmd, fixture.Fixture{
			Name:   "status",
			Kind:   fixture.KindStatus,
			Status: settings,
		})
	},
}

func listStatusCodes(cmd *cobra.Command) error {
	classes := httpgen.StatusClasses()
	if statusClass != "" {
		c, err := httpgen.ParseStatusClass(statusClass)
		if err != nil {
			return err
		}
		classes = []httpgen.StatusClass{c}
	}

	tables := make([]StatusTable, 0, len(classes))
	for _, c := range classes {
		tables = append(tables, StatusTable{Class: c.String(), Codes: httpgen.StatusCodeValues(c)})
	}

	return printResult(cmd, tables, func(w io.Writer) error {
		tw := output.Table(w)
		fmt.Fprintln(tw, "CLASS\tCODE")
		for _, t := range tables {
			for _, code := range t.Codes {
				fmt.Fprintf(tw, "%s\t%d\n", t.Class, code)
			}
		}
		return tw.Flush()
	})
}

func init() {
	statusCmd.Flags().StringVar(&statusClass, "class", "", "Restrict to one class: informational, success, redirect, client-error, server-error (or 1xx..5xx)")
	statusCmd.Flags().IntSliceVar(&statusExclude, "exclude", nil, "Codes never to produce, e.g. 404,500")
	statusCmd.Flags().BoolVar(&statusList, "list", false, "Print the curated status codes instead of generating")
	addGenerateFlags(statusCmd)
	rootCmd.AddCommand(statusCmd)
}
