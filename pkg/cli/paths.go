package cli

import (
	"github.com/spf13/cobra"

	"github.com/getmockd/httpfixture/pkg/cli/internal/flags"
	"github.com/getmockd/httpfixture/pkg/fixture"
	"github.com/getmockd/httpfixture/pkg/httpgen"
)

var (
	pathMinDepth int
	pathMaxDepth int
	pathTrailing bool
	pathExclude  flags.StringSlice
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Generate URL paths",
	Long: `Generate URL paths made of "/" separated lowercase segments.

Depth is drawn uniformly from [--min-depth, --max-depth]. Paths matching any
--exclude glob (doublestar syntax, repeatable) are redrawn.`,
	Example: `  httpfixture paths --min-depth 2 --max-depth 3
  httpfixture paths --trailing --exclude '/admin/**' --exclude '/a*'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := &fixture.PathSettings{
			TrailingSeparator: pathTrailing,
			Exclude:           pathExclude.GetSlice(),
		}
		if cmd.Flags().Changed("min-depth") {
			settings.MinDepth = &pathMinDepth
		}
		if cmd.Flags().Changed("max-depth") {
			settings.MaxDepth = &pathMaxDepth
		}
		return generate(cmd, fixture.Fixture{
			Name: "paths",
			Kind: fixture.KindPath,
			Path: settings,
		})
	},
}

func init() {
	pathsCmd.Flags().IntVar(&pathMinDepth, "min-depth", httpgen.DefaultMinDepth, "Minimum number of segments")
	pathsCmd.Flags().IntVar(&pathMaxDepth, "max-depth", httpgen.DefaultMaxDepth, "Maximum number of segments")
	pathsCmd.Flags().BoolVar(&pathTrailing, "trailing", false, "End every path with a separator")
	pathsCmd.Flags().Var(&pathExclude, "exclude", "Glob of paths to skip (repeatable)")
	addGenerateFlags(pathsCmd)
	rootCmd.AddCommand(pathsCmd)
}
