package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/httpfixture/pkg/fixture"
)

var runFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate every fixture of a plan file",
	Long: `Generate every fixture of a plan file (YAML, or JSON for .json files).

--seed overrides the plan seed and --count overrides every fixture count when
given explicitly. Each fixture draws from its own seed derived from the plan
seed and its position, so appending fixtures keeps earlier output stable.`,
	Example: `  httpfixture run -f fixtures.yaml
  httpfixture run -f fixtures.yaml --seed 7 -o json > fixtures.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := fixture.LoadFile(runFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			plan.Seed = seed
		}
		if cmd.Flags().Changed("count") {
			for i := range plan.Fixtures {
				plan.Fixtures[i].Count = count
			}
		}

		logger.Debug("running plan", "file", runFile, "fixtures", len(plan.Fixtures), "seed", plan.Seed)
		batches, err := fixture.NewRunner(logger).Run(plan)
		if err != nil {
			return err
		}

		return printResult(cmd, batches, func(w io.Writer) error {
			for i, b := range batches {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "# %s (%s, seed %d)\n", b.Name, b.Kind, b.Seed)
				if err := writeValues(w, b.Values); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "Plan file to run")
	_ = runCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(runCmd)
}
