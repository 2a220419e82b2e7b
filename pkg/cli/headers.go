package cli

import (
	"github.com/spf13/cobra"

	"github.com/getmockd/httpfixture/pkg/fixture"
)

var headersCmd = &cobra.Command{
	Use:   "headers",
	Short: "Generate HTTP header name/value pairs",
	Long: `Generate HTTP header name/value pairs.

Accept and Content-Type headers get MIME type values; every other header gets
a random string of 5 to 20 letters.

The --where expression sees "value" (the header value), "header" (a map with
"name" and "value") and "kind".`,
	Example: `  httpfixture headers -n 5
  httpfixture headers --where 'header.name == "Content-Type"' -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd, fixture.Fixture{
			Name: "headers",
			Kind: fixture.KindHeader,
		})
	},
}

func init() {
	addGenerateFlags(headersCmd)
	rootCmd.AddCommand(headersCmd)
}
