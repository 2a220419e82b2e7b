// httpfixture CLI - Command-line generator for randomized HTTP test fixtures
package main

import "github.com/getmockd/httpfixture/pkg/cli"

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	cli.Execute()
}
