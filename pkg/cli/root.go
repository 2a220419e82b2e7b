package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/httpfixture/pkg/cli/internal/output"
	"github.com/getmockd/httpfixture/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	seed         uint64
	count        int
	outputFormat string
	jsonOutput   bool
	logLevel     string
	logFormat    string

	// Resolved from the flags before each command runs
	format = output.FormatText
	logger = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "httpfixture",
	Short: "httpfixture generates randomized HTTP test fixtures",
	Long: `httpfixture generates status codes, MIME types, URL paths and headers for
HTTP tests. Curated MIME types and header names are guaranteed to show up
early in a stream, then random values keep exercising the edges.

Pass --seed to make a run reproducible. Without it a random seed is used and
reported in json/yaml output and at --log-level info.`,
	SilenceUsage:      true,
	SilenceErrors:     true, // We handle errors in Execute()
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup resolves output and logging settings. Flags win over
// HTTPFIXTURE_LOG_* variables, which win over the defaults.
func setup(cmd *cobra.Command, _ []string) error {
	f, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	if jsonOutput {
		f = output.FormatJSON
	}
	format = f

	if count < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidCount, count)
	}

	cfg := logging.FromEnv(logging.DefaultConfig())
	cfg.Output = cmd.ErrOrStderr()
	if cmd.Flags().Changed("log-level") {
		cfg.Level = logging.ParseLevel(logLevel)
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Format = logging.ParseFormat(logFormat)
	}
	logger = logging.New(cfg).With(slog.String("command", cmd.Name()))
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Uint64Var(&seed, "seed", 0, "Random seed for reproducible output (0 picks a random seed)")
	pf.IntVarP(&count, "count", "n", 10, "Number of values to generate")
	pf.StringVarP(&outputFormat, "output", "o", string(output.FormatText), "Output format: text, json or yaml")
	pf.BoolVar(&jsonOutput, "json", false, "Shorthand for --output json")
	pf.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	pf.StringVar(&logFormat, "log-format", "text", "Log format: text or json")
}
