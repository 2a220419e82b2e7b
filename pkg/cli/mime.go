package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/httpfixture/pkg/cli/internal/output"
	"github.com/getmockd/httpfixture/pkg/fixture"
	"github.com/getmockd/httpfixture/pkg/httpgen"
)

var (
	mimeCategory string
	mimeList     bool
)

// MimeTable is one curated MIME table, as printed by mime --list.
type MimeTable struct {
	Category string   `json:"category" yaml:"category"`
	Values   []string `json:"values" yaml:"values"`
}

var mimeCmd = &cobra.Command{
	Use:   "mime",
	Short: "Generate MIME types",
	Long: `Generate MIME types.

Without --category every curated type shows up within the first draws, mixed
with random type/subtype strings. With --category only that table is used.`,
	Example: `  httpfixture mime
  httpfixture mime --category image -n 3
  httpfixture mime --list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if mimeList {
			return listMimeTypes(cmd)
		}
		return generate(cmd, fixture.Fixture{
			Name: "mime",
			Kind: fixture.KindMime,
			Mime: &fixture.MimeSettings{Category: mimeCategory},
		})
	},
}

func listMimeTypes(cmd *cobra.Command) error {
	categories := httpgen.MimeCategories()
	if mimeCategory != "" && !strings.EqualFold(mimeCategory, "all") {
		c, err := httpgen.ParseMimeCategory(mimeCategory)
		if err != nil {
			return err
		}
		categories = []httpgen.MimeCategory{c}
	}

	tables := make([]MimeTable, 0, len(categories))
	for _, c := range categories {
		tables = append(tables, MimeTable{Category: c.String(), Values: httpgen.MimeTypeValues(c)})
	}

	return printResult(cmd, tables, func(w io.Writer) error {
		tw := output.Table(w)
		fmt.Fprintln(tw, "CATEGORY\tMIME TYPE")
		for _, t := range tables {
			for _, v := range t.Values {
				fmt.Fprintf(tw, "%s\t%s\n", t.Category, v)
			}
		}
		return tw.Flush()
	})
}

func init() {
	mimeCmd.Flags().StringVar(&mimeCategory, "category", "", "Restrict to one category: application, audio, image, multipart, text or video")
	mimeCmd.Flags().BoolVar(&mimeList, "list", false, "Print the curated MIME tables instead of generating")
	addGenerateFlags(mimeCmd)
	rootCmd.AddCommand(mimeCmd)
}
