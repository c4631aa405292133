package main

import (
	"encoding/json"
	"io"

	"github.com/philipparndt/stlquote/pkg/quote"
	"github.com/philipparndt/stlquote/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	quoteMaterial string
	quoteLang     string
	quoteJSON     bool
)

type quoteOutput struct {
	Summary stl.GeometrySummary `json:"summary"`
	Quote   quote.Quote         `json:"quote"`
}

var quoteCmd = &cobra.Command{
	Use:   "quote [file]",
	Short: "Estimate the print price of an STL file",
	Long: `Estimate the print price of an STL file from its bounding-box volume.
The volume is an estimate (bounding box times fill factor), so the price is too.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVarP(&quoteMaterial, "material", "m", "pla", "Material key (see 'stlquote materials')")
	quoteCmd.Flags().StringVarP(&quoteLang, "lang", "l", "", "Output language (it, en); defaults to the configured language")
	quoteCmd.Flags().BoolVar(&quoteJSON, "json", false, "Print summary and quote as JSON")
}

func runQuote(cmd *cobra.Command, args []string) error {
	summary, err := summarizeFile(args[0])
	if err != nil {
		return err
	}
	return printQuote(cmd.OutOrStdout(), summary, quoteMaterial, quoteJSON)
}

func printQuote(out io.Writer, summary stl.GeometrySummary, material string, asJSON bool) error {
	q, err := cfg.Pricing.Quote(summary, material)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(quoteOutput{Summary: summary, Quote: q})
	}

	lang := quoteLang
	if lang == "" {
		lang = cfg.Lang
	}
	return quote.Render(out, lang, summary, q)
}
