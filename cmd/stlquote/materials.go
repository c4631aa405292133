package main

import (
	"fmt"

	"github.com/philipparndt/stlquote/pkg/quote"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the configured materials and prices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		tag := quote.Language(cfg.Lang)

		fmt.Fprintf(out, "%-14s %-22s %s\n", "Key", "Name", "Price")
		fmt.Fprintln(out, "--------------------------------------------------")
		for _, m := range cfg.Pricing.Sorted() {
			fmt.Fprintf(out, "%-14s %-22s %.2f %s/cm³\n", m.Key, quote.MaterialName(tag, m), m.PricePerCm3, cfg.Pricing.Currency)
		}
		fmt.Fprintf(out, "\nSetup fee: %.2f %s\n", cfg.Pricing.SetupFee, cfg.Pricing.Currency)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
