package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tallyworks/dividend-engine/internal/domain/dividend"
	"github.com/tallyworks/dividend-engine/internal/domain/dividend/export"
	"github.com/tallyworks/dividend-engine/pkg/money"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <file>...",
		Short: "Print a per-financial-year tax summary of parsed statements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]dividend.BatchItem, 0, len(args))
			for _, path := range args {
				text, err := readDocument(cmd.Context(), path)
				if err != nil {
					return err
				}
				items = append(items, dividend.BatchItem{
					Filename: filepath.Base(path),
					Text:     text,
				})
			}

			result := dividend.NewParser().ParseBatch(items, nil)
			if result.Failed > 0 {
				a.logger.Warn("some statements failed to parse", "failed", result.Failed, "total", result.Total)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Financial Year\tStatements\tDividends\tFranking Credits\tGross Income")
			for _, s := range export.CalculateTaxSummary(result.Dividends) {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
					s.FinancialYear,
					s.Count,
					money.FormatAUD(s.TotalDividend),
					money.FormatAUD(s.TotalFrankingCredits),
					money.FormatAUD(s.GrossIncome))
			}
			return w.Flush()
		},
	}
}
