package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyworks/dividend-engine/internal/domain/dividend"
	"github.com/tallyworks/dividend-engine/pkg/money"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a single dividend statement and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			result := dividend.NewParser().Parse(text)
			a.logger.Info("parsed statement",
				"file", args[0],
				"success", result.Success,
				"provider", result.Provider,
				"duration", result.ProcessingTime)

			out := cmd.OutOrStdout()
			if !result.Success {
				for _, e := range result.Errors {
					fmt.Fprintln(out, "error:", e)
				}
				return fmt.Errorf("could not parse %s", args[0])
			}

			d := result.Dividend
			fmt.Fprintf(out, "Company:            %s (%s)\n", d.CompanyName, d.ASXCode)
			if d.CompanyABN != "" {
				fmt.Fprintf(out, "ABN:                %s\n", d.CompanyABN)
			}
			fmt.Fprintf(out, "Provider:           %s\n", d.Provider)
			fmt.Fprintf(out, "Dividend amount:    %s\n", money.FormatAUD(d.DividendAmount))
			fmt.Fprintf(out, "Franked amount:     %s\n", money.FormatAUD(d.FrankedAmount))
			fmt.Fprintf(out, "Unfranked amount:   %s\n", money.FormatAUD(d.UnfrankedAmount))
			fmt.Fprintf(out, "Franking credits:   %s\n", money.FormatAUD(d.FrankingCredits))
			fmt.Fprintf(out, "Franking:           %s%%\n", d.FrankingPercentage.String())
			fmt.Fprintf(out, "Payment date:       %s\n", d.PaymentDate)
			fmt.Fprintf(out, "Financial year:     %s\n", d.FinancialYear)
			fmt.Fprintf(out, "Confidence:         %.2f\n", d.Confidence)

			for _, w := range result.Warnings {
				fmt.Fprintln(out, "warning:", w)
			}
			return nil
		},
	}
}
