package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tallyworks/dividend-engine/internal/domain/dividend"
	"github.com/tallyworks/dividend-engine/internal/domain/dividend/export"
	"github.com/tallyworks/dividend-engine/pkg/money"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Parse many statements and export the results",
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

			result := dividend.NewParser().ParseBatch(items, func(p dividend.Progress) {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] %s\n", p.Index+1, p.Total, p.Message)
			})

			for _, r := range result.Results {
				if !r.Result.Success {
					a.logger.Warn("statement failed", "file", r.Filename, "errors", r.Result.Errors)
				}
			}

			if format == "" {
				format = a.cfg.Export.Format
			}
			if out == "" {
				out = filepath.Join(a.cfg.Export.OutputDir, "dividends."+format)
			}
			if err := writeExport(format, out, result.Dividends); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Parsed %d of %d statements (%d failed)\nTotal dividends: %s\nTotal franking credits: %s\nWrote %s\n",
				result.Successful, result.Total, result.Failed,
				money.FormatAUD(result.TotalDividendAmount),
				money.FormatAUD(result.TotalFrankingCredits),
				out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "export format: csv or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file path")
	return cmd
}

func writeExport(format, path string, dividends []dividend.ParsedDividend) error {
	switch format {
	case "csv":
		csv, err := export.ToCSV(dividends)
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(csv), 0o644)
	case "xlsx":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.ToExcel(f, dividends)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
