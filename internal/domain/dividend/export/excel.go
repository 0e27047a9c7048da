package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tallyworks/dividend-engine/internal/domain/dividend"
)

const sheetName = "Dividends"

// ToExcel writes dividends as an XLSX workbook with a single sheet
// mirroring the CSV column order.
func ToExcel(w io.Writer, dividends []dividend.ParsedDividend) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, header := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range BuildRows(dividends) {
		values := []string{
			row.CompanyName, row.ASXCode, row.PaymentDate,
			row.DividendAmount, row.FrankedAmount, row.UnfrankedAmount,
			row.FrankingCredits, row.FrankingPercentage,
			row.SharesHeld, row.DividendPerShare,
			row.FinancialYear, row.Provider, row.Confidence,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
