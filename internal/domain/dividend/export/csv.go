// Package export renders parsed dividends for the surrounding application:
// CSV and XLSX tables plus financial-year roll-ups. Column order is fixed
// and documented; numeric fields carry two decimal places.
package export

import (
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/tallyworks/dividend-engine/internal/domain/dividend"
)

// Headers is the contract column order for both CSV and XLSX output.
var Headers = []string{
	"Company Name",
	"ASX Code",
	"Payment Date",
	"Dividend Amount",
	"Franked Amount",
	"Unfranked Amount",
	"Franking Credits",
	"Franking Percentage",
	"Shares Held",
	"Dividend Per Share",
	"Financial Year",
	"Provider",
	"Confidence",
}

// Row is one exported dividend. Fields are pre-rendered strings so the
// two-decimal contract holds regardless of the output format.
type Row struct {
	CompanyName        string `csv:"Company Name"`
	ASXCode            string `csv:"ASX Code"`
	PaymentDate        string `csv:"Payment Date"`
	DividendAmount     string `csv:"Dividend Amount"`
	FrankedAmount      string `csv:"Franked Amount"`
	UnfrankedAmount    string `csv:"Unfranked Amount"`
	FrankingCredits    string `csv:"Franking Credits"`
	FrankingPercentage string `csv:"Franking Percentage"`
	SharesHeld         string `csv:"Shares Held"`
	DividendPerShare   string `csv:"Dividend Per Share"`
	FinancialYear      string `csv:"Financial Year"`
	Provider           string `csv:"Provider"`
	Confidence         string `csv:"Confidence"`
}

// BuildRows converts dividends into export rows, preserving order.
func BuildRows(dividends []dividend.ParsedDividend) []Row {
	rows := make([]Row, len(dividends))
	for i, d := range dividends {
		rows[i] = Row{
			CompanyName:        d.CompanyName,
			ASXCode:            d.ASXCode,
			PaymentDate:        d.PaymentDate,
			DividendAmount:     d.DividendAmount.StringFixed(2),
			FrankedAmount:      d.FrankedAmount.StringFixed(2),
			UnfrankedAmount:    d.UnfrankedAmount.StringFixed(2),
			FrankingCredits:    d.FrankingCredits.StringFixed(2),
			FrankingPercentage: d.FrankingPercentage.StringFixed(2),
			SharesHeld:         d.SharesHeld.StringFixed(2),
			DividendPerShare:   d.DividendPerShare.StringFixed(2),
			FinancialYear:      d.FinancialYear,
			Provider:           string(d.Provider),
			Confidence:         fmt.Sprintf("%.2f", d.Confidence),
		}
	}
	return rows
}

// ToCSV renders dividends as a CSV document with the Headers column order.
func ToCSV(dividends []dividend.ParsedDividend) (string, error) {
	rows := BuildRows(dividends)
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("failed to marshal CSV: %w", err)
	}
	return out, nil
}
