package export

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tallyworks/dividend-engine/internal/domain/dividend"
)

// YearSummary is the tax roll-up for one financial year. Gross income is
// the assessable figure: cash dividends plus franking credits.
type YearSummary struct {
	FinancialYear        string
	TotalDividend        decimal.Decimal
	TotalFrankingCredits decimal.Decimal
	GrossIncome          decimal.Decimal
	Count                int
}

// GroupByFinancialYear buckets dividends under their financial year,
// preserving the input order within each bucket.
func GroupByFinancialYear(dividends []dividend.ParsedDividend) map[string][]dividend.ParsedDividend {
	groups := make(map[string][]dividend.ParsedDividend)
	for _, d := range dividends {
		groups[d.FinancialYear] = append(groups[d.FinancialYear], d)
	}
	return groups
}

// CalculateTaxSummary rolls dividends up per financial year, sorted by
// year ascending.
func CalculateTaxSummary(dividends []dividend.ParsedDividend) []YearSummary {
	byYear := make(map[string]*YearSummary)
	for _, d := range dividends {
		s := byYear[d.FinancialYear]
		if s == nil {
			s = &YearSummary{
				FinancialYear:        d.FinancialYear,
				TotalDividend:        decimal.Zero,
				TotalFrankingCredits: decimal.Zero,
			}
			byYear[d.FinancialYear] = s
		}
		s.TotalDividend = s.TotalDividend.Add(d.DividendAmount)
		s.TotalFrankingCredits = s.TotalFrankingCredits.Add(d.FrankingCredits)
		s.Count++
	}

	summaries := make([]YearSummary, 0, len(byYear))
	for _, s := range byYear {
		s.GrossIncome = s.TotalDividend.Add(s.TotalFrankingCredits)
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].FinancialYear < summaries[j].FinancialYear
	})
	return summaries
}
