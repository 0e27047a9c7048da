package dividend

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParseBatch parses each item sequentially. One item failing never aborts
// the batch: its errors are recorded on its own result and processing
// moves on. Totals are summed across successful dividends only.
//
// The progress callback, when non-nil, fires before each item with the
// current index, filename and a status message; it is the engine's only
// side effect, there to feed UI progress without coupling to any UI.
func (p *Parser) ParseBatch(items []BatchItem, progress ProgressFunc) BatchParseResult {
	batch := BatchParseResult{
		Total:                len(items),
		Results:              make([]BatchItemResult, 0, len(items)),
		Dividends:            make([]ParsedDividend, 0, len(items)),
		TotalDividendAmount:  decimal.Zero,
		TotalFrankingCredits: decimal.Zero,
	}

	for i, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		if progress != nil {
			progress(Progress{
				Index:    i,
				Total:    len(items),
				Filename: item.Filename,
				Message:  fmt.Sprintf("Parsing %s (%d of %d)", item.Filename, i+1, len(items)),
			})
		}

		result := p.Parse(item.Text)
		batch.Results = append(batch.Results, BatchItemResult{
			ID:       item.ID,
			Filename: item.Filename,
			Result:   result,
		})

		if result.Success && result.Dividend != nil {
			batch.Successful++
			batch.Dividends = append(batch.Dividends, *result.Dividend)
			batch.TotalDividendAmount = batch.TotalDividendAmount.Add(result.Dividend.DividendAmount)
			batch.TotalFrankingCredits = batch.TotalFrankingCredits.Add(result.Dividend.FrankingCredits)
		} else {
			batch.Failed++
		}
	}

	return batch
}
