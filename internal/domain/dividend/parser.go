package dividend

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrNoDividendAmount is the single hard extraction failure: no explicit
// gross amount, no franked+unfranked pair, and no DPS × shares derivation
// path. Everything else degrades to a warning.
const ErrNoDividendAmount = "Could not extract dividend amount"

// Warning texts for fallback derivations. Kept as constants so callers and
// tests can match on them.
const (
	WarnGrossFromDPS       = "Gross dividend calculated from DPS and shares held"
	WarnGrossMismatch      = "Stated dividend amount does not match franked plus unfranked, using their sum"
	WarnCreditsFromFranked = "Franking credits calculated from franked amount"
	WarnFrankedFromCredits = "Franked amount derived from franking credits"
	WarnPaymentDateMissing = "Could not extract payment date, using placeholder"
	WarnRecordDateDefault  = "Record date missing, defaulted to payment date"
	WarnInvalidABN         = "ABN failed checksum validation"
)

// Parser parses one dividend statement at a time. The zero-cost extractors
// are package-level compiled regexes, so the struct mainly exists to carry
// this API shape alongside the batch orchestrator.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts, reconciles and validates a single statement. It never
// returns a Go error: hard failures surface as Success=false with the
// reason in Errors, and every fallback derivation lands in Warnings.
func (p *Parser) Parse(text string) ParseResult {
	start := time.Now()

	result := ParseResult{
		Provider: DetectProvider(text),
		Errors:   []string{},
		Warnings: []string{},
	}

	fields := Extract(text)
	fields, warnings, ok := reconcile(fields)
	result.Warnings = append(result.Warnings, warnings...)
	if !ok {
		result.Errors = append(result.Errors, ErrNoDividendAmount)
		result.ProcessingTime = time.Since(start)
		return result
	}

	if fields.ABN.Present && !ValidateABN(fields.ABN.Value) {
		result.Warnings = append(result.Warnings, WarnInvalidABN)
	}

	dividend := build(fields, result.Provider, text)
	dividend.Confidence = Score(fields)
	dividend.ExtractionErrors = append(dividend.ExtractionErrors, result.Warnings...)

	result.Success = true
	result.Dividend = &dividend
	result.ProcessingTime = time.Since(start)
	return result
}

// reconcile fills derived amounts and dates. Derivations apply only when
// the primary field is absent, and each one is tagged SourceDerived so the
// confidence engine can discount it. Returns ok=false when no path to a
// gross dividend amount exists.
func reconcile(f Fields) (Fields, []string, bool) {
	warnings := []string{}

	// Gross amount: explicit, else franked+unfranked, else DPS × shares.
	if !f.GrossAmount.Present {
		switch {
		case f.FrankedAmount.Explicitly() && f.UnfrankedAmount.Explicitly():
			f.GrossAmount = Derived(f.FrankedAmount.Value.Add(f.UnfrankedAmount.Value))
		case f.DividendPerShare.Present && f.SharesHeld.Present:
			f.GrossAmount = Derived(f.DividendPerShare.Value.Mul(f.SharesHeld.Value).Round(2))
			warnings = append(warnings, WarnGrossFromDPS)
		default:
			return f, warnings, false
		}
	}

	// Franked amount from explicit credits when nothing else names it.
	if !f.FrankedAmount.Present && !f.UnfrankedAmount.Present && f.FrankingCredits.Explicitly() {
		franked := f.FrankingCredits.Value.Mul(taxRateComplement()).Div(CompanyTaxRate).Round(2)
		if franked.GreaterThan(f.GrossAmount.Value) {
			franked = f.GrossAmount.Value
		}
		f.FrankedAmount = Derived(franked)
		warnings = append(warnings, WarnFrankedFromCredits)
	}

	// Franked/unfranked complement against the gross amount.
	switch {
	case f.FrankedAmount.Present && !f.UnfrankedAmount.Present:
		f.UnfrankedAmount = Derived(clampZero(f.GrossAmount.Value.Sub(f.FrankedAmount.Value)))
	case !f.FrankedAmount.Present && f.UnfrankedAmount.Present:
		f.FrankedAmount = Derived(clampZero(f.GrossAmount.Value.Sub(f.UnfrankedAmount.Value)))
	case !f.FrankedAmount.Present && !f.UnfrankedAmount.Present:
		f.FrankedAmount = Derived(decimal.Zero)
		f.UnfrankedAmount = Derived(f.GrossAmount.Value)
	}

	// Franked + unfranked must equal the dividend amount. When a statement
	// explicitly contradicts itself, the itemized breakdown wins and the
	// gross is recomputed from it.
	if f.FrankedAmount.Explicitly() && f.UnfrankedAmount.Explicitly() {
		sum := f.FrankedAmount.Value.Add(f.UnfrankedAmount.Value)
		if sum.Sub(f.GrossAmount.Value).Abs().GreaterThanOrEqual(centTolerance) {
			f.GrossAmount = Derived(sum)
			warnings = append(warnings, WarnGrossMismatch)
		}
	}

	// Franking credits via the statutory gross-up when not stated.
	if !f.FrankingCredits.Present {
		credits := f.FrankedAmount.Value.Mul(CompanyTaxRate).Div(taxRateComplement()).Round(2)
		f.FrankingCredits = Derived(credits)
		warnings = append(warnings, WarnCreditsFromFranked)
	}

	// Dates: payment date falls back to a fixed placeholder (never a hard
	// error, so partially-scanned statements still import); the record
	// date defaults to the payment date.
	if !f.PaymentDate.Present {
		f.PaymentDate = Defaulted(FallbackDate)
		warnings = append(warnings, WarnPaymentDateMissing)
	}
	if !f.RecordDate.Present {
		f.RecordDate = Derived(f.PaymentDate.Value)
		warnings = append(warnings, WarnRecordDateDefault)
	}

	return f, warnings, true
}

// build assembles the immutable ParsedDividend from reconciled fields.
func build(f Fields, provider Provider, rawText string) ParsedDividend {
	gross := f.GrossAmount.Value

	percentage := decimal.Zero
	if gross.IsPositive() {
		percentage = f.FrankedAmount.Value.Div(gross).Mul(decimal.NewFromInt(100)).Round(0)
	}

	financialYear := ""
	if fy, err := FinancialYear(f.PaymentDate.Value); err == nil {
		financialYear = fy
	}

	return ParsedDividend{
		CompanyName:        f.CompanyName.Value,
		ASXCode:            f.ASXCode.Value,
		CompanyABN:         f.ABN.Value,
		CompanyACN:         f.ACN.Value,
		DividendAmount:     gross,
		FrankedAmount:      f.FrankedAmount.Value,
		UnfrankedAmount:    f.UnfrankedAmount.Value,
		FrankingCredits:    f.FrankingCredits.Value,
		FrankingPercentage: percentage,
		SharesHeld:         f.SharesHeld.Value,
		DividendPerShare:   f.DividendPerShare.Value,
		PaymentDate:        f.PaymentDate.Value,
		RecordDate:         f.RecordDate.Value,
		FinancialYear:      financialYear,
		Provider:           provider,
		RawText:            rawText,
		ExtractionErrors:   []string{},
	}
}

// Amounts agree when they match to the cent.
var centTolerance = decimal.NewFromFloat(0.01)

func taxRateComplement() decimal.Decimal {
	return decimal.NewFromInt(1).Sub(CompanyTaxRate)
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
