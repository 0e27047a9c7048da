// Package dividend turns unstructured dividend-statement text into
// structured, validated financial facts. Every parse call is independent
// and side-effect-free; callers may parallelize freely.
package dividend

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyTaxRate is the Australian corporate tax rate used to gross up
// franked amounts into franking credits: credits = franked × rate/(1−rate).
var CompanyTaxRate = decimal.NewFromFloat(0.30)

// Provider identifies which share-registry institution issued a statement.
// Detection only selects which label synonyms are favoured; the output
// schema is identical for every provider.
type Provider string

const (
	ProviderComputershare Provider = "computershare"
	ProviderLink          Provider = "link"
	ProviderBoardroom     Provider = "boardroom"
	ProviderDirect        Provider = "direct"
	ProviderUnknown       Provider = "unknown"
)

// Source tags where a field value came from. Confidence scoring and
// warning generation are driven mechanically from these tags.
type Source string

const (
	// SourceExplicit: the value was stated in the document.
	SourceExplicit Source = "explicit"
	// SourceDerived: the value was computed from other explicit fields.
	SourceDerived Source = "derived"
	// SourceDefault: a fallback placeholder was substituted.
	SourceDefault Source = "default"
)

// Field is an optional value plus its provenance.
type Field[T any] struct {
	Value   T
	Source  Source
	Present bool
}

// Explicit wraps a value extracted directly from the text.
func Explicit[T any](v T) Field[T] {
	return Field[T]{Value: v, Source: SourceExplicit, Present: true}
}

// Derived wraps a value computed from other fields.
func Derived[T any](v T) Field[T] {
	return Field[T]{Value: v, Source: SourceDerived, Present: true}
}

// Defaulted wraps a fallback placeholder.
func Defaulted[T any](v T) Field[T] {
	return Field[T]{Value: v, Source: SourceDefault, Present: true}
}

// Explicitly reports whether the field holds a directly extracted value.
func (f Field[T]) Explicitly() bool {
	return f.Present && f.Source == SourceExplicit
}

// Fields is the intermediate extraction result: every field independently
// optional, so a miss in one extractor never blocks another.
type Fields struct {
	CompanyName      Field[string]
	ASXCode          Field[string]
	ABN              Field[string]
	ACN              Field[string]
	GrossAmount      Field[decimal.Decimal]
	FrankedAmount    Field[decimal.Decimal]
	UnfrankedAmount  Field[decimal.Decimal]
	FrankingCredits  Field[decimal.Decimal]
	SharesHeld       Field[decimal.Decimal]
	DividendPerShare Field[decimal.Decimal]
	PaymentDate      Field[string]
	RecordDate       Field[string]
}

// ParsedDividend is one successfully parsed statement. Instances are built
// fresh per parse call and never mutated afterwards.
type ParsedDividend struct {
	CompanyName string
	ASXCode     string
	CompanyABN  string
	CompanyACN  string

	DividendAmount     decimal.Decimal
	FrankedAmount      decimal.Decimal
	UnfrankedAmount    decimal.Decimal
	FrankingCredits    decimal.Decimal
	FrankingPercentage decimal.Decimal

	SharesHeld       decimal.Decimal
	DividendPerShare decimal.Decimal

	PaymentDate   string // ISO YYYY-MM-DD
	RecordDate    string // ISO YYYY-MM-DD
	FinancialYear string // "YYYY-YYYY"

	Provider Provider
	RawText  string

	Confidence       float64
	ExtractionErrors []string
}

// ParseResult is the envelope for a single-document parse.
type ParseResult struct {
	Success        bool
	Dividend       *ParsedDividend
	Errors         []string
	Warnings       []string
	Provider       Provider
	ProcessingTime time.Duration
}

// BatchItem is one document submitted to the batch orchestrator.
type BatchItem struct {
	ID       uuid.UUID
	Filename string
	Text     string
}

// BatchItemResult pairs an item with its parse outcome.
type BatchItemResult struct {
	ID       uuid.UUID
	Filename string
	Result   ParseResult
}

// BatchParseResult aggregates a whole batch run.
type BatchParseResult struct {
	Total      int
	Successful int
	Failed     int

	Results   []BatchItemResult
	Dividends []ParsedDividend

	TotalDividendAmount  decimal.Decimal
	TotalFrankingCredits decimal.Decimal
}

// Progress is handed to the batch progress callback once per item, before
// that item is parsed.
type Progress struct {
	Index    int // zero-based item index
	Total    int
	Filename string
	Message  string
}

// ProgressFunc receives interim batch state. It must not block; the
// orchestrator invokes it synchronously between items.
type ProgressFunc func(Progress)
