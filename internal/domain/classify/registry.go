package classify

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// DocumentType identifies the category a block of extracted text belongs to.
type DocumentType string

const (
	TypeReceipt           DocumentType = "receipt"
	TypeBankStatement     DocumentType = "bank_statement"
	TypeDividendStatement DocumentType = "dividend_statement"
	TypeInvoice           DocumentType = "invoice"
	TypeContract          DocumentType = "contract"
	TypeUnknown           DocumentType = "unknown"
)

// SpecificityOrder ranks document types from most to least specific.
// When two types score within a small epsilon of each other the more
// specific type wins, so the permissive receipt category never shadows
// a dividend statement or an invoice.
var SpecificityOrder = []DocumentType{
	TypeDividendStatement,
	TypeBankStatement,
	TypeInvoice,
	TypeContract,
	TypeReceipt,
}

// Indicator is a single weighted signal for a document type. Exactly one
// of Phrase, Pattern or AllOf must be set:
//   - Phrase: case-insensitive substring
//   - Pattern: regular expression (applied case-insensitively)
//   - AllOf:  a co-occurrence cue; every listed phrase must appear
type Indicator struct {
	Phrase  string   `yaml:"phrase,omitempty"`
	Pattern string   `yaml:"pattern,omitempty"`
	AllOf   []string `yaml:"all_of,omitempty"`
	Weight  float64  `yaml:"weight"`
}

// Registry maps each document type to its ordered indicator list.
// It is plain data: the classifier compiles it and never mutates it,
// so pattern sets can be swapped without touching scoring logic.
type Registry map[DocumentType][]Indicator

var ErrEmptyRegistry = errors.New("registry has no indicators")

// Validate checks that every indicator is well-formed.
func (r Registry) Validate() error {
	total := 0
	for docType, indicators := range r {
		if docType == TypeUnknown {
			return fmt.Errorf("registry must not define indicators for %q", TypeUnknown)
		}
		for i, ind := range indicators {
			set := 0
			if ind.Phrase != "" {
				set++
			}
			if ind.Pattern != "" {
				set++
			}
			if len(ind.AllOf) > 0 {
				set++
			}
			if set != 1 {
				return fmt.Errorf("%s[%d]: exactly one of phrase, pattern or all_of must be set", docType, i)
			}
			if ind.Weight <= 0 {
				return fmt.Errorf("%s[%d]: weight must be positive", docType, i)
			}
			total++
		}
	}
	if total == 0 {
		return ErrEmptyRegistry
	}
	return nil
}

// ParseRegistry loads a registry from YAML. Types present in the document
// replace the corresponding default lists wholesale.
func ParseRegistry(data []byte) (Registry, error) {
	var raw map[DocumentType][]Indicator
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse registry YAML: %w", err)
	}
	reg := Registry(raw)
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// DefaultRegistry returns the built-in indicator sets. Weights are relative:
// 1.5 for signals that identify a type on their own, around 1.0 for strong
// hints, below 1.0 for signals shared across several document types.
func DefaultRegistry() Registry {
	return Registry{
		TypeDividendStatement: {
			{Phrase: "dividend statement", Weight: 1.5},
			{Phrase: "distribution statement", Weight: 1.5},
			{Phrase: "franking credit", Weight: 1.2},
			{Phrase: "franked amount", Weight: 1.2},
			{Phrase: "unfranked amount", Weight: 1.0},
			{Phrase: "dividend per share", Weight: 1.0},
			{Phrase: "distribution per unit", Weight: 1.0},
			{Phrase: "imputation credit", Weight: 1.0},
			{Phrase: "shares held", Weight: 0.8},
			{Phrase: "record date", Weight: 0.6},
			{Pattern: `(?i)holder\s+(?:reference|identification)\s+number`, Weight: 1.0},
			{Pattern: `(?i)dividend\s+reinvestment\s+plan|\bDRP\b`, Weight: 0.8},
		},
		TypeBankStatement: {
			{Phrase: "bank statement", Weight: 1.5},
			{AllOf: []string{"opening balance", "closing balance"}, Weight: 1.5},
			{Phrase: "statement period", Weight: 1.0},
			{Phrase: "available balance", Weight: 0.8},
			{Phrase: "withdrawal", Weight: 0.6},
			{Phrase: "deposit", Weight: 0.5},
			{Pattern: `(?i)\bBSB\b[:\s]*\d{3}[- ]?\d{3}`, Weight: 1.2},
			{Pattern: `(?i)account\s+(?:number|no\.?)[:\s]*\d+`, Weight: 0.8},
		},
		TypeInvoice: {
			{Phrase: "tax invoice", Weight: 1.5},
			{AllOf: []string{"payment terms", "invoice number"}, Weight: 1.5},
			{Phrase: "amount due", Weight: 1.0},
			{Phrase: "bill to", Weight: 0.8},
			{Phrase: "due date", Weight: 0.6},
			{Phrase: "invoice", Weight: 0.6},
			{Pattern: `(?i)invoice\s*(?:#|no\.?|number)[:\s]*\S+`, Weight: 1.2},
			{Pattern: `(?i)\bnet\s+\d{1,3}\s*days?\b`, Weight: 0.8},
		},
		TypeContract: {
			{Phrase: "this agreement", Weight: 1.2},
			{Phrase: "hereinafter", Weight: 1.0},
			{Phrase: "governing law", Weight: 1.0},
			{Phrase: "in witness whereof", Weight: 1.2},
			{AllOf: []string{"terms and conditions", "signature"}, Weight: 1.0},
			{Phrase: "the parties agree", Weight: 1.0},
			{Phrase: "obligations", Weight: 0.5},
		},
		TypeReceipt: {
			{Phrase: "receipt", Weight: 1.0},
			{Phrase: "subtotal", Weight: 0.6},
			{Phrase: "change due", Weight: 0.6},
			{Phrase: "eftpos", Weight: 0.5},
			{Phrase: "thank you for your purchase", Weight: 0.8},
			{Phrase: "gst included", Weight: 0.5},
			{Pattern: `(?i)total[:\s]*\$?\s*[\d,]+\.\d{2}`, Weight: 0.5},
		},
	}
}
