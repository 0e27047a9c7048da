package dividend

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// number matches "1075", "1,234,567.89" and "215.0000"; an optional cents
// suffix turns the value into dollars via /100.
const numberToken = `([0-9][\d,]*(?:\.\d{1,4})?)`

var (
	hundred     = decimal.NewFromInt(100)
	centsSuffix = regexp.MustCompile(`(?i)^([\d,]+(?:\.\d+)?)\s*c(?:ents?)?$`)
)

// ParseAmount parses a monetary token, tolerating currency symbols,
// thousands separators and the "215 cents" suffix form.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "AUD")
	s = strings.TrimPrefix(s, "A$")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)

	cents := false
	if m := centsSuffix.FindStringSubmatch(s); m != nil {
		s = m[1]
		cents = true
	}

	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if cents {
		d = d.Div(hundred)
	}
	return d, true
}

// amountExtractor finds the first labeled monetary value in text. Label
// synonyms are pooled across registry providers, so extraction does not
// depend on which provider was detected.
type amountExtractor struct {
	re *regexp.Regexp
}

// newAmountExtractor builds an extractor for the given label alternatives.
// Each label is a regex snippet matched case-insensitively.
func newAmountExtractor(labels ...string) amountExtractor {
	pattern := `(?i)(` + strings.Join(labels, `|`) + `)\s*[:\-]?\s*(?:AUD\s*)?(A?\$)?\s*` +
		numberToken + `(\s*c(?:ents?)?\b)?`
	return amountExtractor{re: regexp.MustCompile(pattern)}
}

// find returns the first labeled amount, already converted to dollars.
// A value is in cents when it carries a cents suffix, or when the label
// itself denominates cents ("Cents per Share: 215") and no dollar sign
// says otherwise.
func (e amountExtractor) find(text string) (decimal.Decimal, bool) {
	m := e.re.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, false
	}
	token := m[3]
	centsLabel := strings.Contains(strings.ToLower(m[1]), "cent")
	if m[4] != "" || (centsLabel && m[2] == "") {
		token += " cents"
	}
	return ParseAmount(token)
}

// countExtractor finds a labeled share/unit count.
type countExtractor struct {
	re *regexp.Regexp
}

func newCountExtractor(labels ...string) countExtractor {
	pattern := `(?i)(?:` + strings.Join(labels, `|`) + `)\s*[:\-]?\s*([0-9][\d,]*(?:\.\d+)?)`
	return countExtractor{re: regexp.MustCompile(pattern)}
}

func (e countExtractor) find(text string) (decimal.Decimal, bool) {
	m := e.re.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
