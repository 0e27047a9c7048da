package dividend

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FallbackDate is substituted when no payment date can be extracted.
// A fixed sentinel keeps parsing idempotent; using "today" would make the
// same text parse differently across runs.
const FallbackDate = "1900-01-01"

// dateLayouts are tried in order against a candidate token. Day-first
// layouts come first: this parser targets Australian statements.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"2/1/06",
	"02-01-2006",
	"2-1-2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2006-01-02",
}

// dateToken matches any of the accepted date shapes so labeled extractors
// can capture the raw token before normalization.
const dateToken = `(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}` +
	`|(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2},?\s+\d{4}` +
	`|\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}` +
	`|\d{4}-\d{2}-\d{2})`

// NormalizeDate parses a heterogeneous date token into ISO YYYY-MM-DD.
func NormalizeDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", ", ")
	s = strings.Join(strings.Fields(s), " ")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, normalizeMonth(s, layout)); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// normalizeMonth trims month names down to the three-letter form when a
// short-month layout is being tried, so truncated OCR artifacts like
// "Septem 15, 2024" still parse against "Jan 2, 2006".
func normalizeMonth(s, layout string) string {
	if strings.Contains(layout, "January") || !strings.Contains(layout, "Jan") {
		return s
	}
	return monthWord.ReplaceAllStringFunc(s, func(m string) string {
		if len(m) > 3 {
			return m[:3]
		}
		return m
	})
}

var monthWord = regexp.MustCompile(`[A-Za-z]{3,9}`)

// FinancialYear computes the Australian tax year ("YYYY-YYYY") for an ISO
// date: 1 July of year Y through 30 June of Y+1 belongs to "Y-(Y+1)".
func FinancialYear(isoDate string) (string, error) {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return "", fmt.Errorf("invalid ISO date %q: %w", isoDate, err)
	}
	year := t.Year()
	if t.Month() >= time.July {
		return fmt.Sprintf("%d-%d", year, year+1), nil
	}
	return fmt.Sprintf("%d-%d", year-1, year), nil
}

// dateExtractor finds the first labeled date in text.
type dateExtractor struct {
	re *regexp.Regexp
}

func newDateExtractor(labels ...string) dateExtractor {
	pattern := `(?i)(?:` + strings.Join(labels, `|`) + `)\s*[:\-]?\s*` + dateToken
	return dateExtractor{re: regexp.MustCompile(pattern)}
}

// find returns the first labeled date normalized to ISO form.
func (e dateExtractor) find(text string) (string, bool) {
	m := e.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return NormalizeDate(m[1])
}
