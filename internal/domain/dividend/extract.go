package dividend

import (
	"regexp"
	"strings"
)

// Label synonyms are pooled across every registry provider: e.g. a trust
// distribution statement says "Distribution per Unit" where Computershare
// says "Dividend per Share", and both are always tried.
var (
	grossExtractor = newAmountExtractor(
		`gross\s+dividend`,
		`gross\s+distribution`,
		`dividend\s+amount`,
		`total\s+dividend`,
		`gross\s+amount`,
		`gross\s+payment`,
	)
	frankedExtractor = newAmountExtractor(
		`\bfranked\s+amount`,
		`\bfranked\s+portion`,
		`\bfranked\s+dividend`,
	)
	unfrankedExtractor = newAmountExtractor(
		`unfranked\s+amount`,
		`unfranked\s+portion`,
		`unfranked\s+dividend`,
	)
	creditsExtractor = newAmountExtractor(
		`franking\s+credits?`,
		`imputation\s+credits?`,
	)
	dpsExtractor = newAmountExtractor(
		`dividend\s+per\s+share`,
		`distribution\s+per\s+unit`,
		`rate\s+per\s+share`,
		`cents\s+per\s+share`,
	)
	sharesExtractor = newCountExtractor(
		`shares\s+held`,
		`units\s+held`,
		`number\s+of\s+shares`,
		`number\s+of\s+units`,
		`holding\s+balance`,
	)
	paymentDateExtractor = newDateExtractor(
		`payment\s+date`,
		`date\s+paid`,
		`date\s+of\s+payment`,
		`paid\s+on`,
		`payable\s+date`,
	)
	recordDateExtractor = newDateExtractor(
		`record\s+date`,
		`books\s+clos(?:e|ing)\s+date`,
	)

	asxCodeRe = regexp.MustCompile(`(?:ASX(?:\s+Code)?[:\s]+|\(ASX:\s*)([A-Z]{3,5})\b`)

	companySuffixes = []string{"limited", "ltd", "pty ltd", "plc", "group", "trust", "corporation", "holdings"}
	companySkip     = []string{
		"dividend", "distribution", "statement", "abn", "acn", "asx",
		"payment", "record", "holder", "shareholder", "gross", "net",
		"franked", "unfranked", "franking", "total", "shares", "units",
	}
)

// Extract runs every field extractor independently over the text. A miss
// in one extractor never blocks another; reconciliation and derivation
// happen later in the parser.
func Extract(text string) Fields {
	var f Fields

	if name, ok := extractCompanyName(text); ok {
		f.CompanyName = Explicit(name)
	}
	if m := asxCodeRe.FindStringSubmatch(text); m != nil {
		f.ASXCode = Explicit(m[1])
	}
	if abn, ok := ExtractABN(text); ok {
		f.ABN = Explicit(abn)
	}
	if acn, ok := ExtractACN(text); ok {
		f.ACN = Explicit(acn)
	}

	if v, ok := grossExtractor.find(text); ok {
		f.GrossAmount = Explicit(v)
	}
	if v, ok := frankedExtractor.find(text); ok {
		f.FrankedAmount = Explicit(v)
	}
	if v, ok := unfrankedExtractor.find(text); ok {
		f.UnfrankedAmount = Explicit(v)
	}
	if v, ok := creditsExtractor.find(text); ok {
		f.FrankingCredits = Explicit(v)
	}
	if v, ok := dpsExtractor.find(text); ok {
		f.DividendPerShare = Explicit(v)
	}
	if v, ok := sharesExtractor.find(text); ok {
		f.SharesHeld = Explicit(v)
	}

	if v, ok := paymentDateExtractor.find(text); ok {
		f.PaymentDate = Explicit(v)
	}
	if v, ok := recordDateExtractor.find(text); ok {
		f.RecordDate = Explicit(v)
	}

	return f
}

// extractCompanyName scans the opening lines for something that reads as a
// company name, preferring lines carrying a corporate suffix.
func extractCompanyName(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	limit := 10
	if len(lines) < limit {
		limit = len(lines)
	}

	fallback := ""
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) < 4 || len(line) > 100 {
			continue
		}
		lower := strings.ToLower(line)
		if startsWithAny(lower, companySkip) || !containsLetter(line) {
			continue
		}
		// Lines carrying amounts are labels, not letterhead.
		if strings.ContainsRune(line, '$') {
			continue
		}
		for _, suffix := range companySuffixes {
			if strings.Contains(lower, suffix) {
				return line, true
			}
		}
		if fallback == "" {
			fallback = line
		}
	}
	if fallback != "" {
		return fallback, true
	}
	return "", false
}

func startsWithAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
