package dividend

import (
	"regexp"
	"strings"
)

var (
	abnRe = regexp.MustCompile(`(?i)\b(?:A\.?B\.?N\.?|Australian Business Number)[:.\s]*(\d{2}[ ]?\d{3}[ ]?\d{3}[ ]?\d{3})`)
	acnRe = regexp.MustCompile(`(?i)\b(?:A\.?C\.?N\.?|Australian Company Number)[:.\s]*(\d{3}[ ]?\d{3}[ ]?\d{3})`)
)

// ExtractABN finds a labeled 11-digit ABN, stripping internal whitespace.
func ExtractABN(text string) (string, bool) {
	m := abnRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.ReplaceAll(m[1], " ", ""), true
}

// ExtractACN finds a labeled 9-digit ACN, stripping internal whitespace.
func ExtractACN(text string) (string, bool) {
	m := acnRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.ReplaceAll(m[1], " ", ""), true
}

// abnWeights are the statutory check-digit weights for the 11 ABN digits.
var abnWeights = [11]int{10, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19}

// ValidateABN applies the weighted modulus-89 ABN check: subtract 1 from
// the leading digit, multiply each digit by its weight, and the sum must
// divide evenly by 89.
func ValidateABN(abn string) bool {
	if len(abn) != 11 {
		return false
	}
	sum := 0
	for i, r := range abn {
		if r < '0' || r > '9' {
			return false
		}
		digit := int(r - '0')
		if i == 0 {
			digit--
			if digit < 0 {
				return false
			}
		}
		sum += digit * abnWeights[i]
	}
	return sum%89 == 0
}
