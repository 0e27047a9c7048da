package dividend

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// providerSignal is one weighted branding phrase for a registry provider.
type providerSignal struct {
	phrase string
	weight float64
}

// providerSignals follow the same scoring approach as the document
// classifier, over a fixed, smaller pattern set per provider. Generic
// dividend phrasing scores for direct so that unbranded statements issued
// by the company itself are still recognised.
var providerSignals = map[Provider][]providerSignal{
	ProviderComputershare: {
		{phrase: "computershare", weight: 2.0},
		{phrase: "computershare investor services", weight: 1.0},
		{phrase: "www.computershare.com", weight: 1.0},
	},
	ProviderLink: {
		{phrase: "link market services", weight: 2.0},
		{phrase: "linkmarketservices", weight: 1.0},
		{phrase: "link group", weight: 1.0},
	},
	ProviderBoardroom: {
		{phrase: "boardroom", weight: 2.0},
		{phrase: "boardroom pty limited", weight: 1.0},
		{phrase: "boardroomlimited", weight: 1.0},
	},
	ProviderDirect: {
		{phrase: "dividend statement", weight: 1.0},
		{phrase: "distribution statement", weight: 1.0},
		{phrase: "dividend advice", weight: 1.0},
	},
}

// providerOrder keeps detection deterministic when scores tie; branded
// providers win over the generic direct bucket.
var providerOrder = []Provider{
	ProviderComputershare,
	ProviderLink,
	ProviderBoardroom,
	ProviderDirect,
}

// fuzzyMaxDistance is the worst Levenshtein distance still accepted when a
// branding token is only fuzzily present (OCR noise like "Computershore").
const fuzzyMaxDistance = 2

// DetectProvider scores text against each provider's branding phrases and
// returns the best match, or ProviderUnknown when nothing scores. The
// result only selects which label synonyms are favoured downstream; field
// extraction runs regardless of the detected provider.
func DetectProvider(text string) Provider {
	lower := strings.ToLower(text)
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})

	best := ProviderUnknown
	bestScore := 0.0
	for _, provider := range providerOrder {
		score := 0.0
		for _, sig := range providerSignals[provider] {
			if strings.Contains(lower, sig.phrase) {
				score += sig.weight
				continue
			}
			// Single-word brands get a fuzzy second chance against
			// individual tokens.
			if !strings.ContainsRune(sig.phrase, ' ') && fuzzyTokenMatch(sig.phrase, tokens) {
				score += sig.weight / 2
			}
		}
		if score > bestScore {
			bestScore = score
			best = provider
		}
	}
	return best
}

// fuzzyTokenMatch reports whether any token is within fuzzyMaxDistance
// edits of the brand word.
func fuzzyTokenMatch(brand string, tokens []string) bool {
	for _, tok := range tokens {
		if len(tok) < len(brand)-fuzzyMaxDistance || len(tok) > len(brand)+fuzzyMaxDistance {
			continue
		}
		if fuzzy.LevenshteinDistance(brand, tok) <= fuzzyMaxDistance {
			return true
		}
	}
	return false
}
