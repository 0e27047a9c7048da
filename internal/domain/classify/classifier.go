// Package classify identifies what kind of financial document a block of
// extracted text represents. Scoring is driven entirely by a data-driven
// indicator registry; the classifier itself is a pure function over text.
package classify

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Confidence thresholds. Exposed as named constants so callers and tests
// can assert on the exact band boundaries.
const (
	// AcceptThreshold and above: safe to import without review.
	AcceptThreshold = 0.80
	// ReviewThreshold and above (below AcceptThreshold): flag for review.
	ReviewThreshold = 0.50
	// AcceptableConfidence is the floor below which a classification
	// should not be trusted at all.
	AcceptableConfidence = 0.60
)

// minScore is the raw score a type must reach before it beats unknown.
// tieEpsilon is the score window within which specificity breaks ties.
// saturationK shapes the score→confidence curve: a handful of strong
// indicators clears 0.6 and additional matches show diminishing returns.
const (
	minScore    = 1.0
	tieEpsilon  = 0.25
	saturationK = 2.2
)

// Method records which kind of indicator drove a classification.
type Method string

const (
	MethodKeyword Method = "keyword"
	MethodPattern Method = "pattern"
	MethodNone    Method = "none"
)

// Action is the recommended handling for a classification result.
type Action string

const (
	ActionAccept Action = "accept"
	ActionReview Action = "review"
	ActionManual Action = "manual"
)

// Metadata carries the evidence behind a classification.
type Metadata struct {
	DetectedKeywords []string
	Format           string
}

// ClassificationResult is the outcome of classifying one document.
type ClassificationResult struct {
	Type       DocumentType
	Confidence float64
	Method     Method
	Metadata   Metadata
}

// phraseGroup holds every indicator sharing one dictionary phrase, in the
// same order as the Aho-Corasick dictionary. Several document types may
// claim the same phrase at different weights.
type phraseGroup struct {
	phrase string
	refs   []indicatorRef
}

type indicatorRef struct {
	docType DocumentType
	weight  float64
}

type patternRef struct {
	docType DocumentType
	weight  float64
	source  string
	re      *regexp.Regexp
}

type allOfRef struct {
	docType DocumentType
	weight  float64
	phrases []string
	label   string
}

// Classifier scores text against a compiled indicator registry.
// It is safe for concurrent use: all state is immutable after construction.
type Classifier struct {
	matcher *ahocorasick.Matcher
	groups  []phraseGroup
	regexes []patternRef
	allOfs  []allOfRef
}

// NewClassifier compiles a registry. All exact phrases across every document
// type go into a single Aho-Corasick matcher so one pass over the text finds
// every keyword hit regardless of how many types define indicators.
func NewClassifier(reg Registry) (*Classifier, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	c := &Classifier{}
	phraseIndex := make(map[string]int)

	for _, docType := range SpecificityOrder {
		for _, ind := range reg[docType] {
			switch {
			case ind.Phrase != "":
				p := strings.ToLower(ind.Phrase)
				idx, ok := phraseIndex[p]
				if !ok {
					idx = len(c.groups)
					phraseIndex[p] = idx
					c.groups = append(c.groups, phraseGroup{phrase: p})
				}
				c.groups[idx].refs = append(c.groups[idx].refs, indicatorRef{docType: docType, weight: ind.Weight})
			case ind.Pattern != "":
				re, err := regexp.Compile(ind.Pattern)
				if err != nil {
					return nil, fmt.Errorf("%s: invalid pattern %q: %w", docType, ind.Pattern, err)
				}
				c.regexes = append(c.regexes, patternRef{docType: docType, weight: ind.Weight, source: ind.Pattern, re: re})
			case len(ind.AllOf) > 0:
				lowered := make([]string, len(ind.AllOf))
				for i, p := range ind.AllOf {
					lowered[i] = strings.ToLower(p)
				}
				c.allOfs = append(c.allOfs, allOfRef{
					docType: docType,
					weight:  ind.Weight,
					phrases: lowered,
					label:   strings.Join(lowered, " + "),
				})
			}
		}
	}

	if len(c.groups) > 0 {
		dict := make([][]byte, len(c.groups))
		for i, g := range c.groups {
			dict[i] = []byte(g.phrase)
		}
		c.matcher = ahocorasick.NewMatcher(dict)
	}
	return c, nil
}

// typeEvidence accumulates per-type score and matched indicator labels.
type typeEvidence struct {
	score      float64
	keywords   []string
	patternHit bool
}

// Classify scores text against every document type and returns the best
// match. It never fails; the worst outcome is unknown with confidence 0.
func (c *Classifier) Classify(text string) ClassificationResult {
	if strings.TrimSpace(text) == "" {
		return unknownResult()
	}

	lower := strings.ToLower(text)
	evidence := make(map[DocumentType]*typeEvidence)
	record := func(docType DocumentType, weight float64, keyword string, pattern bool) {
		ev := evidence[docType]
		if ev == nil {
			ev = &typeEvidence{}
			evidence[docType] = ev
		}
		ev.score += weight
		ev.keywords = append(ev.keywords, keyword)
		if pattern {
			ev.patternHit = true
		}
	}

	if c.matcher != nil {
		for _, idx := range c.matcher.Match([]byte(lower)) {
			if idx < 0 || idx >= len(c.groups) {
				continue
			}
			g := c.groups[idx]
			for _, ref := range g.refs {
				record(ref.docType, ref.weight, g.phrase, false)
			}
		}
	}

	for _, p := range c.regexes {
		if p.re.MatchString(text) {
			record(p.docType, p.weight, p.source, true)
		}
	}

	for _, a := range c.allOfs {
		all := true
		for _, phrase := range a.phrases {
			if !strings.Contains(lower, phrase) {
				all = false
				break
			}
		}
		if all {
			record(a.docType, a.weight, a.label, true)
		}
	}

	winner, ev := pickWinner(evidence)
	if ev == nil || ev.score < minScore {
		return unknownResult()
	}

	method := MethodKeyword
	if ev.patternHit {
		method = MethodPattern
	}
	return ClassificationResult{
		Type:       winner,
		Confidence: saturate(ev.score),
		Method:     method,
		Metadata: Metadata{
			DetectedKeywords: ev.keywords,
			Format:           "text",
		},
	}
}

// ClassifyBatch classifies each item independently, preserving order.
// No state is shared between items.
func (c *Classifier) ClassifyBatch(texts []string) []ClassificationResult {
	results := make([]ClassificationResult, len(texts))
	for i, text := range texts {
		results[i] = c.Classify(text)
	}
	return results
}

// pickWinner returns the highest-scoring type. Scores within tieEpsilon of
// the leader collapse onto the most specific type among them.
func pickWinner(evidence map[DocumentType]*typeEvidence) (DocumentType, *typeEvidence) {
	best := 0.0
	for _, ev := range evidence {
		if ev.score > best {
			best = ev.score
		}
	}
	for _, docType := range SpecificityOrder {
		if ev, ok := evidence[docType]; ok && best-ev.score < tieEpsilon {
			return docType, ev
		}
	}
	return TypeUnknown, nil
}

// saturate maps a raw score into [0,1) with diminishing returns, so stacking
// ever more indicators of the same type cannot push confidence to 1.
func saturate(score float64) float64 {
	return 1 - math.Exp(-score/saturationK)
}

func unknownResult() ClassificationResult {
	return ClassificationResult{
		Type:   TypeUnknown,
		Method: MethodNone,
		Metadata: Metadata{
			DetectedKeywords: []string{},
			Format:           "text",
		},
	}
}

// IsConfidenceAcceptable reports whether a classification clears the
// trust floor.
func IsConfidenceAcceptable(confidence float64) bool {
	return confidence >= AcceptableConfidence
}

// RecommendedAction maps a result's confidence band onto handling advice.
func RecommendedAction(result ClassificationResult) Action {
	switch {
	case result.Confidence >= AcceptThreshold:
		return ActionAccept
	case result.Confidence >= ReviewThreshold:
		return ActionReview
	default:
		return ActionManual
	}
}

// Label returns the human-readable name for a document type.
func Label(t DocumentType) string {
	switch t {
	case TypeReceipt:
		return "Receipt"
	case TypeBankStatement:
		return "Bank Statement"
	case TypeDividendStatement:
		return "Dividend Statement"
	case TypeInvoice:
		return "Invoice"
	case TypeContract:
		return "Contract"
	default:
		return "Unknown"
	}
}

// Icon returns the display glyph for a document type.
func Icon(t DocumentType) string {
	switch t {
	case TypeReceipt:
		return "🧾"
	case TypeBankStatement:
		return "🏦"
	case TypeDividendStatement:
		return "💰"
	case TypeInvoice:
		return "📄"
	case TypeContract:
		return "📜"
	default:
		return "❓"
	}
}
