package dividend

// Completeness weights per field. They sum to slightly above 1 so a fully
// explicit statement saturates; derived values earn half credit and
// defaulted placeholders earn nothing, which is what makes the score
// monotonic in field completeness and sensitive to fallback derivations.
var confidenceWeights = []struct {
	field  func(Fields) fieldState
	weight float64
}{
	{func(f Fields) fieldState { return state(f.CompanyName) }, 0.15},
	{func(f Fields) fieldState { return state(f.ASXCode) }, 0.10},
	{func(f Fields) fieldState { return state(f.GrossAmount) }, 0.25},
	{func(f Fields) fieldState { return state(f.FrankedAmount) }, 0.10},
	{func(f Fields) fieldState { return state(f.UnfrankedAmount) }, 0.05},
	{func(f Fields) fieldState { return state(f.FrankingCredits) }, 0.10},
	{func(f Fields) fieldState { return state(f.SharesHeld) }, 0.10},
	{func(f Fields) fieldState { return state(f.DividendPerShare) }, 0.05},
	{func(f Fields) fieldState { return state(f.PaymentDate) }, 0.15},
}

type fieldState int

const (
	fieldAbsent fieldState = iota
	fieldDefaulted
	fieldDerived
	fieldExplicit
)

func state[T any](f Field[T]) fieldState {
	switch {
	case !f.Present:
		return fieldAbsent
	case f.Source == SourceExplicit:
		return fieldExplicit
	case f.Source == SourceDerived:
		return fieldDerived
	default:
		return fieldDefaulted
	}
}

// Score rates the completeness and provenance of extracted fields in [0,1].
// It is deterministic and monotonic: adding a field never lowers the score,
// and an explicit value always outscores a derived one. A statement with
// every core field explicitly stated lands above 0.8; one carrying only a
// gross amount lands well below it.
func Score(f Fields) float64 {
	total := 0.0
	for _, w := range confidenceWeights {
		switch w.field(f) {
		case fieldExplicit:
			total += w.weight
		case fieldDerived:
			total += w.weight / 2
		}
	}
	if total > 1 {
		total = 1
	}
	return total
}
