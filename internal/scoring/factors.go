package scoring

import "github.com/JuanJoseLL/dengue-dss/internal/policy"

// FactorScore computes a strategy's applicability score as the dot product of
// its 0-10 factor ratings and the resolved -1..+1 context values. The result
// is an unbounded signed real: strategies whose strong attributes align with
// favorable context score highest.
func FactorScore(s Strategy) float64 {
	var total float64
	for _, name := range policy.FactorNames {
		total += s.Factors[name] * s.Context[name]
	}
	return total
}

// FactorScores computes the raw factor criterion vector for a strategy set.
func FactorScores(strategies []Strategy) []float64 {
	out := make([]float64, len(strategies))
	for i, s := range strategies {
		out[i] = FactorScore(s)
	}
	return out
}
