package scoring

import (
	"fmt"
	"math"
	"sort"
)

// CriterionWeights defines the relative importance of the two MCDA criteria.
// Both weights must be non-negative and sum to 1.0 (±0.001 tolerance).
type CriterionWeights struct {
	Compliance float64
	Factors    float64
}

// DefaultCriterionWeights returns the even 50/50 split.
func DefaultCriterionWeights() CriterionWeights {
	return CriterionWeights{Compliance: 0.5, Factors: 0.5}
}

// Sum returns the total of both weights.
func (w CriterionWeights) Sum() float64 {
	return w.Compliance + w.Factors
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w CriterionWeights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("criterion weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	if w.Compliance < 0 || w.Factors < 0 {
		return fmt.Errorf("negative criterion weight: compliance=%f factors=%f", w.Compliance, w.Factors)
	}
	return nil
}

// Combine computes the weighted-sum base score per strategy from the two
// normalized criterion vectors. Both criteria maximize.
func Combine(normCompliance, normFactors []float64, w CriterionWeights) []float64 {
	out := make([]float64, len(normCompliance))
	for i := range out {
		out[i] = normCompliance[i]*w.Compliance + normFactors[i]*w.Factors
	}
	return out
}

// Rank assigns dense descending ranks (1 = best) over a score vector. Equal
// scores keep their original input order, so rankings are deterministic.
func Rank(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	ranks := make([]int, len(scores))
	for pos, idx := range order {
		ranks[idx] = pos + 1
	}
	return ranks
}
