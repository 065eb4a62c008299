package scoring

import (
	"fmt"
	"math"
	"sort"
)

// Compliance here means "this strategy's linked indicators are currently in
// their alarming regime": a high value is a strong case for activating the
// strategy, not a sign of health. The inverted polarity is part of the
// engine's contract.

// BuildComplianceMatrix computes the strategy-by-indicator activation matrix.
// A cell holds the strategy's weight for that indicator when the indicator is
// currently alarming, the unconditional weight when the indicator has a value
// but no parsed threshold, and 0 otherwise (not referenced, or no reading).
func BuildComplianceMatrix(strategies []Strategy, indicators []string, values map[string]float64, thresholds map[string]Threshold) ([][]float64, error) {
	matrix := make([][]float64, len(strategies))
	for i, s := range strategies {
		row := make([]float64, len(indicators))
		weightByInd := make(map[string]float64, len(s.Indicators))
		for _, iw := range s.Indicators {
			weightByInd[iw.Indicator] = iw.Weight
		}
		for j, ind := range indicators {
			w, linked := weightByInd[ind]
			if !linked {
				continue
			}
			val, hasVal := values[ind]
			if !hasVal {
				continue
			}
			th, hasTh := thresholds[ind]
			if !hasTh {
				// No threshold to discriminate on: the weight applies.
				row[j] = w
				continue
			}
			alarming, err := th.Op.Alarming(val, th.Bound)
			if err != nil {
				return nil, fmt.Errorf("indicator %q: %w", ind, err)
			}
			if alarming {
				row[j] = w
			}
		}
		matrix[i] = row
	}
	return matrix, nil
}

// ComplianceScores reduces the matrix to one activated-weight total per
// strategy (row sums).
func ComplianceScores(matrix [][]float64) []float64 {
	out := make([]float64, len(matrix))
	for i, row := range matrix {
		var sum float64
		for _, cell := range row {
			sum += cell
		}
		out[i] = sum
	}
	return out
}

// IndicatorStatus describes one indicator's reading against its threshold.
type IndicatorStatus struct {
	Name      string
	Value     float64
	Threshold Threshold
	Alarming  bool
	// Excess measures how far past the bound the reading is, in the
	// direction of the operator. Only meaningful when Alarming.
	Excess float64
}

// SurveyIndicators evaluates every indicator with both a reading and a parsed
// threshold, returning the per-indicator detail sorted by excess magnitude
// (most exceeded first) plus the critical and normal counts. Thresholdless
// indicators are never counted.
func SurveyIndicators(indicators []string, values map[string]float64, thresholds map[string]Threshold) ([]IndicatorStatus, int, int, error) {
	var statuses []IndicatorStatus
	critical, normal := 0, 0
	for _, ind := range indicators {
		val, hasVal := values[ind]
		th, hasTh := thresholds[ind]
		if !hasVal || !hasTh {
			continue
		}
		alarming, err := th.Op.Alarming(val, th.Bound)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("indicator %q: %w", ind, err)
		}
		excess := val - th.Bound
		if th.Op == OpLess || th.Op == OpLessEq {
			excess = th.Bound - val
		}
		statuses = append(statuses, IndicatorStatus{
			Name:      ind,
			Value:     val,
			Threshold: th,
			Alarming:  alarming,
			Excess:    excess,
		})
		if alarming {
			critical++
		} else {
			normal++
		}
	}
	sort.SliceStable(statuses, func(a, b int) bool {
		return math.Abs(statuses[a].Excess) > math.Abs(statuses[b].Excess)
	})
	return statuses, critical, normal, nil
}
