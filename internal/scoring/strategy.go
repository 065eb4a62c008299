package scoring

import (
	"sort"

	"github.com/JuanJoseLL/dengue-dss/internal/policy"
)

// IndicatorWeight links a strategy to one indicator with its expert-assigned
// importance weight.
type IndicatorWeight struct {
	Indicator string
	Weight    float64
}

// Strategy is a fully resolved candidate intervention. All fuzzy name
// matching happens during configuration loading; the engine only reads the
// resolved fields.
type Strategy struct {
	Name       string
	Indicators []IndicatorWeight
	// Factors holds the 11 applicability factors on a 0-10 scale.
	Factors map[string]float64
	// Context holds the resolved -1..+1 context value per factor, with
	// general values already taking precedence over strategy-specific ones.
	Context map[string]float64
	// Response drives the severity multiplier table.
	Response policy.ResponseType
}

// NormalizeWeights scales each strategy's indicator weights in place so they
// sum to 1.0. Strategies whose weights total exactly zero are left untouched.
func NormalizeWeights(strategies []Strategy) {
	for _, s := range strategies {
		var total float64
		for _, iw := range s.Indicators {
			total += iw.Weight
		}
		if total == 0 {
			continue
		}
		for i := range s.Indicators {
			s.Indicators[i].Weight /= total
		}
	}
}

// IndicatorUniverse returns the sorted unique indicator names referenced by
// any strategy or threshold table entry.
func IndicatorUniverse(strategies []Strategy, thresholds map[string]Threshold) []string {
	seen := make(map[string]struct{})
	for _, s := range strategies {
		for _, iw := range s.Indicators {
			seen[iw.Indicator] = struct{}{}
		}
	}
	for name := range thresholds {
		seen[name] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
