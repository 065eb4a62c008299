package scoring

import "github.com/JuanJoseLL/dengue-dss/internal/policy"

// AdjustScores applies the severity and situational-context multipliers to
// the base scores, then renormalizes by the maximum so the best strategy
// reads 1.0. An all-zero adjusted vector is returned unchanged.
func AdjustScores(base []float64, strategies []Strategy, sev policy.Severity, contextID string, sevPolicy policy.SeverityPolicy, ctxPolicy policy.ContextPolicy) []float64 {
	adjusted := make([]float64, len(base))
	for i, s := range strategies {
		m := sevPolicy.Multiplier(sev, s.Response)
		c := ctxPolicy.Multiplier(contextID, s.Name)
		adjusted[i] = base[i] * m * c
	}
	var max float64
	for _, v := range adjusted {
		if v > max {
			max = v
		}
	}
	if max > 0 {
		for i := range adjusted {
			adjusted[i] /= max
		}
	}
	return adjusted
}
