package scoring

import (
	"math/rand/v2"

	"github.com/JuanJoseLL/dengue-dss/internal/policy"
)

// Synthetic fallbacks for scenario gaps. The generator is always injected by
// the caller so runs are reproducible under a fixed seed.

// synthSpread is the half-width of the band around a threshold bound in which
// synthetic readings are drawn, wide enough that some land in the alarming
// region and some do not.
const synthSpread = 10.0

// SyntheticIndicatorValue draws a reading uniformly from bound±10 so the
// indicator may or may not trip its threshold.
func SyntheticIndicatorValue(rng *rand.Rand, th Threshold) float64 {
	return th.Bound - synthSpread + rng.Float64()*2*synthSpread
}

// SyntheticUnboundedValue draws a reading for a thresholdless indicator,
// uniform in [-5, 5).
func SyntheticUnboundedValue(rng *rand.Rand) float64 {
	return -5 + rng.Float64()*10
}

// SyntheticFactorProfile draws an integer 0-10 rating for each of the 11
// applicability factors.
func SyntheticFactorProfile(rng *rand.Rand) map[string]float64 {
	out := make(map[string]float64, len(policy.FactorNames))
	for _, name := range policy.FactorNames {
		out[name] = float64(rng.IntN(11))
	}
	return out
}
