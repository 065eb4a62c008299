package scoring

// MinMaxNormalize scales a criterion vector to [0, 1]. A constant vector
// (including all-zero) maps every entry to 1.0: when a criterion cannot
// discriminate between alternatives it should not penalize any of them.
func MinMaxNormalize(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	out := make([]float64, len(values))
	if max == min {
		for i := range out {
			out[i] = 1.0
		}
		return out
	}
	for i, v := range values {
		out[i] = (v - min) / (max - min)
	}
	return out
}
