package policy

// SeverityPolicy holds the per-tier urgency multipliers applied to each
// response type. Values above 1 raise a strategy's priority, values below 1
// lower it. Missing entries count as 1.0.
type SeverityPolicy map[Severity]map[ResponseType]float64

// Multiplier returns the urgency multiplier for a response type at a
// severity tier. Unknown tiers and types leave the score unchanged.
func (p SeverityPolicy) Multiplier(sev Severity, rt ResponseType) float64 {
	byType, ok := p[sev]
	if !ok {
		return 1.0
	}
	m, ok := byType[rt]
	if !ok {
		return 1.0
	}
	return m
}

// DefaultSeverityPolicy returns the expert-consensus urgency table. The policy
// reallocates priority from long-horizon prevention toward rapid vector
// control as severity rises.
func DefaultSeverityPolicy() SeverityPolicy {
	return SeverityPolicy{
		// Controlled situation: educate, coordinate and watch; do not spend
		// chemical control capacity.
		SeverityLow: {
			ResponseImmediate:    0.2,
			ResponseActive:       0.5,
			ResponsePreventive:   1.8,
			ResponseCoordination: 1.5,
			ResponseMonitoring:   1.7,
		},
		// Epidemiological alert: active breeding-site control without the
		// strong chemical interventions.
		SeverityModerate: {
			ResponseImmediate:    0.4,
			ResponseActive:       1.6,
			ResponsePreventive:   0.9,
			ResponseCoordination: 1.2,
			ResponseMonitoring:   1.3,
		},
		// Active outbreak: immediate responses start to dominate.
		SeverityHigh: {
			ResponseImmediate:    1.8,
			ResponseActive:       1.3,
			ResponsePreventive:   0.4,
			ResponseCoordination: 1.0,
			ResponseMonitoring:   0.6,
		},
		// Crisis: rapid chemical control and triage take near-exclusive
		// priority.
		SeverityEmergency: {
			ResponseImmediate:    2.5,
			ResponseActive:       0.9,
			ResponsePreventive:   0.2,
			ResponseCoordination: 0.7,
			ResponseMonitoring:   0.3,
		},
	}
}
