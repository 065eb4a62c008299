package policy

import "strings"

// KeywordMultiplier skews the priority of every strategy whose full name
// contains Keyword (case-insensitive).
type KeywordMultiplier struct {
	Keyword    string
	Multiplier float64
}

// ContextPolicy maps a situational-context identifier to an ordered list of
// keyword multipliers. Order matters: the first matching keyword wins.
type ContextPolicy map[string][]KeywordMultiplier

// Multiplier returns the context multiplier for a strategy name under the
// given situational context, or 1.0 when the context is unknown or no keyword
// matches.
func (p ContextPolicy) Multiplier(contextID, strategyName string) float64 {
	if contextID == "" {
		return 1.0
	}
	entries, ok := p[contextID]
	if !ok {
		return 1.0
	}
	name := strings.ToLower(strategyName)
	for _, e := range entries {
		if strings.Contains(name, strings.ToLower(e.Keyword)) {
			return e.Multiplier
		}
	}
	return 1.0
}

// DefaultContextPolicy returns the built-in situational-context tables.
// Keywords are substrings of the default strategy catalogue names.
func DefaultContextPolicy() ContextPolicy {
	return ContextPolicy{
		// Intense rainfall: storm drains and runoff come first.
		"heavy-rain": {
			{"monitor weather conditions and manage runoff", 1.8},
			{"targeted identification of breeding sites", 1.5},
			{"physical control actions", 1.4},
			{"use meteorological data", 1.6},
			{"chemical larvicides", 1.3},
		},
		// Intermittent water supply: household storage containers dominate.
		"water-intermittency": {
			{"physical control actions", 1.7},
			{"targeted identification of breeding sites", 1.6},
			{"promote sustainable preventive practices", 1.4},
			{"strengthen dengue risk perception", 1.3},
			{"chemical larvicides", 1.5},
			{"coordinate efforts with the water", 1.6},
		},
		// Population mobility and mass events: epidemiological surveillance.
		"mobility-events": {
			{"timely diagnosis", 1.7},
			{"triage protocols", 1.5},
			{"immediate preventive messages", 1.6},
			{"individual protection measures", 1.5},
			{"innovative technologies", 1.4},
		},
		// Operational saturation: efficiency and coordination.
		"operational-saturation": {
			{"institutional coordination", 1.7},
			{"sustainability of the dengue control program", 1.5},
			{"chemical adulticides", 1.4},
			{"triage protocols", 1.6},
			{"coordinate efforts with the", 1.5},
		},

		// Zone profiles used when every indicator is in its critical regime.
		"water-intermittent-zone": {
			{"physical control actions", 6.0},
			{"chemical larvicides", 5.0},
			{"coordinate efforts with the water", 4.5},
			{"promote sustainable preventive practices", 4.0},
			{"biological methods", 0.3},
			{"adulticides", 0.4},
		},
		"high-density-zone": {
			{"chemical adulticides", 6.0},
			{"individual protection measures", 5.5},
			{"triage protocols", 5.0},
			{"timely diagnosis", 4.5},
			{"biological methods", 0.2},
			{"physical control", 0.4},
		},
		"construction-zone": {
			{"monitor weather conditions and manage runoff", 6.0},
			{"innovative technologies", 5.5},
			{"coordinate efforts with the", 5.0},
			{"targeted identification of breeding sites", 4.5},
			{"biological methods", 0.3},
			{"adulticides", 0.5},
		},
		"hard-access-zone": {
			{"innovative technologies", 6.0},
			{"biological methods", 5.5},
			{"institutional coordination", 5.0},
			{"promote sustainable preventive practices", 4.5},
			{"adulticides", 0.3},
			{"chemical larvicides", 0.4},
		},
		"community-pushback-zone": {
			{"strengthen dengue risk perception", 6.0},
			{"immediate preventive messages", 5.5},
			{"promote sustainable preventive practices", 5.0},
			{"institutional coordination", 4.5},
			{"biological methods", 0.3},
			{"adulticides", 0.3},
			{"larvicides", 0.4},
		},

		// Zone profiles used when every indicator is in its normal regime.
		"historically-problematic-zone": {
			{"targeted identification of breeding sites", 6.0},
			{"innovative technologies", 5.5},
			{"use meteorological data", 5.0},
			{"biological methods", 0.4},
			{"adulticides", 0.3},
		},
		"well-organized-zone": {
			{"promote sustainable preventive practices", 6.0},
			{"strengthen dengue risk perception", 5.5},
			{"immediate preventive messages", 5.0},
			{"biological methods", 0.4},
			{"adulticides", 0.2},
			{"larvicides", 0.3},
		},
		"good-infrastructure-zone": {
			{"innovative technologies", 6.0},
			{"use meteorological data", 5.5},
			{"monitor weather conditions", 5.0},
			{"biological methods", 0.4},
			{"adulticides", 0.2},
			{"larvicides", 0.3},
		},
		"variable-water-coverage-zone": {
			{"promote sustainable preventive practices", 6.0},
			{"physical control actions", 5.5},
			{"coordinate efforts with the water", 5.0},
			{"biological methods", 0.4},
			{"adulticides", 0.2},
		},
		"transition-zone": {
			{"sustainability of the dengue control program", 6.0},
			{"promote sustainable preventive practices", 5.5},
			{"targeted identification of breeding sites", 5.0},
			{"biological methods", 0.4},
			{"adulticides", 0.2},
			{"larvicides", 0.3},
		},
	}
}
