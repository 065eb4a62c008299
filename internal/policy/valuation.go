package policy

// FactorNames lists the 11 fixed applicability factors every strategy is
// rated on (0-10 scale). Context valuations use the same names on a -1..+1
// scale.
var FactorNames = []string{
	"resource_availability",
	"operating_cost",
	"coverage_time",
	"external_dependencies",
	"community_acceptance",
	"property_access",
	"risk_perception",
	"vector_resistance",
	"other_vectors",
	"expected_effectiveness",
	"outbreak_magnitude",
}

// FactorDescriptions gives the operational reading of each factor, index
// aligned with FactorNames.
var FactorDescriptions = []string{
	"Availability of trained staff, equipment, vehicles and supplies",
	"Operating cost",
	"Readiness and execution time, territory coverage capacity",
	"Need to activate other agencies",
	"Community acceptance",
	"Realistic access to properties and buildings",
	"Community risk perception",
	"Known vector resistance or susceptibility",
	"Presence of other vectors or multiple active foci",
	"Expected effectiveness",
	"Outbreak magnitude",
}

// ContextValuation holds the -1..+1 evaluation of current conditions per
// factor. General values apply to every strategy and take precedence;
// strategy-specific values fill the remaining factors, with Default as the
// fallback profile for strategies absent from Specific.
type ContextValuation struct {
	General  map[string]float64
	Specific map[string]map[string]float64
	Default  map[string]float64
}

// Resolve returns the effective per-factor context values for a strategy,
// merging general precedence over the strategy's specific (or default)
// profile. The boolean reports whether a specific profile was found; callers
// treat false as an observable lookup miss.
func (v ContextValuation) Resolve(strategyName string) (map[string]float64, bool) {
	profile, found := ResolveProfile(strategyName, v.Specific)
	if !found {
		profile = v.Default
	}
	out := make(map[string]float64, len(FactorNames))
	for _, f := range FactorNames {
		if g, ok := v.General[f]; ok {
			out[f] = g
		} else if s, ok := profile[f]; ok {
			out[f] = s
		}
	}
	return out, found
}

// DefaultContextValuation returns the built-in evaluation of current
// conditions. In production these values come from monitoring systems; the
// defaults describe a significant ongoing outbreak.
func DefaultContextValuation() ContextValuation {
	return ContextValuation{
		General: map[string]float64{
			"risk_perception":    0.8,
			"vector_resistance":  0.5,
			"other_vectors":      0.3,
			"outbreak_magnitude": 0.7,
		},
		Specific: map[string]map[string]float64{
			// Chemical control: costly but fast.
			"Apply chemical adulticides such as malathion or deltamethrin for rapid control of the adult vector in open spaces.": {
				"resource_availability":  0.6,
				"operating_cost":         -0.4,
				"coverage_time":          0.9,
				"external_dependencies":  0.2,
				"community_acceptance":   0.5,
				"property_access":        0.7,
				"expected_effectiveness": 0.8,
			},
			"Apply chemical larvicides in specific large-volume breeding sites where physical control is not feasible.": {
				"resource_availability":  0.7,
				"operating_cost":         -0.2,
				"coverage_time":          0.7,
				"external_dependencies":  0.1,
				"community_acceptance":   0.6,
				"property_access":        0.6,
				"expected_effectiveness": 0.9,
			},
			// Biological control: cheaper, better accepted, slower.
			"Apply biological methods for larval vector control, including larvivorous fish and Bacillus thuringiensis.": {
				"resource_availability":  0.5,
				"operating_cost":         0.3,
				"coverage_time":          0.4,
				"external_dependencies":  0.3,
				"community_acceptance":   0.8,
				"property_access":        0.5,
				"expected_effectiveness": 0.7,
			},
			// Cross-sector coordination: long horizon, high dependency.
			"Coordinate efforts with the water, sanitation, education and public-utility sectors for sustainable preventive actions.": {
				"resource_availability":  0.4,
				"operating_cost":         0.2,
				"coverage_time":          0.2,
				"external_dependencies":  -0.6,
				"community_acceptance":   0.7,
				"property_access":        0.6,
				"expected_effectiveness": 0.6,
			},
			// Education campaigns: low cost, high acceptance, slow payoff.
			"Promote sustainable preventive practices through educational campaigns, behavior change and participatory surveillance.": {
				"resource_availability":  0.6,
				"operating_cost":         0.5,
				"coverage_time":          0.3,
				"external_dependencies":  0.2,
				"community_acceptance":   0.9,
				"property_access":        0.8,
				"expected_effectiveness": 0.5,
			},
			// Physical source reduction: needs household access.
			"Implement physical control actions in household and community settings to reduce or eliminate vector breeding sites.": {
				"resource_availability":  0.6,
				"operating_cost":         0.1,
				"coverage_time":          0.6,
				"external_dependencies":  0.1,
				"community_acceptance":   0.7,
				"property_access":        0.4,
				"expected_effectiveness": 0.8,
			},
		},
		Default: map[string]float64{
			"resource_availability":  0.5,
			"operating_cost":         0.0,
			"coverage_time":          0.5,
			"external_dependencies":  0.0,
			"community_acceptance":   0.5,
			"property_access":        0.5,
			"expected_effectiveness": 0.6,
		},
	}
}
