package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/JuanJoseLL/dengue-dss/internal/policy"
	"github.com/JuanJoseLL/dengue-dss/internal/scoring"
)

// BuildOptions carries the policy tables and ambient dependencies needed to
// turn raw YAML tables into a fully resolved run input. Rand, when set,
// enables synthetic fallbacks for missing factor profiles and indicator
// readings; without it those gaps stay at zero.
type BuildOptions struct {
	Valuation policy.ContextValuation
	Taxonomy  policy.Taxonomy
	Rand      *rand.Rand
	Logger    *slog.Logger
}

// BuildRunInput resolves a strategy table against a scenario: thresholds are
// parsed once, factor profiles and context valuations are looked up with the
// matching rules applied here and nowhere downstream, and response types are
// classified. The returned count is the number of strategies that fell back
// to a default or synthetic factor profile.
func BuildRunInput(sf StrategyFile, scen ScenarioFile, opts BuildOptions) (scoring.RunInput, int, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	severity, err := policy.ParseSeverity(scen.Severity)
	if err != nil {
		return scoring.RunInput{}, 0, fmt.Errorf("scenario %q: %w", scen.Name, err)
	}

	thresholds := make(map[string]scoring.Threshold)
	for _, entry := range sf.Strategies {
		for _, ind := range entry.Indicators {
			th, err := scoring.ParseThreshold(ind.Threshold)
			if err != nil {
				if errors.Is(err, scoring.ErrNoThreshold) {
					log.Warn("indicator has no parseable threshold, weight applies unconditionally",
						"indicator", ind.Name, "raw", ind.Threshold)
					continue
				}
				return scoring.RunInput{}, 0, fmt.Errorf("indicator %q: %w", ind.Name, err)
			}
			// Last write wins when strategies disagree on a threshold.
			thresholds[ind.Name] = th
		}
	}

	profiles := factorProfiles(sf)

	misses := 0
	strategies := make([]scoring.Strategy, 0, len(sf.Strategies))
	for _, entry := range sf.Strategies {
		factors, fell := resolveFactors(entry, scen, profiles, opts, log)
		if fell {
			misses++
		}

		context, ok := opts.Valuation.Resolve(entry.Name)
		if !ok {
			misses++
			log.Warn("no context valuation profile matched, using default", "strategy", entry.Name)
		}

		response, err := resolveResponse(entry, opts.Taxonomy)
		if err != nil {
			return scoring.RunInput{}, 0, err
		}

		indicators := make([]scoring.IndicatorWeight, len(entry.Indicators))
		for i, ind := range entry.Indicators {
			indicators[i] = scoring.IndicatorWeight{Indicator: ind.Name, Weight: ind.Weight}
		}

		strategies = append(strategies, scoring.Strategy{
			Name:       entry.Name,
			Indicators: indicators,
			Factors:    factors,
			Context:    context,
			Response:   response,
		})
	}
	scoring.NormalizeWeights(strategies)

	values := make(map[string]float64, len(scen.Indicators))
	for name, v := range scen.Indicators {
		values[name] = v
	}
	if opts.Rand != nil {
		fillSyntheticValues(values, strategies, thresholds, opts.Rand, log)
	}

	return scoring.RunInput{
		Strategies:      strategies,
		IndicatorValues: values,
		Thresholds:      thresholds,
		Severity:        severity,
		Context:         scen.Context,
	}, misses, nil
}

// factorProfiles collects the per-strategy factor ratings declared inline in
// the strategy table, keyed by strategy name for fuzzy lookup.
func factorProfiles(sf StrategyFile) map[string]map[string]float64 {
	profiles := make(map[string]map[string]float64)
	for _, entry := range sf.Strategies {
		if len(entry.Factors) > 0 {
			profiles[entry.Name] = entry.Factors
		}
	}
	return profiles
}

// resolveFactors picks the factor profile for one strategy. Precedence:
// scenario-wide profile, the entry's own ratings, a fuzzy match against other
// entries' ratings, then a synthetic profile when a generator is available.
// The bool reports whether the strategy fell through to a fallback.
func resolveFactors(entry StrategyEntry, scen ScenarioFile, profiles map[string]map[string]float64, opts BuildOptions, log *slog.Logger) (map[string]float64, bool) {
	if len(scen.Factors) > 0 {
		return completeProfile(scen.Factors), false
	}
	if len(entry.Factors) > 0 {
		return completeProfile(entry.Factors), false
	}
	if matched, ok := policy.ResolveProfile(entry.Name, profiles); ok {
		return completeProfile(matched), false
	}
	if opts.Rand != nil {
		log.Warn("no factor profile found, synthesizing", "strategy", entry.Name)
		return scoring.SyntheticFactorProfile(opts.Rand), true
	}
	log.Warn("no factor profile found, factors score as zero", "strategy", entry.Name)
	return map[string]float64{}, true
}

// completeProfile fills unrated factors with zero so every strategy rates
// the full factor set.
func completeProfile(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(policy.FactorNames))
	for _, name := range policy.FactorNames {
		out[name] = in[name]
	}
	return out
}

func resolveResponse(entry StrategyEntry, tax policy.Taxonomy) (policy.ResponseType, error) {
	if entry.ResponseType != "" {
		rt, err := policy.ParseResponseType(entry.ResponseType)
		if err != nil {
			return "", fmt.Errorf("strategy %q: %w", entry.Name, err)
		}
		return rt, nil
	}
	return tax.Classify(entry.Name), nil
}

// fillSyntheticValues generates readings for indicators the scenario omits.
// Bounded indicators draw near their threshold; unbounded ones draw from a
// small symmetric range.
func fillSyntheticValues(values map[string]float64, strategies []scoring.Strategy, thresholds map[string]scoring.Threshold, rng *rand.Rand, log *slog.Logger) {
	missing := make([]string, 0)
	for _, name := range scoring.IndicatorUniverse(strategies, thresholds) {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	for _, name := range missing {
		if th, ok := thresholds[name]; ok {
			values[name] = scoring.SyntheticIndicatorValue(rng, th)
		} else {
			values[name] = scoring.SyntheticUnboundedValue(rng)
		}
		log.Debug("synthesized indicator reading", "indicator", name, "value", values[name])
	}
}
