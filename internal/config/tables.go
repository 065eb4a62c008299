package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JuanJoseLL/dengue-dss/internal/policy"
)

// StrategyFile is the YAML table of candidate strategies, their linked
// indicators with expert weights and consensus thresholds, and optional
// per-strategy factor ratings.
type StrategyFile struct {
	Strategies []StrategyEntry `yaml:"strategies"`
}

type StrategyEntry struct {
	Name         string             `yaml:"name"`
	ResponseType string             `yaml:"response_type"`
	Indicators   []IndicatorEntry   `yaml:"indicators"`
	Factors      map[string]float64 `yaml:"factors"`
}

type IndicatorEntry struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
	// Threshold is the consensus threshold as authored: free text with mixed
	// notation ("< 70%", "Type II (≥ 6 weeks)"). Parsed once at load.
	Threshold string `yaml:"threshold"`
}

// ScenarioFile describes one situation to score: current indicator readings,
// an optional scenario-wide factor profile applied to every strategy, the
// declared severity tier and an optional situational context.
type ScenarioFile struct {
	Name       string             `yaml:"name"`
	Severity   string             `yaml:"severity"`
	Context    string             `yaml:"context"`
	Indicators map[string]float64 `yaml:"indicators"`
	Factors    map[string]float64 `yaml:"factors"`
}

// ValuationFile overrides the built-in context factor valuations.
type ValuationFile struct {
	General    map[string]float64            `yaml:"general"`
	Strategies map[string]map[string]float64 `yaml:"strategies"`
	Default    map[string]float64            `yaml:"default"`
}

// PolicyFile overrides the built-in taxonomy, severity multiplier table and
// situational-context tables. Sections left empty keep the defaults.
type PolicyFile struct {
	Taxonomy            map[string]string             `yaml:"taxonomy"`
	SeverityMultipliers map[string]map[string]float64 `yaml:"severity_multipliers"`
	Contexts            map[string][]KeywordEntry     `yaml:"contexts"`
}

type KeywordEntry struct {
	Keyword    string  `yaml:"keyword"`
	Multiplier float64 `yaml:"multiplier"`
}

func loadYAML(path string, into any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, into); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// LoadStrategies reads a strategy table.
func LoadStrategies(path string) (StrategyFile, error) {
	var sf StrategyFile
	if err := loadYAML(path, &sf); err != nil {
		return StrategyFile{}, err
	}
	if len(sf.Strategies) == 0 {
		return StrategyFile{}, fmt.Errorf("%s: no strategies defined", path)
	}
	return sf, nil
}

// LoadScenario reads a scenario definition.
func LoadScenario(path string) (ScenarioFile, error) {
	var sc ScenarioFile
	if err := loadYAML(path, &sc); err != nil {
		return ScenarioFile{}, err
	}
	return sc, nil
}

// LoadValuations returns the context factor valuations, overlaying an
// optional YAML file on the built-in defaults.
func LoadValuations(path string) (policy.ContextValuation, error) {
	val := policy.DefaultContextValuation()
	if path == "" {
		return val, nil
	}
	var vf ValuationFile
	if err := loadYAML(path, &vf); err != nil {
		return policy.ContextValuation{}, err
	}
	if vf.General != nil {
		val.General = vf.General
	}
	if vf.Strategies != nil {
		val.Specific = vf.Strategies
	}
	if vf.Default != nil {
		val.Default = vf.Default
	}
	return val, nil
}

// LoadPolicies returns the taxonomy, severity and context policies,
// overlaying an optional YAML file on the built-in defaults.
func LoadPolicies(path string) (policy.Taxonomy, policy.SeverityPolicy, policy.ContextPolicy, error) {
	tax := policy.DefaultTaxonomy()
	sev := policy.DefaultSeverityPolicy()
	ctx := policy.DefaultContextPolicy()
	if path == "" {
		return tax, sev, ctx, nil
	}

	var pf PolicyFile
	if err := loadYAML(path, &pf); err != nil {
		return nil, nil, nil, err
	}
	if len(pf.Taxonomy) > 0 {
		tax = make(policy.Taxonomy, len(pf.Taxonomy))
		for name, rt := range pf.Taxonomy {
			parsed, err := policy.ParseResponseType(rt)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("%s: taxonomy entry %q: %w", path, name, err)
			}
			tax[name] = parsed
		}
	}
	if len(pf.SeverityMultipliers) > 0 {
		sev = make(policy.SeverityPolicy, len(pf.SeverityMultipliers))
		for tier, byType := range pf.SeverityMultipliers {
			parsedTier, err := policy.ParseSeverity(tier)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("%s: severity table: %w", path, err)
			}
			row := make(map[policy.ResponseType]float64, len(byType))
			for rt, m := range byType {
				parsedType, err := policy.ParseResponseType(rt)
				if err != nil {
					return nil, nil, nil, fmt.Errorf("%s: severity tier %q: %w", path, tier, err)
				}
				row[parsedType] = m
			}
			sev[parsedTier] = row
		}
	}
	if len(pf.Contexts) > 0 {
		ctx = make(policy.ContextPolicy, len(pf.Contexts))
		for id, entries := range pf.Contexts {
			kms := make([]policy.KeywordMultiplier, len(entries))
			for i, e := range entries {
				kms[i] = policy.KeywordMultiplier{Keyword: e.Keyword, Multiplier: e.Multiplier}
			}
			ctx[id] = kms
		}
	}
	return tax, sev, ctx, nil
}
