package scoring

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/JuanJoseLL/dengue-dss/internal/policy"
)

// RunInput bundles everything one scoring run needs. Strategies arrive fully
// resolved (weights normalized, factor and context profiles attached,
// response type classified); the engine performs no lookups of its own.
type RunInput struct {
	Strategies      []Strategy
	IndicatorValues map[string]float64
	Thresholds      map[string]Threshold
	Severity        policy.Severity
	// Context optionally names a situational-context multiplier table entry.
	Context string
}

// StrategyScore is the complete scoring output for one strategy.
type StrategyScore struct {
	Name            string              `json:"name"`
	Response        policy.ResponseType `json:"response_type"`
	Compliance      float64             `json:"compliance"`
	FactorScore     float64             `json:"factor_score"`
	NormCompliance  float64             `json:"norm_compliance"`
	NormFactorScore float64             `json:"norm_factor_score"`
	BaseScore       float64             `json:"base_score"`
	BaseRank        int                 `json:"base_rank"`
	AdjustedScore   float64             `json:"adjusted_score"`
	AdjustedRank    int                 `json:"adjusted_rank"`
}

// RunResult is the ranked output of one scoring run, ordered by adjusted
// rank.
type RunResult struct {
	RunID              uuid.UUID         `json:"run_id"`
	Severity           policy.Severity   `json:"severity"`
	Context            string            `json:"context,omitempty"`
	Strategies         []StrategyScore   `json:"strategies"`
	Indicators         []IndicatorStatus `json:"indicators"`
	CriticalIndicators int               `json:"critical_indicators"`
	NormalIndicators   int               `json:"normal_indicators"`
}

// Scorer runs the two-criterion MCDA pipeline: compliance and factor scoring,
// min-max normalization, weighted aggregation, then severity- and
// context-driven re-ranking. It holds only immutable configuration, so one
// Scorer may serve concurrent runs.
type Scorer struct {
	weights  CriterionWeights
	severity policy.SeverityPolicy
	contexts policy.ContextPolicy
	logger   *slog.Logger
}

// NewScorer creates a Scorer. Weights must validate; policies are treated as
// immutable after construction.
func NewScorer(weights CriterionWeights, sevPolicy policy.SeverityPolicy, ctxPolicy policy.ContextPolicy, logger *slog.Logger) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{
		weights:  weights,
		severity: sevPolicy,
		contexts: ctxPolicy,
		logger:   logger,
	}, nil
}

// Score executes one full scoring run. The only fatal condition is an
// unsupported operator in the threshold table; every other degradation
// (missing readings, unparsed thresholds) contributes zero and the run
// proceeds.
func (s *Scorer) Score(in RunInput) (*RunResult, error) {
	universe := IndicatorUniverse(in.Strategies, in.Thresholds)

	matrix, err := BuildComplianceMatrix(in.Strategies, universe, in.IndicatorValues, in.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("compliance matrix: %w", err)
	}
	compliance := ComplianceScores(matrix)
	factorScores := FactorScores(in.Strategies)

	normCompliance := MinMaxNormalize(compliance)
	normFactors := MinMaxNormalize(factorScores)

	base := Combine(normCompliance, normFactors, s.weights)
	baseRanks := Rank(base)

	adjusted := AdjustScores(base, in.Strategies, in.Severity, in.Context, s.severity, s.contexts)
	adjustedRanks := Rank(adjusted)

	statuses, critical, normal, err := SurveyIndicators(universe, in.IndicatorValues, in.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("indicator survey: %w", err)
	}

	result := &RunResult{
		RunID:              uuid.New(),
		Severity:           in.Severity,
		Context:            in.Context,
		Strategies:         make([]StrategyScore, len(in.Strategies)),
		Indicators:         statuses,
		CriticalIndicators: critical,
		NormalIndicators:   normal,
	}
	for i, st := range in.Strategies {
		result.Strategies[i] = StrategyScore{
			Name:            st.Name,
			Response:        st.Response,
			Compliance:      compliance[i],
			FactorScore:     factorScores[i],
			NormCompliance:  normCompliance[i],
			NormFactorScore: normFactors[i],
			BaseScore:       base[i],
			BaseRank:        baseRanks[i],
			AdjustedScore:   adjusted[i],
			AdjustedRank:    adjustedRanks[i],
		}
	}
	sort.SliceStable(result.Strategies, func(a, b int) bool {
		return result.Strategies[a].AdjustedRank < result.Strategies[b].AdjustedRank
	})

	s.logger.Info("scoring run complete",
		"run_id", result.RunID,
		"severity", in.Severity,
		"context", in.Context,
		"strategies", len(in.Strategies),
		"critical_indicators", critical,
		"normal_indicators", normal,
	)
	return result, nil
}
