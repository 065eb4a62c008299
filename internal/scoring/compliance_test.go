package scoring

import (
	"math"
	"testing"
)

func TestNormalizeWeights(t *testing.T) {
	strategies := []Strategy{
		{
			Name: "fumigation",
			Indicators: []IndicatorWeight{
				{Indicator: "incidence", Weight: 5},
				{Indicator: "aedic index", Weight: 3},
				{Indicator: "pupal index", Weight: 2},
			},
		},
		{
			Name: "education",
			Indicators: []IndicatorWeight{
				{Indicator: "risk perception", Weight: 0},
			},
		},
	}
	NormalizeWeights(strategies)

	var sum float64
	for _, iw := range strategies[0].Indicators {
		sum += iw.Weight
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("normalized weights sum to %g, want 1.0", sum)
	}
	if strategies[0].Indicators[0].Weight != 0.5 {
		t.Errorf("first weight = %g, want 0.5", strategies[0].Indicators[0].Weight)
	}
	// Zero-total strategies stay untouched instead of dividing by zero.
	if strategies[1].Indicators[0].Weight != 0 {
		t.Errorf("zero-total strategy weight changed to %g", strategies[1].Indicators[0].Weight)
	}
}

func TestBuildComplianceMatrix(t *testing.T) {
	strategies := []Strategy{
		{
			Name: "adulticide",
			Indicators: []IndicatorWeight{
				{Indicator: "incidence", Weight: 0.6},
				{Indicator: "supply availability", Weight: 0.4},
			},
		},
		{
			Name: "surveillance",
			Indicators: []IndicatorWeight{
				{Indicator: "qualitative signal", Weight: 1.0},
			},
		},
		{
			Name:       "unlinked",
			Indicators: nil,
		},
	}
	values := map[string]float64{
		"incidence":          5.0,  // alarming: > 2
		"qualitative signal": 1.0,  // thresholdless, weight applies
		// supply availability has no reading
	}
	thresholds := map[string]Threshold{
		"incidence":           {Op: OpGreater, Bound: 2},
		"supply availability": {Op: OpLess, Bound: 80},
	}
	universe := IndicatorUniverse(strategies, thresholds)

	matrix, err := BuildComplianceMatrix(strategies, universe, values, thresholds)
	if err != nil {
		t.Fatalf("BuildComplianceMatrix: %v", err)
	}
	scores := ComplianceScores(matrix)

	if scores[0] != 0.6 {
		t.Errorf("adulticide compliance = %g, want 0.6 (alarming indicator only)", scores[0])
	}
	if scores[1] != 1.0 {
		t.Errorf("thresholdless compliance = %g, want 1.0 (weight applies unconditionally)", scores[1])
	}
	if scores[2] != 0 {
		t.Errorf("unlinked strategy compliance = %g, want 0", scores[2])
	}
}

func TestBuildComplianceMatrixUnsupportedOperator(t *testing.T) {
	strategies := []Strategy{
		{Name: "s", Indicators: []IndicatorWeight{{Indicator: "x", Weight: 1}}},
	}
	values := map[string]float64{"x": 1}
	thresholds := map[string]Threshold{"x": {Op: Operator("!="), Bound: 1}}

	if _, err := BuildComplianceMatrix(strategies, []string{"x"}, values, thresholds); err == nil {
		t.Fatal("expected error for unsupported operator")
	}
}

func TestSurveyIndicators(t *testing.T) {
	values := map[string]float64{
		"incidence":           5.0,  // past > 2 by 3
		"supply availability": 60.0, // past < 80 by 20
		"pupal index":         0.5,  // under >= 1
		"unthresholded":       9.0,  // skipped: no threshold
	}
	thresholds := map[string]Threshold{
		"incidence":           {Op: OpGreater, Bound: 2},
		"supply availability": {Op: OpLess, Bound: 80},
		"pupal index":         {Op: OpGreaterEq, Bound: 1},
		"no reading":          {Op: OpGreater, Bound: 10}, // skipped: no value
	}
	names := []string{"incidence", "no reading", "pupal index", "supply availability", "unthresholded"}

	statuses, critical, normal, err := SurveyIndicators(names, values, thresholds)
	if err != nil {
		t.Fatalf("SurveyIndicators: %v", err)
	}
	if critical != 2 || normal != 1 {
		t.Fatalf("critical=%d normal=%d, want 2 and 1", critical, normal)
	}
	if len(statuses) != 3 {
		t.Fatalf("surveyed %d indicators, want 3", len(statuses))
	}
	// Ordered by distance past the bound, largest first.
	if statuses[0].Name != "supply availability" {
		t.Errorf("first surveyed = %q, want supply availability (excess 20)", statuses[0].Name)
	}
	if !statuses[0].Alarming || statuses[0].Excess != 20 {
		t.Errorf("supply availability: alarming=%v excess=%g, want true and 20", statuses[0].Alarming, statuses[0].Excess)
	}
	if statuses[2].Name != "pupal index" || statuses[2].Alarming {
		t.Errorf("last surveyed = %q alarming=%v, want pupal index normal", statuses[2].Name, statuses[2].Alarming)
	}
}
