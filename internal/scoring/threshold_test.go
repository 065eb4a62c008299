package scoring

import (
	"errors"
	"testing"
)

func TestParseThreshold(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		op   Operator
		bnd  float64
	}{
		{"percent with space", "< 70%", OpLess, 70},
		{"unicode greater-equal", "≥ 50", OpGreaterEq, 50},
		{"unicode less-equal", "≤ 0.5", OpLessEq, 0.5},
		{"parenthesized with prose", "Type II (≥ 6 weeks)", OpGreaterEq, 6},
		{"compound spaced", "> = 3", OpGreaterEq, 3},
		{"trailing units", "> 3 cases/neighborhood", OpGreater, 3},
		{"bare number defaults to lower bound", "2", OpGreaterEq, 2},
		{"decimal", ">= 0.05", OpGreaterEq, 0.05},
		{"no space", "<80", OpLess, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := ParseThreshold(tt.raw)
			if err != nil {
				t.Fatalf("ParseThreshold(%q): %v", tt.raw, err)
			}
			if th.Op != tt.op {
				t.Errorf("operator = %q, want %q", th.Op, tt.op)
			}
			if th.Bound != tt.bnd {
				t.Errorf("bound = %g, want %g", th.Bound, tt.bnd)
			}
		})
	}
}

func TestParseThresholdNoNumber(t *testing.T) {
	for _, raw := range []string{"", "   ", "qualitative assessment", "N/A"} {
		if _, err := ParseThreshold(raw); !errors.Is(err, ErrNoThreshold) {
			t.Errorf("ParseThreshold(%q) = %v, want ErrNoThreshold", raw, err)
		}
	}
}

func TestOperatorAlarming(t *testing.T) {
	tests := []struct {
		op    Operator
		value float64
		bound float64
		want  bool
	}{
		{OpLess, 69, 70, true},
		{OpLess, 70, 70, false},
		{OpLessEq, 70, 70, true},
		{OpGreater, 70, 70, false},
		{OpGreater, 71, 70, true},
		{OpGreaterEq, 70, 70, true},
		{OpGreaterEq, 69.9, 70, false},
	}
	for _, tt := range tests {
		got, err := tt.op.Alarming(tt.value, tt.bound)
		if err != nil {
			t.Fatalf("%s.Alarming(%g, %g): %v", tt.op, tt.value, tt.bound, err)
		}
		if got != tt.want {
			t.Errorf("%g %s %g = %v, want %v", tt.value, tt.op, tt.bound, got, tt.want)
		}
	}
}

func TestOperatorAlarmingUnsupported(t *testing.T) {
	if _, err := Operator("!=").Alarming(1, 2); !errors.Is(err, ErrUnsupportedOperator) {
		t.Errorf("got %v, want ErrUnsupportedOperator", err)
	}
}
