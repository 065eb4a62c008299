package scoring

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrNoThreshold marks a threshold expression with no extractable numeric
	// bound. The indicator degrades to thresholdless: it never counts as
	// critical and its weight applies unconditionally when a value exists.
	ErrNoThreshold = errors.New("no numeric threshold found")

	// ErrUnsupportedOperator marks a comparison operator outside the
	// supported set. Reaching it means a corrupted configuration table; the
	// run must abort.
	ErrUnsupportedOperator = errors.New("unsupported comparison operator")
)

// Operator is one of the four supported comparison operators.
type Operator string

const (
	OpLess      Operator = "<"
	OpLessEq    Operator = "<="
	OpGreater   Operator = ">"
	OpGreaterEq Operator = ">="
)

// Alarming reports whether value lies in the operator's alarming region
// relative to bound.
func (op Operator) Alarming(value, bound float64) (bool, error) {
	switch op {
	case OpLess:
		return value < bound, nil
	case OpLessEq:
		return value <= bound, nil
	case OpGreater:
		return value > bound, nil
	case OpGreaterEq:
		return value >= bound, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedOperator, string(op))
	}
}

// Threshold is a parsed expert-consensus activation threshold.
type Threshold struct {
	Op    Operator
	Bound float64
}

func (t Threshold) String() string {
	return fmt.Sprintf("%s %g", t.Op, t.Bound)
}

// Threshold expressions are authored as free text with mixed notation:
// "< 70%", "> 3 cases/block", "Type II (≥ 6 weeks)", "≥ 50". Patterns are
// tried in specificity order; the first match wins.
var (
	reCompoundOp = regexp.MustCompile(`([<>])\s*=\s*(\d+\.?\d*)`)
	reSimpleOp   = regexp.MustCompile(`([<>])\s*(\d+\.?\d*)`)
	reParenOp    = regexp.MustCompile(`\(([<>]=?)\s*(\d+\.?\d*)`)
	reNumber     = regexp.MustCompile(`\d+\.?\d*`)
)

var unicodeOps = strings.NewReplacer("≤", "<=", "≥", ">=")

// ParseThreshold extracts the operator and numeric bound from a free-text
// threshold expression. A bare number with no operator defaults to >= (the
// value is assumed to be a lower bound). Expressions with no number at all
// return ErrNoThreshold.
func ParseThreshold(raw string) (Threshold, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Threshold{}, ErrNoThreshold
	}
	s = unicodeOps.Replace(s)

	if m := reCompoundOp.FindStringSubmatch(s); m != nil {
		return Threshold{Op: Operator(m[1] + "="), Bound: parseNumber(m[2])}, nil
	}
	if m := reSimpleOp.FindStringSubmatch(s); m != nil {
		return Threshold{Op: Operator(m[1]), Bound: parseNumber(m[2])}, nil
	}
	if m := reParenOp.FindStringSubmatch(s); m != nil {
		return Threshold{Op: Operator(m[1]), Bound: parseNumber(m[2])}, nil
	}
	if m := reNumber.FindString(s); m != "" {
		return Threshold{Op: OpGreaterEq, Bound: parseNumber(m)}, nil
	}
	return Threshold{}, ErrNoThreshold
}

// parseNumber converts a regex-validated numeric literal.
func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
