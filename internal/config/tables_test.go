package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuanJoseLL/dengue-dss/internal/policy"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStrategies(t *testing.T) {
	path := writeFile(t, "strategies.yaml", `
strategies:
  - name: "Apply chemical adulticides in open spaces"
    response_type: immediate
    indicators:
      - { name: "incidence", weight: 5, threshold: "> 2" }
      - { name: "supply availability", weight: 2, threshold: "< 80%" }
    factors:
      coverage_time: 9
  - name: "Promote preventive practices"
    indicators:
      - { name: "risk perception", weight: 4, threshold: "< 50" }
`)
	sf, err := LoadStrategies(path)
	require.NoError(t, err)

	require.Len(t, sf.Strategies, 2)
	assert.Equal(t, "immediate", sf.Strategies[0].ResponseType)
	require.Len(t, sf.Strategies[0].Indicators, 2)
	assert.Equal(t, "< 80%", sf.Strategies[0].Indicators[1].Threshold)
	assert.Equal(t, 9.0, sf.Strategies[0].Factors["coverage_time"])
}

func TestLoadStrategiesEmpty(t *testing.T) {
	path := writeFile(t, "strategies.yaml", "strategies: []\n")
	_, err := LoadStrategies(path)
	assert.Error(t, err)
}

func TestLoadScenario(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
name: outbreak
severity: emergency
context: heavy-rain
indicators:
  "incidence": 9.5
factors:
  coverage_time: 8
`)
	scen, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "outbreak", scen.Name)
	assert.Equal(t, "emergency", scen.Severity)
	assert.Equal(t, "heavy-rain", scen.Context)
	assert.Equal(t, 9.5, scen.Indicators["incidence"])
	assert.Equal(t, 8.0, scen.Factors["coverage_time"])
}

func TestLoadValuationsDefaults(t *testing.T) {
	val, err := LoadValuations("")
	require.NoError(t, err)
	assert.Equal(t, 0.8, val.General["risk_perception"])
	assert.NotEmpty(t, val.Specific)
}

func TestLoadValuationsOverlay(t *testing.T) {
	path := writeFile(t, "valuations.yaml", `
general:
  outbreak_magnitude: -0.2
`)
	val, err := LoadValuations(path)
	require.NoError(t, err)

	// The provided section replaces the default wholesale.
	assert.Equal(t, -0.2, val.General["outbreak_magnitude"])
	assert.NotContains(t, val.General, "risk_perception")
	// Untouched sections keep their defaults.
	assert.NotEmpty(t, val.Specific)
	assert.NotEmpty(t, val.Default)
}

func TestLoadPoliciesDefaults(t *testing.T) {
	tax, sev, ctx, err := LoadPolicies("")
	require.NoError(t, err)
	assert.NotEmpty(t, tax)
	assert.Equal(t, 2.5, sev.Multiplier(policy.SeverityEmergency, policy.ResponseImmediate))
	assert.NotEmpty(t, ctx)
}

func TestLoadPoliciesOverlay(t *testing.T) {
	path := writeFile(t, "policy.yaml", `
taxonomy:
  "Release sterile mosquitoes": monitoring
severity_multipliers:
  emergency:
    immediate: 3.0
contexts:
  flood:
    - { keyword: "drainage", multiplier: 2.0 }
`)
	tax, sev, ctx, err := LoadPolicies(path)
	require.NoError(t, err)

	assert.Equal(t, policy.ResponseMonitoring, tax["Release sterile mosquitoes"])
	assert.Equal(t, 3.0, sev.Multiplier(policy.SeverityEmergency, policy.ResponseImmediate))
	assert.Equal(t, 2.0, ctx.Multiplier("flood", "clear drainage channels"))
}

func TestLoadPoliciesRejectsBadEntries(t *testing.T) {
	t.Run("bad response type", func(t *testing.T) {
		path := writeFile(t, "policy.yaml", "taxonomy:\n  \"x\": aggressive\n")
		_, _, _, err := LoadPolicies(path)
		assert.Error(t, err)
	})

	t.Run("bad severity tier", func(t *testing.T) {
		path := writeFile(t, "policy.yaml", "severity_multipliers:\n  catastrophic:\n    immediate: 9.0\n")
		_, _, _, err := LoadPolicies(path)
		assert.Error(t, err)
	})
}
