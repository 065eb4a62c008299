package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Scoring.Weights.Compliance)
	assert.Equal(t, 0.5, cfg.Scoring.Weights.Factors)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.Tables.StrategiesPath)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
scoring:
  weights:
    compliance: 0.7
    factors: 0.3
tables:
  strategies: tables/strategies.yaml
logging:
  level: debug
  format: text
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.Scoring.Weights.Compliance)
	assert.Equal(t, 0.3, cfg.Scoring.Weights.Factors)
	assert.Equal(t, "tables/strategies.yaml", cfg.Tables.StrategiesPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 0.5, cfg.Scoring.Weights.Compliance)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DENGUEDSS_WEIGHT_COMPLIANCE", "0.6")
	t.Setenv("DENGUEDSS_WEIGHT_FACTORS", "0.4")
	t.Setenv("DENGUEDSS_STRATEGIES", "/etc/denguedss/strategies.yaml")
	t.Setenv("DENGUEDSS_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.6, cfg.Scoring.Weights.Compliance)
	assert.Equal(t, 0.4, cfg.Scoring.Weights.Factors)
	assert.Equal(t, "/etc/denguedss/strategies.yaml", cfg.Tables.StrategiesPath)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
