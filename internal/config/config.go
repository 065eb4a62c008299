package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Tables  TablesConfig  `yaml:"tables"`
	Logging LoggingConfig `yaml:"logging"`
}

type ScoringConfig struct {
	Weights CriterionWeightsConfig `yaml:"weights"`
}

type CriterionWeightsConfig struct {
	Compliance float64 `yaml:"compliance"`
	Factors    float64 `yaml:"factors"`
}

// TablesConfig points at the YAML tables the engine is built from. Empty
// paths fall back to the built-in defaults.
type TablesConfig struct {
	StrategiesPath string `yaml:"strategies"`
	ValuationsPath string `yaml:"valuations"`
	PolicyPath     string `yaml:"policy"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Scoring: ScoringConfig{
			Weights: CriterionWeightsConfig{
				Compliance: 0.5,
				Factors:    0.5,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DENGUEDSS_WEIGHT_COMPLIANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scoring.Weights.Compliance = f
		}
	}
	if v := os.Getenv("DENGUEDSS_WEIGHT_FACTORS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scoring.Weights.Factors = f
		}
	}
	if v := os.Getenv("DENGUEDSS_STRATEGIES"); v != "" {
		cfg.Tables.StrategiesPath = v
	}
	if v := os.Getenv("DENGUEDSS_VALUATIONS"); v != "" {
		cfg.Tables.ValuationsPath = v
	}
	if v := os.Getenv("DENGUEDSS_POLICY"); v != "" {
		cfg.Tables.PolicyPath = v
	}
	if v := os.Getenv("DENGUEDSS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("DENGUEDSS_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
