package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/JuanJoseLL/dengue-dss/internal/config"
	"github.com/JuanJoseLL/dengue-dss/internal/render"
	"github.com/JuanJoseLL/dengue-dss/internal/scoring"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	strategiesPath := flag.String("strategies", "", "path to strategy table (overrides config)")
	scenarioPath := flag.String("scenario", "", "path to scenario file")
	valuationsPath := flag.String("valuations", "", "path to context valuation overrides (overrides config)")
	policyPath := flag.String("policy", "", "path to policy table overrides (overrides config)")
	severity := flag.String("severity", "", "severity tier, overrides the scenario (low, moderate, high, emergency)")
	contextID := flag.String("context", "", "situational context, overrides the scenario")
	seed := flag.Uint64("seed", 0, "seed synthetic data generation (0 disables synthesis)")
	top := flag.Int("top", 0, "show only the top N strategies (0 shows all)")
	jsonOut := flag.Bool("json", false, "emit the run result as JSON instead of the console report")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	if *strategiesPath == "" {
		*strategiesPath = cfg.Tables.StrategiesPath
	}
	if *valuationsPath == "" {
		*valuationsPath = cfg.Tables.ValuationsPath
	}
	if *policyPath == "" {
		*policyPath = cfg.Tables.PolicyPath
	}
	if *strategiesPath == "" {
		fmt.Fprintln(os.Stderr, "no strategy table: pass -strategies or set tables.strategies in the config")
		os.Exit(1)
	}
	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "no scenario: pass -scenario")
		os.Exit(1)
	}

	sf, err := config.LoadStrategies(*strategiesPath)
	if err != nil {
		logger.Error("failed to load strategies", "error", err)
		os.Exit(1)
	}
	scen, err := config.LoadScenario(*scenarioPath)
	if err != nil {
		logger.Error("failed to load scenario", "error", err)
		os.Exit(1)
	}
	if *severity != "" {
		scen.Severity = *severity
	}
	if *contextID != "" {
		scen.Context = *contextID
	}

	valuation, err := config.LoadValuations(*valuationsPath)
	if err != nil {
		logger.Error("failed to load valuations", "error", err)
		os.Exit(1)
	}
	taxonomy, sevPolicy, ctxPolicy, err := config.LoadPolicies(*policyPath)
	if err != nil {
		logger.Error("failed to load policies", "error", err)
		os.Exit(1)
	}

	opts := config.BuildOptions{
		Valuation: valuation,
		Taxonomy:  taxonomy,
		Logger:    logger,
	}
	if *seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(*seed, 0))
	}

	input, misses, err := config.BuildRunInput(sf, scen, opts)
	if err != nil {
		logger.Error("failed to build run input", "error", err)
		os.Exit(1)
	}
	if misses > 0 {
		logger.Warn("some strategies used fallback profiles", "count", misses)
	}

	weights := scoring.CriterionWeights{
		Compliance: cfg.Scoring.Weights.Compliance,
		Factors:    cfg.Scoring.Weights.Factors,
	}
	scorer, err := scoring.NewScorer(weights, sevPolicy, ctxPolicy, logger)
	if err != nil {
		logger.Error("invalid criterion weights", "error", err)
		os.Exit(1)
	}

	result, err := scorer.Score(input)
	if err != nil {
		logger.Error("scoring run failed", "error", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			logger.Error("failed to encode result", "error", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(render.Report(result, *top))
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
