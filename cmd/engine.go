package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/leadqual/internal/scorer"
)

// buildEngine constructs the scoring engine from config: the seniority rule
// table (built-in unless a rules file is configured) and, when MX checking
// is wanted, a rate-limited DNS resolver.
func buildEngine(withMX bool) (*scorer.Engine, error) {
	var rules []scorer.SeniorityRule
	if cfg.Scoring.RulesFile != "" {
		loaded, err := scorer.LoadRules(cfg.Scoring.RulesFile)
		if err != nil {
			return nil, err
		}
		rules = loaded
		zap.L().Info("loaded seniority rules",
			zap.String("path", cfg.Scoring.RulesFile),
			zap.Int("rules", len(loaded)),
		)
	}

	var mx scorer.MXResolver
	if withMX {
		mx = scorer.NewNetMXResolver(
			time.Duration(cfg.Scoring.MXTimeoutSecs)*time.Second,
			cfg.Scoring.MXLookupsPerSec,
		)
	}

	return scorer.NewEngine(rules, mx), nil
}
