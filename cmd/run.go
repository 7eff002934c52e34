package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadqual/internal/pipeline"
	"github.com/sells-group/leadqual/internal/scorer"
)

var (
	runInput    string
	runScored   string
	runPriority string
	runCredits  int
	runCost     int
	runNoDedupe bool
	runMXCheck  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Score, dedupe and prioritize a lead CSV",
	Long: `Reads a lead CSV, scores every record 0-100 with a per-component
breakdown, removes duplicates, and greedily selects the top leads to enrich
within the credit budget.

Writes two files: all scored leads and the prioritized subset.

Examples:
  # Score and prioritize with the default 10 credits
  leadqual run --input leads.csv

  # Custom budget, MX checks enabled (network required)
  leadqual run --input leads.csv --credits 50 --mx-check

  # Keep duplicates
  leadqual run --input leads.csv --no-dedupe`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		leads, err := pipeline.ReadLeadsCSV(runInput)
		if err != nil {
			return eris.Wrap(err, "run: read input")
		}
		zap.L().Info("run: parsed input", zap.Int("rows", len(leads)))

		credits := runCredits
		if credits == 0 {
			credits = cfg.Scoring.Credits
		}
		cost := runCost
		if cost == 0 {
			cost = cfg.Scoring.CostPerEnrich
		}

		policy := scorer.MXDisabled
		if runMXCheck {
			policy = scorer.MXEnabled
		}

		engine, err := buildEngine(runMXCheck)
		if err != nil {
			return err
		}

		proc := pipeline.NewProcessor(engine, pipeline.Options{
			Credits:       credits,
			CostPerEnrich: cost,
			DedupeEnabled: !runNoDedupe,
			MXPolicy:      policy,
		})
		result := proc.Process(cmd.Context(), leads)

		if err := pipeline.WriteScoredCSV(runScored, result.Scored); err != nil {
			return eris.Wrap(err, "run: write scored")
		}
		if err := pipeline.WriteScoredCSV(runPriority, result.Prioritized); err != nil {
			return eris.Wrap(err, "run: write prioritized")
		}

		zap.L().Info("run: complete",
			zap.String("run_id", result.RunID),
			zap.String("scored", runScored),
			zap.String("prioritized", runPriority),
			zap.Int("selected", len(result.Prioritized)),
		)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runInput, "input", "", "input CSV path (required)")
	runCmd.Flags().StringVar(&runScored, "scored", "scored.csv", "output path for all scored leads")
	runCmd.Flags().StringVar(&runPriority, "priority", "prioritized.csv", "output path for prioritized leads")
	runCmd.Flags().IntVar(&runCredits, "credits", 0, "enrichment credits available (default from config: 10)")
	runCmd.Flags().IntVar(&runCost, "cost-per-enrich", 0, "credits per enriched lead (default from config: 1)")
	runCmd.Flags().BoolVar(&runNoDedupe, "no-dedupe", false, "disable deduplication")
	runCmd.Flags().BoolVar(&runMXCheck, "mx-check", false, "verify email domains have MX records (network required)")
	_ = runCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(runCmd)
}
