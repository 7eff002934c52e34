package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/leadqual/internal/model"
	"github.com/sells-group/leadqual/internal/scorer"
)

// Options configures a processing run.
type Options struct {
	Credits       int
	CostPerEnrich int
	DedupeEnabled bool
	MXPolicy      scorer.MXPolicy
}

// Result holds the two pipeline outputs plus run metadata.
type Result struct {
	RunID        string             `json:"run_id"`
	InputCount   int                `json:"input_count"`
	DedupedCount int                `json:"deduped_count"`
	Scored       []model.ScoredLead `json:"scored"`
	Prioritized  []model.ScoredLead `json:"prioritized"`
}

// Processor sequences dedupe, scoring and prioritization over a batch.
// It holds no per-batch state; each Process call is independent.
type Processor struct {
	engine *scorer.Engine
	opts   Options
}

// NewProcessor creates a Processor around a scoring engine.
func NewProcessor(engine *scorer.Engine, opts Options) *Processor {
	return &Processor{engine: engine, opts: opts}
}

// Process runs the batch. Input is not mutated; scoring attaches results to
// fresh records. Returns the full scored set and the prioritized subset.
func (p *Processor) Process(ctx context.Context, leads []model.Lead) *Result {
	result := &Result{
		RunID:      uuid.NewString(),
		InputCount: len(leads),
	}
	log := zap.L().With(zap.String("run_id", result.RunID))

	if p.opts.DedupeEnabled {
		before := len(leads)
		leads = Dedupe(leads)
		log.Info("pipeline: dedupe complete",
			zap.Int("before", before),
			zap.Int("after", len(leads)),
		)
	}
	result.DedupedCount = len(leads)

	scored := make([]model.ScoredLead, 0, len(leads))
	for _, lead := range leads {
		score, breakdown := p.engine.Score(ctx, lead, p.opts.MXPolicy)
		scored = append(scored, model.ScoredLead{
			Lead:      lead,
			Score:     score,
			Breakdown: breakdown,
		})
	}
	result.Scored = scored

	result.Prioritized = Prioritize(scored, p.opts.Credits, p.opts.CostPerEnrich)

	log.Info("pipeline: batch complete",
		zap.Int("input", result.InputCount),
		zap.Int("scored", len(result.Scored)),
		zap.Int("prioritized", len(result.Prioritized)),
		zap.Int("credits", p.opts.Credits),
	)
	return result
}
