package pipeline

import (
	"sort"

	"github.com/sells-group/leadqual/internal/model"
)

// Prioritize sorts scored leads descending by score (stable, so equal
// scores keep their input order) and greedily selects from the front while
// the remaining budget covers costPerEnrich. Selection stops at the first
// unaffordable record; this is greedy-by-rank, not a knapsack.
func Prioritize(scored []model.ScoredLead, credits, costPerEnrich int) []model.ScoredLead {
	ranked := make([]model.ScoredLead, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	var selected []model.ScoredLead
	budget := credits
	for _, lead := range ranked {
		if budget < costPerEnrich {
			break
		}
		selected = append(selected, lead)
		budget -= costPerEnrich
	}
	return selected
}
