package screener

import (
	"sort"

	"github.com/strategic-council/screener/models"
)

const (
	selectMinimum  = 3
	selectFraction = 0.05
)

// SelectTop ranks scored items by descending score and keeps the top 5%, but
// never fewer than three when at least three exist. The sort is stable so
// ties keep their original relative order. Empty input yields empty output.
func SelectTop(scored []models.ScoredItem) []models.ScoredItem {
	if len(scored) == 0 {
		return nil
	}

	ranked := make([]models.ScoredItem, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	keep := int(float64(len(ranked)) * selectFraction)
	if keep < selectMinimum {
		keep = selectMinimum
	}
	if keep > len(ranked) {
		keep = len(ranked)
	}
	return ranked[:keep]
}
