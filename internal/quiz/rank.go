package quiz

import (
	"sort"

	"termtrivia/internal/domain"
)

// TopRanked returns the n best results by percentage, descending. The sort
// is stable: equal percentages keep their insertion order. n <= 0 returns
// the whole ranking.
func TopRanked(results []domain.SessionResult, n int) []domain.SessionResult {
	ranked := make([]domain.SessionResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percentage > ranked[j].Percentage
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
