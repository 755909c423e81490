package matching

import "github.com/Ramsey-B/clover/pkg/models"

// Classify buckets a scored pair into a priority tier. Perfect scores on
// the requesting agent's own inventory rank first, then perfect external
// matches, then near-misses (within partialGap of perfect) in the same
// own-before-external order. Everything further short lands in the
// remainder tier; callers decide whether to present it.
func Classify(result models.MatchResult, isOwnProperty bool, partialGap int) int {
	if partialGap < 1 {
		partialGap = 1
	}

	switch {
	case result.Score == result.TotalCriteria:
		if isOwnProperty {
			return models.TierPerfectOwn
		}
		return models.TierPerfectExternal
	case result.Score >= result.TotalCriteria-partialGap:
		if isOwnProperty {
			return models.TierPartialOwn
		}
		return models.TierPartialExternal
	default:
		return models.TierRemainder
	}
}
