package matching

import "github.com/Ramsey-B/clover/pkg/models"

// Score runs every criterion in the given set, in order, against one
// (property, preference) pair. It is a pure function: the same inputs
// always produce the same score, total and detail ordering.
func Score(p *models.Property, pref models.PropertyPreference, criteria []Criterion) models.MatchResult {
	details := make([]models.MatchDetail, 0, len(criteria))
	score := 0

	for _, criterion := range criteria {
		detail := Evaluate(criterion, p, pref)
		if detail.Match {
			score++
		}
		details = append(details, detail)
	}

	return models.MatchResult{
		Score:         score,
		TotalCriteria: len(criteria),
		MatchDetails:  details,
	}
}
