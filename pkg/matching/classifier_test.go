package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/clover/pkg/models"
)

func TestClassify(t *testing.T) {
	result := func(score, total int) models.MatchResult {
		return models.MatchResult{Score: score, TotalCriteria: total}
	}

	t.Run("perfect own ranks first", func(t *testing.T) {
		assert.Equal(t, models.TierPerfectOwn, Classify(result(5, 5), true, 1))
	})

	t.Run("perfect external ranks second", func(t *testing.T) {
		assert.Equal(t, models.TierPerfectExternal, Classify(result(5, 5), false, 1))
	})

	t.Run("one short lands in partial tiers", func(t *testing.T) {
		assert.Equal(t, models.TierPartialOwn, Classify(result(4, 5), true, 1))
		assert.Equal(t, models.TierPartialExternal, Classify(result(4, 5), false, 1))
	})

	t.Run("two short is remainder at default gap", func(t *testing.T) {
		assert.Equal(t, models.TierRemainder, Classify(result(3, 5), true, 1))
		assert.Equal(t, models.TierRemainder, Classify(result(3, 5), false, 1))
	})

	t.Run("wider gap widens the partial tiers", func(t *testing.T) {
		assert.Equal(t, models.TierPartialOwn, Classify(result(3, 5), true, 2))
		assert.Equal(t, models.TierRemainder, Classify(result(2, 5), true, 2))
	})

	t.Run("gap below one clamps to one", func(t *testing.T) {
		assert.Equal(t, models.TierPartialOwn, Classify(result(4, 5), true, 0))
		assert.Equal(t, models.TierRemainder, Classify(result(3, 5), true, -3))
	})

	t.Run("six criteria set", func(t *testing.T) {
		assert.Equal(t, models.TierPerfectExternal, Classify(result(6, 6), false, 1))
		assert.Equal(t, models.TierPartialExternal, Classify(result(5, 6), false, 1))
		assert.Equal(t, models.TierRemainder, Classify(result(4, 6), false, 1))
	})
}
