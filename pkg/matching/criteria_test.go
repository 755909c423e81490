package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/clover/pkg/models"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func TestEvaluateLocation(t *testing.T) {
	t.Run("exact match after normalization", func(t *testing.T) {
		p := &models.Property{Location: " Tel  Aviv "}
		d := Evaluate(CriterionLocation, p, models.PropertyPreference{Location: "tel aviv"})
		assert.True(t, d.Match)
	})

	t.Run("substring either direction", func(t *testing.T) {
		p := &models.Property{Location: "חיפה - כרמל"}
		d := Evaluate(CriterionLocation, p, models.PropertyPreference{Location: "חיפה"})
		assert.True(t, d.Match)

		p = &models.Property{Location: "חיפה"}
		d = Evaluate(CriterionLocation, p, models.PropertyPreference{Location: "חיפה - כרמל"})
		assert.True(t, d.Match)
	})

	t.Run("different cities do not match", func(t *testing.T) {
		p := &models.Property{Location: "חיפה"}
		d := Evaluate(CriterionLocation, p, models.PropertyPreference{Location: "תל אביב"})
		assert.False(t, d.Match)
	})

	t.Run("blank preference fails instead of skipping", func(t *testing.T) {
		p := &models.Property{Location: "חיפה"}
		d := Evaluate(CriterionLocation, p, models.PropertyPreference{})
		assert.False(t, d.Match)
	})

	t.Run("blank property location fails", func(t *testing.T) {
		p := &models.Property{}
		d := Evaluate(CriterionLocation, p, models.PropertyPreference{Location: "חיפה"})
		assert.False(t, d.Match)
	})

	t.Run("both sides blank still fails rather than skipping", func(t *testing.T) {
		d := Evaluate(CriterionLocation, &models.Property{}, models.PropertyPreference{})
		assert.False(t, d.Match)
	})

	t.Run("display keeps original casing while comparing normalized", func(t *testing.T) {
		p := &models.Property{Location: "tel aviv"}
		d := Evaluate(CriterionLocation, p, models.PropertyPreference{Location: "Tel Aviv"})
		assert.True(t, d.Match)
		assert.Equal(t, "tel aviv", d.PropertyValue)
		assert.Equal(t, "Tel Aviv", d.ClientValue)
	})
}

func TestEvaluateType(t *testing.T) {
	p := &models.Property{PropertyType: models.PropertyTypeVilla}

	t.Run("membership in preferred list", func(t *testing.T) {
		d := Evaluate(CriterionType, p, models.PropertyPreference{PropertyTypes: []string{"apartment", "villa"}})
		assert.True(t, d.Match)
	})

	t.Run("not in preferred list", func(t *testing.T) {
		d := Evaluate(CriterionType, p, models.PropertyPreference{PropertyTypes: []string{"apartment"}})
		assert.False(t, d.Match)
	})

	t.Run("empty list is trivially satisfied", func(t *testing.T) {
		d := Evaluate(CriterionType, p, models.PropertyPreference{})
		assert.True(t, d.Match)
		assert.Equal(t, "any", d.ClientValue)
	})
}

func TestEvaluatePrice(t *testing.T) {
	p := &models.Property{Price: 1_500_000}

	t.Run("within budget", func(t *testing.T) {
		d := Evaluate(CriterionPrice, p, models.PropertyPreference{MaxPrice: floatPtr(1_600_000)})
		assert.True(t, d.Match)
	})

	t.Run("budget boundary is inclusive", func(t *testing.T) {
		d := Evaluate(CriterionPrice, p, models.PropertyPreference{MaxPrice: floatPtr(1_500_000)})
		assert.True(t, d.Match)
	})

	t.Run("over budget", func(t *testing.T) {
		d := Evaluate(CriterionPrice, p, models.PropertyPreference{MaxPrice: floatPtr(1_200_000)})
		assert.False(t, d.Match)
	})

	t.Run("no budget is trivially satisfied", func(t *testing.T) {
		d := Evaluate(CriterionPrice, p, models.PropertyPreference{})
		assert.True(t, d.Match)
		assert.Equal(t, "any", d.ClientValue)
	})
}

func TestEvaluateRooms(t *testing.T) {
	p := &models.Property{Bedrooms: 4}

	t.Run("meets minimum", func(t *testing.T) {
		assert.True(t, Evaluate(CriterionRooms, p, models.PropertyPreference{MinRooms: intPtr(4)}).Match)
		assert.True(t, Evaluate(CriterionRooms, p, models.PropertyPreference{MinRooms: intPtr(3)}).Match)
	})

	t.Run("below minimum", func(t *testing.T) {
		assert.False(t, Evaluate(CriterionRooms, p, models.PropertyPreference{MinRooms: intPtr(5)}).Match)
	})

	t.Run("no minimum is trivially satisfied", func(t *testing.T) {
		assert.True(t, Evaluate(CriterionRooms, p, models.PropertyPreference{}).Match)
	})
}

func TestEvaluateArea(t *testing.T) {
	p := &models.Property{Area: 110}

	assert.True(t, Evaluate(CriterionArea, p, models.PropertyPreference{MinArea: floatPtr(100)}).Match)
	assert.True(t, Evaluate(CriterionArea, p, models.PropertyPreference{MinArea: floatPtr(110)}).Match)
	assert.False(t, Evaluate(CriterionArea, p, models.PropertyPreference{MinArea: floatPtr(120)}).Match)
	assert.True(t, Evaluate(CriterionArea, p, models.PropertyPreference{}).Match)
}

func TestEvaluateCondition(t *testing.T) {
	t.Run("hebrew listing matches canonical preference", func(t *testing.T) {
		p := &models.Property{Condition: strPtr("משופץ")}
		d := Evaluate(CriterionCondition, p, models.PropertyPreference{Condition: "renovated"})
		assert.True(t, d.Match)
	})

	t.Run("different condition fails", func(t *testing.T) {
		p := &models.Property{Condition: strPtr("דורש שיפוץ")}
		d := Evaluate(CriterionCondition, p, models.PropertyPreference{Condition: "renovated"})
		assert.False(t, d.Match)
	})

	t.Run("no preference is trivially satisfied", func(t *testing.T) {
		p := &models.Property{Condition: strPtr("new")}
		d := Evaluate(CriterionCondition, p, models.PropertyPreference{})
		assert.True(t, d.Match)
	})

	t.Run("preference set but listing silent fails", func(t *testing.T) {
		p := &models.Property{}
		d := Evaluate(CriterionCondition, p, models.PropertyPreference{Condition: "new"})
		assert.False(t, d.Match)
	})
}

// Full-pair scenarios with Hebrew records mirroring real intake data.
func TestScore_HebrewScenarios(t *testing.T) {
	t.Run("perfect five of five", func(t *testing.T) {
		p := &models.Property{
			Location:     "חיפה",
			PropertyType: models.PropertyTypeApartment,
			Price:        1_500_000,
			Bedrooms:     4,
			Area:         110,
		}
		pref := models.PropertyPreference{
			Location:      "חיפה",
			PropertyTypes: []string{"apartment"},
			MaxPrice:      floatPtr(1_600_000),
			MinRooms:      intPtr(3),
			MinArea:       floatPtr(100),
		}

		result := Score(p, pref, StandardCriteria)
		assert.Equal(t, 5, result.Score)
		assert.Equal(t, 5, result.TotalCriteria)
		require.Len(t, result.MatchDetails, 5)
		for _, d := range result.MatchDetails {
			assert.True(t, d.Match, d.Label)
		}
	})

	t.Run("wrong city loses only location", func(t *testing.T) {
		p := &models.Property{
			Location:     "תל אביב",
			PropertyType: models.PropertyTypeApartment,
			Price:        1_500_000,
			Bedrooms:     4,
			Area:         110,
		}
		pref := models.PropertyPreference{
			Location:      "חיפה",
			PropertyTypes: []string{"apartment"},
			MaxPrice:      floatPtr(1_600_000),
			MinRooms:      intPtr(3),
			MinArea:       floatPtr(100),
		}

		result := Score(p, pref, StandardCriteria)
		assert.Equal(t, 4, result.Score)
		assert.False(t, result.MatchDetails[0].Match, "location should fail")
	})

	t.Run("everything mismatched scores zero", func(t *testing.T) {
		p := &models.Property{
			Location:     "חיפה",
			PropertyType: models.PropertyTypeApartment,
			Price:        1_200_000,
			Bedrooms:     3,
			Area:         80,
		}
		pref := models.PropertyPreference{
			Location:      "תל אביב",
			PropertyTypes: []string{"villa"},
			MaxPrice:      floatPtr(1_000_000),
			MinRooms:      intPtr(4),
			MinArea:       floatPtr(100),
		}

		result := Score(p, pref, StandardCriteria)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, 5, result.TotalCriteria)
	})

	t.Run("empty preferences score four of five", func(t *testing.T) {
		p := &models.Property{
			Location:     "חיפה",
			PropertyType: models.PropertyTypeVilla,
			Price:        3_000_000,
			Bedrooms:     6,
			Area:         250,
		}

		result := Score(p, models.PropertyPreference{}, StandardCriteria)
		assert.Equal(t, 4, result.Score, "everything trivially satisfied except location")
	})
}
