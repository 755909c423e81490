package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/clover/pkg/models"
)

func testProperty(agentID string) *models.Property {
	return &models.Property{
		ID:           "prop-1",
		AgentID:      agentID,
		Title:        "4 rooms in Haifa",
		Location:     "חיפה",
		PropertyType: models.PropertyTypeApartment,
		Price:        1_500_000,
		Bedrooms:     4,
		Area:         110,
	}
}

func seekerClient(id, agentID, name string) models.Client {
	return models.Client{
		ID:                     id,
		AgentID:                agentID,
		ClientName:             name,
		Intent:                 models.IntentBuyer,
		Status:                 models.ClientStatusActive,
		PreferredLocation:      "חיפה",
		PreferredPropertyTypes: []string{"apartment"},
		MaxPrice:               floatPtr(1_600_000),
		MinRooms:               intPtr(3),
		MinArea:                floatPtr(100),
	}
}

func TestSelector_ClientsForProperty(t *testing.T) {
	s := NewSelector(DefaultConfig())
	p := testProperty("agent-1")

	t.Run("sellers and inactive clients never participate", func(t *testing.T) {
		seller := seekerClient("c1", "agent-1", "Seller")
		seller.Intent = models.IntentSeller

		closed := seekerClient("c2", "agent-1", "Closed")
		closed.Status = models.ClientStatusClosed

		matches := s.ClientsForProperty(p, []models.Client{seller, closed})
		assert.Empty(t, matches)
	})

	t.Run("own perfect matches rank before external", func(t *testing.T) {
		own := seekerClient("c-own", "agent-1", "Own client")
		external := seekerClient("c-ext", "agent-2", "External client")

		matches := s.ClientsForProperty(p, []models.Client{external, own})
		require.Len(t, matches, 2)
		assert.Equal(t, "c-own", matches[0].Client.ID)
		assert.Equal(t, models.TierPerfectOwn, matches[0].PriorityTier)
		assert.Equal(t, "c-ext", matches[1].Client.ID)
		assert.Equal(t, models.TierPerfectExternal, matches[1].PriorityTier)
		assert.True(t, matches[1].IsExternal)
	})

	t.Run("higher score wins within a tier", func(t *testing.T) {
		strong := seekerClient("c-strong", "agent-2", "Strong")

		weak := seekerClient("c-weak", "agent-2", "Weak")
		weak.MaxPrice = floatPtr(1_000_000) // over budget, one criterion short

		matches := s.ClientsForProperty(p, []models.Client{weak, strong})
		require.Len(t, matches, 2)
		assert.Equal(t, "c-strong", matches[0].Client.ID)
		assert.Equal(t, "c-weak", matches[1].Client.ID)
	})

	t.Run("nameless client becomes a trailing placeholder", func(t *testing.T) {
		valid := seekerClient("c-valid", "agent-1", "Valid")
		nameless := seekerClient("c-nameless", "agent-1", "")

		matches := s.ClientsForProperty(p, []models.Client{nameless, valid})
		require.Len(t, matches, 2)
		assert.Equal(t, "c-valid", matches[0].Client.ID)

		last := matches[1]
		assert.Equal(t, "c-nameless", last.Client.ID)
		assert.True(t, last.Invalid)
		assert.Zero(t, last.Score)
		assert.Equal(t, models.TierRemainder, last.PriorityTier)
	})

	t.Run("result capped at MaxMatches", func(t *testing.T) {
		capped := NewSelector(Config{MaxMatches: 2, PartialTierGap: 1})
		pool := []models.Client{
			seekerClient("c1", "agent-1", "A"),
			seekerClient("c2", "agent-1", "B"),
			seekerClient("c3", "agent-1", "C"),
		}
		assert.Len(t, capped.ClientsForProperty(p, pool), 2)
	})

	t.Run("cap never drops placeholders for malformed records", func(t *testing.T) {
		capped := NewSelector(Config{MaxMatches: 2, PartialTierGap: 1})
		pool := []models.Client{
			seekerClient("c1", "agent-1", "A"),
			seekerClient("c2", "agent-1", "B"),
			seekerClient("c3", "agent-1", "C"),
			seekerClient("c-nameless", "agent-1", ""),
		}

		matches := capped.ClientsForProperty(p, pool)
		require.Len(t, matches, 3, "two capped scored entries plus the placeholder")
		last := matches[2]
		assert.Equal(t, "c-nameless", last.Client.ID)
		assert.True(t, last.Invalid)
	})
}

func TestSelector_CallsForProperty(t *testing.T) {
	s := NewSelector(DefaultConfig())
	p := testProperty("agent-1")

	calls := []models.Call{
		{
			ID:            "call-1",
			AgentID:       "agent-1",
			ClientName:    "Caller",
			Intent:        models.IntentRenter,
			Location:      "חיפה",
			PropertyTypes: []string{"apartment"},
			Price:         floatPtr(1_600_000),
		},
		{
			ID:         "call-2",
			AgentID:    "agent-1",
			ClientName: "Landlord caller",
			Intent:     models.IntentLandlord,
		},
	}

	matches := s.CallsForProperty(p, calls)
	require.Len(t, matches, 1)
	assert.Equal(t, "call-1", matches[0].Call.ID)
	assert.Equal(t, 5, matches[0].Score)
	assert.Equal(t, models.TierPerfectOwn, matches[0].PriorityTier)
}

func TestSelector_PropertiesForPreference(t *testing.T) {
	s := NewSelector(DefaultConfig())
	pref := models.PropertyPreference{
		DisplayName:   "Buyer",
		Location:      "חיפה",
		PropertyTypes: []string{"apartment"},
		MaxPrice:      floatPtr(1_600_000),
	}

	t.Run("external listings require collaboration opt-in", func(t *testing.T) {
		own := *testProperty("agent-1")
		own.ID = "p-own"

		external := *testProperty("agent-2")
		external.ID = "p-ext"
		external.Collaboration = true

		hidden := *testProperty("agent-3")
		hidden.ID = "p-hidden"
		hidden.Collaboration = false

		matches := s.PropertiesForPreference(pref, []models.Property{hidden, external, own}, "agent-1")
		require.Len(t, matches, 2)
		assert.Equal(t, "p-own", matches[0].Property.ID)
		assert.Equal(t, "p-ext", matches[1].Property.ID)
	})

	t.Run("untitled listing becomes a trailing placeholder", func(t *testing.T) {
		untitled := *testProperty("agent-1")
		untitled.ID = "p-untitled"
		untitled.Title = ""

		matches := s.PropertiesForPreference(pref, []models.Property{untitled}, "agent-1")
		require.Len(t, matches, 1)
		assert.True(t, matches[0].Invalid)
		assert.Equal(t, models.TierRemainder, matches[0].PriorityTier)
	})
}

func TestCountPresentable(t *testing.T) {
	matches := []models.ClientMatch{
		{MatchResult: models.MatchResult{PriorityTier: models.TierPerfectOwn}},
		{MatchResult: models.MatchResult{PriorityTier: models.TierPartialExternal}},
		{MatchResult: models.MatchResult{PriorityTier: models.TierRemainder}},
		{MatchResult: models.MatchResult{PriorityTier: models.TierPerfectOwn, Invalid: true}},
	}
	assert.Equal(t, 2, CountPresentable(matches))
}
