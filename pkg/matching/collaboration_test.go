package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/clover/pkg/models"
)

type failingAgentSource struct{ err error }

func (f *failingAgentSource) Get(context.Context, string) (*models.Agent, error) {
	return nil, f.err
}

func (f *failingAgentSource) GetMany(context.Context, []string) ([]models.Agent, error) {
	return nil, f.err
}

func collaborationProperty() *models.Property {
	p := testProperty("agent-owner")
	p.Condition = strPtr("renovated")
	return p
}

// collaborationClient builds a client hitting all six criteria
func collaborationClient(id, agentID, name string) models.Client {
	c := seekerClient(id, agentID, name)
	c.PreferredCondition = "משופץ"
	return c
}

func newTestMatchmaker(clients []models.Client, agents []models.Agent) *Matchmaker {
	return NewMatchmaker(
		testLogger(),
		&fakeClientSource{clients: clients},
		&fakeAgentSource{agents: agents},
		DefaultConfig(),
	)
}

func TestMatchmaker_FindCollaboratingAgents(t *testing.T) {
	agents := []models.Agent{
		{ID: "agent-a", FullName: "Agent A", AgencyName: "North Realty"},
		{ID: "agent-b", FullName: "Agent B", AgencyName: "Bay Homes"},
	}

	t.Run("owner's own clients are excluded", func(t *testing.T) {
		clients := []models.Client{
			collaborationClient("c-owner", "agent-owner", "Owner client"),
		}
		m := newTestMatchmaker(clients, agents)

		results, err := m.FindCollaboratingAgents(context.Background(), collaborationProperty(), 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("default gate keeps five of six and drops four of six", func(t *testing.T) {
		fiveOfSix := collaborationClient("c-five", "agent-a", "Five")
		fiveOfSix.PreferredCondition = "חדש" // condition misses, 5/6

		fourOfSix := collaborationClient("c-four", "agent-b", "Four")
		fourOfSix.PreferredCondition = "חדש"
		fourOfSix.MaxPrice = floatPtr(1_000_000) // price also misses, 4/6

		m := newTestMatchmaker([]models.Client{fiveOfSix, fourOfSix}, agents)

		results, err := m.FindCollaboratingAgents(context.Background(), collaborationProperty(), 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "agent-a", results[0].Agent.ID)
		require.Len(t, results[0].MatchingClients, 1)
		assert.Equal(t, 5, results[0].MatchingClients[0].Score)
		assert.True(t, results[0].MatchingClients[0].IsExternal)
	})

	t.Run("explicit minMatch overrides the gate", func(t *testing.T) {
		fourOfSix := collaborationClient("c-four", "agent-b", "Four")
		fourOfSix.PreferredCondition = "חדש"
		fourOfSix.MaxPrice = floatPtr(1_000_000)

		m := newTestMatchmaker([]models.Client{fourOfSix}, agents)

		results, err := m.FindCollaboratingAgents(context.Background(), collaborationProperty(), 4)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "agent-b", results[0].Agent.ID)
	})

	t.Run("clients group per agent sorted by top score", func(t *testing.T) {
		perfectA := collaborationClient("c-a1", "agent-a", "Perfect A")
		partialA := collaborationClient("c-a2", "agent-a", "Partial A")
		partialA.PreferredCondition = "חדש"

		partialB := collaborationClient("c-b1", "agent-b", "Partial B")
		partialB.PreferredCondition = "חדש"

		m := newTestMatchmaker([]models.Client{partialB, partialA, perfectA}, agents)

		results, err := m.FindCollaboratingAgents(context.Background(), collaborationProperty(), 0)
		require.NoError(t, err)
		require.Len(t, results, 2)

		// agent-a's top client is perfect so agent-a leads
		assert.Equal(t, "agent-a", results[0].Agent.ID)
		require.Len(t, results[0].MatchingClients, 2)
		assert.Equal(t, "c-a1", results[0].MatchingClients[0].Client.ID)
		assert.Equal(t, 6, results[0].MatchingClients[0].Score)

		assert.Equal(t, "agent-b", results[1].Agent.ID)
	})

	t.Run("nameless and non-seeking clients are skipped", func(t *testing.T) {
		nameless := collaborationClient("c-nameless", "agent-a", "")
		seller := collaborationClient("c-seller", "agent-a", "Seller")
		seller.Intent = models.IntentSeller

		m := newTestMatchmaker([]models.Client{nameless, seller}, agents)

		results, err := m.FindCollaboratingAgents(context.Background(), collaborationProperty(), 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("client pool failure aborts discovery", func(t *testing.T) {
		storageErr := errors.New("database unavailable")
		m := NewMatchmaker(
			testLogger(),
			&failingClientSource{err: storageErr},
			&fakeAgentSource{agents: agents},
			DefaultConfig(),
		)

		results, err := m.FindCollaboratingAgents(context.Background(), collaborationProperty(), 0)
		require.ErrorIs(t, err, storageErr)
		assert.Nil(t, results)
	})

	t.Run("agent lookup failure aborts discovery", func(t *testing.T) {
		storageErr := errors.New("database unavailable")
		clients := []models.Client{collaborationClient("c1", "agent-a", "Buyer")}
		m := NewMatchmaker(
			testLogger(),
			&fakeClientSource{clients: clients},
			&failingAgentSource{err: storageErr},
			DefaultConfig(),
		)

		results, err := m.FindCollaboratingAgents(context.Background(), collaborationProperty(), 0)
		require.ErrorIs(t, err, storageErr)
		assert.Nil(t, results)
	})

	t.Run("missing agent record drops the group without failing", func(t *testing.T) {
		orphan := collaborationClient("c-orphan", "agent-ghost", "Orphan")
		m := newTestMatchmaker([]models.Client{orphan}, agents)

		results, err := m.FindCollaboratingAgents(context.Background(), collaborationProperty(), 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
