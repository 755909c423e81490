package matching

import (
	"context"
	"sort"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/internal/repositories/client"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// AgentSource loads agent records for collaboration grouping
type AgentSource interface {
	Get(ctx context.Context, id string) (*models.Agent, error)
	GetMany(ctx context.Context, ids []string) ([]models.Agent, error)
}

// Matchmaker discovers collaboration opportunities: other agents whose
// clients score highly against one of this agent's listings. The result
// feeds a user-confirmation step before collaboration emails go out; the
// matchmaker itself never writes anything.
type Matchmaker struct {
	logger  ectologger.Logger
	clients ClientSource
	agents  AgentSource
	cfg     Config
}

// NewMatchmaker creates a collaboration matchmaker
func NewMatchmaker(logger ectologger.Logger, clients ClientSource, agents AgentSource, cfg Config) *Matchmaker {
	return &Matchmaker{
		logger:  logger,
		clients: clients,
		agents:  agents,
		cfg:     cfg,
	}
}

// FindCollaboratingAgents scans every other agent's clients against the
// property using the stricter 6-criteria set, keeps those at or above
// minMatch, and groups survivors per owning agent. minMatch <= 0 falls
// back to the configured gate (5 of 6).
func (m *Matchmaker) FindCollaboratingAgents(ctx context.Context, p *models.Property, minMatch int) ([]models.AgentMatches, error) {
	ctx, span := tracing.StartSpan(ctx, "matching.Matchmaker.FindCollaboratingAgents")
	defer span.End()

	if minMatch <= 0 {
		minMatch = m.cfg.MinCollaborationScore
	}

	log := m.logger.WithContext(ctx).WithFields(map[string]any{
		"property_id": p.ID,
		"min_match":   minMatch,
	})

	pool, err := m.clients.List(ctx, client.Filter{ExcludeAgentID: p.AgentID})
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.ClientMatch)
	var agentOrder []string

	for _, c := range pool {
		if !c.Intent.SeeksProperty() || !c.Status.InPlay() || c.ClientName == "" {
			continue
		}

		result := Score(p, ClientPreference(&c), CollaborationCriteria)
		if result.Score < minMatch {
			continue
		}
		result.IsExternal = true
		result.PriorityTier = Classify(result, false, m.cfg.PartialTierGap)

		if _, seen := grouped[c.AgentID]; !seen {
			agentOrder = append(agentOrder, c.AgentID)
		}
		grouped[c.AgentID] = append(grouped[c.AgentID], models.ClientMatch{Client: c, MatchResult: result})
	}

	if len(grouped) == 0 {
		log.Debug("No collaborating agents found")
		return nil, nil
	}

	agents, err := m.agents.GetMany(ctx, agentOrder)
	if err != nil {
		return nil, err
	}
	agentsByID := make(map[string]models.Agent, len(agents))
	for _, a := range agents {
		agentsByID[a.ID] = a
	}

	results := make([]models.AgentMatches, 0, len(agentOrder))
	for _, agentID := range agentOrder {
		a, ok := agentsByID[agentID]
		if !ok {
			log.WithFields(map[string]any{"agent_id": agentID}).Warn("Matching clients reference a missing agent record")
			continue
		}

		matches := grouped[agentID]
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Score > matches[j].Score
		})
		results = append(results, models.AgentMatches{Agent: a, MatchingClients: matches})
	}

	// agents with the strongest top match first
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchingClients[0].Score > results[j].MatchingClients[0].Score
	})

	log.WithFields(map[string]any{"agent_count": len(results)}).Info("Found collaborating agents")
	return results, nil
}
