package matching

import (
	"sort"

	"github.com/Ramsey-B/clover/pkg/models"
)

// Selector scores a target entity against a pool of counterpart entities
// and returns ranked matches. All methods are pure in-memory computations
// over already-loaded pools; the orchestrator is responsible for fetching
// pools in bulk.
type Selector struct {
	cfg Config
}

// NewSelector creates a selector with the given configuration.
func NewSelector(cfg Config) *Selector {
	if cfg.MaxMatches <= 0 {
		cfg.MaxMatches = DefaultConfig().MaxMatches
	}
	return &Selector{cfg: cfg}
}

// ClientsForProperty ranks the clients of the pool against one target
// property. Only clients seeking property (buyer/renter/both) with an
// in-play status participate. A client missing its display name produces
// an inert placeholder entry instead of aborting the batch.
func (s *Selector) ClientsForProperty(p *models.Property, pool []models.Client) []models.ClientMatch {
	matches := make([]models.ClientMatch, 0, len(pool))
	var placeholders []models.ClientMatch

	for _, client := range pool {
		if !client.Intent.SeeksProperty() || !client.Status.InPlay() {
			continue
		}

		if client.ClientName == "" {
			placeholders = append(placeholders, models.ClientMatch{
				Client:      client,
				MatchResult: invalidResult(len(StandardCriteria)),
			})
			continue
		}

		result := Score(p, ClientPreference(&client), StandardCriteria)
		isOwn := p.AgentID == client.AgentID
		result.IsExternal = !isOwn
		result.PriorityTier = Classify(result, isOwn, s.cfg.PartialTierGap)
		matches = append(matches, models.ClientMatch{Client: client, MatchResult: result})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return lessRanked(matches[i].MatchResult, matches[j].MatchResult)
	})

	return append(capRanked(matches, s.cfg.MaxMatches), placeholders...)
}

// CallsForProperty ranks call-derived leads against one target property,
// with the same intent filtering and placeholder handling as clients.
func (s *Selector) CallsForProperty(p *models.Property, pool []models.Call) []models.CallMatch {
	matches := make([]models.CallMatch, 0, len(pool))
	var placeholders []models.CallMatch

	for _, call := range pool {
		if !call.Intent.SeeksProperty() {
			continue
		}

		if call.ClientName == "" {
			placeholders = append(placeholders, models.CallMatch{
				Call:        call,
				MatchResult: invalidResult(len(StandardCriteria)),
			})
			continue
		}

		result := Score(p, CallPreference(&call), StandardCriteria)
		isOwn := p.AgentID == call.AgentID
		result.IsExternal = !isOwn
		result.PriorityTier = Classify(result, isOwn, s.cfg.PartialTierGap)
		matches = append(matches, models.CallMatch{Call: call, MatchResult: result})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return lessRanked(matches[i].MatchResult, matches[j].MatchResult)
	})

	return append(capRanked(matches, s.cfg.MaxMatches), placeholders...)
}

// PropertiesForPreference ranks properties against one canonical
// preference. The pool is narrowed to the requesting agent's own inventory
// plus external listings whose owners opted into collaboration. Properties
// missing a title produce placeholder entries.
func (s *Selector) PropertiesForPreference(pref models.PropertyPreference, pool []models.Property, requestingAgentID string) []models.PropertyMatch {
	matches := make([]models.PropertyMatch, 0, len(pool))
	var placeholders []models.PropertyMatch

	for _, p := range pool {
		isOwn := p.AgentID == requestingAgentID
		if !isOwn && !p.Collaboration {
			continue
		}

		if p.Title == "" {
			placeholders = append(placeholders, models.PropertyMatch{
				Property:    p,
				MatchResult: invalidResult(len(StandardCriteria)),
			})
			continue
		}

		result := Score(&p, pref, StandardCriteria)
		result.IsExternal = !isOwn
		result.PriorityTier = Classify(result, isOwn, s.cfg.PartialTierGap)
		matches = append(matches, models.PropertyMatch{Property: p, MatchResult: result})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return lessRanked(matches[i].MatchResult, matches[j].MatchResult)
	})

	return append(capRanked(matches, s.cfg.MaxMatches), placeholders...)
}

// CountPresentable counts the matches worth badging in list views: those
// ranked within a partial tier of a perfect score. Summary mode serializes
// these counts instead of full match details.
func CountPresentable[T RankedMatch](matches []T) int {
	count := 0
	for _, m := range matches {
		r := m.Ranked()
		if !r.Invalid && r.PriorityTier >= models.TierPerfectOwn && r.PriorityTier <= models.TierPartialExternal {
			count++
		}
	}
	return count
}

// RankedMatch is any typed match wrapper that can expose its MatchResult
type RankedMatch interface {
	Ranked() models.MatchResult
}

// capRanked truncates the scored entries to the configured maximum. It runs
// before placeholders are appended so a malformed record always surfaces,
// no matter how large the candidate pool is.
func capRanked[T any](matches []T, max int) []T {
	if len(matches) > max {
		return matches[:max]
	}
	return matches
}

// lessRanked orders by priority tier, then score descending. Equal pairs
// keep their input order so results stay deterministic.
func lessRanked(a, b models.MatchResult) bool {
	if a.PriorityTier != b.PriorityTier {
		return a.PriorityTier < b.PriorityTier
	}
	return a.Score > b.Score
}

func invalidResult(total int) models.MatchResult {
	return models.MatchResult{
		TotalCriteria: total,
		PriorityTier:  models.TierRemainder,
		Invalid:       true,
	}
}
