package models

// Priority tiers order scored pairs for agent review. Lower is better.
const (
	TierPerfectOwn      = 1 // full score, property belongs to the requesting agent
	TierPerfectExternal = 2 // full score, another agent's property
	TierPartialOwn      = 3 // one criterion short, own property
	TierPartialExternal = 4 // one criterion short, external property
	TierRemainder       = 5 // more than one criterion short
)

// MatchDetail is one criterion comparison, precomputed for display so the
// UI can render and toggle it without re-running any scoring.
type MatchDetail struct {
	Label         string `json:"label"`
	PropertyValue string `json:"property_value"`
	ClientValue   string `json:"client_value"`
	Match         bool   `json:"match"`
}

// MatchResult is the ephemeral outcome of scoring one (property, counterpart)
// pair. It is computed per request and never persisted.
type MatchResult struct {
	Score         int           `json:"score"`
	TotalCriteria int           `json:"total_criteria"`
	MatchDetails  []MatchDetail `json:"match_details"`
	IsExternal    bool          `json:"is_external"`
	PriorityTier  int           `json:"priority_tier"`
	// Invalid marks a counterpart missing required display fields.
	// The entry is kept as a placeholder with its score withheld.
	Invalid bool `json:"invalid_record,omitempty"`
}

// ClientMatch pairs a scored client against a target property
type ClientMatch struct {
	Client Client `json:"client"`
	MatchResult
}

// CallMatch pairs a scored call-derived lead against a target property
type CallMatch struct {
	Call Call `json:"call"`
	MatchResult
}

// PropertyMatch pairs a scored property against a target client or call
type PropertyMatch struct {
	Property Property `json:"property"`
	MatchResult
}

// Ranked exposes the underlying result for generic ranking helpers
func (m ClientMatch) Ranked() MatchResult { return m.MatchResult }

// Ranked exposes the underlying result for generic ranking helpers
func (m CallMatch) Ranked() MatchResult { return m.MatchResult }

// Ranked exposes the underlying result for generic ranking helpers
func (m PropertyMatch) Ranked() MatchResult { return m.MatchResult }

// AgentMatches groups a collaborating agent with their matching clients,
// feeding the offer-collaboration email workflow.
type AgentMatches struct {
	Agent           Agent         `json:"agent"`
	MatchingClients []ClientMatch `json:"matching_clients"`
}
