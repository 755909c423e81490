package matching

// Config contains the tunable knobs of the matching core. The observed
// production behavior is captured by the defaults; deployments can adjust
// the collaboration gate and partial tier width through the environment.
type Config struct {
	MinCollaborationScore int // minimum score (of 6) for collaboration discovery (default: 5)
	PartialTierGap        int // criteria a match may miss and still rank in a partial tier (default: 1)
	MaxMatches            int // maximum matches returned per target (default: 100)
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		MinCollaborationScore: 5,
		PartialTierGap:        1,
		MaxMatches:            100,
	}
}
