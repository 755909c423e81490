package matching

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/internal/repositories/call"
	"github.com/Ramsey-B/clover/internal/repositories/client"
	"github.com/Ramsey-B/clover/internal/repositories/property"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// Mode selects which record sets are paired by an aggregate matching request
type Mode string

const (
	ModePropertiesToClients Mode = "properties-to-clients"
	ModePropertiesToCalls   Mode = "properties-to-calls"
	ModeClientsToProperties Mode = "clients-to-properties"
	ModeCallsToProperties   Mode = "calls-to-properties"
)

// ParseMode validates a mode discriminator from the query string
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePropertiesToClients, ModePropertiesToCalls, ModeClientsToProperties, ModeCallsToProperties:
		return Mode(s), nil
	}
	return "", httperror.NewHTTPError(http.StatusBadRequest, "unknown match type: "+s)
}

// PropertySource loads property snapshots for matching
type PropertySource interface {
	List(ctx context.Context, filter property.Filter) ([]models.Property, error)
	Get(ctx context.Context, id string) (*models.Property, error)
}

// ClientSource loads client snapshots for matching
type ClientSource interface {
	List(ctx context.Context, filter client.Filter) ([]models.Client, error)
	Get(ctx context.Context, id string) (*models.Client, error)
}

// CallSource loads analyzed call snapshots for matching
type CallSource interface {
	List(ctx context.Context, filter call.Filter) ([]models.Call, error)
	Get(ctx context.Context, id string) (*models.Call, error)
}

// Request is one aggregate matching invocation. The requesting agent is
// always explicit; the scoring core never reads session state.
type Request struct {
	Mode              Mode
	RequestingAgentID string
	PropertyID        string
	ClientID          string
	CallID            string
	Summary           bool
}

// TargetMatches carries the ranked matches for one target entity. Exactly
// one of Property/Client/Call is set, or NotFound when an explicit target
// id did not resolve.
type TargetMatches struct {
	Property *models.Property `json:"property,omitempty"`
	Client   *models.Client   `json:"client,omitempty"`
	Call     *models.Call     `json:"call,omitempty"`

	TargetID string `json:"target_id,omitempty"`
	NotFound bool   `json:"not_found,omitempty"`

	MatchedClients    []models.ClientMatch   `json:"matched_clients,omitempty"`
	MatchedCalls      []models.CallMatch     `json:"matched_calls,omitempty"`
	MatchedProperties []models.PropertyMatch `json:"matched_properties,omitempty"`
}

// Response is the aggregate matching result. Full mode fills Matches;
// summary mode fills Counts only.
type Response struct {
	Matches []TargetMatches `json:"matches,omitempty"`
	Counts  map[string]int  `json:"counts,omitempty"`
}

// Service is the route-level matching orchestrator: it bulk-loads the
// record sets a mode needs and runs the selector across every target.
type Service struct {
	logger     ectologger.Logger
	properties PropertySource
	clients    ClientSource
	calls      CallSource
	selector   *Selector
	cfg        Config
}

// NewService creates the matching orchestrator
func NewService(
	logger ectologger.Logger,
	properties PropertySource,
	clients ClientSource,
	calls CallSource,
	cfg Config,
) *Service {
	return &Service{
		logger:     logger,
		properties: properties,
		clients:    clients,
		calls:      calls,
		selector:   NewSelector(cfg),
		cfg:        cfg,
	}
}

// FindMatches executes one aggregate matching request. Storage failures
// propagate as a single top-level error; per-candidate problems never
// abort the batch.
func (s *Service) FindMatches(ctx context.Context, req Request) (*Response, error) {
	ctx, span := tracing.StartSpan(ctx, "matching.Service.FindMatches")
	defer span.End()

	log := s.logger.WithContext(ctx).WithFields(map[string]any{
		"mode":     string(req.Mode),
		"agent_id": req.RequestingAgentID,
		"summary":  req.Summary,
	})
	log.Debug("Running aggregate matching")

	switch req.Mode {
	case ModePropertiesToClients:
		return s.propertiesToClients(ctx, req)
	case ModePropertiesToCalls:
		return s.propertiesToCalls(ctx, req)
	case ModeClientsToProperties:
		return s.clientsToProperties(ctx, req)
	case ModeCallsToProperties:
		return s.callsToProperties(ctx, req)
	}
	return nil, httperror.NewHTTPError(http.StatusBadRequest, "unknown match type: "+string(req.Mode))
}

func (s *Service) propertiesToClients(ctx context.Context, req Request) (*Response, error) {
	targets, notFound, err := s.loadTargetProperties(ctx, req)
	if err != nil {
		return nil, err
	}

	pool, err := s.clients.List(ctx, client.Filter{})
	if err != nil {
		return nil, err
	}

	resp := s.newResponse(req, notFound)
	for i := range targets {
		p := targets[i]
		matches := s.selector.ClientsForProperty(&p, pool)
		if req.Summary {
			resp.Counts[p.ID] = CountPresentable(matches)
			continue
		}
		resp.Matches = append(resp.Matches, TargetMatches{Property: &p, MatchedClients: matches})
	}
	return resp, nil
}

func (s *Service) propertiesToCalls(ctx context.Context, req Request) (*Response, error) {
	targets, notFound, err := s.loadTargetProperties(ctx, req)
	if err != nil {
		return nil, err
	}

	pool, err := s.calls.List(ctx, call.Filter{})
	if err != nil {
		return nil, err
	}

	resp := s.newResponse(req, notFound)
	for i := range targets {
		p := targets[i]
		matches := s.selector.CallsForProperty(&p, pool)
		if req.Summary {
			resp.Counts[p.ID] = CountPresentable(matches)
			continue
		}
		resp.Matches = append(resp.Matches, TargetMatches{Property: &p, MatchedCalls: matches})
	}
	return resp, nil
}

func (s *Service) clientsToProperties(ctx context.Context, req Request) (*Response, error) {
	var targets []models.Client
	var notFound []string

	if req.ClientID != "" {
		c, err := s.clients.Get(ctx, req.ClientID)
		if err != nil {
			if isNotFound(err) {
				notFound = append(notFound, req.ClientID)
			} else {
				return nil, err
			}
		} else {
			targets = append(targets, *c)
		}
	} else {
		all, err := s.clients.List(ctx, client.Filter{AgentID: req.RequestingAgentID})
		if err != nil {
			return nil, err
		}
		// only property seekers participate as targets
		for _, c := range all {
			if c.Intent.SeeksProperty() {
				targets = append(targets, c)
			}
		}
	}

	pool, err := s.properties.List(ctx, property.Filter{})
	if err != nil {
		return nil, err
	}

	resp := s.newResponse(req, notFound)
	for i := range targets {
		c := targets[i]
		var matches []models.PropertyMatch
		if c.Intent.SeeksProperty() {
			matches = s.selector.PropertiesForPreference(ClientPreference(&c), pool, req.RequestingAgentID)
		}
		if req.Summary {
			resp.Counts[c.ID] = CountPresentable(matches)
			continue
		}
		resp.Matches = append(resp.Matches, TargetMatches{Client: &c, MatchedProperties: matches})
	}
	return resp, nil
}

func (s *Service) callsToProperties(ctx context.Context, req Request) (*Response, error) {
	var targets []models.Call
	var notFound []string

	if req.CallID != "" {
		c, err := s.calls.Get(ctx, req.CallID)
		if err != nil {
			if isNotFound(err) {
				notFound = append(notFound, req.CallID)
			} else {
				return nil, err
			}
		} else {
			targets = append(targets, *c)
		}
	} else {
		all, err := s.calls.List(ctx, call.Filter{AgentID: req.RequestingAgentID})
		if err != nil {
			return nil, err
		}
		for _, c := range all {
			if c.Intent.SeeksProperty() {
				targets = append(targets, c)
			}
		}
	}

	pool, err := s.properties.List(ctx, property.Filter{})
	if err != nil {
		return nil, err
	}

	resp := s.newResponse(req, notFound)
	for i := range targets {
		c := targets[i]
		var matches []models.PropertyMatch
		if c.Intent.SeeksProperty() {
			matches = s.selector.PropertiesForPreference(CallPreference(&c), pool, req.RequestingAgentID)
		}
		if req.Summary {
			resp.Counts[c.ID] = CountPresentable(matches)
			continue
		}
		resp.Matches = append(resp.Matches, TargetMatches{Call: &c, MatchedProperties: matches})
	}
	return resp, nil
}

// loadTargetProperties resolves the property target set: one property when
// an id is scoped, otherwise the requesting agent's inventory.
func (s *Service) loadTargetProperties(ctx context.Context, req Request) ([]models.Property, []string, error) {
	if req.PropertyID != "" {
		p, err := s.properties.Get(ctx, req.PropertyID)
		if err != nil {
			if isNotFound(err) {
				return nil, []string{req.PropertyID}, nil
			}
			return nil, nil, err
		}
		return []models.Property{*p}, nil, nil
	}

	properties, err := s.properties.List(ctx, property.Filter{AgentID: req.RequestingAgentID})
	if err != nil {
		return nil, nil, err
	}
	return properties, nil, nil
}

func (s *Service) newResponse(req Request, notFound []string) *Response {
	resp := &Response{}
	if req.Summary {
		resp.Counts = make(map[string]int)
	}
	for _, id := range notFound {
		if req.Summary {
			continue
		}
		resp.Matches = append(resp.Matches, TargetMatches{TargetID: id, NotFound: true})
	}
	return resp
}

func isNotFound(err error) bool {
	return httperror.IsHTTPError(err) && httperror.GetStatusCode(err) == http.StatusNotFound
}
