// Package collaboration exposes collaboration discovery for property owners
package collaboration

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/clover/internal/repositories/property"
	appcontext "github.com/Ramsey-B/clover/pkg/context"
	"github.com/Ramsey-B/clover/pkg/events"
	"github.com/Ramsey-B/clover/pkg/matching"
	"github.com/Ramsey-B/clover/pkg/models"
)

// DiscoverRequest asks which other agents hold matching clients for a
// property. MinMatch zero means "use the configured gate".
type DiscoverRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
	MinMatch   int    `json:"min_match" validate:"gte=0,lte=6"`
}

// DiscoverResponse lists collaborating agents with their matching clients
type DiscoverResponse struct {
	Agents []models.AgentMatches `json:"agents"`
}

// Register registers collaboration routes
func Register(g *echo.Group) {
	g.POST("/discover", DiscoverAgents)
}

// DiscoverAgents scans other agents' clients for high-scoring matches
// against one of the requesting agent's properties. The result feeds the
// offer-collaboration confirmation flow; email dispatch happens elsewhere.
func DiscoverAgents(c echo.Context) error {
	ctx := c.Request().Context()

	agentID := appcontext.GetAgentID(ctx)
	if agentID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "agent identity is required")
	}

	var req DiscoverRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, properties, err := ectoinject.GetContext[*property.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	p, err := properties.Get(ctx, req.PropertyID)
	if err != nil {
		return err
	}
	if p.AgentID != agentID {
		return httperror.NewHTTPError(http.StatusForbidden, "only the listing's owner can discover collaborations")
	}

	ctx, matchmaker, err := ectoinject.GetContext[*matching.Matchmaker](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	results, err := matchmaker.FindCollaboratingAgents(ctx, p, req.MinMatch)
	if err != nil {
		return err
	}

	// Discovery stays read-only; the event only notifies the downstream
	// email workflow. A failed emit never fails the request.
	if len(results) > 0 {
		if ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx); err == nil && emitter != nil {
			_ = emitter.EmitCollaborationDiscovered(ctx, p, req.MinMatch, results)
		}
	}

	return c.JSON(http.StatusOK, DiscoverResponse{Agents: results})
}
