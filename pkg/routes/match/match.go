// Package match exposes the aggregate matching endpoint
package match

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	appcontext "github.com/Ramsey-B/clover/pkg/context"
	"github.com/Ramsey-B/clover/pkg/matching"
)

// Register registers matching routes
func Register(g *echo.Group) {
	g.GET("", FindMatches)
}

// FindMatches runs aggregate matching for the requesting agent.
//
// Query parameters: type (required mode discriminator), propertyId /
// clientId / callId (optional single-target scope), summary (count-only
// response for list views).
func FindMatches(c echo.Context) error {
	ctx := c.Request().Context()

	agentID := appcontext.GetAgentID(ctx)
	if agentID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "agent identity is required")
	}

	mode, err := matching.ParseMode(c.QueryParam("type"))
	if err != nil {
		return err
	}

	req := matching.Request{
		Mode:              mode,
		RequestingAgentID: agentID,
		PropertyID:        c.QueryParam("propertyId"),
		ClientID:          c.QueryParam("clientId"),
		CallID:            c.QueryParam("callId"),
		Summary:           c.QueryParam("summary") == "true",
	}

	ctx, service, err := ectoinject.GetContext[*matching.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "matching service unavailable")
	}

	resp, err := service.FindMatches(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
