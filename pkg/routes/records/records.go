// Package records exposes read-only access to the stored records the
// matcher consumes. Mutation CRUD lives in the surrounding application.
package records

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/clover/internal/repositories/agent"
	"github.com/Ramsey-B/clover/internal/repositories/call"
	"github.com/Ramsey-B/clover/internal/repositories/client"
	"github.com/Ramsey-B/clover/internal/repositories/property"
	appcontext "github.com/Ramsey-B/clover/pkg/context"
)

// Register registers record lookup routes
func Register(g *echo.Group) {
	g.GET("/properties", ListProperties)
	g.GET("/properties/:id", GetProperty)
	g.GET("/clients", ListClients)
	g.GET("/clients/:id", GetClient)
	g.GET("/calls", ListCalls)
	g.GET("/calls/:id", GetCall)
	g.GET("/agents/:id", GetAgent)
}

// ListProperties lists the requesting agent's listings; all=true lists
// every agent's inventory.
func ListProperties(c echo.Context) error {
	ctx := c.Request().Context()

	ctx, repo, err := ectoinject.GetContext[*property.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	filter := property.Filter{}
	if c.QueryParam("all") != "true" {
		filter.AgentID = appcontext.GetAgentID(ctx)
	}

	properties, err := repo.List(ctx, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

// GetProperty gets one property by id
func GetProperty(c echo.Context) error {
	ctx := c.Request().Context()

	ctx, repo, err := ectoinject.GetContext[*property.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	p, err := repo.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// ListClients lists the requesting agent's clients
func ListClients(c echo.Context) error {
	ctx := c.Request().Context()

	ctx, repo, err := ectoinject.GetContext[*client.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	clients, err := repo.List(ctx, client.Filter{AgentID: appcontext.GetAgentID(ctx)})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// GetClient gets one client by id
func GetClient(c echo.Context) error {
	ctx := c.Request().Context()

	ctx, repo, err := ectoinject.GetContext[*client.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	cl, err := repo.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cl)
}

// ListCalls lists the requesting agent's analyzed calls
func ListCalls(c echo.Context) error {
	ctx := c.Request().Context()

	ctx, repo, err := ectoinject.GetContext[*call.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	calls, err := repo.List(ctx, call.Filter{AgentID: appcontext.GetAgentID(ctx)})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, calls)
}

// GetCall gets one analyzed call by id
func GetCall(c echo.Context) error {
	ctx := c.Request().Context()

	ctx, repo, err := ectoinject.GetContext[*call.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	cl, err := repo.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cl)
}

// GetAgent gets an agent's public profile by id
func GetAgent(c echo.Context) error {
	ctx := c.Request().Context()

	ctx, repo, err := ectoinject.GetContext[*agent.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	a, err := repo.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}
