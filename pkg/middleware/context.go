package middleware

import (
	appcontext "github.com/Ramsey-B/clover/pkg/context"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderAgentID is the header carrying the authenticated agent identity.
// Session handling itself lives upstream; this service only consumes the id.
const HeaderAgentID = "X-Agent-ID"

func Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			agentID := req.Header.Get(HeaderAgentID)

			ctx := req.Context()
			ctx = appcontext.SetRequestID(ctx, requestID)
			ctx = appcontext.SetMethod(ctx, req.Method)
			ctx = appcontext.SetRoute(ctx, req.URL.Path)
			ctx = appcontext.SetRemoteIP(ctx, c.RealIP())
			ctx = appcontext.SetAgentID(ctx, agentID)

			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
