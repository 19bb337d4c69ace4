package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/resourcehub/portal/internal/core/domain"
	"github.com/resourcehub/portal/internal/core/ports"
)

// Context keys set by the middleware in this package.
const (
	SessionKey = "session"
	RouteKey   = "route"
	ParamsKey  = "route_params"
)

// Session captures one snapshot of the current session per request so every
// later step sees the same state.
func Session(current ports.CurrentSession) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(SessionKey, current.Snapshot())
			return next(c)
		}
	}
}

// SessionFrom returns the snapshot stored by Session, or an anonymous
// session when the middleware did not run.
func SessionFrom(c echo.Context) domain.Session {
	s, _ := c.Get(SessionKey).(domain.Session)
	return s
}
