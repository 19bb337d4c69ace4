package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/resourcehub/portal/internal/api/middleware"
	"github.com/resourcehub/portal/internal/core/domain"
	"github.com/resourcehub/portal/internal/core/routing"
)

// ctxRoute extracts the view resolved by the Guard middleware. ok is false
// when the handler was mounted without it.
func ctxRoute(c echo.Context) (route routing.Route, params map[string]string, ok bool) {
	route, ok = c.Get(middleware.RouteKey).(routing.Route)
	params, _ = c.Get(middleware.ParamsKey).(map[string]string)
	if params == nil {
		params = map[string]string{}
	}
	return route, params, ok
}

// sessionResponse is the public shape of a session. The token never leaves
// the process.
type sessionResponse struct {
	LoggedIn bool `json:"logged_in"`
	IsAdmin  bool `json:"is_admin"`
	domain.Session
}

func newSessionResponse(s domain.Session) sessionResponse {
	return sessionResponse{LoggedIn: s.IsLoggedIn(), IsAdmin: s.IsAdmin(), Session: s}
}
