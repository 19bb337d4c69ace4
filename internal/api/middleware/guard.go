package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/resourcehub/portal/internal/core/routing"
)

// DecisionObserver is told about every guard decision.
type DecisionObserver interface {
	ObserveDecision(route string, action routing.Action)
}

// Guard resolves the request path against the view table and lets the
// request through only when routing.Decide says Proceed. Otherwise it answers
// with a 302 to the view the decision names. The matched route and its
// params are stored under RouteKey and ParamsKey.
func Guard(table *routing.Table, obs DecisionObserver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, params, ok := table.Match(req.URL.Path)
			if !ok {
				return echo.NewHTTPError(http.StatusNotFound, "no view for "+req.URL.Path)
			}

			// The login redirect carries the full request URI so the query
			// string survives the round trip.
			target := route
			target.Path = req.URL.RequestURI()

			action := routing.Decide(target, SessionFrom(c))
			if obs != nil {
				obs.ObserveDecision(route.Name, action)
			}

			if action.Kind == routing.Redirect {
				loc, ok := redirectLocation(table, action)
				if !ok {
					return echo.NewHTTPError(http.StatusInternalServerError, "redirect to unknown view "+action.View)
				}
				log.Debug().
					Str("route", route.Name).
					Str("to", action.View).
					Msg("navigation redirected")
				return c.Redirect(http.StatusFound, loc)
			}

			c.Set(RouteKey, route)
			c.Set(ParamsKey, params)
			return next(c)
		}
	}
}

func redirectLocation(table *routing.Table, action routing.Action) (string, bool) {
	path, ok := table.PathFor(action.View, nil)
	if !ok {
		return "", false
	}
	if len(action.Query) == 0 {
		return path, true
	}
	q := url.Values{}
	for k, v := range action.Query {
		q.Set(k, v)
	}
	return path + "?" + q.Encode(), true
}
