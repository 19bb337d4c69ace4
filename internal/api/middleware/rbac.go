package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resourcehub/portal/internal/core/routing"
)

// RequireAccess guards the JSON action endpoints. Where Guard would redirect,
// it answers 401 (login needed) or 403 (wrong role) instead.
func RequireAccess(access routing.Access) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			target := routing.Route{Path: c.Request().URL.RequestURI(), Access: access}
			action := routing.Decide(target, SessionFrom(c))
			if action.Kind == routing.Proceed {
				return next(c)
			}
			if action.View == routing.ViewLogin {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
