package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resourcehub/portal/internal/api/middleware"
	"github.com/resourcehub/portal/internal/core/notify"
	"github.com/resourcehub/portal/internal/core/routing"
)

// ViewHandler renders the view descriptor of a guarded route: which view to
// show, with what params, for which session, and the notifications on screen.
type ViewHandler struct {
	notes *notify.Manager
}

func NewViewHandler(notes *notify.Manager) *ViewHandler {
	return &ViewHandler{notes: notes}
}

type viewResponse struct {
	View          string                `json:"view"`
	Path          string                `json:"path"`
	Access        string                `json:"access"`
	Params        map[string]string     `json:"params"`
	Query         map[string]string     `json:"query"`
	Session       sessionResponse       `json:"session"`
	Notifications []notify.Notification `json:"notifications"`
}

// @Summary Resolve a view
// @Description Any path not matched above resolves through the route table. Guarded views redirect with 302.
// @Tags views
// @Produce json
// @Param path path string true "Portal path"
// @Success 200 {object} viewResponse
// @Success 302
// @Router /{path} [get]
func (h *ViewHandler) Show(c echo.Context) error {
	route, params, ok := ctxRoute(c)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "view rendered without a route")
	}

	query := map[string]string{}
	for k, v := range c.QueryParams() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	status := http.StatusOK
	if route.Name == routing.ViewNotFound {
		status = http.StatusNotFound
	}

	return c.JSON(status, viewResponse{
		View:          route.Name,
		Path:          c.Request().URL.Path,
		Access:        route.Access.String(),
		Params:        params,
		Query:         query,
		Session:       newSessionResponse(middleware.SessionFrom(c)),
		Notifications: h.notes.Active(),
	})
}
