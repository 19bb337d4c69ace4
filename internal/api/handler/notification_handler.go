package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resourcehub/portal/internal/core/notify"
)

type NotificationHandler struct {
	notes *notify.Manager
}

func NewNotificationHandler(notes *notify.Manager) *NotificationHandler {
	return &NotificationHandler{notes: notes}
}

// List returns the notifications on screen, oldest first.
// @Summary Notifications on screen
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string][]notify.Notification
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"notifications": h.notes.Active()})
}

// Dismiss is the close button of a notification.
// @Summary Dismiss a notification
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "Not closable"
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	err := h.notes.Dismiss(c.Param("id"))
	switch {
	case errors.Is(err, notify.ErrUnknown):
		return echo.NewHTTPError(http.StatusNotFound, "notification not found")
	case errors.Is(err, notify.ErrNotClosable):
		return echo.NewHTTPError(http.StatusConflict, "notification cannot be dismissed")
	case err != nil:
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
