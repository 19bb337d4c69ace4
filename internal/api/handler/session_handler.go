package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/resourcehub/portal/internal/core/domain"
	"github.com/resourcehub/portal/internal/core/notify"
	"github.com/resourcehub/portal/internal/core/ports"
)

// SessionHandler drives the session store from the portal's forms and tells
// the user how each action went.
type SessionHandler struct {
	sessions ports.SessionService
	notes    *notify.Manager
	log      zerolog.Logger
}

func NewSessionHandler(sessions ports.SessionService, notes *notify.Manager, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, notes: notes, log: log}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Redirect string `json:"redirect"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type profileRequest struct {
	Email  string `json:"email"  validate:"omitempty,email"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
}

type loginResponse struct {
	Redirect string `json:"redirect"`
	sessionResponse
}

// Get returns the current session.
// @Summary Current session
// @Tags session
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, newSessionResponse(h.sessions.Snapshot()))
}

// Login signs in and names the view to continue to: the redirect the guard
// sent the user away from, or home.
// @Summary Sign in
// @Tags session
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials and optional redirect"
// @Param redirect query string false "View to continue to"
// @Success 200 {object} loginResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string "Already signed in"
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if req.Redirect == "" {
		req.Redirect = c.QueryParam("redirect")
	}

	if _, err := h.sessions.Login(c.Request().Context(), domain.Credentials{Username: req.Username, Password: req.Password}); err != nil {
		return h.fail(c, err)
	}

	snap := h.sessions.Snapshot()
	msg := "Login successful"
	if snap.User != nil {
		msg = "Welcome back, " + snap.User.Username
	}
	h.notes.Success(msg)

	return c.JSON(http.StatusOK, loginResponse{
		Redirect:        safeRedirect(req.Redirect),
		sessionResponse: newSessionResponse(snap),
	})
}

// Register creates an account without signing in.
// @Summary Create an account
// @Tags session
// @Accept json
// @Produce json
// @Param body body registerRequest true "New account"
// @Success 201 {object} map[string]any
// @Failure 422 {object} map[string]string
// @Router /session/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.sessions.Register(c.Request().Context(), domain.Registration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.fail(c, err)
	}

	h.notes.Success("Registration successful, please log in")
	return c.JSON(http.StatusCreated, map[string]any{"user": user})
}

// Logout always succeeds.
// @Summary Sign out
// @Tags session
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	h.notes.Success("Logged out")
	return c.JSON(http.StatusOK, newSessionResponse(h.sessions.Snapshot()))
}

// @Summary Update email or avatar
// @Tags session
// @Accept json
// @Produce json
// @Param body body profileRequest true "Fields to change"
// @Success 200 {object} sessionResponse
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /session/profile [put]
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, err := h.sessions.UpdateProfile(c.Request().Context(), domain.ProfileUpdate{Email: req.Email, Avatar: req.Avatar})
	if err != nil {
		return h.fail(c, err)
	}

	h.notes.Success("Profile updated")
	return c.JSON(http.StatusOK, newSessionResponse(h.sessions.Snapshot()))
}

// fail surfaces err as an error notification. A 401 while logged in means
// the server no longer accepts the token, so the session is dropped.
func (h *SessionHandler) fail(c echo.Context, err error) error {
	if domain.IsUnauthorized(err) && h.sessions.IsLoggedIn() {
		h.sessions.Invalidate(c.Request().Context(), "token rejected by server")
	}
	h.notes.Error(domain.Message(err))
	return err
}

// safeRedirect keeps post-login navigation inside the portal.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, "\\") {
		return "/"
	}
	return target
}
