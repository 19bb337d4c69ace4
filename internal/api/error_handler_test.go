package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/resourcehub/portal/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"echo error", echo.NewHTTPError(http.StatusUnprocessableEntity, "username is required"), http.StatusUnprocessableEntity, "username is required"},
		{"server error keeps status", &domain.ServerError{Op: "login", Status: http.StatusUnauthorized, Message: "invalid credentials"}, http.StatusUnauthorized, "invalid credentials"},
		{"server validation", &domain.ServerError{Op: "register", Status: http.StatusBadRequest, Message: "username taken"}, http.StatusBadRequest, "username taken"},
		{"network error", &domain.NetworkError{Op: "login", Err: errors.New("dial tcp: refused")}, http.StatusBadGateway, "the server could not be reached"},
		{"not logged in", domain.ErrNotLoggedIn, http.StatusUnauthorized, "login required"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/session/login", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, resp.Error)
			}
		})
	}
}
