package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/resourcehub/portal/internal/core/domain"
	"github.com/resourcehub/portal/internal/core/routing"
)

type stubCurrent struct{ s domain.Session }

func (c stubCurrent) Token() string            { return c.s.Token }
func (c stubCurrent) Snapshot() domain.Session { return c.s }
func (c stubCurrent) IsLoggedIn() bool         { return c.s.IsLoggedIn() }
func (c stubCurrent) IsAdmin() bool            { return c.s.IsAdmin() }

type recordingDecisions struct {
	routes  []string
	actions []routing.Action
}

func (r *recordingDecisions) ObserveDecision(route string, a routing.Action) {
	r.routes = append(r.routes, route)
	r.actions = append(r.actions, a)
}

// serveGuarded runs a request through Session and Guard in front of a handler
// that echoes the matched route name.
func serveGuarded(t *testing.T, session domain.Session, target string) (*httptest.ResponseRecorder, *recordingDecisions) {
	t.Helper()
	e := echo.New()
	obs := &recordingDecisions{}
	table := routing.MustTable(routing.DefaultRoutes)

	e.Use(Session(stubCurrent{session}))
	e.GET("/*", func(c echo.Context) error {
		route := c.Get(RouteKey).(routing.Route)
		return c.String(http.StatusOK, route.Name)
	}, Guard(table, obs, zerolog.Nop()))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, obs
}

func TestGuard(t *testing.T) {
	cases := []struct {
		name     string
		session  domain.Session
		target   string
		wantCode int
		wantBody string
		wantLoc  string
	}{
		{"public view", domain.Session{}, "/resources", http.StatusOK, "resources", ""},
		{"param view", domain.Session{}, "/resources/12", http.StatusOK, "resource-detail", ""},
		{"anonymous to upload", domain.Session{}, "/resources/upload", http.StatusFound, "", "/login?redirect=%2Fresources%2Fupload"},
		{"anonymous keeps query", domain.Session{}, "/user/points?page=2", http.StatusFound, "", "/login?redirect=%2Fuser%2Fpoints%3Fpage%3D2"},
		{"anonymous to admin", domain.Session{}, "/admin", http.StatusFound, "", "/login?redirect=%2Fadmin"},
		{"user to admin", userSession(), "/admin", http.StatusFound, "", "/"},
		{"admin to admin", adminSession(), "/admin", http.StatusOK, "admin", ""},
		{"logged in to login", userSession(), "/login", http.StatusFound, "", "/"},
		{"anonymous to login", domain.Session{}, "/login", http.StatusOK, "login", ""},
		{"unknown path", domain.Session{}, "/nope/at/all", http.StatusOK, routing.ViewNotFound, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, obs := serveGuarded(t, tc.session, tc.target)
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			if tc.wantBody != "" && rec.Body.String() != tc.wantBody {
				t.Fatalf("expected body %q, got %q", tc.wantBody, rec.Body.String())
			}
			if loc := rec.Header().Get(echo.HeaderLocation); loc != tc.wantLoc {
				t.Fatalf("expected location %q, got %q", tc.wantLoc, loc)
			}
			if len(obs.actions) != 1 {
				t.Fatalf("expected one decision, got %d", len(obs.actions))
			}
		})
	}
}

func TestSessionFrom_DefaultsToAnonymous(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if SessionFrom(c).IsLoggedIn() {
		t.Fatal("expected anonymous session")
	}
}
