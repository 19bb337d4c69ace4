package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/resourcehub/portal/internal/api/handler"
	"github.com/resourcehub/portal/internal/core/domain"
	"github.com/resourcehub/portal/internal/core/notify"
	"github.com/resourcehub/portal/internal/core/ports"
	"github.com/resourcehub/portal/internal/core/routing"
	"github.com/resourcehub/portal/internal/core/service"
	"github.com/resourcehub/portal/internal/infrastructure/storage/memory"
)

type stubAuthAPI struct{}

func (stubAuthAPI) Login(_ context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	if creds.Password != "secret" {
		return nil, &domain.ServerError{Op: "login", Status: http.StatusUnauthorized, Message: "invalid credentials"}
	}
	role := domain.RoleUser
	if creds.Username == "root" {
		role = domain.RoleAdmin
	}
	return &domain.AuthResult{Token: "tok-" + creds.Username, User: &domain.User{Username: creds.Username, Role: role}}, nil
}

func (stubAuthAPI) Register(_ context.Context, data domain.Registration) (*domain.User, error) {
	return &domain.User{Username: data.Username, Email: data.Email, Role: domain.RoleUser}, nil
}

func (stubAuthAPI) UpdateProfile(_ context.Context, data domain.ProfileUpdate) (*domain.User, error) {
	return &domain.User{Username: "alice", Email: data.Email, Role: domain.RoleUser}, nil
}

var _ ports.AuthAPI = stubAuthAPI{}

func newTestRouter(t *testing.T) (*echo.Echo, ports.StateStore) {
	t.Helper()
	store := memory.New()
	sessions, err := service.NewSessionService(context.Background(), stubAuthAPI{}, store, zerolog.Nop())
	if err != nil {
		t.Fatalf("session service: %v", err)
	}
	notes := notify.NewManager(notify.NewLogDisplay(zerolog.Nop()), zerolog.Nop())
	t.Cleanup(notes.Close)

	e := NewRouter(Deps{
		Sessions: sessions,
		Notes:    notes,
		Views:    routing.MustTable(routing.DefaultRoutes),
		Ready:    map[string]handler.Pinger{"storage": store},
		Log:      zerolog.Nop(),
	})
	return e, store
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_LoginFlow(t *testing.T) {
	e, store := newTestRouter(t)

	rec := do(e, http.MethodGet, "/user/profile", "")
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/login?redirect=%2Fuser%2Fprofile" {
		t.Fatalf("expected redirect to login, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}

	rec = do(e, http.MethodPost, "/session/login?redirect=/user/profile", `{"username":"alice","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var login map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &login)
	if login["redirect"] != "/user/profile" {
		t.Fatalf("expected redirect back to profile, got %v", login["redirect"])
	}
	if tok, err := store.Get(context.Background(), service.TokenKey); err != nil || string(tok) != "tok-alice" {
		t.Fatalf("expected persisted token, got %q %v", tok, err)
	}

	rec = do(e, http.MethodGet, "/user/profile", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected profile view, got %d", rec.Code)
	}
	var view map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &view)
	if view["view"] != "user-profile" {
		t.Fatalf("unexpected view %v", view["view"])
	}

	if rec = do(e, http.MethodGet, "/admin", ""); rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/" {
		t.Fatalf("non-admin should be sent home, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
	if rec = do(e, http.MethodGet, "/login", ""); rec.Code != http.StatusFound {
		t.Fatalf("logged in user should not see login, got %d", rec.Code)
	}
	if rec = do(e, http.MethodPost, "/session/login", `{"username":"alice","password":"secret"}`); rec.Code != http.StatusForbidden {
		t.Fatalf("second login should be rejected, got %d", rec.Code)
	}

	if rec = do(e, http.MethodPost, "/session/logout", ""); rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
	if _, err := store.Get(context.Background(), service.TokenKey); err == nil {
		t.Fatal("expected token to be removed from storage")
	}
	if rec = do(e, http.MethodGet, "/chat/3", ""); rec.Code != http.StatusFound {
		t.Fatalf("expected redirect after logout, got %d", rec.Code)
	}
}

func TestRouter_LoginFailure(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodPost, "/session/login", `{"username":"alice","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = do(e, http.MethodGet, "/notifications", "")
	var resp struct {
		Notifications []notify.Notification `json:"notifications"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Notifications) != 1 || resp.Notifications[0].Type != notify.TypeError {
		t.Fatalf("expected one error notification, got %+v", resp.Notifications)
	}
}

func TestRouter_AdminAccess(t *testing.T) {
	e, _ := newTestRouter(t)

	if rec := do(e, http.MethodGet, "/admin", ""); rec.Header().Get(echo.HeaderLocation) != "/login?redirect=%2Fadmin" {
		t.Fatalf("anonymous admin visit should go to login, got %q", rec.Header().Get(echo.HeaderLocation))
	}
	do(e, http.MethodPost, "/session/login", `{"username":"root","password":"secret"}`)
	if rec := do(e, http.MethodGet, "/admin", ""); rec.Code != http.StatusOK {
		t.Fatalf("admin should see admin view, got %d", rec.Code)
	}
}

func TestRouter_PublicAndHealth(t *testing.T) {
	e, _ := newTestRouter(t)

	for _, path := range []string{"/", "/resources", "/resources/5", "/forum/topic/2", "/health", "/health/ready", "/metrics"} {
		if rec := do(e, http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
	if rec := do(e, http.MethodGet, "/definitely/not/here", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected not-found view, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPut, "/session/profile", `{"email":"a@b.co"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous profile update should be 401, got %d", rec.Code)
	}
}

func TestRouter_SwaggerDocs(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/swagger/doc.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json: expected 200, got %d", rec.Code)
	}
	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json is not JSON: %v", err)
	}
	if doc.Info.Title != "Resource Portal API" {
		t.Fatalf("unexpected title %q", doc.Info.Title)
	}
	for _, path := range []string{"/session/login", "/session/profile", "/notifications/{id}", "/health/ready"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Fatalf("doc.json is missing %s", path)
		}
	}

	if rec := do(e, http.MethodGet, "/swagger/index.html", ""); rec.Code != http.StatusOK {
		t.Fatalf("index.html: expected 200, got %d", rec.Code)
	}
}
