package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/resourcehub/portal/internal/core/domain"
	"github.com/resourcehub/portal/internal/core/ports"
)

// Keys under which the session is persisted.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// SessionService holds the process-wide authentication state. It is the only
// writer of that state; everything else reads it through ports.CurrentSession.
type SessionService struct {
	auth  ports.AuthAPI
	store ports.StateStore
	log   zerolog.Logger

	mu    sync.RWMutex
	token string
	user  *domain.User
}

// NewSessionService restores the persisted session and returns the service.
// Missing keys yield an anonymous session; storage errors are returned.
func NewSessionService(ctx context.Context, auth ports.AuthAPI, store ports.StateStore, log zerolog.Logger) (*SessionService, error) {
	s := &SessionService{auth: auth, store: store, log: log}
	if err := s.restore(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SessionService) restore(ctx context.Context) error {
	raw, err := s.store.Get(ctx, TokenKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return fmt.Errorf("restore session: token: %w", err)
	default:
		s.token = string(raw)
	}

	raw, err = s.store.Get(ctx, UserKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return fmt.Errorf("restore session: user: %w", err)
	default:
		var u domain.User
		if jerr := json.Unmarshal(raw, &u); jerr != nil {
			s.log.Warn().Err(jerr).Msg("discarding unreadable persisted user")
		} else {
			s.user = &u
		}
	}

	s.log.Info().Bool("logged_in", s.token != "").Msg("session restored")
	return nil
}

// Login authenticates against the remote API. On failure the current session
// is left as it was and the error is returned unchanged.
func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	res, err := s.auth.Login(ctx, creds)
	if err != nil {
		s.log.Debug().Err(err).Str("username", creds.Username).Msg("login failed")
		return nil, err
	}
	if res == nil || res.Token == "" {
		return nil, &domain.ServerError{Op: "login", Status: http.StatusBadGateway, Message: "login response carried no token"}
	}

	s.mu.Lock()
	s.token = res.Token
	s.user = res.User.Clone()
	s.mu.Unlock()

	s.persistToken(ctx, res.Token)
	s.persistUser(ctx, res.User)

	s.log.Info().Str("username", usernameOf(res.User)).Msg("logged in")
	return res, nil
}

// Register creates an account. It never touches the session.
func (s *SessionService) Register(ctx context.Context, data domain.Registration) (*domain.User, error) {
	u, err := s.auth.Register(ctx, data)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", data.Username).Msg("account registered")
	return u, nil
}

// UpdateProfile replaces the session user with the server's updated record.
// The token is preserved.
func (s *SessionService) UpdateProfile(ctx context.Context, data domain.ProfileUpdate) (*domain.User, error) {
	u, err := s.auth.UpdateProfile(ctx, data)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = u.Clone()
	s.mu.Unlock()

	s.persistUser(ctx, u)
	return u, nil
}

// Logout clears the session in memory and in storage. It has no server round
// trip and always succeeds; storage failures are only logged.
func (s *SessionService) Logout(ctx context.Context) {
	s.clear(ctx)
	s.log.Info().Msg("logged out")
}

// Invalidate drops credentials the server no longer accepts.
func (s *SessionService) Invalidate(ctx context.Context, reason string) {
	s.clear(ctx)
	s.log.Warn().Str("reason", reason).Msg("session invalidated")
}

func (s *SessionService) clear(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	for _, key := range []string{TokenKey, UserKey} {
		if err := s.store.Delete(ctx, key); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to clear persisted session")
		}
	}
}

// Token returns the bearer token, or "" for an anonymous session.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Snapshot returns a copy of the current session.
func (s *SessionService) Snapshot() domain.Session {
	s.mu.RLock()
	sess := domain.Session{Token: s.token, User: s.user.Clone()}
	s.mu.RUnlock()

	sess.ExpiresAt = tokenExpiry(sess.Token)
	return sess
}

func (s *SessionService) IsLoggedIn() bool {
	return s.Snapshot().IsLoggedIn()
}

func (s *SessionService) IsAdmin() bool {
	return s.Snapshot().IsAdmin()
}

func (s *SessionService) persistToken(ctx context.Context, token string) {
	if err := s.store.Set(ctx, TokenKey, []byte(token)); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist token")
	}
}

func (s *SessionService) persistUser(ctx context.Context, u *domain.User) {
	if u == nil {
		if err := s.store.Delete(ctx, UserKey); err != nil {
			s.log.Warn().Err(err).Msg("failed to clear persisted user")
		}
		return
	}
	raw, err := json.Marshal(u)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode user")
		return
	}
	if err := s.store.Set(ctx, UserKey, raw); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist user")
	}
}

func usernameOf(u *domain.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}
