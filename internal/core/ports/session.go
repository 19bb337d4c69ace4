package ports

import (
	"context"

	"github.com/resourcehub/portal/internal/core/domain"
)

// CurrentSession is the read-only view of the session handed to readers
// (the API client, the route guard, view handlers).
type CurrentSession interface {
	Token() string
	Snapshot() domain.Session
	IsLoggedIn() bool
	IsAdmin() bool
}

// SessionService owns the session and is its only writer.
type SessionService interface {
	CurrentSession
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	Register(ctx context.Context, data domain.Registration) (*domain.User, error)
	UpdateProfile(ctx context.Context, data domain.ProfileUpdate) (*domain.User, error)
	Logout(ctx context.Context)
	Invalidate(ctx context.Context, reason string)
}
