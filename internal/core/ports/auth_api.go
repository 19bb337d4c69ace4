package ports

import (
	"context"

	"github.com/resourcehub/portal/internal/core/domain"
)

// AuthAPI is the remote authentication collaborator of the session store.
type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	Register(ctx context.Context, data domain.Registration) (*domain.User, error)
	UpdateProfile(ctx context.Context, data domain.ProfileUpdate) (*domain.User, error)
}
