package apiclient

import (
	"context"
	"net/http"

	"github.com/resourcehub/portal/internal/core/domain"
)

// Login exchanges credentials for a token. POST /login
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	var out domain.AuthResult
	err := c.do(ctx, request{op: "login", method: http.MethodPost, path: "/login", body: creds}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. POST /register
func (c *Client) Register(ctx context.Context, data domain.Registration) (*domain.User, error) {
	var out domain.AuthResult
	err := c.do(ctx, request{op: "register", method: http.MethodPost, path: "/register", body: data}, &out)
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

// CurrentUser fetches the profile of the token's owner. GET /auth/me
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, request{op: "current user", method: http.MethodGet, path: "/auth/me"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile changes email and avatar. PUT /auth/profile
func (c *Client) UpdateProfile(ctx context.Context, data domain.ProfileUpdate) (*domain.User, error) {
	var out domain.User
	err := c.do(ctx, request{op: "update profile", method: http.MethodPut, path: "/auth/profile", body: data}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, data domain.PasswordChange) error {
	return c.do(ctx, request{op: "change password", method: http.MethodPost, path: "/auth/change-password", body: data}, nil)
}

// Logout tells the server the token is no longer used. The local session is
// cleared by the session store regardless of this call.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, request{op: "logout", method: http.MethodPost, path: "/auth/logout"}, nil)
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, request{op: "forgot password", method: http.MethodPost, path: "/auth/forgot-password", body: body}, nil)
}

func (c *Client) ResetPassword(ctx context.Context, data domain.PasswordReset) error {
	return c.do(ctx, request{op: "reset password", method: http.MethodPost, path: "/auth/reset-password", body: data}, nil)
}

// RefreshToken asks for a new token. Nothing calls it automatically.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, request{op: "refresh token", method: http.MethodPost, path: "/api/user/refresh-token"}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}
