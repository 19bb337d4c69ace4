package domain

import "time"

// Session is a point-in-time view of the authentication state.
type Session struct {
	Token string `json:"-"`
	User  *User  `json:"user"`

	// ExpiresAt is decoded from the token's exp claim when it has one.
	// Informational only; it never affects IsLoggedIn.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// IsLoggedIn reports whether the session holds a token.
func (s Session) IsLoggedIn() bool {
	return s.Token != ""
}

// IsAdmin reports whether the session is logged in with an admin user.
func (s Session) IsAdmin() bool {
	return s.IsLoggedIn() && s.User.IsAdmin()
}

// Credentials are submitted to POST /login. Username also accepts an email.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is submitted to POST /register.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is submitted to PUT /auth/profile.
type ProfileUpdate struct {
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// PasswordChange is submitted to POST /auth/change-password.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// PasswordReset is submitted to POST /auth/reset-password.
type PasswordReset struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// AuthResult is the login payload: a bearer token and the user it belongs to.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
