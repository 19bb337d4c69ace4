package routing

import "github.com/resourcehub/portal/internal/core/domain"

// ActionKind tells the navigator what to do with a request.
type ActionKind int

const (
	Proceed ActionKind = iota
	Redirect
)

// RedirectQueryKey carries the originally requested path to the login view.
const RedirectQueryKey = "redirect"

// Action is the outcome of Decide.
type Action struct {
	Kind  ActionKind
	View  string
	Query map[string]string
}

// Decide evaluates target's access requirement against session. The first
// failing rule wins; the authentication check runs before the admin check so
// an anonymous visitor of an admin view is sent to log in.
func Decide(target Route, session domain.Session) Action {
	switch {
	case requiresAuth(target.Access) && !session.IsLoggedIn():
		return Action{
			Kind:  Redirect,
			View:  ViewLogin,
			Query: map[string]string{RedirectQueryKey: target.Path},
		}
	case target.Access == AccessRequiresAdmin && !session.IsAdmin():
		return Action{Kind: Redirect, View: ViewHome, Query: map[string]string{}}
	case target.Access == AccessRequiresGuest && session.IsLoggedIn():
		return Action{Kind: Redirect, View: ViewHome, Query: map[string]string{}}
	default:
		return Action{Kind: Proceed}
	}
}

func requiresAuth(a Access) bool {
	return a == AccessRequiresAuth || a == AccessRequiresAdmin
}
