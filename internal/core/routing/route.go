// Package routing declares the portal's views and decides, per navigation,
// whether the current session may enter them.
package routing

// Access is the requirement a view places on the session.
type Access int

const (
	AccessNone Access = iota
	AccessRequiresAuth
	AccessRequiresGuest
	// AccessRequiresAdmin implies AccessRequiresAuth.
	AccessRequiresAdmin
)

func (a Access) String() string {
	switch a {
	case AccessRequiresAuth:
		return "requires_auth"
	case AccessRequiresGuest:
		return "requires_guest"
	case AccessRequiresAdmin:
		return "requires_admin"
	default:
		return "none"
	}
}

// View names referenced by redirects.
const (
	ViewHome     = "home"
	ViewLogin    = "login"
	ViewNotFound = "not-found"
)

// Route describes one view. Path uses ":name" for parameters; "*" as the
// whole path is the catch-all.
type Route struct {
	Name   string
	Path   string
	Access Access
}

// DefaultRoutes is the portal's view table.
var DefaultRoutes = []Route{
	{Name: ViewHome, Path: "/"},
	{Name: ViewLogin, Path: "/login", Access: AccessRequiresGuest},
	{Name: "register", Path: "/register", Access: AccessRequiresGuest},

	{Name: "resources", Path: "/resources"},
	{Name: "resource-upload", Path: "/resources/upload", Access: AccessRequiresAuth},
	{Name: "resource-detail", Path: "/resources/:id"},

	{Name: "forum", Path: "/forum"},
	{Name: "forum-category", Path: "/forum/categories/:id"},
	{Name: "forum-topics", Path: "/forum/topics"},
	{Name: "topic-detail", Path: "/forum/topic/:id"},
	{Name: "create-topic", Path: "/forum/create-topic", Access: AccessRequiresAuth},
	{Name: "forum-create", Path: "/forum/create", Access: AccessRequiresAuth},

	{Name: "user-profile", Path: "/user/profile", Access: AccessRequiresAuth},
	{Name: "user-resources", Path: "/user/resources", Access: AccessRequiresAuth},
	{Name: "user-favorites", Path: "/user/favorites", Access: AccessRequiresAuth},
	{Name: "user-points", Path: "/user/points", Access: AccessRequiresAuth},

	{Name: "chat-list", Path: "/chat", Access: AccessRequiresAuth},
	{Name: "chat-detail", Path: "/chat/:id", Access: AccessRequiresAuth},

	{Name: "admin", Path: "/admin", Access: AccessRequiresAdmin},

	{Name: ViewNotFound, Path: "*"},
}
