package routing

import (
	"fmt"
	"strings"
)

// Table is an immutable, ordered set of routes.
type Table struct {
	routes []Route
	byName map[string]Route
}

// NewTable indexes routes. Names must be unique.
func NewTable(routes []Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, len(routes)),
		byName: make(map[string]Route, len(routes)),
	}
	copy(t.routes, routes)
	for _, r := range routes {
		if r.Name == "" || r.Path == "" {
			return nil, fmt.Errorf("routing: route %q has empty name or path", r.Path)
		}
		if _, dup := t.byName[r.Name]; dup {
			return nil, fmt.Errorf("routing: duplicate route name %q", r.Name)
		}
		t.byName[r.Name] = r
	}
	return t, nil
}

// MustTable is NewTable for static tables.
func MustTable(routes []Route) *Table {
	t, err := NewTable(routes)
	if err != nil {
		panic(err)
	}
	return t
}

// Routes returns the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Lookup finds a route by name.
func (t *Table) Lookup(name string) (Route, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// Match resolves a concrete path. Static segments beat parameters, so
// /resources/upload wins over /resources/:id; the catch-all matches last.
func (t *Table) Match(path string) (Route, map[string]string, bool) {
	segs := split(path)

	var (
		best       Route
		bestParams map[string]string
		bestScore  = -1
		catchAll   *Route
	)
	for i := range t.routes {
		r := t.routes[i]
		if r.Path == "*" {
			if catchAll == nil {
				catchAll = &t.routes[i]
			}
			continue
		}
		params, score, ok := matchRoute(split(r.Path), segs)
		if ok && score > bestScore {
			best, bestParams, bestScore = r, params, score
		}
	}
	if bestScore >= 0 {
		return best, bestParams, true
	}
	if catchAll != nil {
		return *catchAll, map[string]string{}, true
	}
	return Route{}, nil, false
}

// PathFor renders a route's path with params substituted.
func (t *Table) PathFor(name string, params map[string]string) (string, bool) {
	r, ok := t.byName[name]
	if !ok || r.Path == "*" {
		return "", false
	}
	segs := split(r.Path)
	for i, s := range segs {
		if strings.HasPrefix(s, ":") {
			v, ok := params[s[1:]]
			if !ok {
				return "", false
			}
			segs[i] = v
		}
	}
	return "/" + strings.Join(segs, "/"), true
}

func matchRoute(pattern, segs []string) (map[string]string, int, bool) {
	if len(pattern) != len(segs) {
		return nil, 0, false
	}
	params := map[string]string{}
	score := 0
	for i, p := range pattern {
		switch {
		case strings.HasPrefix(p, ":"):
			params[p[1:]] = segs[i]
		case p == segs[i]:
			score++
		default:
			return nil, 0, false
		}
	}
	return params, score, true
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return []string{}
	}
	return strings.Split(path, "/")
}
