package navigation

import (
	"strings"

	"github.com/riordanpawley/marquee/internal/domain"
)

// HomePath is the root route
const HomePath = "/"

const maxHistory = 50

// NavigateMsg asks the app to show the page at Path
type NavigateMsg struct {
	Path string
}

// Route is a registered page
type Route struct {
	Path  string
	Title string
}

// Router holds the registered routes, the active path and its history.
// An unknown path still becomes current so the not-found page can show it.
type Router struct {
	routes  map[string]Route
	order   []string
	current string
	history []string
}

// NewRouter creates a router positioned at HomePath
func NewRouter(routes ...Route) *Router {
	r := &Router{
		routes:  make(map[string]Route, len(routes)),
		current: HomePath,
	}
	for _, route := range routes {
		p := Normalize(route.Path)
		route.Path = p
		if _, dup := r.routes[p]; !dup {
			r.order = append(r.order, p)
		}
		r.routes[p] = route
	}
	return r
}

// Normalize trims whitespace, forces a leading slash and drops trailing ones
func Normalize(path string) string {
	p := strings.TrimSpace(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = HomePath
		}
	}
	return p
}

// Navigate makes path current and records the previous path.
// Returns a *domain.RouteNotFoundError when path is not registered.
func (r *Router) Navigate(path string) error {
	p := Normalize(path)
	if p != r.current {
		r.history = append(r.history, r.current)
		if len(r.history) > maxHistory {
			r.history = r.history[len(r.history)-maxHistory:]
		}
		r.current = p
	}
	if _, ok := r.routes[p]; !ok {
		return &domain.RouteNotFoundError{Path: p}
	}
	return nil
}

// Back returns to the previous path. Returns false when there is none.
func (r *Router) Back() bool {
	if len(r.history) == 0 {
		return false
	}
	r.current = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return true
}

// Home navigates to the root route
func (r *Router) Home() {
	_ = r.Navigate(HomePath)
}

// Path returns the current path, registered or not
func (r *Router) Path() string {
	return r.current
}

// Current returns the current route and whether it is registered
func (r *Router) Current() (Route, bool) {
	route, ok := r.routes[r.current]
	return route, ok
}

// NotFound reports whether the current path is unregistered
func (r *Router) NotFound() bool {
	_, ok := r.routes[r.current]
	return !ok
}

// CanGoBack reports whether Back would change the current path
func (r *Router) CanGoBack() bool {
	return len(r.history) > 0
}

// Routes returns the registered routes in registration order
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.order))
	for _, p := range r.order {
		out = append(out, r.routes[p])
	}
	return out
}
