package ui

import "sync"

// Route names a page of the frontend.
type Route string

const (
	RouteHome     Route = "home"
	RouteAbout    Route = "about"
	RouteSettings Route = "settings"
	RouteProfile  Route = "profile"
)

// Routes lists the pages in navigation order.
func Routes() []Route {
	return []Route{RouteHome, RouteAbout, RouteSettings, RouteProfile}
}

// ParseRoute accepts a route name as carried by the menu-navigate event.
func ParseRoute(s string) (Route, bool) {
	for _, r := range Routes() {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// TitleKey is the localization key of the route's title.
func (r Route) TitleKey() string {
	switch r {
	case RouteAbout:
		return KeyAbout
	case RouteSettings:
		return KeySettings
	case RouteProfile:
		return KeyProfile
	default:
		return KeyHome
	}
}

// Router holds the current route and notifies observers when it changes.
type Router struct {
	mu        sync.Mutex
	current   Route
	observers []func(Route)
}

// NewRouter starts at initial, or at home when initial is unknown.
func NewRouter(initial string) *Router {
	r, ok := ParseRoute(initial)
	if !ok {
		r = RouteHome
	}
	return &Router{current: r}
}

// Current returns the active route.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// OnChange registers fn to run after every successful navigation.
func (r *Router) OnChange(fn func(Route)) {
	r.mu.Lock()
	r.observers = append(r.observers, fn)
	r.mu.Unlock()
}

// Navigate switches to the named route. Unknown names are rejected and leave
// the current route untouched. Navigating to the current route still
// notifies observers so the page is re-rendered.
func (r *Router) Navigate(name string) bool {
	route, ok := ParseRoute(name)
	if !ok {
		return false
	}

	r.mu.Lock()
	r.current = route
	observers := make([]func(Route), len(r.observers))
	copy(observers, r.observers)
	r.mu.Unlock()

	for _, fn := range observers {
		fn(route)
	}
	return true
}
