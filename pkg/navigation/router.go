package navigation

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strings"

	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom"
	"github.com/emberkit/ember/pkg/errors"
)

// ErrRouteNotFound is returned when navigating to a path with no route and
// no not-found view.
var ErrRouteNotFound = stderrors.New("route not found")

// DefaultInitialPath is the path Start navigates to when the host has no
// usable location.
const DefaultInitialPath = "/"

var (
	_ core.App       = (*Router)(nil)
	_ core.Navigator = (*Router)(nil)
)

// Option configures a Router.
type Option func(*Router)

// WithNotFound sets the view rendered for unregistered paths. Without one,
// pushing an unregistered path fails with ErrRouteNotFound and leaves the
// router unchanged.
func WithNotFound(view func() core.Widget) Option {
	return func(r *Router) { r.notFound = view }
}

// WithInitialPath sets the path Start navigates to when the host location
// is unavailable or unregistered. Defaults to "/".
func WithInitialPath(path string) Option {
	return func(r *Router) { r.initial = NormalizePath(path) }
}

// Router keeps the current path and renders the matching route's view.
//
// Router is not safe for concurrent use; like the runtime it is driven by
// the host event loop.
type Router struct {
	routes   map[string]Route
	notFound func() core.Widget
	initial  string

	updater core.Updater
	history dom.History
	titles  dom.TitleSetter
	started bool

	current string
	route   Route
	matched bool
}

// NewRouter builds the route table. Paths are normalized with
// NormalizePath; every path must start with "/", be unique, and have a view.
func NewRouter(routes []Route, opts ...Option) (*Router, error) {
	r := &Router{
		routes:  make(map[string]Route, len(routes)),
		initial: DefaultInitialPath,
	}
	for _, rt := range routes {
		if !strings.HasPrefix(rt.Path, "/") {
			return nil, constructError(rt.Path, "path must start with '/'")
		}
		rt.Path = NormalizePath(rt.Path)
		if rt.View == nil {
			return nil, constructError(rt.Path, "route has no view")
		}
		if _, dup := r.routes[rt.Path]; dup {
			return nil, constructError(rt.Path, "duplicate route")
		}
		r.routes[rt.Path] = rt
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func constructError(path, msg string) error {
	return &errors.Error{
		Op:   "navigation.NewRouter",
		Kind: errors.KindConstruct,
		Path: path,
		Err:  stderrors.New(msg),
	}
}

// Attach sets the updater each navigation re-renders through. When u also
// exposes its document (as core.Runtime does), the router uses the
// document's history and title when it supports them.
func (r *Router) Attach(u core.Updater) {
	r.updater = u
	if d, ok := u.(interface{ Document() dom.Document }); ok {
		r.history, _ = d.Document().(dom.History)
		r.titles, _ = d.Document().(dom.TitleSetter)
	}
}

// historyMode says how a navigation is recorded in host history.
type historyMode int

const (
	historyPush historyMode = iota
	historyReplace
	// historyNone is used for popstate, where the host already moved.
	historyNone
)

// Start performs the initial navigation. With host history it starts at the
// host location when that path is registered, and follows back/forward
// moves from then on. Otherwise it starts at the initial path, which
// replaces the unroutable host entry rather than adding one after it.
func (r *Router) Start() error {
	path, mode := r.initial, historyPush
	if r.history != nil {
		if loc := NormalizePath(r.history.Pathname()); r.has(loc) {
			path = loc
		} else {
			mode = historyReplace
		}
		if !r.started {
			r.history.OnPopState(r.popState)
		}
	}
	r.started = true
	return r.navigate(path, mode)
}

// popState follows a back/forward move of the host. A move to a path that
// cannot be rendered rewrites the host entry back to the current path, so
// host location and router never disagree. The failure is reported by
// navigate.
func (r *Router) popState(p string) {
	err := r.navigate(NormalizePath(p), historyNone)
	if stderrors.Is(err, ErrRouteNotFound) && r.current != "" {
		r.history.ReplaceState(r.current)
	}
}

// Push navigates to path and re-renders the app once.
//
// Pushing an unregistered path renders the not-found view when one is
// configured; otherwise Push returns an error wrapping ErrRouteNotFound and
// the current route does not change.
func (r *Router) Push(path string) error {
	return r.navigate(NormalizePath(path), historyPush)
}

func (r *Router) navigate(path string, mode historyMode) error {
	route, ok := r.routes[path]
	if !ok && r.notFound == nil {
		err := &errors.Error{
			Op:   "navigation.Router.Push",
			Kind: errors.KindRoute,
			Path: path,
			Err:  ErrRouteNotFound,
		}
		errors.Report(err)
		return err
	}

	r.current = path
	r.route = route
	r.matched = ok

	if r.history != nil && r.history.Pathname() != path {
		switch mode {
		case historyPush:
			r.history.PushState(path)
		case historyReplace:
			r.history.ReplaceState(path)
		}
	}
	if ok && route.Title != "" && r.titles != nil {
		r.titles.SetTitle(route.Title)
	}
	if r.updater == nil {
		return nil
	}
	return r.updater.Update()
}

func (r *Router) has(path string) bool {
	_, ok := r.routes[path]
	return ok
}

// Lookup returns the route registered for path after normalization.
func (r *Router) Lookup(path string) (Route, bool) {
	rt, ok := r.routes[NormalizePath(path)]
	return rt, ok
}

// CurrentPath returns the current path, or "" before the first navigation.
func (r *Router) CurrentPath() string {
	return r.current
}

// Current returns the current route. It reports false before the first
// navigation and while the not-found view is shown.
func (r *Router) Current() (Route, bool) {
	return r.route, r.matched
}

// Routes returns the route table sorted by path.
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.routes))
	for _, rt := range r.routes {
		out = append(out, rt)
	}
	slices.SortFunc(out, func(a, b Route) int { return strings.Compare(a.Path, b.Path) })
	return out
}

// Build renders the current route through an Outlet. Nothing is rendered
// before the first navigation.
func (r *Router) Build(core.BuildContext) core.Widget {
	if r.current == "" {
		return nil
	}
	return Outlet{}
}

func (r *Router) view() (core.Widget, error) {
	var produce func() core.Widget
	switch {
	case r.matched:
		produce = r.route.View
	case r.current != "" && r.notFound != nil:
		produce = r.notFound
	default:
		return nil, fmt.Errorf("%w: %q", ErrRouteNotFound, r.current)
	}
	w := produce()
	if w == nil {
		return nil, fmt.Errorf("view for %q: %w", r.current, core.ErrNilWidget)
	}
	return w, nil
}
