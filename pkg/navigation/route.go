package navigation

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/emberkit/ember/pkg/config"
	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/errors"
)

// Route maps a path to the view rendered for it.
type Route struct {
	// Path is the unique key of the route, such as "/" or "/about".
	Path string
	// Title becomes the document title when the route is entered.
	// Empty leaves the title unchanged.
	Title string
	// Icon is the page icon URL used by generated entry documents.
	Icon string
	// Head holds raw HTML fragments added to generated entry documents.
	Head []string
	// View creates the route's widget tree. It is called on every render.
	View func() core.Widget
}

// NormalizePath reduces a navigation target to a route key: the query and
// fragment are dropped and a trailing slash is removed, except for "/".
// An empty path is "/".
func NormalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if u, err := url.PathUnescape(path); err == nil {
		path = u
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	if path == "" {
		return "/"
	}
	return path
}

// RoutesFromConfig joins route metadata from ember.yaml with views.
//
// Every configured route needs a view. Views without a configured route are
// added with the app title. Routes are returned sorted by path.
func RoutesFromConfig(cfg *config.Resolved, views map[string]func() core.Widget) ([]Route, error) {
	byPath := make(map[string]func() core.Widget, len(views))
	for path, view := range views {
		byPath[NormalizePath(path)] = view
	}
	var routes []Route
	for _, rc := range cfg.Routes {
		view, ok := byPath[rc.Path]
		if !ok || view == nil {
			return nil, &errors.Error{
				Op:   "navigation.RoutesFromConfig",
				Kind: errors.KindConfig,
				Path: rc.Path,
				Err:  fmt.Errorf("route has no view"),
			}
		}
		routes = append(routes, Route{
			Path:  rc.Path,
			Title: rc.Title,
			Icon:  rc.Icon,
			Head:  rc.Head,
			View:  view,
		})
	}
	for path, view := range byPath {
		if _, ok := cfg.Lookup(path); ok {
			continue
		}
		routes = append(routes, Route{Path: path, Title: cfg.Title, View: view})
	}
	slices.SortFunc(routes, func(a, b Route) int { return strings.Compare(a.Path, b.Path) })
	return routes, nil
}
