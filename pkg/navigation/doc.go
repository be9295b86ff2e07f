// Package navigation provides client-side routing for Ember apps.
//
// A [Router] owns a fixed table of routes keyed by path. Pushing a path
// switches the current route and re-renders the app; the page is never
// reloaded.
//
//	router, err := navigation.NewRouter([]navigation.Route{
//	    {Path: "/", Title: "Home", View: home},
//	    {Path: "/about", Title: "About", View: about},
//	}, navigation.WithNotFound(notFound))
//	if err != nil {
//	    return err
//	}
//	rt, err := navigation.Mount(doc, router)
//
// The router is the app: its Build renders an [Outlet], which renders the
// view of the current route. Widgets reach the router through the build
// context, either as a core.Navigator or with [RouterOf]:
//
//	widgets.LinkOf("About", "/about")           // pushes on click
//	navigation.RouterOf(ctx).Push("/about")     // from code
//
// # Host History
//
// When the document implements dom.History the router records every
// navigation as a history entry and follows the user's back and forward
// moves. When it implements dom.TitleSetter the route title becomes the
// document title.
//
// # Route Metadata
//
// Titles, icons, and head fragments can live in ember.yaml instead of Go
// code. [RoutesFromConfig] joins that metadata with the views.
package navigation
