package navigation_test

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/emberkit/ember/pkg/config"
	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/errors"
	"github.com/emberkit/ember/pkg/navigation"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "/"},
		{"/", "/"},
		{"/about", "/about"},
		{"/about/", "/about"},
		{"/about//", "/about"},
		{"/about?x=1", "/about"},
		{"/about#team", "/about"},
		{"/?x=1", "/"},
		{"/caf%C3%A9", "/café"},
	}
	for _, tt := range tests {
		if got := navigation.NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewRouter_Validation(t *testing.T) {
	view := func() core.Widget { return nil }
	tests := []struct {
		name   string
		routes []navigation.Route
	}{
		{"relative path", []navigation.Route{{Path: "about", View: view}}},
		{"missing view", []navigation.Route{{Path: "/about"}}},
		{"duplicate", []navigation.Route{{Path: "/about", View: view}, {Path: "/about/", View: view}}},
	}
	for _, tt := range tests {
		_, err := navigation.NewRouter(tt.routes)
		var ee *errors.Error
		if !stderrors.As(err, &ee) || ee.Kind != errors.KindConstruct {
			t.Errorf("%s: err = %v, want KindConstruct", tt.name, err)
		}
	}
}

func TestRoutesFromConfig(t *testing.T) {
	cfg := &config.Resolved{
		Title: "Site",
		Routes: []config.Route{
			{Path: "/", Title: "Home", Icon: "/i.png", Head: []string{"<meta>"}},
			{Path: "/about", Title: "About"},
		},
	}
	views := map[string]func() core.Widget{
		"/":      homeView,
		"/about": aboutView,
		"/extra": homeView,
	}

	routes, err := navigation.RoutesFromConfig(cfg, views)
	if err != nil {
		t.Fatalf("RoutesFromConfig: %v", err)
	}
	want := []navigation.Route{
		{Path: "/", Title: "Home", Icon: "/i.png", Head: []string{"<meta>"}},
		{Path: "/about", Title: "About"},
		{Path: "/extra", Title: "Site"},
	}
	if diff := cmp.Diff(want, routes, cmpopts.IgnoreFields(navigation.Route{}, "View")); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}
	for _, rt := range routes {
		if rt.View == nil {
			t.Errorf("route %q has no view", rt.Path)
		}
	}
}

func TestRoutesFromConfig_TrailingSlash(t *testing.T) {
	cfg, err := config.Parse([]byte("routes:\n  /about/:\n    title: About\n"))
	if err != nil {
		t.Fatal(err)
	}
	res, err := cfg.Resolve("/project", "example.com/site")
	if err != nil {
		t.Fatal(err)
	}
	routes, err := navigation.RoutesFromConfig(res, map[string]func() core.Widget{"/about/": aboutView})
	if err != nil {
		t.Fatalf("RoutesFromConfig: %v", err)
	}
	if len(routes) != 1 || routes[0].Path != "/about" || routes[0].Title != "About" {
		t.Errorf("routes = %+v, want one /about route titled About", routes)
	}
}

func TestRoutesFromConfig_MissingView(t *testing.T) {
	cfg := &config.Resolved{Routes: []config.Route{{Path: "/about"}}}
	_, err := navigation.RoutesFromConfig(cfg, nil)
	var ee *errors.Error
	if !stderrors.As(err, &ee) || ee.Kind != errors.KindConfig || ee.Path != "/about" {
		t.Errorf("err = %v, want KindConfig for /about", err)
	}
}
