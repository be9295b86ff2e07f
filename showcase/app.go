// Package showcase is the Ember demo application: a home page with a click
// counter, an about page, and an error boundary demo, routed client-side.
//
// The same app runs in the browser (cmd/showcase, GOOS=js) and is
// prerendered into static pages by the native build of cmd/showcase.
package showcase

import (
	_ "embed"
	"fmt"

	"github.com/emberkit/ember/pkg/config"
	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom"
	"github.com/emberkit/ember/pkg/navigation"
)

// ModulePath is the import path the embedded configuration resolves against.
const ModulePath = "github.com/emberkit/ember/showcase"

//go:embed ember.yaml
var configData []byte

// Showcase holds the app state shared by every page.
type Showcase struct {
	// Clicks counts presses of the home page button.
	Clicks *core.Observable[int]
}

// New returns a showcase with fresh state.
func New() *Showcase {
	return &Showcase{Clicks: core.NewObservable(0)}
}

// Config returns the resolved embedded ember.yaml. Output paths are relative
// to dir.
func Config(dir string) (*config.Resolved, error) {
	cfg, err := config.Parse(configData)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir, ModulePath)
}

// Router builds the showcase router from the embedded configuration.
func (s *Showcase) Router() (*navigation.Router, error) {
	cfg, err := Config(".")
	if err != nil {
		return nil, err
	}
	views := make(map[string]func() core.Widget, len(demos))
	for _, d := range demos {
		views[d.Route] = func() core.Widget { return d.Builder(s) }
	}
	routes, err := navigation.RoutesFromConfig(cfg, views)
	if err != nil {
		return nil, err
	}
	return navigation.NewRouter(routes, navigation.WithNotFound(func() core.Widget {
		return buildNotFoundPage(s)
	}))
}

// Run mounts the showcase into doc and re-renders whenever its state
// changes. The returned runtime is nil only when the router cannot be built.
func (s *Showcase) Run(doc dom.Document) (*core.Runtime, error) {
	router, err := s.Router()
	if err != nil {
		return nil, fmt.Errorf("showcase: %w", err)
	}
	rt, err := navigation.Mount(doc, router)
	core.Watch(s.Clicks, rt)
	return rt, err
}
