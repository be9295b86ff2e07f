package showcase

import "github.com/emberkit/ember/pkg/core"

// Demo is one page of the showcase.
type Demo struct {
	Route    string
	Title    string
	Subtitle string
	Builder  func(s *Showcase) core.Widget
}

// demos is the registry of showcase pages. Every route here must also be
// declared in ember.yaml; the navigation bar lists them in this order.
var demos = []Demo{
	{"/", "Home", "Widgets and a click counter", buildHomePage},
	{"/about", "About", "What Ember is", buildAboutPage},
	{"/errors", "Error Boundaries", "Recovering from a failed subtree", buildErrorsPage},
}

// Demos returns the registered pages.
func Demos() []Demo {
	return append([]Demo(nil), demos...)
}
