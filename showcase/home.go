package showcase

import (
	"fmt"

	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom"
	"github.com/emberkit/ember/pkg/widgets"
)

// buildHomePage shows the basic widgets and a counter stored in s.Clicks.
func buildHomePage(s *Showcase) core.Widget {
	clicks := s.Clicks.Value()
	return page("Welcome to Ember",
		widgets.TextOf("Widgets render to real document nodes; links switch views without reloading."),
		widgets.Image{Src: "/logo.png"}.WithProp("alt", "Ember logo"),
		widgets.ContainerOf(
			widgets.TextOf(fmt.Sprintf("Clicked %d times", clicks)).WithClass("count"),
			widgets.ButtonOf("Click me", func(dom.Event) {
				s.Clicks.Set(clicks + 1)
			}).WithClass("increment"),
		).WithClass("counter"),
		widgets.LinkOf("Read more", "/about"),
	)
}
