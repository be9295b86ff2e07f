package showcase

import (
	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/widgets"
)

func buildAboutPage(*Showcase) core.Widget {
	return page("About Ember",
		widgets.TextOf("Ember builds the whole widget tree again on every update and mounts it in one step."),
		widgets.TextOf("Routes come from ember.yaml, which also feeds the static entry pages."),
		widgets.AnchorOf("Source on GitHub", "https://github.com/emberkit/ember"),
		widgets.LinkOf("Back home", "/"),
	)
}

func buildNotFoundPage(*Showcase) core.Widget {
	return page("Page not found",
		widgets.TextOf("Nothing lives at this address."),
		widgets.LinkOf("Back home", "/"),
	)
}
