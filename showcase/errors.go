package showcase

import (
	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/widgets"
)

// buildErrorsPage guards a broken widget with an error boundary so the rest
// of the page still renders.
func buildErrorsPage(*Showcase) core.Widget {
	return page("Error Boundaries",
		widgets.TextOf("The image below has no source. Its boundary shows a fallback instead."),
		widgets.ErrorBoundary{
			Child: widgets.Image{},
			Fallback: func(err error) core.Widget {
				return widgets.TextOf("Image unavailable").WithClass("fallback")
			},
		},
		widgets.ErrorBoundary{
			Child: core.Builder(func(core.BuildContext) core.Widget {
				panic("boom")
			}),
		},
	)
}
