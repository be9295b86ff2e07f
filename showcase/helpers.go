package showcase

import (
	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/widgets"
)

// page wraps content with the navigation bar and a heading.
func page(title string, content ...core.Widget) core.Widget {
	children := []core.Widget{
		navBar(),
		widgets.TextOf(title).WithClass("title"),
	}
	children = append(children, content...)
	return widgets.ContainerOf(children...).WithClass("page")
}

func navBar() core.Widget {
	links := make([]core.Widget, 0, len(demos))
	for _, d := range demos {
		links = append(links, widgets.LinkOf(d.Title, d.Route).WithProp("title", d.Subtitle))
	}
	return widgets.ContainerOf(links...).WithClass("nav")
}
