package widgets_test

import (
	"fmt"

	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom/htmldom"
	"github.com/emberkit/ember/pkg/widgets"
)

func ExampleContainer() {
	doc := htmldom.New()
	_, err := core.RunApp(doc, core.AppFunc(func(core.BuildContext) core.Widget {
		return widgets.Container{
			Attrs: widgets.Attrs{ClassName: "card"},
			Children: []core.Widget{
				widgets.TextOf("Hello"),
				widgets.AnchorOf("Docs", "/docs"),
			},
		}
	}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(doc.MountHTML())
	// Output: <div class="card"><p>Hello</p><a href="/docs">Docs</a></div>
}

func ExampleImageOf() {
	_, err := widgets.ImageOf("")
	fmt.Println(err)
	// Output: widgets.Image: src: missing required argument
}
