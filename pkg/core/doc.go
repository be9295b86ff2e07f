// Package core provides the widget, build context, and app lifecycle types.
//
// A [Widget] is a declarative description of one element of the UI. Its
// Render method turns it into a [dom.Node] created by the host document.
// Widget trees are cheap and short-lived: an [App] builds a fresh tree on
// every update and the tree is thrown away once its nodes are mounted.
//
// # Rendering
//
// [Runtime] is the render entry point. Each call to [Runtime.Update] runs
// one pass:
//
//	root := app.Build(ctx)     // fresh widget tree
//	node, err := root.Render(ctx)
//	doc.Mount(node)            // only when the whole tree rendered
//
// There is no diffing: the mounted tree is replaced wholesale. A failed pass
// leaves the previous tree in place and reports the error through
// [github.com/emberkit/ember/pkg/errors].
//
// # Navigation
//
// The build context carries a [Navigator], normally a
// [github.com/emberkit/ember/pkg/navigation.Router]. Widgets such as Link
// reach it through [BuildContext.Navigator] instead of a global.
//
//	router, err := navigation.NewRouter(routes)
//	if err != nil {
//	    return err
//	}
//	rt, err := navigation.Mount(htmldom.New(), router)
//
// # Composite Widgets
//
// Views that only arrange other widgets implement [StatelessWidget] and are
// rendered with [Compose], or are written inline as a [Builder]:
//
//	core.Builder(func(ctx core.BuildContext) core.Widget {
//	    return widgets.TextOf("Current: " + ctx.Navigator().CurrentPath())
//	})
package core
