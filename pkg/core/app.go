package core

// App produces the root widget tree of an application.
type App interface {
	// Build returns the root widget. A nil root renders nothing.
	Build(ctx BuildContext) Widget
}

// AppFunc adapts a function to the App interface.
type AppFunc func(ctx BuildContext) Widget

// Build calls f(ctx).
func (f AppFunc) Build(ctx BuildContext) Widget { return f(ctx) }

// AppBase provides the default, empty Build. Embed it and override Build:
//
//	type myApp struct {
//	    core.AppBase
//	}
//
//	func (myApp) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.TextOf("hello")
//	}
type AppBase struct{}

// Build returns nil.
func (AppBase) Build(BuildContext) Widget { return nil }
