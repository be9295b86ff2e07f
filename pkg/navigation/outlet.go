package navigation

import (
	stderrors "errors"

	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom"
)

// ErrNoRouter is returned by an Outlet rendered without a Router in its
// build context.
var ErrNoRouter = stderrors.New("no router in build context")

// Outlet renders the view of the router's current route. A layout can
// place it anywhere in its tree:
//
//	func layout() core.Widget {
//	    return widgets.ContainerOf(nav(), navigation.Outlet{})
//	}
type Outlet struct{}

func (Outlet) Render(ctx core.BuildContext) (dom.Node, error) {
	r := RouterOf(ctx)
	if r == nil {
		return nil, ErrNoRouter
	}
	w, err := r.view()
	if err != nil {
		return nil, err
	}
	return w.Render(ctx)
}

// RouterOf returns the router in the build context, or nil.
func RouterOf(ctx core.BuildContext) *Router {
	r, _ := ctx.Navigator().(*Router)
	return r
}

// Mount renders router into doc and performs the initial navigation. The
// returned runtime is valid even when the initial navigation fails.
func Mount(doc dom.Document, router *Router, opts ...core.RuntimeOption) (*core.Runtime, error) {
	opts = append(opts, core.WithNavigator(router))
	rt := core.NewRuntime(doc, router, opts...)
	router.Attach(rt)
	return rt, router.Start()
}
