package core

import (
	"github.com/emberkit/ember/pkg/dom"
)

// Widget describes one element of the UI.
//
// Render creates the widget's node, and its descendants' nodes, with the
// document in ctx. Render must not mount anything; the returned tree stays
// detached until the [Runtime] mounts the root.
type Widget interface {
	Render(ctx BuildContext) (dom.Node, error)
}

// BuildContext is passed down the tree during a render pass.
type BuildContext interface {
	// Document is the host document nodes are created with.
	Document() dom.Document
	// Navigator is the app's navigator, or nil when the app has none.
	Navigator() Navigator
}

// Navigator changes the current path of the app.
type Navigator interface {
	// Push navigates to path and re-renders the app.
	Push(path string) error
	// CurrentPath returns the path of the current route.
	CurrentPath() string
}

// Updater triggers a render pass.
type Updater interface {
	Update() error
}

type buildContext struct {
	doc dom.Document
	nav Navigator
}

func (c buildContext) Document() dom.Document { return c.doc }
func (c buildContext) Navigator() Navigator    { return c.nav }

// NewBuildContext returns a context over doc and nav. nav may be nil.
func NewBuildContext(doc dom.Document, nav Navigator) BuildContext {
	return buildContext{doc: doc, nav: nav}
}
