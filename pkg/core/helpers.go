package core

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/emberkit/ember/pkg/dom"
)

// ErrNilWidget is returned when a composite widget builds nothing.
var ErrNilWidget = errors.New("widget built nil")

// StatelessWidget is a composite widget described in terms of other widgets.
// Give it a Render method by delegating to Compose:
//
//	type Greeting struct{ Name string }
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.TextOf("Hello, " + g.Name)
//	}
//
//	func (g Greeting) Render(ctx core.BuildContext) (dom.Node, error) {
//	    return core.Compose(ctx, g)
//	}
type StatelessWidget interface {
	Build(ctx BuildContext) Widget
}

// Compose builds w and renders the result.
func Compose(ctx BuildContext, w StatelessWidget) (dom.Node, error) {
	child := w.Build(ctx)
	if child == nil {
		return nil, fmt.Errorf("%s: %w", TypeName(w), ErrNilWidget)
	}
	return child.Render(ctx)
}

// Builder is a widget whose content is produced by a function at render time.
type Builder func(ctx BuildContext) Widget

// Build calls b(ctx).
func (b Builder) Build(ctx BuildContext) Widget { return b(ctx) }

// Render builds and renders the produced widget.
func (b Builder) Render(ctx BuildContext) (dom.Node, error) {
	return Compose(ctx, b)
}

// TypeName returns the type name of w for diagnostics, such as
// "widgets.Container".
func TypeName(w any) string {
	if w == nil {
		return "<nil>"
	}
	return reflect.TypeOf(w).String()
}
