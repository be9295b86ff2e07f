package widgets

import (
	stderrors "errors"
	"maps"
	"slices"

	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom"
	"github.com/emberkit/ember/pkg/errors"
)

// ErrMissingArgument is returned when a required widget field is empty.
var ErrMissingArgument = stderrors.New("missing required argument")

// Attrs holds the attributes shared by every widget.
type Attrs struct {
	// ClassName is the element's class. Empty means no class attribute.
	ClassName string
	// Props are extra attributes set verbatim on the element.
	Props map[string]string
}

// Node creates an element with tag and applies the class name and props.
func (a Attrs) Node(ctx core.BuildContext, tag string) dom.Node {
	n := ctx.Document().CreateElement(tag)
	if a.ClassName != "" {
		n.SetClassName(a.ClassName)
	}
	for _, k := range slices.Sorted(maps.Keys(a.Props)) {
		n.SetAttribute(k, a.Props[k])
	}
	return n
}

// With returns a copy of a with one more prop. The receiver's map is not
// modified.
func (a Attrs) With(key, value string) Attrs {
	props := make(map[string]string, len(a.Props)+1)
	maps.Copy(props, a.Props)
	props[key] = value
	a.Props = props
	return a
}

// bindClick binds h to clicks on n. A panicking handler is reported
// instead of unwinding into the host event loop.
func bindClick(n dom.Node, h dom.EventHandler) {
	if h == nil {
		return
	}
	n.Bind(dom.EventClick, func(e dom.Event) {
		defer errors.Recover("widgets.click")
		h(e)
	})
}
