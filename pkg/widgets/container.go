package widgets

import (
	"fmt"

	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom"
)

// Container groups child widgets inside a div.
//
// Children render in declaration order. Nil children are skipped, so
// conditional content can be written inline:
//
//	widgets.ContainerOf(
//	    header,
//	    maybeBanner, // may be nil
//	    body,
//	)
//
// The first child that fails to render aborts the whole container; the
// error names the child's index and type.
type Container struct {
	Attrs
	// Children are rendered in order and appended to the div.
	Children []core.Widget
	// OnClick is bound to the div's click event when set.
	OnClick dom.EventHandler
}

// ContainerOf creates a container with the given children.
func ContainerOf(children ...core.Widget) Container {
	return Container{Children: children}
}

// WithClass returns a copy of the container with the given class name.
func (c Container) WithClass(name string) Container {
	c.ClassName = name
	return c
}

// WithProp returns a copy of the container with one more attribute.
func (c Container) WithProp(key, value string) Container {
	c.Attrs = c.Attrs.With(key, value)
	return c
}

// WithOnClick returns a copy of the container with the given click handler.
func (c Container) WithOnClick(h dom.EventHandler) Container {
	c.OnClick = h
	return c
}

func (c Container) Render(ctx core.BuildContext) (dom.Node, error) {
	n := c.Node(ctx, "div")
	for i, child := range c.Children {
		if child == nil {
			continue
		}
		cn, err := child.Render(ctx)
		if err != nil {
			return nil, fmt.Errorf("child %d (%s): %w", i, core.TypeName(child), err)
		}
		n.AppendChild(cn)
	}
	bindClick(n, c.OnClick)
	return n, nil
}
