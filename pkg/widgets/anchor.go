package widgets

import (
	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom"
)

// Anchor renders a plain hyperlink. Clicking it follows Href through the
// host; use [Link] for in-app navigation.
type Anchor struct {
	Attrs
	// Text is the link text. Defaults to "Anchor" if empty.
	Text string
	// Href is the link target. Defaults to "#" if empty.
	Href string
	// OnClick is bound to the click event when set.
	OnClick dom.EventHandler
}

// AnchorOf creates an anchor with the given text and target.
func AnchorOf(text, href string) Anchor {
	return Anchor{Text: text, Href: href}
}

// WithClass returns a copy of the anchor with the given class name.
func (a Anchor) WithClass(name string) Anchor {
	a.ClassName = name
	return a
}

// WithProp returns a copy of the anchor with one more attribute.
func (a Anchor) WithProp(key, value string) Anchor {
	a.Attrs = a.Attrs.With(key, value)
	return a
}

// WithOnClick returns a copy of the anchor with the given click handler.
func (a Anchor) WithOnClick(h dom.EventHandler) Anchor {
	a.OnClick = h
	return a
}

func (a Anchor) Render(ctx core.BuildContext) (dom.Node, error) {
	text, href := a.Text, a.Href
	if text == "" {
		text = "Anchor"
	}
	if href == "" {
		href = "#"
	}
	n := a.Node(ctx, "a")
	n.SetTextContent(text)
	n.SetHref(href)
	bindClick(n, a.OnClick)
	return n, nil
}
