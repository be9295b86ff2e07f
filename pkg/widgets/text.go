package widgets

import (
	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom"
)

// Text renders a paragraph.
type Text struct {
	Attrs
	// Content is the paragraph text. Defaults to "Text" if empty.
	Content string
	// OnClick is bound to the click event when set.
	OnClick dom.EventHandler
}

// TextOf creates a paragraph with the given content.
func TextOf(content string) Text {
	return Text{Content: content}
}

// WithClass returns a copy of the text with the given class name.
func (t Text) WithClass(name string) Text {
	t.ClassName = name
	return t
}

// WithProp returns a copy of the text with one more attribute.
func (t Text) WithProp(key, value string) Text {
	t.Attrs = t.Attrs.With(key, value)
	return t
}

// WithOnClick returns a copy of the text with the given click handler.
func (t Text) WithOnClick(h dom.EventHandler) Text {
	t.OnClick = h
	return t
}

func (t Text) Render(ctx core.BuildContext) (dom.Node, error) {
	content := t.Content
	if content == "" {
		content = "Text"
	}
	n := t.Node(ctx, "p")
	n.SetTextContent(content)
	bindClick(n, t.OnClick)
	return n, nil
}
