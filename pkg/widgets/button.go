package widgets

import (
	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom"
)

// Button renders a button element.
//
// Example using struct literal:
//
//	widgets.Button{
//	    Text:    "Submit",
//	    OnClick: func(dom.Event) { submit() },
//	}
//
// Example using XxxOf helper:
//
//	widgets.ButtonOf("Submit", onSubmit).WithClass("primary")
type Button struct {
	Attrs
	// Text is the button label. Defaults to "Button" if empty.
	Text string
	// OnClick is bound to the click event when set.
	OnClick dom.EventHandler
}

// ButtonOf creates a button with the given label and click handler.
func ButtonOf(text string, onClick dom.EventHandler) Button {
	return Button{Text: text, OnClick: onClick}
}

// WithClass returns a copy of the button with the given class name.
func (b Button) WithClass(name string) Button {
	b.ClassName = name
	return b
}

// WithProp returns a copy of the button with one more attribute.
func (b Button) WithProp(key, value string) Button {
	b.Attrs = b.Attrs.With(key, value)
	return b
}

// WithOnClick returns a copy of the button with the given click handler.
func (b Button) WithOnClick(h dom.EventHandler) Button {
	b.OnClick = h
	return b
}

func (b Button) Render(ctx core.BuildContext) (dom.Node, error) {
	text := b.Text
	if text == "" {
		text = "Button"
	}
	n := b.Node(ctx, "button")
	n.SetTextContent(text)
	bindClick(n, b.OnClick)
	return n, nil
}
