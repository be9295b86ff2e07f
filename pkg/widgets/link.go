package widgets

import (
	stderrors "errors"

	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom"
	"github.com/emberkit/ember/pkg/errors"
)

// ErrNoNavigator is reported when a Link is clicked in an app without a
// navigator.
var ErrNoNavigator = stderrors.New("no navigator in build context")

// Link navigates inside the app without reloading the page.
//
// The rendered anchor always has href "#". A click prevents the host's
// default action and pushes To onto the navigator from the build context:
//
//	widgets.LinkOf("About", "/about")
//
// Navigation errors are reported to the global error handler; the returned
// error of the push is not visible to the host event loop.
type Link struct {
	Attrs
	// Text is the link text. Defaults to "Link" if empty.
	Text string
	// To is the target path. Defaults to "/" if empty.
	To string
}

// LinkOf creates a link with the given text and target path.
func LinkOf(text, to string) Link {
	return Link{Text: text, To: to}
}

// WithClass returns a copy of the link with the given class name.
func (l Link) WithClass(name string) Link {
	l.ClassName = name
	return l
}

// WithProp returns a copy of the link with one more attribute.
func (l Link) WithProp(key, value string) Link {
	l.Attrs = l.Attrs.With(key, value)
	return l
}

func (l Link) Render(ctx core.BuildContext) (dom.Node, error) {
	text, to := l.Text, l.To
	if text == "" {
		text = "Link"
	}
	if to == "" {
		to = "/"
	}
	nav := ctx.Navigator()

	n := l.Node(ctx, "a")
	n.SetTextContent(text)
	n.SetHref("#")
	n.Bind(dom.EventClick, func(e dom.Event) {
		defer errors.Recover("widgets.Link.click")
		e.PreventDefault()
		if nav == nil {
			errors.Report(&errors.Error{
				Op:   "widgets.Link.click",
				Kind: errors.KindRoute,
				Path: to,
				Err:  ErrNoNavigator,
			})
			return
		}
		// Push reports its own failures.
		_ = nav.Push(to)
	})
	return n, nil
}
