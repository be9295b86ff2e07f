package widgets

import (
	"time"

	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom"
	"github.com/emberkit/ember/pkg/errors"
)

// ErrorBoundary renders Fallback in place of Child when Child fails to
// render, instead of failing the whole render pass. Panics raised while
// rendering Child are recovered into an [errors.PanicError].
//
// Example:
//
//	widgets.ErrorBoundary{
//	    Child: RiskyContent{},
//	    OnError: func(err error) {
//	        log.Printf("widget error: %v", err)
//	    },
//	    Fallback: func(err error) core.Widget {
//	        return widgets.TextOf("Failed to load")
//	    },
//	}
//
// Failures caught by a boundary are reported to the global error handler
// with KindRender before the fallback renders.
type ErrorBoundary struct {
	// Child is the subtree to guard.
	Child core.Widget
	// Fallback creates the widget shown when Child fails. If nil, the
	// builder set with core.SetErrorWidgetBuilder is used, and without one
	// an [ErrorText] showing the error.
	Fallback core.ErrorWidgetBuilder
	// OnError is called with the caught error. Use for logging/analytics.
	OnError func(err error)
}

func (b ErrorBoundary) Render(ctx core.BuildContext) (dom.Node, error) {
	if b.Child == nil {
		return nil, core.ErrNilWidget
	}
	n, err := b.renderChild(ctx)
	if err == nil {
		return n, nil
	}

	errors.Report(&errors.Error{
		Op:   "widgets.ErrorBoundary",
		Kind: errors.KindRender,
		Path: navPath(ctx),
		Err:  err,
	})
	if b.OnError != nil {
		b.OnError(err)
	}

	fallback := b.Fallback
	if fallback == nil {
		fallback = core.GetErrorWidgetBuilder()
	}
	var w core.Widget
	if fallback != nil {
		w = fallback(err)
	}
	if w == nil {
		w = ErrorText{Err: err}
	}
	return w.Render(ctx)
}

func (b ErrorBoundary) renderChild(ctx core.BuildContext) (n dom.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			n = nil
			err = &errors.PanicError{
				Op:         "widgets.ErrorBoundary",
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
		}
	}()
	return b.Child.Render(ctx)
}

// ErrorText is the default error boundary fallback: a paragraph with class
// "ember-error" containing the error message, or a generic notice when
// core.DebugMode is off.
type ErrorText struct {
	Err error
}

func (e ErrorText) Render(ctx core.BuildContext) (dom.Node, error) {
	msg := "Something went wrong"
	if core.DebugMode {
		msg = "unknown error"
		if e.Err != nil {
			msg = e.Err.Error()
		}
	}
	return Text{Attrs: Attrs{ClassName: "ember-error"}, Content: msg}.Render(ctx)
}

func navPath(ctx core.BuildContext) string {
	if nav := ctx.Navigator(); nav != nil {
		return nav.CurrentPath()
	}
	return ""
}
