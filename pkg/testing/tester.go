package testing

import (
	"sync"
	"testing"

	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom/htmldom"
	"github.com/emberkit/ember/pkg/errors"
)

// WidgetTester renders widgets into an in-memory document and records the
// errors the framework reports while it is alive.
type WidgetTester struct {
	doc *htmldom.Document
	nav core.Navigator
	rt  *core.Runtime

	prevHandler errors.ErrorHandler
	recorder    *recorder
}

// NewWidgetTester creates a tester with a fresh document and installs an
// error handler that records reports. Call Cleanup() when done, or use
// NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	t := &WidgetTester{
		doc:         htmldom.New(),
		prevHandler: errors.DefaultHandler,
		recorder:    &recorder{},
	}
	errors.SetHandler(t.recorder)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the error handler that was installed before the tester.
func (t *WidgetTester) Cleanup() {
	errors.SetHandler(t.prevHandler)
}

// SetDocument replaces the document. Must be called before PumpWidget.
func (t *WidgetTester) SetDocument(doc *htmldom.Document) {
	t.doc = doc
}

// SetNavigator makes nav available to widgets through the build context.
// Must be called before PumpWidget.
func (t *WidgetTester) SetNavigator(nav core.Navigator) {
	t.nav = nav
}

// Document returns the document widgets render into.
func (t *WidgetTester) Document() *htmldom.Document {
	return t.doc
}

// Runtime returns the runtime of the last pumped app, or nil.
func (t *WidgetTester) Runtime() *core.Runtime {
	return t.rt
}

// PumpWidget renders widget as the root of a new app.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	return t.PumpApp(core.AppFunc(func(core.BuildContext) core.Widget {
		return widget
	}))
}

// PumpApp creates a runtime for app and runs the first update.
//
// When no navigator was set and app is itself a navigator (such as a
// navigation.Router), app is used as the navigator. An app with an
// Attach(core.Updater) method is attached to the new runtime.
func (t *WidgetTester) PumpApp(app core.App) error {
	nav := t.nav
	if nav == nil {
		if n, ok := app.(core.Navigator); ok {
			nav = n
		}
	}
	var opts []core.RuntimeOption
	if nav != nil {
		opts = append(opts, core.WithNavigator(nav))
	}
	t.rt = core.NewRuntime(t.doc, app, opts...)
	if a, ok := app.(interface{ Attach(core.Updater) }); ok {
		a.Attach(t.rt)
	}
	return t.rt.Update()
}

// Pump runs one more update of the current app.
func (t *WidgetTester) Pump() error {
	if t.rt == nil {
		return nil
	}
	return t.rt.Update()
}

// Root returns the mounted root node, or nil.
func (t *WidgetTester) Root() *htmldom.Node {
	return t.doc.Mounted()
}

// HTML returns the mounted tree as HTML.
func (t *WidgetTester) HTML() string {
	return t.doc.MountHTML()
}

// Find evaluates a finder against the mounted tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	root := t.Root()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		nodes:  finder.Evaluate(root),
		finder: finder,
	}
}

// Errors returns the errors reported since the tester was created.
func (t *WidgetTester) Errors() []*errors.Error {
	return t.recorder.errorsCopy()
}

// Panics returns the panics reported since the tester was created.
func (t *WidgetTester) Panics() []*errors.PanicError {
	return t.recorder.panicsCopy()
}

type recorder struct {
	mu     sync.Mutex
	errs   []*errors.Error
	panics []*errors.PanicError
}

func (r *recorder) HandleError(err *errors.Error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

func (r *recorder) errorsCopy() []*errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.Error(nil), r.errs...)
}

func (r *recorder) panicsCopy() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}
