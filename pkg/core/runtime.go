package core

import (
	stderrors "errors"
	"fmt"

	"github.com/emberkit/ember/pkg/dom"
	"github.com/emberkit/ember/pkg/errors"
)

// MaxUpdatePasses bounds how many passes one Update may run when updates are
// requested while a pass is in flight.
const MaxUpdatePasses = 8

// ErrUpdateLoop is returned when re-entrant update requests do not settle
// within MaxUpdatePasses.
var ErrUpdateLoop = stderrors.New("update requested on every pass")

// Runtime is the render entry point of an App.
//
// Runtime is not safe for concurrent use. The host event loop serialises
// event handlers, and every update runs to completion before the handler
// that triggered it returns.
type Runtime struct {
	doc dom.Document
	app App
	nav Navigator

	updating bool
	dirty    bool
	renders  int
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithNavigator makes nav available to widgets through the build context.
func WithNavigator(nav Navigator) RuntimeOption {
	return func(r *Runtime) { r.nav = nav }
}

// NewRuntime creates a runtime that renders app into doc. Nothing is
// rendered until Update is called.
func NewRuntime(doc dom.Document, app App, opts ...RuntimeOption) *Runtime {
	r := &Runtime{doc: doc, app: app}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunApp creates a runtime and performs the first update. The runtime is
// returned even when the first update fails, so later events can retry.
func RunApp(doc dom.Document, app App, opts ...RuntimeOption) (*Runtime, error) {
	r := NewRuntime(doc, app, opts...)
	return r, r.Update()
}

// Document returns the host document.
func (r *Runtime) Document() dom.Document { return r.doc }

// Navigator returns the navigator, or nil.
func (r *Runtime) Navigator() Navigator { return r.nav }

// Renders returns the number of passes that mounted a tree.
func (r *Runtime) Renders() int { return r.renders }

// Update rebuilds the whole widget tree and mounts it.
//
// When called while a pass is in flight (for example by a navigation
// triggered during Build), Update only records the request and returns nil;
// the in-flight Update then runs one more pass once the current one is done.
// The error of the last pass is returned.
func (r *Runtime) Update() error {
	if r.updating {
		r.dirty = true
		return nil
	}
	r.updating = true
	defer func() { r.updating = false }()

	var err error
	for pass := 0; pass < MaxUpdatePasses; pass++ {
		r.dirty = false
		err = r.renderPass()
		if !r.dirty {
			return err
		}
	}
	loopErr := &errors.Error{
		Op:   "core.Runtime.Update",
		Kind: errors.KindRender,
		Err:  fmt.Errorf("%w after %d passes", ErrUpdateLoop, MaxUpdatePasses),
	}
	errors.Report(loopErr)
	return loopErr
}

func (r *Runtime) renderPass() (err error) {
	defer errors.RecoverWithCallback("core.Runtime.Update", func(p *errors.PanicError) {
		err = p
	})

	ctx := NewBuildContext(r.doc, r.nav)
	root := r.app.Build(ctx)
	if root == nil {
		return nil
	}

	node, err := root.Render(ctx)
	if err != nil {
		renderErr := &errors.Error{
			Op:   "core.Runtime.Update",
			Kind: errors.KindRender,
			Path: r.currentPath(),
			Err:  err,
		}
		errors.Report(renderErr)
		return renderErr
	}

	if err := r.doc.Mount(node); err != nil {
		mountErr := &errors.Error{
			Op:   "core.Runtime.Update",
			Kind: errors.KindRender,
			Path: r.currentPath(),
			Err:  fmt.Errorf("mount: %w", err),
		}
		errors.Report(mountErr)
		return mountErr
	}
	r.renders++
	return nil
}

func (r *Runtime) currentPath() string {
	if r.nav == nil {
		return ""
	}
	return r.nav.CurrentPath()
}
