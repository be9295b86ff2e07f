package widgets_test

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/emberkit/ember/pkg/dom"
	"github.com/emberkit/ember/pkg/errors"
	embertest "github.com/emberkit/ember/pkg/testing"
	"github.com/emberkit/ember/pkg/widgets"
)

type recordingNavigator struct {
	path   string
	pushed []string
}

func (n *recordingNavigator) Push(path string) error {
	n.pushed = append(n.pushed, path)
	n.path = path
	return nil
}

func (n *recordingNavigator) CurrentPath() string { return n.path }

func TestLink_ClickPushes(t *testing.T) {
	nav := &recordingNavigator{path: "/"}
	tester := embertest.NewWidgetTesterWithT(t)
	tester.SetNavigator(nav)
	if err := tester.PumpWidget(widgets.LinkOf("About", "/about")); err != nil {
		t.Fatal(err)
	}

	evt, err := tester.Tap(embertest.ByText("About"))
	if err != nil {
		t.Fatalf("Tap: %v", err)
	}
	if !evt.DefaultPrevented() {
		t.Error("link click should prevent the default action")
	}
	if diff := cmp.Diff([]string{"/about"}, nav.pushed); diff != "" {
		t.Errorf("pushed mismatch (-want +got):\n%s", diff)
	}
	if href, _ := tester.Root().Attr("href"); href != "#" {
		t.Errorf("href = %q, want #", href)
	}
}

func TestLink_DefaultTarget(t *testing.T) {
	nav := &recordingNavigator{}
	tester := embertest.NewWidgetTesterWithT(t)
	tester.SetNavigator(nav)
	_ = tester.PumpWidget(widgets.Link{})

	if _, err := tester.Tap(embertest.ByText("Link")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"/"}, nav.pushed); diff != "" {
		t.Errorf("pushed mismatch (-want +got):\n%s", diff)
	}
}

func TestLink_WithoutNavigator(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)
	_ = tester.PumpWidget(widgets.LinkOf("About", "/about"))

	evt, err := tester.Tap(embertest.ByTag("a"))
	if err != nil {
		t.Fatal(err)
	}
	if !evt.DefaultPrevented() {
		t.Error("default should be prevented even without a navigator")
	}
	errs := tester.Errors()
	if len(errs) != 1 {
		t.Fatalf("captured %d errors, want 1", len(errs))
	}
	if errs[0].Kind != errors.KindRoute || !stderrors.Is(errs[0], widgets.ErrNoNavigator) {
		t.Errorf("unexpected error: %v", errs[0])
	}
}

type panickingNavigator struct{}

func (panickingNavigator) Push(string) error   { panic("navigator failed") }
func (panickingNavigator) CurrentPath() string { return "/" }

func TestLink_ClickPanicRecovered(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)
	tester.SetNavigator(panickingNavigator{})
	_ = tester.PumpWidget(widgets.LinkOf("About", "/about"))

	if _, err := tester.Tap(embertest.ByTag("a")); err != nil {
		t.Fatal(err)
	}
	panics := tester.Panics()
	if len(panics) != 1 {
		t.Fatalf("captured %d panics, want 1", len(panics))
	}
	if panics[0].Op != "widgets.Link.click" || panics[0].Value != "navigator failed" {
		t.Errorf("unexpected panic: %+v", panics[0])
	}
}

func TestButton_ClickPanicRecovered(t *testing.T) {
	tester := embertest.NewWidgetTesterWithT(t)
	_ = tester.PumpWidget(widgets.ButtonOf("Go", func(dom.Event) { panic("handler failed") }))

	if _, err := tester.Tap(embertest.ByTag("button")); err != nil {
		t.Fatal(err)
	}
	panics := tester.Panics()
	if len(panics) != 1 || panics[0].Op != "widgets.click" {
		t.Fatalf("panics = %+v, want one from widgets.click", panics)
	}
}
