package showcase_test

import (
	"testing"

	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/errors"
	"github.com/emberkit/ember/pkg/navigation"
	embertest "github.com/emberkit/ember/pkg/testing"
	"github.com/emberkit/ember/showcase"
)

func run(t *testing.T) (*embertest.WidgetTester, *showcase.Showcase, *core.Runtime) {
	t.Helper()
	tester := embertest.NewWidgetTesterWithT(t)
	s := showcase.New()
	rt, err := s.Run(tester.Document())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return tester, s, rt
}

func TestShowcase_Home(t *testing.T) {
	tester, _, _ := run(t)

	if !tester.Find(embertest.ByText("Welcome to Ember")).Exists() {
		t.Fatalf("home page not rendered:\n%s", tester.HTML())
	}
	if got := tester.Document().Title(); got != "Ember Showcase" {
		t.Errorf("Title() = %q, want Ember Showcase", got)
	}
	nav := tester.Find(embertest.Descendant(embertest.ByClass("nav"), embertest.ByTag("a")))
	if nav.Count() != len(showcase.Demos()) {
		t.Errorf("nav links = %d, want %d", nav.Count(), len(showcase.Demos()))
	}
}

func TestShowcase_Counter(t *testing.T) {
	tester, s, _ := run(t)

	for i := 0; i < 2; i++ {
		if _, err := tester.Tap(embertest.ByClass("increment")); err != nil {
			t.Fatal(err)
		}
	}
	if s.Clicks.Value() != 2 {
		t.Errorf("Clicks = %d, want 2", s.Clicks.Value())
	}
	if !tester.Find(embertest.ByText("Clicked 2 times")).Exists() {
		t.Errorf("counter not re-rendered:\n%s", tester.HTML())
	}
}

func TestShowcase_NavigateToAbout(t *testing.T) {
	tester, _, _ := run(t)

	ev, err := tester.Tap(embertest.ByText("About"))
	if err != nil {
		t.Fatal(err)
	}
	if !ev.DefaultPrevented() {
		t.Error("link click should prevent the default action")
	}
	doc := tester.Document()
	if doc.Pathname() != "/about" {
		t.Errorf("Pathname() = %q, want /about", doc.Pathname())
	}
	if doc.Title() != "About Ember" {
		t.Errorf("Title() = %q, want About Ember", doc.Title())
	}
	if !tester.Find(embertest.ByText("About Ember")).Exists() {
		t.Errorf("about page not rendered:\n%s", tester.HTML())
	}

	if _, err := tester.Tap(embertest.ByText("Back home")); err != nil {
		t.Fatal(err)
	}
	if !tester.Find(embertest.ByText("Welcome to Ember")).Exists() {
		t.Errorf("home page not rendered after going back:\n%s", tester.HTML())
	}
}

func TestShowcase_ErrorBoundaries(t *testing.T) {
	tester, _, _ := run(t)

	if _, err := tester.Tap(embertest.ByText("Error Boundaries")); err != nil {
		t.Fatal(err)
	}
	if !tester.Find(embertest.ByClass("fallback")).Exists() {
		t.Errorf("custom fallback missing:\n%s", tester.HTML())
	}
	if !tester.Find(embertest.ByClass("ember-error")).Exists() {
		t.Errorf("default fallback missing:\n%s", tester.HTML())
	}

	var render int
	for _, e := range tester.Errors() {
		if e.Kind == errors.KindRender && e.Path == "/errors" {
			render++
		}
	}
	if render != 2 {
		t.Errorf("boundary reports = %d, want 2", render)
	}
}

func TestShowcase_NotFound(t *testing.T) {
	tester, _, rt := run(t)

	router, ok := rt.Navigator().(*navigation.Router)
	if !ok {
		t.Fatalf("navigator is %T, want *navigation.Router", rt.Navigator())
	}
	if err := router.Push("/nowhere"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if !tester.Find(embertest.ByText("Page not found")).Exists() {
		t.Errorf("not-found page not rendered:\n%s", tester.HTML())
	}
	if _, ok := router.Current(); ok {
		t.Error("Current() should report no matched route")
	}
}

func TestShowcase_ConfigMatchesDemos(t *testing.T) {
	cfg, err := showcase.Config(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range showcase.Demos() {
		if _, ok := cfg.Lookup(d.Route); !ok {
			t.Errorf("demo %q is not declared in ember.yaml", d.Route)
		}
	}
}
