package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/emberkit/ember/pkg/pages"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevOut, prevErr := stdout, stderr
	stdout, stderr = &out, &errOut
	t.Cleanup(func() { stdout, stderr = prevOut, prevErr })
	return &out, &errOut
}

const testConfig = `app:
  name: demo
  title: Demo
routes:
  /:
    title: Home
    icon: /favicon.ico
  /about: {}
`

func newProject(t *testing.T, cfg string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n\ngo 1.24\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg != "" {
		if err := os.WriteFile(filepath.Join(dir, "ember.yaml"), []byte(cfg), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Chdir(dir)
	return dir
}

func TestRun_NoArgsPrintsHelp(t *testing.T) {
	out, _ := captureOutput(t)
	if err := run(nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"pages", "routes", "version"} {
		if !strings.Contains(out.String(), "  "+name) {
			t.Errorf("help does not list %q:\n%s", name, out.String())
		}
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	_, errOut := captureOutput(t)
	if err := run([]string{"deploy"}); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
	if !strings.Contains(errOut.String(), `unknown command "deploy"`) {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRun_Version(t *testing.T) {
	for _, arg := range []string{"version", "-v", "--version"} {
		out, _ := captureOutput(t)
		if err := run([]string{arg}); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out.String(), "Ember CLI version "+Version) {
			t.Errorf("%s: output = %q", arg, out.String())
		}
	}
}

func TestRun_CommandHelp(t *testing.T) {
	out, _ := captureOutput(t)
	if err := run([]string{"pages", "--help"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "ember pages [--out DIR]") {
		t.Errorf("help output = %q", out.String())
	}
}

func TestParsePagesArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want pagesOptions
	}{
		{"none", nil, pagesOptions{}},
		{"out", []string{"--out", "dist"}, pagesOptions{opts: pages.Options{Out: "dist"}}},
		{"out equals", []string{"--out=dist"}, pagesOptions{opts: pages.Options{Out: "dist"}}},
		{"scripts", []string{"--script", "/a.js", "--script=/b.js"}, pagesOptions{opts: pages.Options{Scripts: []string{"/a.js", "/b.js"}}}},
		{"lang and watch", []string{"--lang", "fr", "--watch"}, pagesOptions{opts: pages.Options{Lang: "fr"}, watch: true}},
	}
	for _, tt := range tests {
		got, err := parsePagesArgs(tt.args)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(pagesOptions{})); diff != "" {
			t.Errorf("%s: options mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestParsePagesArgs_Errors(t *testing.T) {
	for _, args := range [][]string{{"--out"}, {"--minify"}, {"extra"}} {
		if _, err := parsePagesArgs(args); err == nil {
			t.Errorf("parsePagesArgs(%q) should fail", args)
		}
	}
}

func TestPages_WritesEveryRoute(t *testing.T) {
	dir := newProject(t, testConfig)
	out, _ := captureOutput(t)

	if err := run([]string{"pages", "--out", "dist", "--script", "/main.js"}); err != nil {
		t.Fatalf("pages: %v", err)
	}

	for _, rel := range []string{"dist/index.html", "dist/about/index.html"} {
		data, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			t.Fatalf("missing %s: %v", rel, err)
		}
		if !strings.Contains(string(data), `src="/main.js"`) {
			t.Errorf("%s has no script tag:\n%s", rel, data)
		}
	}
	if !strings.Contains(out.String(), "Wrote 2 page(s).") {
		t.Errorf("output = %q", out.String())
	}
}

func TestPages_DefaultOutput(t *testing.T) {
	dir := newProject(t, "")
	captureOutput(t)

	if err := run([]string{"pages"}); err != nil {
		t.Fatalf("pages: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "public", "index.html")); err != nil {
		t.Errorf("expected public/index.html: %v", err)
	}
}

func TestPages_InvalidConfig(t *testing.T) {
	newProject(t, "routes:\n  about: {}\n")
	captureOutput(t)

	err := run([]string{"pages"})
	if err == nil || !strings.Contains(err.Error(), "must start with '/'") {
		t.Errorf("err = %v, want a route path error", err)
	}
}

func TestRoutes_List(t *testing.T) {
	newProject(t, testConfig)
	out, _ := captureOutput(t)

	if err := run([]string{"routes"}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"Project: demo (example.com/demo)",
		"Mount:   #app",
		"",
		"Routes:",
		"  /              Home [/favicon.ico]",
		"  /about         Demo",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("routes output mismatch (-want +got):\n%s", diff)
	}
}

func TestRoutes_None(t *testing.T) {
	newProject(t, "")
	out, _ := captureOutput(t)

	if err := run([]string{"routes"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No routes in ember.yaml") {
		t.Errorf("output = %q", out.String())
	}
}

func TestWatchConfig_Debounced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ember.yaml")

	changed := make(chan struct{}, 10)
	w, err := watchConfig(dir, func() { changed <- struct{}{} })
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Unrelated files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("app:\n  title: T\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
	select {
	case <-changed:
		t.Error("burst of writes should be reported once")
	case <-time.After(4 * debounceDuration):
	}
}
