package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emberkit/ember/pkg/widgets"
)

func TestCaptureSnapshot_Empty(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	if snap := tester.CaptureSnapshot(); snap.HTML != "" {
		t.Errorf("expected empty snapshot, got %q", snap.HTML)
	}
}

func TestSnapshot_Diff(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	_ = tester.PumpWidget(widgets.ContainerOf(widgets.TextOf("a")))
	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()
	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}

	_ = tester.PumpWidget(widgets.ContainerOf(widgets.TextOf("b")))
	c := tester.CaptureSnapshot()
	if diff := c.Diff(a); diff == "" {
		t.Error("expected a diff after changing the text")
	}
}

type fakeT struct {
	errors []string
	fatals []string
}

func (f *fakeT) Helper() {}
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, format)
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, format)
}
func (f *fakeT) Name() string { return "TestFake" }

func TestSnapshot_MatchesFile(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	_ = tester.PumpWidget(widgets.ContainerOf(widgets.TextOf("hello")))
	snap := tester.CaptureSnapshot()
	path := filepath.Join(t.TempDir(), "snap", "hello.snapshot.html")

	missing := &fakeT{}
	snap.MatchesFile(missing, path)
	if len(missing.fatals) != 1 {
		t.Errorf("expected a fatal for a missing file, got %v", missing.fatals)
	}

	t.Setenv("EMBER_UPDATE_SNAPSHOTS", "1")
	snap.MatchesFile(t, path)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("snapshot content = %q", data)
	}

	t.Setenv("EMBER_UPDATE_SNAPSHOTS", "")
	ok := &fakeT{}
	snap.MatchesFile(ok, path)
	if len(ok.errors) != 0 || len(ok.fatals) != 0 {
		t.Errorf("expected match, got errors=%v fatals=%v", ok.errors, ok.fatals)
	}

	other := SnapshotOf("<p>changed</p>")
	bad := &fakeT{}
	other.MatchesFile(bad, path)
	if len(bad.errors) != 1 {
		t.Errorf("expected a mismatch error, got %v", bad.errors)
	}
}
