package testing

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/yosssi/gohtml"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is the indented HTML of a mounted tree.
type Snapshot struct {
	HTML string
}

// CaptureSnapshot captures the tree currently mounted by the tester.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	return SnapshotOf(t.HTML())
}

// SnapshotOf indents raw HTML into a snapshot.
func SnapshotOf(raw string) *Snapshot {
	if raw == "" {
		return &Snapshot{}
	}
	return &Snapshot{HTML: strings.TrimSpace(gohtml.Format(raw)) + "\n"}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When EMBER_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("EMBER_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: EMBER_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(&Snapshot{HTML: string(data)}); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: EMBER_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s.HTML), 0o644)
}

// Diff returns a line diff between other (expected) and this snapshot
// (actual). Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	if s.HTML == other.HTML {
		return ""
	}
	return cmp.Diff(strings.Split(other.HTML, "\n"), strings.Split(s.HTML, "\n"))
}
