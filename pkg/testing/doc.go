// Package testing provides a widget testing framework for Ember.
//
// Widgets render into an in-memory [htmldom.Document], so tests run with a
// plain go test and no browser.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := embertest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(MyWidget{})
//
//	    // Find nodes
//	    button := tester.Find(embertest.ByText("Submit")).First()
//
//	    // Simulate clicks
//	    tester.Tap(embertest.ByText("Submit"))
//
//	    // Assert state
//	    if !tester.Find(embertest.ByText("Submitted")).Exists() {
//	        t.Error("expected 'Submitted' text")
//	    }
//	}
//
// Reported framework errors are captured by the tester instead of being
// logged; inspect them with Errors and Panics.
//
// # Snapshot Testing
//
// Capture and compare the mounted HTML:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_widget.snapshot.html")
//
// Update snapshots with:
//
//	EMBER_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import embertest "github.com/emberkit/ember/pkg/testing"
package testing
