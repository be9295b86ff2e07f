package testing

import (
	"fmt"

	"github.com/emberkit/ember/pkg/dom/htmldom"
)

// Tap dispatches a click at the first node matched by finder and returns
// the dispatched event. Handlers run synchronously, so any re-render they
// trigger has finished when Tap returns.
func (t *WidgetTester) Tap(finder Finder) (*htmldom.Event, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return nil, fmt.Errorf("Tap: finder matched no nodes: %s", finder.Description())
	}
	return t.doc.Click(result.First()), nil
}
