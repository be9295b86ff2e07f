package htmldom

import (
	"golang.org/x/net/html"

	"github.com/emberkit/ember/pkg/dom"
)

var _ dom.Event = (*Event)(nil)

// Event is a simulated event.
type Event struct {
	typ       string
	target    *Node
	prevented bool
}

// Type returns the event type.
func (e *Event) Type() string { return e.typ }

// Target returns the node the event was dispatched on.
func (e *Event) Target() *Node { return e.target }

// PreventDefault marks the default action as suppressed.
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// Dispatch fires an event of type typ at target. Handlers bound on target
// run first, then the event bubbles through each ancestor. The path and its
// handlers are fixed before the first handler runs, so a handler that
// re-renders the document does not cut bubbling short. Handlers run without
// the document lock held.
func (d *Document) Dispatch(target *Node, typ string) *Event {
	evt := &Event{typ: typ, target: target}
	if target == nil {
		return evt
	}
	var path [][]dom.EventHandler
	for n := target.n; n != nil; n = n.Parent {
		if hs := d.handlers(n, typ); len(hs) > 0 {
			path = append(path, hs)
		}
	}
	for _, hs := range path {
		for _, h := range hs {
			h(evt)
		}
	}
	return evt
}

// Click dispatches a click event at target.
func (d *Document) Click(target *Node) *Event {
	return d.Dispatch(target, dom.EventClick)
}

// ListenerCount returns the number of handlers bound on n for typ.
func (d *Document) ListenerCount(n *Node, typ string) int {
	return len(d.handlers(n.n, typ))
}

func (d *Document) handlers(n *html.Node, typ string) []dom.EventHandler {
	d.mu.Lock()
	defer d.mu.Unlock()
	hs := d.listeners[n][typ]
	if len(hs) == 0 {
		return nil
	}
	out := make([]dom.EventHandler, len(hs))
	copy(out, hs)
	return out
}
