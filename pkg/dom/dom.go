// Package dom defines the host document capabilities Ember renders into.
//
// The core never talks to a browser directly. It only creates nodes, sets
// their attributes and text, appends children, binds event handlers, and
// finally hands a finished tree to the document's mount point. Two hosts ship
// with Ember: [github.com/emberkit/ember/pkg/dom/htmldom], an in-memory
// document used for tests and prerendering, and
// [github.com/emberkit/ember/pkg/dom/jsdom], the browser document reached
// through syscall/js.
package dom

// Document creates nodes and owns the mount point.
type Document interface {
	// CreateElement returns a new, detached element node. The tag is not
	// validated.
	CreateElement(tag string) Node
	// Mount replaces whatever is attached at the mount point with root.
	Mount(root Node) error
}

// Node is an element created by a Document.
type Node interface {
	Tag() string
	SetClassName(name string)
	SetAttribute(key, value string)
	SetTextContent(text string)
	SetHref(href string)
	SetSrc(src string)
	AppendChild(child Node)
	// Bind registers h for events of the given type ("click").
	Bind(event string, h EventHandler)
}

// Event is delivered to an EventHandler.
type Event interface {
	Type() string
	// PreventDefault suppresses the host's default action, such as
	// following an anchor's href.
	PreventDefault()
	DefaultPrevented() bool
}

// EventHandler handles a bound event.
type EventHandler func(Event)

// TitleSetter is implemented by documents whose title can be changed.
type TitleSetter interface {
	SetTitle(title string)
}

// History is implemented by documents backed by a navigable location.
type History interface {
	// Pathname returns the path of the current location.
	Pathname() string
	// PushState records path as a new history entry without reloading.
	PushState(path string)
	// ReplaceState rewrites the current history entry to path.
	ReplaceState(path string)
	// OnPopState registers fn to be called with the new path when the user
	// moves through history (back/forward).
	OnPopState(fn func(path string))
}

// Events used by Ember widgets.
const (
	EventClick = "click"
)
