//go:build js && wasm

package jsdom

import (
	"errors"
	"fmt"
	"strings"
	"syscall/js"

	"github.com/emberkit/ember/pkg/dom"
)

var (
	_ dom.Document    = (*Document)(nil)
	_ dom.TitleSetter = (*Document)(nil)
	_ dom.History     = (*Document)(nil)
)

// Document wraps window.document and the element used as mount point.
type Document struct {
	doc   js.Value
	mount js.Value

	callbacks generations[js.Func]
	flush     js.Func
	pop       []js.Func
}

// New looks up the mount element by id.
func New(mountID string) (*Document, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, errors.New("jsdom: no global document")
	}
	mount := doc.Call("getElementById", mountID)
	if !mount.Truthy() {
		return nil, fmt.Errorf("jsdom: mount element #%s not found", mountID)
	}
	d := &Document{doc: doc, mount: mount}
	d.flush = js.FuncOf(func(js.Value, []js.Value) any {
		d.callbacks.flush()
		return nil
	})
	d.callbacks.schedule = func() {
		js.Global().Call("setTimeout", d.flush, 0)
	}
	return d, nil
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) dom.Node {
	return &Node{v: d.doc.Call("createElement", tag), doc: d}
}

// Mount replaces the children of the mount element with root.
func (d *Document) Mount(root dom.Node) error {
	n, ok := root.(*Node)
	if !ok || n == nil {
		return fmt.Errorf("jsdom: foreign node %T", root)
	}
	d.mount.Call("replaceChildren", n.v)

	d.callbacks.mounted()
	return nil
}

// SetTitle sets document.title.
func (d *Document) SetTitle(title string) {
	d.doc.Set("title", title)
}

// Pathname returns location.pathname.
func (d *Document) Pathname() string {
	return js.Global().Get("location").Get("pathname").String()
}

// PushState calls history.pushState with path.
func (d *Document) PushState(path string) {
	js.Global().Get("history").Call("pushState", nil, "", path)
}

// ReplaceState calls history.replaceState with path.
func (d *Document) ReplaceState(path string) {
	js.Global().Get("history").Call("replaceState", nil, "", path)
}

// OnPopState registers fn as a popstate listener on window.
func (d *Document) OnPopState(fn func(path string)) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(d.Pathname())
		return nil
	})
	d.pop = append(d.pop, cb)
	js.Global().Call("addEventListener", "popstate", cb)
}

// Release removes popstate listeners and frees every callback.
func (d *Document) Release() {
	for _, cb := range d.pop {
		js.Global().Call("removeEventListener", "popstate", cb)
		cb.Release()
	}
	d.pop = nil
	d.callbacks.releaseAll()
	// A scheduled flush still needs its function.
	if !d.callbacks.scheduled {
		d.flush.Release()
	}
}

// Node wraps a DOM element.
type Node struct {
	v   js.Value
	doc *Document
}

func (n *Node) Tag() string {
	return strings.ToLower(n.v.Get("tagName").String())
}

func (n *Node) SetClassName(name string)       { n.v.Set("className", name) }
func (n *Node) SetAttribute(key, value string) { n.v.Call("setAttribute", key, value) }
func (n *Node) SetTextContent(text string)     { n.v.Set("textContent", text) }
func (n *Node) SetHref(href string)            { n.v.Set("href", href) }
func (n *Node) SetSrc(src string)              { n.v.Set("src", src) }

func (n *Node) AppendChild(child dom.Node) {
	c, ok := child.(*Node)
	if !ok || c == nil {
		panic(fmt.Sprintf("jsdom: foreign node %T", child))
	}
	n.v.Call("appendChild", c.v)
}

// Bind adds an event listener. The callback lives until the tree it belongs
// to is replaced and no event is being dispatched.
func (n *Node) Bind(event string, h dom.EventHandler) {
	if h == nil {
		return
	}
	d := n.doc
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		var evt js.Value
		if len(args) > 0 {
			evt = args[0]
		}
		d.callbacks.enter()
		defer d.callbacks.exit()
		h(&Event{v: evt})
		return nil
	})
	d.callbacks.bind(cb)
	n.v.Call("addEventListener", event, cb)
}

// Event wraps a DOM event.
type Event struct {
	v js.Value
}

func (e *Event) Type() string {
	if !e.v.Truthy() {
		return ""
	}
	return e.v.Get("type").String()
}

func (e *Event) PreventDefault() {
	if e.v.Truthy() {
		e.v.Call("preventDefault")
	}
}

func (e *Event) DefaultPrevented() bool {
	return e.v.Truthy() && e.v.Get("defaultPrevented").Bool()
}
