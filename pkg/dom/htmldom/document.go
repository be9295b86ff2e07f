// Package htmldom is an in-memory host document built on golang.org/x/net/html.
//
// It implements [dom.Document] together with the optional [dom.TitleSetter]
// and [dom.History] capabilities, so an Ember app can run outside a browser:
// in tests, where clicks are simulated with [Document.Click], and when
// prerendering entry documents.
package htmldom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/emberkit/ember/pkg/dom"
)

// DefaultMountID is the id of the mount element created by New.
const DefaultMountID = "app"

// ErrMountNotFound is returned when a parsed document has no element with the
// requested mount id.
var ErrMountNotFound = errors.New("mount element not found")

var (
	_ dom.Document    = (*Document)(nil)
	_ dom.TitleSetter = (*Document)(nil)
	_ dom.History     = (*Document)(nil)
)

// Document is a headless host document.
type Document struct {
	root  *html.Node
	head  *html.Node
	mount *html.Node

	mu        sync.Mutex
	listeners map[*html.Node]map[string][]dom.EventHandler
	mounts    int

	entries     []string
	current     int
	popHandlers []func(string)
}

// Option configures a Document created by New.
type Option func(*options)

type options struct {
	mountID  string
	location string
}

// WithMountID sets the id of the mount element. Defaults to "app".
func WithMountID(id string) Option {
	return func(o *options) { o.mountID = id }
}

// WithLocation sets the initial location path. Defaults to "/".
func WithLocation(path string) Option {
	return func(o *options) { o.location = path }
}

// New creates an empty document:
//
//	<html><head><title></title></head><body><div id="app"></div></body></html>
func New(opts ...Option) *Document {
	o := resolveOptions(opts)

	root := &html.Node{Type: html.DocumentNode}
	htmlEl := element(atom.Html, "html")
	head := element(atom.Head, "head")
	body := element(atom.Body, "body")
	mount := element(atom.Div, "div")
	mount.Attr = []html.Attribute{{Key: "id", Val: o.mountID}}

	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root.AppendChild(htmlEl)
	htmlEl.AppendChild(head)
	head.AppendChild(element(atom.Title, "title"))
	htmlEl.AppendChild(body)
	body.AppendChild(mount)

	return newDocument(root, head, mount, o.location)
}

// Parse reads an HTML document and uses the element whose id is mountID as
// the mount point.
func Parse(r io.Reader, mountID string, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmldom: parse: %w", err)
	}
	return FromNode(root, mountID, opts...)
}

// FromNode wraps an existing *html.Node document tree. The tree is used in
// place, so mounting writes into it.
func FromNode(root *html.Node, mountID string, opts ...Option) (*Document, error) {
	o := resolveOptions(opts)
	mount := findByID(root, mountID)
	if mount == nil {
		return nil, fmt.Errorf("htmldom: %w: #%s", ErrMountNotFound, mountID)
	}
	head := findByAtom(root, atom.Head)
	return newDocument(root, head, mount, o.location), nil
}

func resolveOptions(opts []Option) options {
	o := options{mountID: DefaultMountID, location: "/"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.location == "" {
		o.location = "/"
	}
	return o
}

func newDocument(root, head, mount *html.Node, location string) *Document {
	return &Document{
		root:      root,
		head:      head,
		mount:     mount,
		listeners: make(map[*html.Node]map[string][]dom.EventHandler),
		entries:   []string{location},
	}
}

func element(a atom.Atom, tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: tag}
}

// CreateElement returns a new detached element.
func (d *Document) CreateElement(tag string) dom.Node {
	return d.wrap(element(atom.Lookup([]byte(tag)), tag))
}

// Mount replaces the contents of the mount element with root. Listeners of
// nodes outside the new tree are dropped: the replaced tree and any tree
// that was built but never mounted become unreachable.
func (d *Document) Mount(root dom.Node) error {
	n, err := d.unwrap(root)
	if err != nil {
		return err
	}
	for c := d.mount.FirstChild; c != nil; {
		next := c.NextSibling
		d.mount.RemoveChild(c)
		c = next
	}
	detach(n)
	d.mount.AppendChild(n)

	live := make(map[*html.Node]bool)
	walk(n, func(c *html.Node) bool {
		live[c] = true
		return true
	})

	d.mu.Lock()
	for node := range d.listeners {
		if !live[node] {
			delete(d.listeners, node)
		}
	}
	d.mounts++
	d.mu.Unlock()
	return nil
}

// BoundNodes reports how many nodes have listeners.
func (d *Document) BoundNodes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

// Mounts reports how many times Mount succeeded.
func (d *Document) Mounts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mounts
}

// MountPoint returns the mount element.
func (d *Document) MountPoint() *Node {
	return d.wrap(d.mount)
}

// Mounted returns the tree currently attached at the mount point, or nil.
func (d *Document) Mounted() *Node {
	for c := d.mount.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return d.wrap(c)
		}
	}
	return nil
}

// Title returns the text of the <title> element.
func (d *Document) Title() string {
	if t := d.titleNode(false); t != nil {
		return textOf(t)
	}
	return ""
}

// SetTitle sets the text of the <title> element, creating it if needed.
func (d *Document) SetTitle(title string) {
	t := d.titleNode(true)
	if t == nil {
		return
	}
	setText(t, title)
}

func (d *Document) titleNode(create bool) *html.Node {
	if d.head == nil {
		return nil
	}
	if t := findByAtom(d.head, atom.Title); t != nil {
		return t
	}
	if !create {
		return nil
	}
	t := element(atom.Title, "title")
	d.head.AppendChild(t)
	return t
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// RenderPretty writes the whole document as indented HTML.
func (d *Document) RenderPretty(w io.Writer) error {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return err
	}
	_, err := io.WriteString(w, gohtml.Format(buf.String()))
	return err
}

// MountHTML returns the HTML of the tree currently attached at the mount point.
func (d *Document) MountHTML() string {
	var sb strings.Builder
	for c := d.mount.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&sb, c)
	}
	return sb.String()
}

// HTMLNode returns the underlying document node.
func (d *Document) HTMLNode() *html.Node {
	return d.root
}

func (d *Document) wrap(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{n: n, doc: d}
}

func (d *Document) unwrap(n dom.Node) (*html.Node, error) {
	node, ok := n.(*Node)
	if !ok || node == nil {
		return nil, fmt.Errorf("htmldom: foreign node %T", n)
	}
	if node.doc != d {
		return nil, errors.New("htmldom: node belongs to another document")
	}
	return node.n, nil
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func findByID(n *html.Node, id string) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if c.Type == html.ElementNode {
			if v, ok := attr(c, "id"); ok && v == id {
				found = c
				return false
			}
		}
		return true
	})
	return found
}

func findByAtom(n *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if c.Type == html.ElementNode && c.DataAtom == a {
			found = c
			return false
		}
		return true
	})
	return found
}

// walk visits n and its descendants in document order until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
