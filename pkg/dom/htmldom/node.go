package htmldom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/emberkit/ember/pkg/dom"
)

var _ dom.Node = (*Node)(nil)

// Node is an element of a Document.
type Node struct {
	n   *html.Node
	doc *Document
}

// Tag returns the element name.
func (n *Node) Tag() string {
	return n.n.Data
}

// SetClassName sets the class attribute.
func (n *Node) SetClassName(name string) {
	n.SetAttribute("class", name)
}

// SetAttribute sets key to value, replacing an existing value.
func (n *Node) SetAttribute(key, value string) {
	for i := range n.n.Attr {
		if n.n.Attr[i].Namespace == "" && n.n.Attr[i].Key == key {
			n.n.Attr[i].Val = value
			return
		}
	}
	n.n.Attr = append(n.n.Attr, html.Attribute{Key: key, Val: value})
}

// SetTextContent replaces all children with a single text node.
func (n *Node) SetTextContent(text string) {
	setText(n.n, text)
}

// SetHref sets the href attribute.
func (n *Node) SetHref(href string) {
	n.SetAttribute("href", href)
}

// SetSrc sets the src attribute.
func (n *Node) SetSrc(src string) {
	n.SetAttribute("src", src)
}

// AppendChild appends child, detaching it from any previous parent.
// It panics if child was created by another document.
func (n *Node) AppendChild(child dom.Node) {
	c, err := n.doc.unwrap(child)
	if err != nil {
		panic(err)
	}
	detach(c)
	n.n.AppendChild(c)
}

// Bind registers h for events of the given type.
func (n *Node) Bind(event string, h dom.EventHandler) {
	if h == nil {
		return
	}
	d := n.doc
	d.mu.Lock()
	defer d.mu.Unlock()
	byType := d.listeners[n.n]
	if byType == nil {
		byType = make(map[string][]dom.EventHandler)
		d.listeners[n.n] = byType
	}
	byType[event] = append(byType[event], h)
}

// Attr returns the value of attribute key.
func (n *Node) Attr(key string) (string, bool) {
	return attr(n.n, key)
}

// Attrs returns the element's attributes as a map.
func (n *Node) Attrs() map[string]string {
	out := make(map[string]string, len(n.n.Attr))
	for _, a := range n.n.Attr {
		out[a.Key] = a.Val
	}
	return out
}

// ClassName returns the class attribute.
func (n *Node) ClassName() string {
	v, _ := n.Attr("class")
	return v
}

// TextContent returns the concatenated text of the node and its descendants.
func (n *Node) TextContent() string {
	return textOf(n.n)
}

// Children returns the element children in order.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, n.doc.wrap(c))
		}
	}
	return out
}

// Parent returns the parent element, or nil.
func (n *Node) Parent() *Node {
	if p := n.n.Parent; p != nil && p.Type == html.ElementNode {
		return n.doc.wrap(p)
	}
	return nil
}

// Same reports whether n and other wrap the same element.
func (n *Node) Same(other *Node) bool {
	return other != nil && n.n == other.n
}

// Walk visits n and its element descendants in document order until fn
// returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	walk(n.n, func(c *html.Node) bool {
		if c.Type != html.ElementNode {
			return true
		}
		return fn(n.doc.wrap(c))
	})
}

// HTML renders the node and its descendants.
func (n *Node) HTML() string {
	var sb strings.Builder
	_ = html.Render(&sb, n.n)
	return sb.String()
}

// HTMLNode returns the underlying *html.Node.
func (n *Node) HTMLNode() *html.Node {
	return n.n
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}
