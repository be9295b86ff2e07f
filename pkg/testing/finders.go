package testing

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/emberkit/ember/pkg/dom/htmldom"
)

// Finder locates nodes in the mounted tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order),
	// including root itself.
	Evaluate(root *htmldom.Node) []*htmldom.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*htmldom.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *htmldom.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.describe()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *htmldom.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *htmldom.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.describe()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*htmldom.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

type predicateFinder struct {
	fn   func(*htmldom.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *htmldom.Node) []*htmldom.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(*htmldom.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByTag returns a finder that matches elements with the given tag.
func ByTag(tag string) Finder {
	return &predicateFinder{
		fn:   func(n *htmldom.Node) bool { return n.Tag() == tag },
		desc: fmt.Sprintf("ByTag(%q)", tag),
	}
}

// ByText returns a finder that matches leaf elements whose text content is
// exactly text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(n *htmldom.Node) bool {
			return len(n.Children()) == 0 && n.TextContent() == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches leaf elements whose text
// content contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(n *htmldom.Node) bool {
			return len(n.Children()) == 0 && strings.Contains(n.TextContent(), substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByClass returns a finder that matches elements whose class list contains
// name.
func ByClass(name string) Finder {
	return &predicateFinder{
		fn: func(n *htmldom.Node) bool {
			return slices.Contains(strings.Fields(n.ClassName()), name)
		},
		desc: fmt.Sprintf("ByClass(%q)", name),
	}
}

// ByAttr returns a finder that matches elements whose attribute key equals
// value.
func ByAttr(key, value string) Finder {
	return &predicateFinder{
		fn: func(n *htmldom.Node) bool {
			v, ok := n.Attr(key)
			return ok && v == value
		},
		desc: fmt.Sprintf("ByAttr(%q, %q)", key, value),
	}
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *htmldom.Node) []*htmldom.Node {
	var results []*htmldom.Node
	seen := make(map[*html.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range ancestor.Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match.HTMLNode()] {
					seen[match.HTMLNode()] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying matching that
// are descendants of nodes matching of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(root *htmldom.Node, match func(*htmldom.Node) bool) []*htmldom.Node {
	var out []*htmldom.Node
	root.Walk(func(n *htmldom.Node) bool {
		if match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}
