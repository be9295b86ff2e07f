// Package pages writes the static entry documents of an Ember app: one
// index.html per route, laid out so that any static file server answers
// every route path with a page that boots the app.
//
//	public/index.html
//	public/about/index.html
//
// Each document carries the route's title, icon, and extra head fragments
// from ember.yaml, the app's scripts, and the mount element. With a
// prerender router the route's view is rendered into the mount element.
package pages

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/emberkit/ember/pkg/config"
	"github.com/emberkit/ember/pkg/dom/htmldom"
	"github.com/emberkit/ember/pkg/errors"
	"github.com/emberkit/ember/pkg/navigation"
)

// Options configures Generate.
type Options struct {
	// Out is the output directory. Defaults to the resolved output.
	Out string
	// Lang is the html lang attribute. Defaults to "en".
	Lang string
	// Scripts are script URLs added to every head, in order.
	Scripts []string
	// Prerender, when set, renders each route's view into the mount element.
	// Routes the router does not know keep an empty mount element.
	Prerender *navigation.Router
}

// Page describes one generated document.
type Page struct {
	Route string
	File  string
}

// Generate writes <out>/<route>/index.html for every configured route. When
// no route is configured the prerender router's routes are used, and
// without one a single page for "/" is written.
func Generate(cfg *config.Resolved, opts Options) ([]Page, error) {
	out := opts.Out
	if out == "" {
		out = cfg.Output
	}
	if out == "" {
		out = config.DefaultOutput
	}

	var pages []Page
	for _, route := range routesOf(cfg, opts.Prerender) {
		dir := filepath.Join(out, filepath.FromSlash(strings.TrimPrefix(route.Path, "/")))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return pages, buildError(route.Path, err)
		}

		var buf bytes.Buffer
		if err := Render(&buf, cfg, route, opts); err != nil {
			return pages, err
		}
		file := filepath.Join(dir, "index.html")
		if err := os.WriteFile(file, buf.Bytes(), 0o644); err != nil {
			return pages, buildError(route.Path, err)
		}
		pages = append(pages, Page{Route: route.Path, File: file})
	}
	return pages, nil
}

// Render writes the entry document of one route.
func Render(w io.Writer, cfg *config.Resolved, route config.Route, opts Options) error {
	root, mount := skeleton(cfg, route, opts)

	if r := opts.Prerender; r != nil {
		if _, ok := r.Lookup(route.Path); ok {
			doc, err := htmldom.FromNode(root, mount, htmldom.WithLocation(route.Path))
			if err != nil {
				return buildError(route.Path, err)
			}
			if _, err := navigation.Mount(doc, r); err != nil {
				return buildError(route.Path, fmt.Errorf("prerender: %w", err))
			}
		}
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return buildError(route.Path, err)
	}
	if _, err := io.WriteString(w, gohtml.Format(buf.String())+"\n"); err != nil {
		return buildError(route.Path, err)
	}
	return nil
}

func routesOf(cfg *config.Resolved, r *navigation.Router) []config.Route {
	if len(cfg.Routes) > 0 {
		return cfg.Routes
	}
	if r != nil {
		var routes []config.Route
		for _, rt := range r.Routes() {
			routes = append(routes, config.Route{Path: rt.Path, Title: rt.Title, Icon: rt.Icon, Head: rt.Head})
		}
		return routes
	}
	return []config.Route{{Path: "/"}}
}

// skeleton builds the document tree and returns it with the mount id.
func skeleton(cfg *config.Resolved, route config.Route, opts Options) (*html.Node, string) {
	lang := opts.Lang
	if lang == "" {
		lang = "en"
	}
	mount := cfg.Mount
	if mount == "" {
		mount = config.DefaultMount
	}
	title := route.Title
	if title == "" {
		title = cfg.Title
	}
	if title == "" {
		title = config.DefaultTitle
	}

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	htmlEl := elem(atom.Html, "lang", lang)
	root.AppendChild(htmlEl)

	head := elem(atom.Head)
	htmlEl.AppendChild(head)
	titleEl := elem(atom.Title)
	titleEl.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(titleEl)
	head.AppendChild(elem(atom.Meta, "charset", "utf-8"))
	head.AppendChild(elem(atom.Meta, "name", "viewport", "content", "width=device-width, initial-scale=1, user-scalable=yes"))
	head.AppendChild(elem(atom.Link, "rel", "icon", "href", route.Icon))
	for _, src := range opts.Scripts {
		head.AppendChild(elem(atom.Script, "src", src))
	}
	for _, frag := range route.Head {
		// Fragments are written verbatim.
		head.AppendChild(&html.Node{Type: html.RawNode, Data: frag})
	}

	body := elem(atom.Body)
	htmlEl.AppendChild(body)
	body.AppendChild(elem(atom.Div, "id", mount))
	return root, mount
}

func elem(a atom.Atom, kv ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}

func buildError(path string, err error) error {
	return &errors.Error{
		Op:   "pages.Generate",
		Kind: errors.KindBuild,
		Path: path,
		Err:  err,
	}
}
