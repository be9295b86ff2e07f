package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/emberkit/ember/pkg/config"
	"github.com/emberkit/ember/pkg/pages"
)

func init() {
	RegisterCommand(&Command{
		Name:  "pages",
		Short: "Write the entry documents of every route",
		Long: `Write one index.html per route declared in ember.yaml, so that a
static file server answers every route path with a page that boots the app.

  public/index.html
  public/about/index.html

Each page carries the route's title, icon and head fragments, the given
scripts, and the mount element named by app.mount.

Flags:
  --out DIR        Output directory (default: output from ember.yaml, or public)
  --script URL     Add a script to every page (repeatable)
  --lang LANG      html lang attribute (default: en)
  --watch          Regenerate whenever ember.yaml changes`,
		Usage: "ember pages [--out DIR] [--script URL]... [--lang LANG] [--watch]",
		Run:   runPages,
	})
}

type pagesOptions struct {
	opts  pages.Options
	watch bool
}

func parsePagesArgs(args []string) (pagesOptions, error) {
	var po pagesOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--watch":
			po.watch = true
		case arg == "--out" || arg == "--script" || arg == "--lang":
			if i+1 >= len(args) {
				return po, fmt.Errorf("%s requires a value", arg)
			}
			po.set(arg, args[i+1])
			i++
		case strings.HasPrefix(arg, "--out="), strings.HasPrefix(arg, "--script="), strings.HasPrefix(arg, "--lang="):
			name, value, _ := strings.Cut(arg, "=")
			po.set(name, value)
		default:
			return po, fmt.Errorf("unknown flag %q\n\nUsage: ember pages [--out DIR] [--script URL]... [--lang LANG] [--watch]", arg)
		}
	}
	return po, nil
}

func (po *pagesOptions) set(name, value string) {
	switch name {
	case "--out":
		po.opts.Out = value
	case "--script":
		po.opts.Scripts = append(po.opts.Scripts, value)
	case "--lang":
		po.opts.Lang = value
	}
}

func runPages(args []string) error {
	po, err := parsePagesArgs(args)
	if err != nil {
		return err
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	if err := generatePages(root, po.opts); err != nil {
		return err
	}
	if !po.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := watchConfig(root, func() {
		if err := generatePages(root, po.opts); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	fmt.Fprintf(stdout, "Watching %s (Ctrl+C to stop)...\n", filepath.Join(root, config.FileName))
	<-ctx.Done()
	fmt.Fprintln(stdout, "\nWatch stopped.")
	return nil
}

func generatePages(root string, opts pages.Options) error {
	cfg, err := config.Resolve(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	written, err := pages.Generate(cfg, opts)
	if err != nil {
		return err
	}
	for _, p := range written {
		rel, err := filepath.Rel(root, p.File)
		if err != nil || strings.HasPrefix(rel, "..") {
			rel = p.File
		}
		fmt.Fprintf(stdout, "  %-14s -> %s\n", p.Route, rel)
	}
	fmt.Fprintf(stdout, "Wrote %d page(s).\n", len(written))
	return nil
}
