//go:build !(js && wasm)

// Command showcase prerenders the Ember showcase into static entry pages.
// Built for GOOS=js GOARCH=wasm it runs the showcase in the browser instead.
//
//	go run ./cmd/showcase [--out DIR]
//	GOOS=js GOARCH=wasm go build -o public/main.wasm ./cmd/showcase
package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emberkit/ember/pkg/pages"
	"github.com/emberkit/ember/showcase"
)

// scripts boot main.wasm; wasm_exec.js ships with the Go distribution.
var scripts = []string{"/wasm_exec.js", "/boot.js"}

//go:embed boot.js
var bootJS []byte

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var out string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out":
			if i+1 >= len(args) {
				return fmt.Errorf("--out requires a directory path")
			}
			out = args[i+1]
			i++
		default:
			return fmt.Errorf("unknown argument %q\n\nUsage: showcase [--out DIR]", args[i])
		}
	}

	cfg, err := showcase.Config(".")
	if err != nil {
		return err
	}
	router, err := showcase.New().Router()
	if err != nil {
		return err
	}
	written, err := pages.Generate(cfg, pages.Options{Out: out, Scripts: scripts, Prerender: router})
	if err != nil {
		return err
	}
	for _, p := range written {
		fmt.Printf("  %-14s -> %s\n", p.Route, p.File)
	}
	if out == "" {
		out = cfg.Output
	}
	return os.WriteFile(filepath.Join(out, "boot.js"), bootJS, 0o644)
}
