//go:build js && wasm

package main

import (
	"fmt"

	"github.com/emberkit/ember/pkg/dom/jsdom"
	"github.com/emberkit/ember/pkg/errors"
	"github.com/emberkit/ember/showcase"
)

func main() {
	errors.SetHandler(jsdom.ConsoleHandler{})

	cfg, err := showcase.Config(".")
	if err != nil {
		panic(err)
	}
	doc, err := jsdom.New(cfg.Mount)
	if err != nil {
		panic(fmt.Sprintf("showcase: %v", err))
	}
	// Render errors are already on the console; keep serving events.
	if rt, err := showcase.New().Run(doc); rt == nil {
		panic(err)
	}
	select {}
}
