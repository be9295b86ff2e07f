//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/emberkit/ember/pkg/errors"
)

// ConsoleHandler is an errors.ErrorHandler that writes to the browser console.
type ConsoleHandler struct {
	// Verbose adds stack traces.
	Verbose bool
}

var _ errors.ErrorHandler = ConsoleHandler{}

func (h ConsoleHandler) HandleError(err *errors.Error) {
	if err == nil {
		return
	}
	console := js.Global().Get("console")
	console.Call("error", "[ember error]", err.Error())
	if h.Verbose && err.StackTrace != "" {
		console.Call("error", err.StackTrace)
	}
}

func (h ConsoleHandler) HandlePanic(err *errors.PanicError) {
	if err == nil {
		return
	}
	console := js.Global().Get("console")
	console.Call("error", "[ember panic]", err.Error())
	if h.Verbose && err.StackTrace != "" {
		console.Call("error", err.StackTrace)
	}
}
