package core

import (
	"sync"
)

// ErrorWidgetBuilder creates a fallback widget when a subtree fails to
// render. It is consulted by error boundaries that have no fallback of their
// own.
type ErrorWidgetBuilder func(err error) Widget

var (
	errorWidgetBuilder ErrorWidgetBuilder
	errorBuilderMu     sync.RWMutex
)

// SetErrorWidgetBuilder configures the global error widget builder.
// Pass nil to restore the default, which lets the widgets package supply
// its own fallback.
func SetErrorWidgetBuilder(builder ErrorWidgetBuilder) {
	errorBuilderMu.Lock()
	defer errorBuilderMu.Unlock()
	errorWidgetBuilder = builder
}

// GetErrorWidgetBuilder returns the current error widget builder, or nil.
func GetErrorWidgetBuilder() ErrorWidgetBuilder {
	errorBuilderMu.RLock()
	defer errorBuilderMu.RUnlock()
	return errorWidgetBuilder
}
