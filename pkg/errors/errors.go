// Package errors provides structured error handling for the Ember framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConstruct indicates a widget was built with a missing or invalid field.
	KindConstruct
	// KindRoute indicates a navigation failure, such as an unregistered path.
	KindRoute
	// KindRender indicates a failure while turning widgets into nodes.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates a configuration loading or validation error.
	KindConfig
	// KindBuild indicates a failure writing static entry documents.
	KindBuild
)

func (k ErrorKind) String() string {
	switch k {
	case KindConstruct:
		return "construct"
	case KindRoute:
		return "route"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	case KindBuild:
		return "build"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Ember framework.
type Error struct {
	// Op is the operation that failed (e.g., "navigation.Push").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Path is the route path involved, if any.
	Path string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Runtime.Update").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrorHandler receives errors reported by the Ember framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
