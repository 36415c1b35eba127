// Package errors provides structured error handling for the Hodgepodge library.
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
	// KindLifecycle indicates an access outside the owner's view lifecycle.
	KindLifecycle
	// KindInflate indicates a view binding factory failure.
	KindInflate
	// KindNotify indicates a property notification failure.
	KindNotify
	// KindDiff indicates a list diff or display update failure.
	KindDiff
	// KindConfig indicates a configuration loading error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLifecycle:
		return "lifecycle"
	case KindInflate:
		return "inflate"
	case KindNotify:
		return "notify"
	case KindDiff:
		return "diff"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BindError represents a structured error in the Hodgepodge library.
type BindError struct {
	// Op is the operation that failed (e.g., "viewbind.Holder.Binding").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Component identifies the owning component instance, if applicable.
	Component string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BindError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "observe.NotifyChanged").
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

// InflateError represents a failure to produce a view binding.
type InflateError struct {
	// Owner is the component that requested the binding.
	Owner string
	// Content is the content identifier passed to the factory.
	Content string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *InflateError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic inflating %q for %s: %v", e.Content, e.Owner, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error inflating %q for %s: %v", e.Content, e.Owner, e.Err)
	}
	return fmt.Sprintf("unknown error inflating %q for %s", e.Content, e.Owner)
}

func (e *InflateError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the Hodgepodge library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BindError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleInflateError is called when a view binding factory fails.
	HandleInflateError(err *InflateError)
}
