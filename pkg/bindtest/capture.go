package bindtest

import (
	"sync"
	"testing"

	"github.com/chinese-developer/Hodgepodge/pkg/errors"
)

// ErrorCapture is an [errors.ErrorHandler] that records every report
// instead of logging it.
type ErrorCapture struct {
	mu       sync.Mutex
	errs     []*errors.BindError
	panics   []*errors.PanicError
	inflates []*errors.InflateError
}

// CaptureErrors installs a recording handler as the global error handler
// and restores the previous one via t.Cleanup. Tests that exercise
// reporting paths should call it first, so failures stay out of stderr
// and can be asserted on.
func CaptureErrors(t testing.TB) *ErrorCapture {
	t.Helper()
	c := &ErrorCapture{}
	prev := errors.DefaultHandler
	errors.SetHandler(c)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return c
}

func (c *ErrorCapture) HandleError(err *errors.BindError) {
	c.mu.Lock()
	c.errs = append(c.errs, err)
	c.mu.Unlock()
}

func (c *ErrorCapture) HandlePanic(err *errors.PanicError) {
	c.mu.Lock()
	c.panics = append(c.panics, err)
	c.mu.Unlock()
}

func (c *ErrorCapture) HandleInflateError(err *errors.InflateError) {
	c.mu.Lock()
	c.inflates = append(c.inflates, err)
	c.mu.Unlock()
}

// Errors returns the recorded BindError reports.
func (c *ErrorCapture) Errors() []*errors.BindError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*errors.BindError(nil), c.errs...)
}

// Panics returns the recorded panic reports.
func (c *ErrorCapture) Panics() []*errors.PanicError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*errors.PanicError(nil), c.panics...)
}

// InflateErrors returns the recorded inflate-error reports.
func (c *ErrorCapture) InflateErrors() []*errors.InflateError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*errors.InflateError(nil), c.inflates...)
}

// Total returns the number of reports of any kind.
func (c *ErrorCapture) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errs) + len(c.panics) + len(c.inflates)
}
