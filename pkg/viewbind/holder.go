// Package viewbind guards access to an externally inflated view binding
// so it can only be observed while the owner's view exists.
package viewbind

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	binderrors "github.com/chinese-developer/Hodgepodge/pkg/errors"
)

// Binding is the contract for values produced by an inflation factory.
type Binding interface {
	// Unbind releases the binding's resources. The holder calls it once,
	// when the owning view goes away or the binding is replaced.
	Unbind()
}

// ContentID names the layout or content an inflation factory should
// produce a binding for.
type ContentID string

// InflateFunc produces the binding for a content identifier. The
// inflation environment (parent view, theme, whatever the platform
// needs) is the closure's business.
type InflateFunc[B Binding] func(content ContentID) (B, error)

// State identifies where a holder is in its owner's view lifecycle.
type State int

const (
	// StateDetached means no view exists; the binding is inaccessible.
	StateDetached State = iota
	// StateAttached means the view exists and the binding is available.
	StateAttached
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateDetached:
		return "detached"
	case StateAttached:
		return "attached"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrNotAttached is the sentinel wrapped by binding accessors called
// outside the attached window.
var ErrNotAttached = errors.New("viewbind: binding not attached")

// Holder guards one binding through its owner's attach/detach cycles.
//
// A holder starts detached. Attach inflates the binding and opens the
// access window; Detach releases it and closes the window. Reading the
// binding outside the window is a caller bug and fails with a diagnostic
// naming the offending holder and the lifecycle call it expected.
//
// All methods are safe for concurrent use. Unbind and the inflation
// factory run without the holder's lock held.
type Holder[B Binding] struct {
	owner    string
	instance string

	mu      sync.Mutex
	state   State
	value   B
	content ContentID
}

// NewHolder creates a detached holder. owner names the owning component
// in diagnostics, e.g. "SettingsDialog".
func NewHolder[B Binding](owner string) *Holder[B] {
	return &Holder[B]{
		owner:    owner,
		instance: uuid.NewString(),
	}
}

// Attach inflates the binding for content and enters StateAttached.
//
// Attaching while already attached replaces the binding: the new value
// is inflated, swapped in, and the previous one released (last attach
// wins, mirroring repeated view-creation callbacks). If the factory
// fails or panics, the holder keeps its previous state and binding, the
// failure is reported to the error handler, and Attach returns it.
func (h *Holder[B]) Attach(factory InflateFunc[B], content ContentID) error {
	if factory == nil {
		err := &binderrors.BindError{
			Op:        "viewbind.Holder.Attach",
			Kind:      binderrors.KindInflate,
			Component: h.describe(),
			Err:       errors.New("nil inflate factory"),
		}
		binderrors.Report(err)
		return err
	}

	value, err := h.inflate(factory, content)
	if err != nil {
		return err
	}

	h.mu.Lock()
	prev := h.value
	hadPrev := h.state == StateAttached
	h.value = value
	h.state = StateAttached
	h.content = content
	h.mu.Unlock()

	if hadPrev {
		prev.Unbind()
	}
	return nil
}

// inflate runs the factory, converting errors and panics into reported
// inflate errors.
func (h *Holder[B]) inflate(factory InflateFunc[B], content ContentID) (value B, err error) {
	defer func() {
		if r := recover(); r != nil {
			ierr := &binderrors.InflateError{
				Owner:      h.describe(),
				Content:    string(content),
				Recovered:  r,
				StackTrace: binderrors.CaptureStack(),
			}
			binderrors.ReportInflateError(ierr)
			err = ierr
		}
	}()

	value, ferr := factory(content)
	if ferr != nil {
		ierr := &binderrors.InflateError{
			Owner:   h.describe(),
			Content: string(content),
			Err:     ferr,
		}
		binderrors.ReportInflateError(ierr)
		var zero B
		return zero, ierr
	}
	return value, nil
}

// Binding returns the bound value.
//
// Outside the attached window it fails with an error wrapping
// [ErrNotAttached]; the message names this holder and the expected
// lifecycle call. That failure is a precondition violation, not a
// condition to retry.
func (h *Holder[B]) Binding() (B, error) {
	return h.binding("viewbind.Holder.Binding")
}

// MustBinding is [Holder.Binding] for callers inside the attached
// window by construction. It panics with the same diagnostic when the
// window is closed.
func (h *Holder[B]) MustBinding() B {
	v, err := h.binding("viewbind.Holder.MustBinding")
	if err != nil {
		panic(err.Error())
	}
	return v
}

func (h *Holder[B]) binding(op string) (B, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != StateAttached {
		var zero B
		return zero, &binderrors.BindError{
			Op:        op,
			Kind:      binderrors.KindLifecycle,
			Component: h.describe(),
			Err:       fmt.Errorf("%w: Attach must run when the owner's view is created, and the binding is only readable until Detach", ErrNotAttached),
		}
	}
	return h.value, nil
}

// Detach releases the binding and returns to StateDetached.
// Detaching an already-detached holder is a no-op.
func (h *Holder[B]) Detach() {
	h.mu.Lock()
	if h.state != StateAttached {
		h.mu.Unlock()
		return
	}
	value := h.value
	var zero B
	h.value = zero
	h.state = StateDetached
	h.mu.Unlock()

	value.Unbind()
}

// Attached reports whether the access window is open.
func (h *Holder[B]) Attached() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == StateAttached
}

// State returns the holder's current lifecycle state.
func (h *Holder[B]) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Content returns the content identifier of the most recent attach.
// It is empty before the first attach.
func (h *Holder[B]) Content() ContentID {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.content
}

// Owner returns the owner label passed to NewHolder.
func (h *Holder[B]) Owner() string {
	return h.owner
}

// InstanceID returns the holder's unique instance identifier.
func (h *Holder[B]) InstanceID() string {
	return h.instance
}

// describe names this holder in diagnostics.
func (h *Holder[B]) describe() string {
	if h.owner == "" {
		return "holder " + h.instance
	}
	return fmt.Sprintf("%s (holder %s)", h.owner, h.instance)
}
