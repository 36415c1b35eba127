// Package dialog provides a base component for dialog hosts whose view
// binding must stay inside the view-created/view-destroyed window.
package dialog

import (
	"sync"

	"github.com/chinese-developer/Hodgepodge/pkg/observe"
	"github.com/chinese-developer/Hodgepodge/pkg/viewbind"
)

// Host owns a [viewbind.Holder] and mirrors the two lifecycle hooks of a
// dialog surface: ViewCreated opens the binding window, ViewDestroyed
// closes it and runs registered teardowns.
//
// A host is reusable: after ViewDestroyed, a later ViewCreated re-inflates
// the binding for the same content. Teardowns registered with OnTeardown
// belong to one attached window; they run once, in reverse registration
// order, when that window closes.
type Host[B viewbind.Binding] struct {
	holder  *viewbind.Holder[B]
	content viewbind.ContentID
	factory viewbind.InflateFunc[B]
	dismiss observe.Notifier

	mu        sync.Mutex
	teardowns []teardown
	nextID    int
}

// teardown is one registered cleanup. Ids are unique per host, so an
// unregister function from an earlier window cannot cancel a cleanup
// registered in a later one.
type teardown struct {
	id int
	fn func()
}

// NewHost creates a detached host. name labels the host in diagnostics,
// content and factory are handed to the holder on every ViewCreated.
func NewHost[B viewbind.Binding](name string, content viewbind.ContentID, factory viewbind.InflateFunc[B]) *Host[B] {
	return &Host[B]{
		holder:  viewbind.NewHolder[B](name),
		content: content,
		factory: factory,
	}
}

// ViewCreated is the view-creation hook: it inflates the binding and
// opens the access window. Call it when the owning surface's view comes
// into existence. Inflation failures are returned and leave the host in
// its previous state.
func (h *Host[B]) ViewCreated() error {
	return h.holder.Attach(h.factory, h.content)
}

// ViewDestroyed is the view-destruction hook: it runs the registered
// teardowns in reverse registration order, then releases the binding.
// Calling it without a live view is a no-op apart from draining any
// teardowns registered since the last run.
func (h *Host[B]) ViewDestroyed() {
	h.mu.Lock()
	teardowns := h.teardowns
	h.teardowns = nil
	h.mu.Unlock()

	for i := len(teardowns) - 1; i >= 0; i-- {
		if teardowns[i].fn != nil {
			teardowns[i].fn()
		}
	}
	h.holder.Detach()
}

// Binding returns the bound value, or a not-attached error outside the
// window. See [viewbind.Holder.Binding].
func (h *Host[B]) Binding() (B, error) {
	return h.holder.Binding()
}

// MustBinding returns the bound value or panics outside the window.
// See [viewbind.Holder.MustBinding].
func (h *Host[B]) MustBinding() B {
	return h.holder.MustBinding()
}

// Holder exposes the underlying holder, for callers that need its state
// or identity in diagnostics.
func (h *Host[B]) Holder() *viewbind.Holder[B] {
	return h.holder
}

// Content returns the content identifier the host inflates.
func (h *Host[B]) Content() viewbind.ContentID {
	return h.content
}

// Attached reports whether the binding window is open.
func (h *Host[B]) Attached() bool {
	return h.holder.Attached()
}

// OnTeardown registers a cleanup to run on the next ViewDestroyed, after
// which the registration is spent. Returns an unregister function;
// calling it after the teardown ran is a no-op. Wire listener cleanup
// here: register the teardown when the view is created, and the host
// clears the listeners when it goes away.
func (h *Host[B]) OnTeardown(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.teardowns = append(h.teardowns, teardown{id: id, fn: cleanup})
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i := range h.teardowns {
			if h.teardowns[i].id == id {
				h.teardowns[i].fn = nil
				return
			}
		}
	}
}

// OnDismiss registers a callback invoked when the dialog is dismissed.
// Returns an unregister function. Dismiss listeners survive view
// re-creation; remove them explicitly or via OnTeardown.
func (h *Host[B]) OnDismiss(fn func()) func() {
	return h.dismiss.AddListener(fn)
}

// Dismiss notifies the dismiss listeners, then destroys the view.
func (h *Host[B]) Dismiss() {
	h.dismiss.NotifyListeners()
	h.ViewDestroyed()
}
