package observe

import (
	"sync"
	"sync/atomic"
)

// PropertyCallback receives a property-change notification.
//
// source is the object that changed (the notifier's source), property is the
// key of the changed property or [PropertyAll], and payload carries optional
// extra data supplied by the notifier (nil for plain notifications).
type PropertyCallback func(source any, property Property, payload any)

// Callback represents an active callback registration.
type Callback struct {
	notifier *PropertyNotifier
	fn       PropertyCallback
	removed  atomic.Bool
}

// Remove unregisters this callback. Removing an already-removed
// registration is a no-op.
func (c *Callback) Remove() {
	if c.removed.CompareAndSwap(false, true) {
		c.notifier.removeCallback(c)
	}
}

// IsRemoved returns true if this registration has been removed.
func (c *Callback) IsRemoved() bool {
	return c.removed.Load()
}

// PropertyNotifier maintains a registry of property-change callbacks.
//
// The zero value is ready to use; the registry itself is allocated on the
// first AddCallback. All methods are safe for concurrent use. Callbacks run
// synchronously on the notifying goroutine with the registry lock released,
// so a callback may itself add or remove callbacks: additions take effect
// for later notifications, while a removed registration is never invoked
// again, even by a notification already in flight.
type PropertyNotifier struct {
	mu        sync.Mutex
	source    any
	callbacks []*Callback
}

// NewPropertyNotifier creates a notifier that reports the given source
// to its callbacks.
func NewPropertyNotifier(source any) *PropertyNotifier {
	return &PropertyNotifier{source: source}
}

// SetSource sets the object reported as the first callback argument.
func (n *PropertyNotifier) SetSource(source any) {
	n.mu.Lock()
	n.source = source
	n.mu.Unlock()
}

// Source returns the object reported to callbacks.
func (n *PropertyNotifier) Source() any {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.source
}

// AddCallback registers a callback for all property changes on this
// notifier and returns its registration handle.
//
// The same function may be registered more than once; each registration is
// invoked once per notification, in registration order.
func (n *PropertyNotifier) AddCallback(fn PropertyCallback) *Callback {
	cb := &Callback{notifier: n, fn: fn}
	n.mu.Lock()
	n.callbacks = append(n.callbacks, cb)
	n.mu.Unlock()
	return cb
}

// RemoveCallback unregisters the given registration.
// Removing a nil, foreign, or already-removed handle is a no-op.
func (n *PropertyNotifier) RemoveCallback(cb *Callback) {
	if cb == nil || cb.notifier != n {
		return
	}
	cb.Remove()
}

// removeCallback drops a registration from the registry.
func (n *PropertyNotifier) removeCallback(cb *Callback) {
	n.mu.Lock()
	for i, c := range n.callbacks {
		if c == cb {
			n.callbacks = append(n.callbacks[:i], n.callbacks[i+1:]...)
			break
		}
	}
	n.mu.Unlock()
}

// NotifyChanged announces that the given property changed.
func (n *PropertyNotifier) NotifyChanged(property Property) {
	n.notify(property, nil)
}

// NotifyChangedWith announces that the given property changed, passing
// payload through to each callback.
func (n *PropertyNotifier) NotifyChangedWith(property Property, payload any) {
	n.notify(property, payload)
}

// NotifyAll announces that every property may have changed.
// Callbacks receive [PropertyAll] as the property key.
func (n *PropertyNotifier) NotifyAll() {
	n.notify(PropertyAll, nil)
}

// notify delivers one notification to a snapshot of the registry.
func (n *PropertyNotifier) notify(property Property, payload any) {
	n.mu.Lock()
	source := n.source
	cbs := make([]*Callback, len(n.callbacks))
	copy(cbs, n.callbacks)
	n.mu.Unlock()

	if t := currentTracer(); t != nil {
		t.TraceNotify(source, property, payload, len(cbs))
	}

	for _, cb := range cbs {
		if !cb.IsRemoved() && cb.fn != nil {
			cb.fn(source, property, payload)
		}
	}
}

// Clear removes every registration. Pending handles become removed, so a
// notification already in flight on another goroutine will skip them.
func (n *PropertyNotifier) Clear() {
	n.mu.Lock()
	cbs := n.callbacks
	n.callbacks = nil
	n.mu.Unlock()

	for _, cb := range cbs {
		cb.removed.Store(true)
	}
}

// CallbackCount returns the number of active registrations.
func (n *PropertyNotifier) CallbackCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.callbacks)
}
