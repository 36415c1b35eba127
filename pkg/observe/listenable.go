package observe

import "sync"

// Listenable is the interface for objects that notify listeners of changes.
type Listenable interface {
	// AddListener registers a callback and returns an unsubscribe function.
	AddListener(fn func()) func()
}

// Notifier is a basic [Listenable] with manual notification and no
// property keys. Use it for single-event surfaces such as dismiss hooks.
// The zero value is ready to use.
type Notifier struct {
	mu        sync.Mutex
	listeners map[int]func()
	nextID    int
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener adds a callback that fires on every notification.
// Returns an unsubscribe function; calling it more than once is a no-op.
func (n *Notifier) AddListener(fn func()) func() {
	n.mu.Lock()
	if n.listeners == nil {
		n.listeners = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	n.mu.Unlock()
	return func() {
		n.mu.Lock()
		delete(n.listeners, id)
		n.mu.Unlock()
	}
}

// NotifyListeners invokes every registered listener.
// Listeners run with the lock released, in unspecified order.
func (n *Notifier) NotifyListeners() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		if fn != nil {
			fn()
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}

// Clear removes all registered listeners.
func (n *Notifier) Clear() {
	n.mu.Lock()
	n.listeners = nil
	n.mu.Unlock()
}
