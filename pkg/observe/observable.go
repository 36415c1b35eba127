package observe

import "sync"

// Observable holds a value and notifies listeners when it changes.
//
// Observable is safe for concurrent use. Set compares against the current
// value and notifies only on an actual change. Listeners run synchronously
// on the goroutine that called Set, with the lock released.
type Observable[T comparable] struct {
	mu        sync.Mutex
	value     T
	listeners map[int]func(T)
	nextID    int
}

// NewObservable creates an observable with the given initial value.
func NewObservable[T comparable](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set updates the value. Listeners are notified only if the new value
// differs from the current one.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.value == value {
		o.mu.Unlock()
		return
	}
	o.value = value
	fns := make([]func(T), 0, len(o.listeners))
	for _, fn := range o.listeners {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		if fn != nil {
			fn(value)
		}
	}
}

// AddListener adds a callback that fires with the new value on every
// change. Returns an unsubscribe function.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	o.mu.Lock()
	if o.listeners == nil {
		o.listeners = make(map[int]func(T))
	}
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	o.mu.Unlock()
	return func() {
		o.mu.Lock()
		delete(o.listeners, id)
		o.mu.Unlock()
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners)
}
