package bindtest

import (
	"sync"

	"github.com/chinese-developer/Hodgepodge/pkg/observe"
)

// Event is one recorded property notification.
type Event struct {
	Source   any
	Property observe.Property
	Payload  any
}

// RecordingCallback records every notification delivered to its Callback.
// Safe for concurrent use, so it can observe notifications from any
// goroutine under test.
type RecordingCallback struct {
	mu     sync.Mutex
	events []Event
}

// NewRecordingCallback creates an empty recorder.
func NewRecordingCallback() *RecordingCallback {
	return &RecordingCallback{}
}

// Callback returns the function to register on a notifier under test.
func (r *RecordingCallback) Callback() observe.PropertyCallback {
	return func(source any, property observe.Property, payload any) {
		r.mu.Lock()
		r.events = append(r.events, Event{Source: source, Property: property, Payload: payload})
		r.mu.Unlock()
	}
}

// Events returns a copy of the recorded notifications in delivery order.
func (r *RecordingCallback) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns the total number of recorded notifications.
func (r *RecordingCallback) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// CountOf returns the number of recorded notifications carrying the given
// property key, counting [observe.PropertyAll] deliveries as well.
func (r *RecordingCallback) CountOf(p observe.Property) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Property == p || e.Property == observe.PropertyAll {
			n++
		}
	}
	return n
}

// Reset discards all recorded notifications.
func (r *RecordingCallback) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
