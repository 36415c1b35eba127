package bindtest

import (
	"sync"

	"github.com/chinese-developer/Hodgepodge/pkg/listbind"
)

// Application is one recorded ApplyList call.
type Application[T any] struct {
	Items []T
	Edits []listbind.Edit
}

// RecordingDisplay is a [listbind.Display] that records every ApplyList
// call instead of rendering anything.
type RecordingDisplay[T any] struct {
	mu   sync.Mutex
	apps []Application[T]
}

// NewRecordingDisplay creates an empty recording display.
func NewRecordingDisplay[T any]() *RecordingDisplay[T] {
	return &RecordingDisplay[T]{}
}

// ApplyList records the call. Items and edits are copied, so later
// submissions cannot alias earlier recordings.
func (d *RecordingDisplay[T]) ApplyList(items []T, edits []listbind.Edit) {
	app := Application[T]{
		Items: append([]T(nil), items...),
		Edits: append([]listbind.Edit(nil), edits...),
	}
	d.mu.Lock()
	d.apps = append(d.apps, app)
	d.mu.Unlock()
}

// Applications returns a copy of the recorded calls in arrival order.
func (d *RecordingDisplay[T]) Applications() []Application[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Application[T], len(d.apps))
	copy(out, d.apps)
	return out
}

// Count returns the number of recorded ApplyList calls.
func (d *RecordingDisplay[T]) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.apps)
}

// LastItems returns the items of the most recent ApplyList call,
// or nil if none arrived yet.
func (d *RecordingDisplay[T]) LastItems() []T {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.apps) == 0 {
		return nil
	}
	return d.apps[len(d.apps)-1].Items
}
