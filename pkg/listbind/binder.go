package listbind

import (
	"sync"

	"github.com/chinese-developer/Hodgepodge/pkg/observe"
)

// PropertySubmitted is the key announced when a binder's Submitted state
// changes. The notification payload carries the new bool value.
var PropertySubmitted = observe.RegisterProperty("listbind.Binder.submitted")

// Binder accepts list submissions, forwards them to a [Display], and
// tracks whether the most recent submission carried a list.
//
// Submitted has no value until the first submission, so the first Submit
// always announces PropertySubmitted; after that, only transitions do.
// A nil slice means "no list" and sets Submitted to false; any non-nil
// slice, including an empty one, sets it to true.
//
// Binder methods are safe for concurrent use, but submissions are meant
// to arrive from one goroutine (the UI loop); under concurrent Submit
// calls the display may observe the applications in either order.
type Binder[T any] struct {
	notifier observe.PropertyNotifier

	mu            sync.Mutex
	display       Display[T]
	differ        Differ[T]
	strategy      Strategy[T]
	items         []T
	submitted     bool
	everSubmitted bool
}

// NewBinder creates a binder driving the given display.
// The initial strategy is [ReplaceAll]; the differ is unset.
func NewBinder[T any](display Display[T]) *Binder[T] {
	b := &Binder[T]{
		display:  display,
		strategy: ReplaceAll[T](),
	}
	b.notifier.SetSource(b)
	return b
}

// Notifier returns the binder's property-change registry.
// Register callbacks on it to observe PropertySubmitted.
func (b *Binder[T]) Notifier() *observe.PropertyNotifier {
	return &b.notifier
}

// SetDisplay replaces the display surface. Pass the adapter for a freshly
// created view when the owner's view is rebuilt.
func (b *Binder[T]) SetDisplay(display Display[T]) {
	b.mu.Lock()
	b.display = display
	b.mu.Unlock()
}

// SetDiffer sets the item comparator consulted by diff strategies.
func (b *Binder[T]) SetDiffer(d Differ[T]) {
	b.mu.Lock()
	b.differ = d
	b.mu.Unlock()
}

// SetStrategy replaces the diff strategy. A nil strategy disables edit
// computation; the display still receives the items.
func (b *Binder[T]) SetStrategy(s Strategy[T]) {
	b.mu.Lock()
	b.strategy = s
	b.mu.Unlock()
}

// Submit accepts a new list for display.
//
// The display always receives the submission, even when the Submitted
// state does not change. Submit keeps its own copy of items.
func (b *Binder[T]) Submit(items []T) {
	b.submit(items, nil)
}

// SubmitThen is [Binder.Submit] with a completion callback, invoked after
// the display has applied the submission. A nil done behaves like Submit.
func (b *Binder[T]) SubmitThen(items []T, done func()) {
	b.submit(items, done)
}

// submit is the single path behind both entry points, so the Submitted
// transition rules cannot diverge between them.
func (b *Binder[T]) submit(items []T, done func()) {
	var next []T
	if items != nil {
		next = make([]T, len(items))
		copy(next, items)
	}

	b.mu.Lock()
	old := b.items
	strategy := b.strategy
	differ := b.differ
	display := b.display
	b.items = next
	newSubmitted := items != nil
	changed := !b.everSubmitted || b.submitted != newSubmitted
	b.submitted = newSubmitted
	b.everSubmitted = true
	b.mu.Unlock()

	var edits []Edit
	if strategy != nil {
		edits = strategy(old, next, differ)
	}
	if display != nil {
		display.ApplyList(next, edits)
	}
	if changed {
		b.notifier.NotifyChangedWith(PropertySubmitted, newSubmitted)
	}
	if done != nil {
		done()
	}
}

// Submitted reports whether the most recent submission carried a list.
// It is false before the first submission.
func (b *Binder[T]) Submitted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.submitted
}

// EverSubmitted reports whether any submission has arrived yet.
func (b *Binder[T]) EverSubmitted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.everSubmitted
}

// Items returns a copy of the currently displayed list.
// It is nil when no list is submitted.
func (b *Binder[T]) Items() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.items == nil {
		return nil
	}
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the length of the currently displayed list.
func (b *Binder[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// OnSubmittedChanged registers a callback invoked with the new Submitted
// value whenever it changes. Returns the registration handle.
func (b *Binder[T]) OnSubmittedChanged(fn func(submitted bool)) *observe.Callback {
	return b.notifier.AddCallback(func(_ any, property observe.Property, payload any) {
		if property != PropertySubmitted && property != observe.PropertyAll {
			return
		}
		submitted, ok := payload.(bool)
		if !ok {
			submitted = b.Submitted()
		}
		fn(submitted)
	})
}

// Detach is the teardown hook for the owning surface: it clears the
// notifier registry. Calling it again is a no-op. The displayed items and
// Submitted state are left as they are.
func (b *Binder[T]) Detach() {
	b.notifier.Clear()
}
