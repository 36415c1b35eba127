package observe

import (
	"sync"
	"testing"
)

// recorder collects notifications for assertions.
type recorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	source   any
	property Property
	payload  any
}

func (r *recorder) callback() PropertyCallback {
	return func(source any, property Property, payload any) {
		r.mu.Lock()
		r.events = append(r.events, recordedEvent{source, property, payload})
		r.mu.Unlock()
	}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *recorder) last() recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return recordedEvent{}
	}
	return r.events[len(r.events)-1]
}

func TestNotifyReachesRegisteredCallbacks(t *testing.T) {
	prop := RegisterProperty("notifiertest.Model.title")
	n := NewPropertyNotifier("model")

	var first, second recorder
	cb1 := n.AddCallback(first.callback())
	n.AddCallback(second.callback())

	n.NotifyChanged(prop)

	if first.count() != 1 || second.count() != 1 {
		t.Fatalf("counts = %d, %d, want 1, 1", first.count(), second.count())
	}
	ev := first.last()
	if ev.source != "model" {
		t.Errorf("source = %v, want %q", ev.source, "model")
	}
	if ev.property != prop {
		t.Errorf("property = %v, want %v", ev.property, prop)
	}
	if ev.payload != nil {
		t.Errorf("payload = %v, want nil", ev.payload)
	}

	n.RemoveCallback(cb1)
	n.NotifyChanged(prop)

	if first.count() != 1 {
		t.Errorf("removed callback was invoked: count %d, want 1", first.count())
	}
	if second.count() != 2 {
		t.Errorf("remaining callback count = %d, want 2", second.count())
	}
}

func TestNotifyOrderIsRegistrationOrder(t *testing.T) {
	prop := RegisterProperty("notifiertest.Model.order")
	n := &PropertyNotifier{}

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		n.AddCallback(func(any, Property, any) {
			order = append(order, i)
		})
	}

	n.NotifyChanged(prop)

	if len(order) != 5 {
		t.Fatalf("got %d invocations, want 5", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Errorf("position %d invoked callback %d", i, got)
		}
	}
}

func TestDuplicateFunctionRegistrations(t *testing.T) {
	prop := RegisterProperty("notifiertest.Model.dup")
	n := &PropertyNotifier{}

	var rec recorder
	fn := rec.callback()
	n.AddCallback(fn)
	n.AddCallback(fn)

	if n.CallbackCount() != 2 {
		t.Fatalf("CallbackCount = %d, want 2", n.CallbackCount())
	}

	n.NotifyChanged(prop)

	if rec.count() != 2 {
		t.Errorf("duplicate registration invoked %d times, want 2", rec.count())
	}
}

func TestRemoveCallbackIdempotent(t *testing.T) {
	prop := RegisterProperty("notifiertest.Model.remove")
	n := &PropertyNotifier{}

	var rec recorder
	cb := n.AddCallback(rec.callback())

	cb.Remove()
	cb.Remove()
	n.RemoveCallback(cb)

	if !cb.IsRemoved() {
		t.Error("IsRemoved() = false after Remove")
	}
	if n.CallbackCount() != 0 {
		t.Errorf("CallbackCount = %d, want 0", n.CallbackCount())
	}

	n.NotifyChanged(prop)
	if rec.count() != 0 {
		t.Errorf("removed callback was invoked %d times", rec.count())
	}
}

func TestRemoveCallbackForeignOrNil(t *testing.T) {
	n := &PropertyNotifier{}
	other := &PropertyNotifier{}
	cb := other.AddCallback(func(any, Property, any) {})

	n.RemoveCallback(nil)
	n.RemoveCallback(cb)

	if cb.IsRemoved() {
		t.Error("foreign handle was removed by the wrong notifier")
	}
	if other.CallbackCount() != 1 {
		t.Errorf("other.CallbackCount = %d, want 1", other.CallbackCount())
	}
}

func TestNotifyAllDeliversSentinel(t *testing.T) {
	n := NewPropertyNotifier(nil)

	var rec recorder
	n.AddCallback(rec.callback())

	n.NotifyAll()

	if rec.count() != 1 {
		t.Fatalf("count = %d, want 1", rec.count())
	}
	if got := rec.last().property; got != PropertyAll {
		t.Errorf("property = %v, want PropertyAll", got)
	}
}

func TestNotifyChangedWithPayload(t *testing.T) {
	prop := RegisterProperty("notifiertest.Model.payload")
	n := &PropertyNotifier{}

	var rec recorder
	n.AddCallback(rec.callback())

	n.NotifyChangedWith(prop, 42)

	if got := rec.last().payload; got != 42 {
		t.Errorf("payload = %v, want 42", got)
	}
}

func TestClearThenNotifyAllInvokesNothing(t *testing.T) {
	n := &PropertyNotifier{}

	var first, second recorder
	n.AddCallback(first.callback())
	n.AddCallback(second.callback())

	n.Clear()
	n.NotifyAll()

	if first.count() != 0 || second.count() != 0 {
		t.Errorf("cleared callbacks were invoked: %d, %d", first.count(), second.count())
	}
	if n.CallbackCount() != 0 {
		t.Errorf("CallbackCount = %d, want 0", n.CallbackCount())
	}
}

func TestZeroValueNotifier(t *testing.T) {
	var n PropertyNotifier

	if n.CallbackCount() != 0 {
		t.Errorf("CallbackCount = %d, want 0", n.CallbackCount())
	}

	// Notifying with no registry must not panic.
	n.NotifyAll()
	n.Clear()

	var rec recorder
	n.AddCallback(rec.callback())
	if n.CallbackCount() != 1 {
		t.Errorf("CallbackCount = %d, want 1", n.CallbackCount())
	}
}

func TestSetSource(t *testing.T) {
	n := &PropertyNotifier{}
	n.SetSource("owner")

	if n.Source() != "owner" {
		t.Errorf("Source() = %v, want %q", n.Source(), "owner")
	}

	var rec recorder
	n.AddCallback(rec.callback())
	n.NotifyAll()

	if got := rec.last().source; got != "owner" {
		t.Errorf("callback source = %v, want %q", got, "owner")
	}
}

func TestConcurrentAddCallback(t *testing.T) {
	const goroutines = 64
	n := &PropertyNotifier{}

	var wg sync.WaitGroup
	var rec recorder
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			n.AddCallback(rec.callback())
		}()
	}
	wg.Wait()

	if n.CallbackCount() != goroutines {
		t.Fatalf("CallbackCount = %d, want %d", n.CallbackCount(), goroutines)
	}

	n.NotifyAll()
	if rec.count() != goroutines {
		t.Errorf("delivered %d notifications, want %d", rec.count(), goroutines)
	}
}

func TestReentrantRemoveDuringNotify(t *testing.T) {
	prop := RegisterProperty("notifiertest.Model.reentrant")
	n := &PropertyNotifier{}

	var laterCount int
	var later *Callback
	n.AddCallback(func(any, Property, any) {
		later.Remove()
	})
	later = n.AddCallback(func(any, Property, any) {
		laterCount++
	})

	// The first callback removes the second mid-notification; a removed
	// registration is never invoked again.
	n.NotifyChanged(prop)
	if laterCount != 0 {
		t.Errorf("removed callback ran %d times during in-flight notify", laterCount)
	}

	n.NotifyChanged(prop)
	if laterCount != 0 {
		t.Errorf("removed callback ran %d times after notify", laterCount)
	}
	if n.CallbackCount() != 1 {
		t.Errorf("CallbackCount = %d, want 1", n.CallbackCount())
	}
}

func TestReentrantAddDuringNotify(t *testing.T) {
	prop := RegisterProperty("notifiertest.Model.reentrantAdd")
	n := &PropertyNotifier{}

	var addedCount int
	n.AddCallback(func(any, Property, any) {
		if n.CallbackCount() == 1 {
			n.AddCallback(func(any, Property, any) {
				addedCount++
			})
		}
	})

	// The addition lands after the in-flight snapshot.
	n.NotifyChanged(prop)
	if addedCount != 0 {
		t.Errorf("callback added mid-notify ran %d times in the same notification", addedCount)
	}

	n.NotifyChanged(prop)
	if addedCount != 1 {
		t.Errorf("callback added mid-notify ran %d times in the next notification, want 1", addedCount)
	}
}
