package bindtest

import (
	"sync"
	"sync/atomic"

	"github.com/chinese-developer/Hodgepodge/pkg/viewbind"
)

// FakeBinding is a [viewbind.Binding] that counts Unbind calls.
type FakeBinding struct {
	content viewbind.ContentID
	unbinds atomic.Int32
}

// Content returns the content identifier the binding was inflated with.
func (b *FakeBinding) Content() viewbind.ContentID {
	return b.content
}

// Unbind records the release.
func (b *FakeBinding) Unbind() {
	b.unbinds.Add(1)
}

// UnbindCount returns how many times Unbind has been called.
func (b *FakeBinding) UnbindCount() int {
	return int(b.unbinds.Load())
}

// BindingFactory produces [FakeBinding] values and records every
// inflation request. FailWith and PanicWith switch it into a failure
// mode that affects subsequent calls; pass nil to switch back.
type BindingFactory struct {
	mu       sync.Mutex
	created  []*FakeBinding
	contents []viewbind.ContentID
	failErr  error
	panicVal any
}

// NewBindingFactory creates a factory that succeeds on every call.
func NewBindingFactory() *BindingFactory {
	return &BindingFactory{}
}

// Func returns the inflate function to hand to a holder or host.
// The returned closure reads the factory's failure mode at call time.
func (f *BindingFactory) Func() viewbind.InflateFunc[*FakeBinding] {
	return func(content viewbind.ContentID) (*FakeBinding, error) {
		f.mu.Lock()
		f.contents = append(f.contents, content)
		failErr := f.failErr
		panicVal := f.panicVal
		if failErr != nil || panicVal != nil {
			f.mu.Unlock()
			if panicVal != nil {
				panic(panicVal)
			}
			return nil, failErr
		}
		b := &FakeBinding{content: content}
		f.created = append(f.created, b)
		f.mu.Unlock()
		return b, nil
	}
}

// FailWith makes subsequent inflations return err. FailWith(nil)
// restores success.
func (f *BindingFactory) FailWith(err error) {
	f.mu.Lock()
	f.failErr = err
	f.panicVal = nil
	f.mu.Unlock()
}

// PanicWith makes subsequent inflations panic with v. PanicWith(nil)
// restores success.
func (f *BindingFactory) PanicWith(v any) {
	f.mu.Lock()
	f.panicVal = v
	f.failErr = nil
	f.mu.Unlock()
}

// Created returns the bindings produced so far, in creation order.
// Failed inflations produce nothing.
func (f *BindingFactory) Created() []*FakeBinding {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*FakeBinding, len(f.created))
	copy(out, f.created)
	return out
}

// Contents returns the content identifiers of every inflation request,
// including failed ones.
func (f *BindingFactory) Contents() []viewbind.ContentID {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]viewbind.ContentID, len(f.contents))
	copy(out, f.contents)
	return out
}
