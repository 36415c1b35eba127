package inspect

import (
	"sync"
	"time"

	"github.com/chinese-developer/Hodgepodge/pkg/observe"
)

const eventSamplesDefault = 256

// EventSample is one recorded notification.
type EventSample struct {
	Timestamp  int64  `json:"ts"`
	Property   string `json:"property"`
	Source     string `json:"source"`
	Callbacks  int    `json:"callbacks"`
	HasPayload bool   `json:"hasPayload"`
}

// EventBuffer stores recent notification samples in a ring buffer.
type EventBuffer struct {
	mu      sync.RWMutex
	samples []EventSample
	index   int
	count   int
	total   uint64
}

// NewEventBuffer creates a buffer holding up to capacity samples.
// A non-positive capacity uses the default.
func NewEventBuffer(capacity int) *EventBuffer {
	if capacity <= 0 {
		capacity = eventSamplesDefault
	}
	return &EventBuffer{samples: make([]EventSample, capacity)}
}

// Capacity returns the buffer capacity.
func (b *EventBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// Add records a sample, evicting the oldest when full.
func (b *EventBuffer) Add(sample EventSample) {
	b.mu.Lock()
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	b.total++
	b.mu.Unlock()
}

// Total returns the number of samples ever recorded, including evicted
// ones.
func (b *EventBuffer) Total() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.total
}

// Snapshot returns a chronological copy of the retained samples.
func (b *EventBuffer) Snapshot() []EventSample {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return nil
	}
	result := make([]EventSample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}
	return result
}

// TraceNotify implements [observe.Tracer] by recording a sample.
func (b *EventBuffer) TraceNotify(source any, property observe.Property, payload any, callbacks int) {
	b.Add(EventSample{
		Timestamp:  time.Now().UnixMilli(),
		Property:   property.Name(),
		Source:     sourceType(source),
		Callbacks:  callbacks,
		HasPayload: payload != nil,
	})
}
