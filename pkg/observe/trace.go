package observe

import "sync"

// Tracer receives a sample for every notification delivered by any
// PropertyNotifier in the process. The inspect package installs one to
// build its event log; the default is nil (no tracing).
type Tracer interface {
	// TraceNotify is called once per notification, before callbacks run.
	// callbacks is the number of registrations the notification will reach.
	TraceNotify(source any, property Property, payload any, callbacks int)
}

var (
	tracerMu sync.RWMutex
	tracer   Tracer
)

// SetTracer installs the process-wide notification tracer.
// Pass nil to disable tracing.
func SetTracer(t Tracer) {
	tracerMu.Lock()
	tracer = t
	tracerMu.Unlock()
}

// InstalledTracer returns the tracer installed by SetTracer, or nil.
// Callers that take over the tracer slot temporarily can use it to
// restore the previous tracer afterward.
func InstalledTracer() Tracer {
	return currentTracer()
}

// currentTracer returns the installed tracer, or nil.
func currentTracer() Tracer {
	tracerMu.RLock()
	defer tracerMu.RUnlock()
	return tracer
}
