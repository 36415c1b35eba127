// Package observe provides property-change notification primitives.
//
// This package defines the observable machinery used by screen and dialog
// base components: a registry of callbacks keyed by property identity, an
// un-keyed change notifier, and a thread-safe observable value.
//
// # Properties
//
// A [Property] is an explicit key identifying one observable field of a
// component. Keys are allocated once, at package init time, through
// [RegisterProperty]:
//
//	var PropertyTitle = observe.RegisterProperty("player.Track.title")
//
// [PropertyAll] is the reserved sentinel meaning "every property changed".
// The bindgen tool generates these registrations from struct tags.
//
// # Notifiers
//
// [PropertyNotifier] holds the callback registry. Components embed or own
// one, set themselves as its source, and announce changes:
//
//	n.NotifyChanged(PropertyTitle)
//	n.NotifyAll()
//
// Callbacks receive the source, the property key, and an optional payload.
// Registration returns a [Callback] handle; removing a handle twice, or
// removing one that was never registered, is a harmless no-op.
//
// All notifier operations are safe for concurrent use. Callbacks run
// synchronously on the goroutine that called NotifyChanged, after the
// registry lock has been released, so a callback may itself register or
// remove callbacks.
//
// # Constructor Conventions
//
// Long-lived mutable objects use NewX() constructors returning pointers:
//
//	n := observe.NewPropertyNotifier(owner)
//	obs := observe.NewObservable(0)
//
// The zero PropertyNotifier and zero Notifier are also ready to use.
package observe
