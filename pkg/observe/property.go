package observe

import (
	"fmt"
	"sort"
	"sync"
)

// Property identifies one observable property of a component.
//
// Keys are explicit: each is allocated by [RegisterProperty], usually in a
// package-level var block or in code generated by bindgen. The zero value
// is [PropertyAll], the sentinel delivered by NotifyAll.
type Property int32

// PropertyAll is the sentinel key meaning "every property changed".
// It is never returned by RegisterProperty.
const PropertyAll Property = 0

// propertyTable maps names to keys and back. Keys start at 1; slot 0 is
// the PropertyAll sentinel.
var propertyTable = struct {
	mu     sync.RWMutex
	byName map[string]Property
	names  []string
}{
	byName: map[string]Property{},
	names:  []string{"*"},
}

// RegisterProperty allocates the key for the given property name.
// Registering a name that is already registered returns the existing key,
// so generated code and hand-written registrations can coexist.
//
// Names are dotted paths like "player.Track.title". The name "*" is
// reserved for [PropertyAll] and cannot be registered.
func RegisterProperty(name string) Property {
	if name == "" || name == "*" {
		panic(fmt.Sprintf("observe: cannot register property name %q", name))
	}
	propertyTable.mu.Lock()
	defer propertyTable.mu.Unlock()
	if p, ok := propertyTable.byName[name]; ok {
		return p
	}
	p := Property(len(propertyTable.names))
	propertyTable.byName[name] = p
	propertyTable.names = append(propertyTable.names, name)
	return p
}

// PropertyByName returns the key registered for name.
// The second result is false if the name was never registered.
func PropertyByName(name string) (Property, bool) {
	if name == "*" {
		return PropertyAll, true
	}
	propertyTable.mu.RLock()
	defer propertyTable.mu.RUnlock()
	p, ok := propertyTable.byName[name]
	return p, ok
}

// PropertyCount returns the number of registered properties,
// not counting the PropertyAll sentinel.
func PropertyCount() int {
	propertyTable.mu.RLock()
	defer propertyTable.mu.RUnlock()
	return len(propertyTable.names) - 1
}

// PropertyNames returns the names of all registered properties in
// registration order, not counting the PropertyAll sentinel.
func PropertyNames() []string {
	propertyTable.mu.RLock()
	defer propertyTable.mu.RUnlock()
	names := make([]string, len(propertyTable.names)-1)
	copy(names, propertyTable.names[1:])
	return names
}

// SortedPropertyNames returns the names of all registered properties in
// lexical order.
func SortedPropertyNames() []string {
	names := PropertyNames()
	sort.Strings(names)
	return names
}

// Name returns the name the property was registered under.
// PropertyAll is named "*". Unregistered keys format as "Property(n)".
func (p Property) Name() string {
	if p == PropertyAll {
		return "*"
	}
	propertyTable.mu.RLock()
	defer propertyTable.mu.RUnlock()
	if p > 0 && int(p) < len(propertyTable.names) {
		return propertyTable.names[p]
	}
	return fmt.Sprintf("Property(%d)", int32(p))
}

// String returns the same value as Name.
func (p Property) String() string {
	return p.Name()
}

// Valid reports whether p is PropertyAll or a registered key.
func (p Property) Valid() bool {
	if p == PropertyAll {
		return true
	}
	propertyTable.mu.RLock()
	defer propertyTable.mu.RUnlock()
	return p > 0 && int(p) < len(propertyTable.names)
}
