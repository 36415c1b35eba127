// Package inspect provides an optional HTTP inspector for the binding
// layer: which notifiers exist, how many callbacks they carry, which
// properties are registered, and a rolling log of recent notifications.
//
// Components register voluntarily:
//
//	inspect.Register("player.tracks", binder.Notifier())
//	defer inspect.Unregister("player.tracks")
//
// Start the server in development builds only:
//
//	port, err := inspect.Start(0)
//	// http://localhost:<port>/notifiers
package inspect

import (
	"fmt"
	"sort"
	"sync"

	"github.com/chinese-developer/Hodgepodge/pkg/observe"
)

// NotifierStats describes one registered notifier at snapshot time.
type NotifierStats struct {
	Name      string `json:"name"`
	Source    string `json:"source"`
	Callbacks int    `json:"callbacks"`
}

var registry = struct {
	mu        sync.RWMutex
	notifiers map[string]*observe.PropertyNotifier
}{
	notifiers: map[string]*observe.PropertyNotifier{},
}

// Register adds a notifier to the inspector under the given name.
// Registering a name that is already taken replaces the previous entry.
func Register(name string, n *observe.PropertyNotifier) {
	if n == nil {
		return
	}
	registry.mu.Lock()
	registry.notifiers[name] = n
	registry.mu.Unlock()
}

// Unregister removes a notifier from the inspector.
// Unknown names are a no-op.
func Unregister(name string) {
	registry.mu.Lock()
	delete(registry.notifiers, name)
	registry.mu.Unlock()
}

// Snapshot returns the registered notifiers sorted by name.
func Snapshot() []NotifierStats {
	registry.mu.RLock()
	stats := make([]NotifierStats, 0, len(registry.notifiers))
	for name, n := range registry.notifiers {
		stats = append(stats, NotifierStats{
			Name:      name,
			Source:    sourceType(n.Source()),
			Callbacks: n.CallbackCount(),
		})
	}
	registry.mu.RUnlock()

	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}

// ResetForTest clears the registry. Only for use in tests.
func ResetForTest() {
	registry.mu.Lock()
	registry.notifiers = map[string]*observe.PropertyNotifier{}
	registry.mu.Unlock()
}

// sourceType names a notifier source for snapshots.
func sourceType(source any) string {
	if source == nil {
		return ""
	}
	return fmt.Sprintf("%T", source)
}
