package sketch

import (
	"fmt"
	"sort"
	"sync"
)

// Backend names used by the bundled backend packages.
const (
	BackendWindow   = "gogpu"
	BackendHeadless = "headless"
)

// BackendFactory creates a new Backend instance.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)

	// backendPriority is the order DefaultBackend tries registered names in.
	// A real window wins over the offscreen target.
	backendPriority = []string{BackendWindow, BackendHeadless}
)

// RegisterBackend registers a backend factory under name. Backend packages
// call it from init, so a blank import is enough to enable them:
//
//	import _ "github.com/gogpu/sketch/backend/window"
//
// Registering the same name again replaces the previous factory.
func RegisterBackend(name string, factory BackendFactory) {
	if factory == nil {
		panic("sketch: RegisterBackend factory is nil")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// UnregisterBackend removes a backend from the registry.
// This is useful for testing.
func UnregisterBackend(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBackend creates a backend by name.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: unknown backend %q (forgotten import?)", ErrNilBackend, name)
	}
	return factory(), nil
}

// DefaultBackend returns the best registered backend: the gogpu window if
// present, then the headless target, then any other. Returns nil if none is
// registered.
func DefaultBackend() Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if b := factory(); b != nil {
				return b
			}
		}
	}

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if b := backends[name](); b != nil {
			return b
		}
	}
	return nil
}
