package providers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/petal-labs/promptrun/core"
)

// Settings carries optional backend configuration from the CLI config file.
type Settings struct {
	// BaseURL overrides the service endpoint. Empty means the backend default.
	BaseURL string
}

// ProviderFactory creates a provider bound to apiKey.
// Factories configure the client locally and must not perform network calls.
type ProviderFactory func(ctx context.Context, apiKey core.Secret, s Settings) (core.Provider, error)

// registry holds registered provider factories.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]ProviderFactory)
)

// Register adds a backend factory to the registry.
// It is typically called from a backend package's init() function.
// If a backend with the same name is already registered, it will be overwritten.
func Register(name string, factory ProviderFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get retrieves a factory by name.
// Returns nil if the backend is not registered.
func Get(name string) ProviderFactory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[name]
}

// Create creates a new provider by backend name.
// Returns an error if the backend is not registered.
func Create(ctx context.Context, name string, apiKey core.Secret, s Settings) (core.Provider, error) {
	factory := Get(name)
	if factory == nil {
		return nil, fmt.Errorf("unknown backend: %s (available: %v)", name, List())
	}
	return factory(ctx, apiKey, s)
}

// List returns the names of all registered backends in sorted order.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered returns true if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}
