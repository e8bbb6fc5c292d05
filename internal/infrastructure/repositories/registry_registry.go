package repositories

import (
	"fmt"
	"sort"
	"strings"
	"time"

	domainRepos "github.com/rios0rios0/reqsync/internal/domain/repositories"
)

// RegistryFactory is a constructor function that creates a RegistryRepository
// for the given base URL and per-request timeout.
type RegistryFactory func(baseURL string, timeout time.Duration) domainRepos.RegistryRepository

// RegistryRegistry manages all registered package registry implementations.
type RegistryRegistry struct {
	factories map[string]RegistryFactory
}

// NewRegistryRegistry creates an empty registry.
func NewRegistryRegistry() *RegistryRegistry {
	return &RegistryRegistry{
		factories: make(map[string]RegistryFactory),
	}
}

// Register adds a registry factory under the given type name (e.g. "pypi").
func (r *RegistryRegistry) Register(name string, factory RegistryFactory) {
	r.factories[name] = factory
}

// Get returns a configured registry client for the given type name.
func (r *RegistryRegistry) Get(name, baseURL string, timeout time.Duration) (domainRepos.RegistryRepository, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown registry type %q, supported: %s", name, strings.Join(r.Names(), ", "))
	}
	return factory(baseURL, timeout), nil
}

// Names returns the registered registry type names in sorted order.
func (r *RegistryRegistry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
