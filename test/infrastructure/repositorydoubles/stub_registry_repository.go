//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// SpyRegistryRepository implements repositories.RegistryRepository as a
// configurable spy. It is safe for the concurrent fetch fan-out.
type SpyRegistryRepository struct {
	// --- identity ---
	RegistryName string

	// --- FetchPackageInfo ---
	Infos    map[string]*entities.RegistryInfo
	FetchErr error

	mu           sync.Mutex
	FetchedNames []string
}

func (s *SpyRegistryRepository) Name() string {
	if s.RegistryName == "" {
		return "pypi"
	}
	return s.RegistryName
}

func (s *SpyRegistryRepository) FetchPackageInfo(
	_ context.Context,
	name string,
) (*entities.RegistryInfo, error) {
	s.mu.Lock()
	s.FetchedNames = append(s.FetchedNames, name)
	s.mu.Unlock()

	if s.FetchErr != nil {
		return nil, s.FetchErr
	}

	if info, ok := s.Infos[name]; ok {
		return info, nil
	}
	return &entities.RegistryInfo{Name: name}, nil
}

// FetchCount returns how many fetches were recorded for the given name.
func (s *SpyRegistryRepository) FetchCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, fetched := range s.FetchedNames {
		if fetched == name {
			count++
		}
	}
	return count
}
