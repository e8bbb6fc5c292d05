package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/reqsync/internal/domain/repositories"
	"github.com/rios0rios0/reqsync/internal/infrastructure/repositories/manifestfile"
	"github.com/rios0rios0/reqsync/internal/infrastructure/repositories/pypi"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the registry-client registry with all known registry factories
	if err := container.Provide(func() *RegistryRegistry {
		reg := NewRegistryRegistry()
		reg.Register("pypi", pypi.NewRegistryRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register the file-backed manifest repository
	if err := container.Provide(func() domainRepos.ManifestRepository {
		return manifestfile.NewManifestRepository()
	}); err != nil {
		return err
	}

	return nil
}
