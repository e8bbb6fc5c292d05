package repositories

import (
	"context"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// RegistryRepository abstracts a package registry (PyPI by default). One
// call issues exactly one read-only request; queries are idempotent and are
// never retried here.
type RegistryRepository interface {
	// Name returns the registry identifier (e.g. "pypi").
	Name() string

	// FetchPackageInfo returns every known release version of the package
	// and its hidden/deprecated flag. Network or non-success HTTP failures
	// surface as *entities.RegistryFetchError.
	FetchPackageInfo(ctx context.Context, name string) (*entities.RegistryInfo, error)
}
