package commands

import (
	"context"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/reqsync/internal/infrastructure/repositories"
)

// Check is the interface for the report-only operation.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckOptions) ([]entities.Change, error)
}

// CheckOptions holds runtime options for a single check run.
type CheckOptions struct {
	File         string
	SkipPackages []string
}

// CheckCommand resolves every manifest entry against the registry and
// reports the outdated ones. It never writes.
type CheckCommand struct {
	registries *infraRepos.RegistryRegistry
	manifests  repositories.ManifestRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	registries *infraRepos.RegistryRegistry,
	manifests repositories.ManifestRepository,
) *CheckCommand {
	return &CheckCommand{
		registries: registries,
		manifests:  manifests,
	}
}

// Execute returns the ordered list of outdated requirements. The run is
// outdated iff the returned list is non-empty.
func (it *CheckCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckOptions,
) ([]entities.Change, error) {
	resolved, err := resolveManifest(ctx, settings, it.registries, it.manifests, opts.File, opts.SkipPackages)
	if err != nil {
		return nil, err
	}
	return resolved.Changes(), nil
}
