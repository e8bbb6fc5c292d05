package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/reqsync/internal/infrastructure/repositories"
)

// Update is the interface for the mutating operation.
type Update interface {
	Execute(ctx context.Context, settings *entities.Settings, opts UpdateOptions) ([]entities.Change, error)
}

// UpdateOptions holds runtime options for a single update run.
type UpdateOptions struct {
	File         string
	SkipPackages []string
}

// UpdateCommand resolves every manifest entry and rewrites the file in
// place, replacing only the lines whose decision carries a new version. The
// write starts only after the full decision set is resolved; a parse or
// fetch failure leaves the file untouched.
type UpdateCommand struct {
	registries *infraRepos.RegistryRegistry
	manifests  repositories.ManifestRepository
}

// NewUpdateCommand creates a new UpdateCommand.
func NewUpdateCommand(
	registries *infraRepos.RegistryRegistry,
	manifests repositories.ManifestRepository,
) *UpdateCommand {
	return &UpdateCommand{
		registries: registries,
		manifests:  manifests,
	}
}

// Execute rewrites the manifest and returns the list of applied changes.
func (it *UpdateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts UpdateOptions,
) ([]entities.Change, error) {
	resolved, err := resolveManifest(ctx, settings, it.registries, it.manifests, opts.File, opts.SkipPackages)
	if err != nil {
		return nil, err
	}

	content := entities.RewriteManifest(resolved.Text, resolved.Entries, resolved.Decisions)
	if writeErr := it.manifests.Write(opts.File, content); writeErr != nil {
		return nil, writeErr
	}

	changes := resolved.Changes()
	logger.Debugf("rewrote %s with %d change(s)", opts.File, len(changes))
	return changes, nil
}
