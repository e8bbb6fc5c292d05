package commands

import (
	"context"
	"errors"
	"time"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/reqsync/internal/infrastructure/repositories"
)

// resolvedManifest is the outcome of the shared resolution phase: the raw
// text, the parsed entries, and one decision per requirement entry. The
// decision set is complete before anything downstream (reporting or the
// writer) runs.
type resolvedManifest struct {
	Text      string
	Entries   []entities.ManifestEntry
	Decisions []entities.UpdateDecision
}

// Changes returns the ordered list of non-no-op decisions as report rows.
func (m *resolvedManifest) Changes() []entities.Change {
	changes := make([]entities.Change, 0, len(m.Decisions))
	for _, decision := range m.Decisions {
		if decision.IsChange() {
			changes = append(changes, entities.Change{
				Name:       decision.Name,
				OldVersion: decision.OldVersion,
				NewVersion: decision.NewVersion,
			})
		}
	}
	return changes
}

// resolveManifest runs the read -> parse -> fetch -> decide pipeline shared
// by the check and update commands. A parse or fetch failure aborts the
// whole run; nothing is ever written on that path.
func resolveManifest(
	ctx context.Context,
	settings *entities.Settings,
	registries *infraRepos.RegistryRegistry,
	manifests repositories.ManifestRepository,
	file string,
	skipPackages []string,
) (*resolvedManifest, error) {
	text, err := manifests.Read(file)
	if err != nil {
		return nil, err
	}

	entries := entities.ParseManifest(text)

	registry, registryErr := registries.Get(
		settings.RegistryType,
		settings.RegistryURL,
		time.Duration(settings.TimeoutSeconds)*time.Second,
	)
	if registryErr != nil {
		return nil, registryErr
	}

	skipSet := make(map[string]bool, len(skipPackages)+len(settings.SkipPackages))
	for _, name := range settings.SkipPackages {
		skipSet[name] = true
	}
	for _, name := range skipPackages {
		skipSet[name] = true
	}

	infos, fetchErr := fetchRegistryInfos(ctx, registry, entries, skipSet, settings.Concurrency)
	if fetchErr != nil {
		return nil, fetchErr
	}

	decisions := make([]entities.UpdateDecision, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsRequirement() {
			continue
		}
		decisions = append(decisions, buildDecision(entry, infos[entry.Requirement.Name], skipSet))
	}

	return &resolvedManifest{Text: text, Entries: entries, Decisions: decisions}, nil
}

// fetchRegistryInfos fans out one fetch per distinct non-skipped package
// name, bounded by the configured concurrency. Every result lands in its
// own slot, so no lock is needed; the first failure cancels the remaining
// fetches and aborts the run.
func fetchRegistryInfos(
	ctx context.Context,
	registry repositories.RegistryRepository,
	entries []entities.ManifestEntry,
	skipSet map[string]bool,
	concurrency int,
) (map[string]*entities.RegistryInfo, error) {
	names := distinctFetchNames(entries, skipSet)
	results := make([]*entities.RegistryInfo, len(names))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, name := range names {
		group.Go(func() error {
			info, err := registry.FetchPackageInfo(groupCtx, name)
			if err != nil {
				return err
			}
			results[i] = info
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	infos := make(map[string]*entities.RegistryInfo, len(names))
	for i, name := range names {
		infos[name] = results[i]
	}
	return infos, nil
}

// distinctFetchNames returns the package names that need a registry query,
// preserving first-occurrence order and de-duplicating repeated names.
// Skipped packages never reach the registry.
func distinctFetchNames(entries []entities.ManifestEntry, skipSet map[string]bool) []string {
	seen := make(map[string]bool, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsRequirement() {
			continue
		}
		name := entry.Requirement.Name
		if skipSet[name] || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// buildDecision computes the per-entry update decision from the already
// fetched registry info. Ineligible entries and entries without a stable
// newer version get a no-op carrying the reason for reporting.
func buildDecision(
	entry entities.ManifestEntry,
	info *entities.RegistryInfo,
	skipSet map[string]bool,
) entities.UpdateDecision {
	req := entry.Requirement
	current := req.PinnedVersion()

	noop := entities.UpdateDecision{
		Name:       req.Name,
		LineNumber: entry.LineNumber,
		OldVersion: current,
	}

	eligible, reason := entities.CheckEligibility(req, skipSet, info)
	if !eligible {
		logger.Debugf("%s is not auto-updatable (%s)", req.Name, reason)
		noop.Reason = reason
		return noop
	}

	latest, err := entities.SelectLatestStable(req.Name, info.Versions)
	if err != nil {
		var noStable *entities.NoStableVersionError
		if errors.As(err, &noStable) {
			logger.Debugf("%s has no stable version, leaving unchanged", req.Name)
			noop.Reason = entities.SkipNoStableVersion
		}
		return noop
	}

	if current == latest {
		return noop
	}

	return entities.UpdateDecision{
		Name:       req.Name,
		LineNumber: entry.LineNumber,
		OldVersion: current,
		NewVersion: latest,
	}
}
