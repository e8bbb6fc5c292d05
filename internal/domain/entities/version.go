package entities

import (
	goversion "github.com/hashicorp/go-version"
)

// SelectLatestStable parses the given release version strings into totally
// ordered values, discards pre-releases, and returns the maximum of the
// remainder. Version strings that cannot be parsed at all are never
// candidates. When nothing stable remains a NoStableVersionError is
// returned; callers treat it as local to the affected entry.
func SelectLatestStable(name string, versions []string) (string, error) {
	var latest *goversion.Version
	var latestRaw string

	for _, raw := range versions {
		parsed, err := goversion.NewVersion(raw)
		if err != nil {
			continue
		}
		if parsed.Prerelease() != "" {
			continue
		}
		if latest == nil || parsed.GreaterThan(latest) {
			latest = parsed
			latestRaw = raw
		}
	}

	if latest == nil {
		return "", &NoStableVersionError{Package: name}
	}
	return latestRaw, nil
}
