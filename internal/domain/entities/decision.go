package entities

// SkipReason explains why an entry was left untouched.
type SkipReason string

const (
	// SkipExplicit marks a package listed in the caller-supplied skip set.
	SkipExplicit SkipReason = "explicitly-skipped"
	// SkipHidden marks a package the registry reports as hidden.
	SkipHidden SkipReason = "hidden-on-registry"
	// SkipRange marks a requirement pinned to a version range.
	SkipRange SkipReason = "pinned-to-range"
	// SkipNoStableVersion marks a package with releases but no stable one.
	SkipNoStableVersion SkipReason = "no-stable-version"
)

// UpdateDecision is the immutable per-entry outcome of the resolution phase.
// An empty NewVersion means "leave the line untouched"; Reason carries the
// skip cause for reporting.
type UpdateDecision struct {
	Name       string
	LineNumber int
	OldVersion string // Empty when the requirement was unpinned
	NewVersion string // Empty for a no-op
	Reason     SkipReason
}

// IsChange returns true when the decision rewrites its line.
func (d UpdateDecision) IsChange() bool {
	return d.NewVersion != ""
}

// Change is one reported line change of a check or update run.
type Change struct {
	Name       string
	OldVersion string
	NewVersion string
}
