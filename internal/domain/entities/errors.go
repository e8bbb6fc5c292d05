package entities

import (
	"errors"
	"fmt"
)

// ErrOutdated signals that a check run found outdated requirements. It is
// not a failure: the caller maps it to a non-zero exit status.
var ErrOutdated = errors.New("requirements are out of date")

// ParseError reports an unreadable or undecodable manifest file. It is fatal
// and aborts the run before any network call.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to read manifest %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RegistryFetchError reports a network or HTTP failure for a single package.
// It is fatal: a partially-resolved manifest must never be written.
type RegistryFetchError struct {
	Package    string
	StatusCode int // Zero when the request never got a response
	Err        error
}

func (e *RegistryFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("registry returned status %d for package %q", e.StatusCode, e.Package)
	}
	return fmt.Sprintf("registry fetch failed for package %q: %v", e.Package, e.Err)
}

func (e *RegistryFetchError) Unwrap() error { return e.Err }

// NoStableVersionError reports a package whose releases are all pre-releases.
// It is local to one entry: the line is left unchanged and the run continues.
type NoStableVersionError struct {
	Package string
}

func (e *NoStableVersionError) Error() string {
	return fmt.Sprintf("package %q has no stable version", e.Package)
}
