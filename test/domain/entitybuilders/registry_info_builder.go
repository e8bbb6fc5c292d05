//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/reqsync/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RegistryInfoBuilder helps create test registry answers with a fluent interface.
type RegistryInfoBuilder struct {
	*testkit.BaseBuilder
	name     string
	versions []string
	hidden   bool
}

// NewRegistryInfoBuilder creates a new builder with sensible defaults.
func NewRegistryInfoBuilder() *RegistryInfoBuilder {
	return &RegistryInfoBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-package",
		versions:    []string{"1.0.0", "1.2.0"},
	}
}

// WithName sets the package name.
func (b *RegistryInfoBuilder) WithName(name string) *RegistryInfoBuilder {
	b.name = name
	return b
}

// WithVersions sets the available release versions.
func (b *RegistryInfoBuilder) WithVersions(versions ...string) *RegistryInfoBuilder {
	b.versions = versions
	return b
}

// WithHidden sets the hidden/deprecated flag.
func (b *RegistryInfoBuilder) WithHidden(hidden bool) *RegistryInfoBuilder {
	b.hidden = hidden
	return b
}

// Build creates the registry info (satisfies testkit.Builder interface).
func (b *RegistryInfoBuilder) Build() interface{} {
	return b.BuildRegistryInfo()
}

// BuildRegistryInfo creates the registry info with a concrete return type.
func (b *RegistryInfoBuilder) BuildRegistryInfo() *entities.RegistryInfo {
	return &entities.RegistryInfo{
		Name:     b.name,
		Versions: b.versions,
		Hidden:   b.hidden,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RegistryInfoBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-package"
	b.versions = []string{"1.0.0", "1.2.0"}
	b.hidden = false
	return b
}

// Clone creates a deep copy of the RegistryInfoBuilder.
func (b *RegistryInfoBuilder) Clone() testkit.Builder {
	versions := make([]string, len(b.versions))
	copy(versions, b.versions)
	return &RegistryInfoBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		versions:    versions,
		hidden:      b.hidden,
	}
}
