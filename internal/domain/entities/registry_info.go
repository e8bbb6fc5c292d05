package entities

// RegistryInfo is the result of one registry query for a package: every
// known release version string plus the hidden/deprecated flag the registry
// exposes for the package.
type RegistryInfo struct {
	Name     string
	Versions []string
	Hidden   bool
}
