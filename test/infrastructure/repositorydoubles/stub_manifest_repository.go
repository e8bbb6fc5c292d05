//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

// StubManifestRepository implements repositories.ManifestRepository against
// an in-memory file map, recording every write.
type StubManifestRepository struct {
	Files    map[string]string
	ReadErr  error
	WriteErr error

	WriteCalls int
}

// NewStubManifestRepository creates a stub holding the given files.
func NewStubManifestRepository(files map[string]string) *StubManifestRepository {
	if files == nil {
		files = make(map[string]string)
	}
	return &StubManifestRepository{Files: files}
}

func (s *StubManifestRepository) Read(path string) (string, error) {
	if s.ReadErr != nil {
		return "", s.ReadErr
	}
	return s.Files[path], nil
}

func (s *StubManifestRepository) Write(path, content string) error {
	s.WriteCalls++
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Files[path] = content
	return nil
}
