package manifestfile

import (
	"errors"
	"os"
	"unicode/utf8"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

const manifestFileMode = 0o644

var errNotUTF8 = errors.New("file content is not valid UTF-8")

// FileManifestRepository implements repositories.ManifestRepository on the
// local filesystem. The write is a single whole-file replace; it is not
// crash-atomic across process failure.
type FileManifestRepository struct{}

// NewManifestRepository creates a file-backed manifest repository.
func NewManifestRepository() repositories.ManifestRepository {
	return &FileManifestRepository{}
}

// Read returns the manifest text, failing with *entities.ParseError when the
// file is unreadable or not valid UTF-8.
func (r *FileManifestRepository) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &entities.ParseError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &entities.ParseError{Path: path, Err: errNotUTF8}
	}
	return string(data), nil
}

// Write replaces the manifest content in place.
func (r *FileManifestRepository) Write(path, content string) error {
	return os.WriteFile(path, []byte(content), manifestFileMode)
}
