package repositories

// ManifestRepository abstracts the manifest file storage. The file is read
// once at the start of a run and written at most once at the end; the write
// replaces the whole content in a single call.
type ManifestRepository interface {
	// Read returns the manifest text. Unreadable or undecodable files
	// surface as *entities.ParseError.
	Read(path string) (string, error)

	// Write replaces the manifest with the given content.
	Write(path, content string) error
}
