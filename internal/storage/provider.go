// Package storage defines the project file-system abstraction for rule files.
package storage

// Provider is the interface for rule file operations. All paths are
// relative to the project root.
type Provider interface {
	// List returns the sorted relative paths of the files directly under
	// dir whose names end in suffix. A missing dir is apperr.ErrNotFound.
	List(dir, suffix string) ([]string, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically writes content to path, creating parent directories.
	Write(path string, content []byte) error
	// Delete removes the file at path.
	Delete(path string) error
	// Exists reports whether a regular file exists at path.
	Exists(path string) (bool, error)
	// Root returns the absolute project root.
	Root() string
}
