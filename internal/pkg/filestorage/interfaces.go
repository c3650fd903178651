package filestorage

import (
	"io"
)

// FileInfo represents information about a stored file
type FileInfo struct {
	Path     string // Full path where the file is stored
	Filename string // Name relative to the storage root
	FileSize int64  // Size in bytes
}

// WriteFunc streams file content into w
type WriteFunc func(w io.Writer) error

// FileStorage defines the interface for report export storage
type FileStorage interface {
	// SaveFile writes a file under the storage root, replacing any previous version
	SaveFile(name string, write WriteFunc) (*FileInfo, error)

	// GetFullPath returns the full filesystem path for a stored file name
	GetFullPath(name string) string
}
