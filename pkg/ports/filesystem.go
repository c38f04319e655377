package ports

import "io"

// FileSystem abstracts file system operations.
type FileSystem interface {
	// Create creates or truncates the named file for binary writing.
	// Parent directories are created as needed.
	Create(path string) (io.WriteCloser, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)
}
