package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File is one entry discovered while walking a directory.
type File interface {
	// Path returns the full path of the entry.
	Path() string

	// RelativePath returns the slash-separated path relative to the walked directory.
	RelativePath() string

	// Info returns entry metadata.
	Info() FileInfo

	// ReadContent returns the file's content.
	ReadContent() ([]byte, error)
}

// Directory is a directory that can be traversed.
type Directory interface {
	// Path returns the directory path as opened.
	Path() string

	// Walk visits every entry below the directory in lexical order, the
	// directory itself included. Returning fs.SkipDir from fn for a
	// directory entry skips its contents. Any other error stops the walk.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is the file access used by the services.
// Missing paths produce errors matching fs.ErrNotExist.
type FileSystemProvider interface {
	// Open opens a directory at the specified path.
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path.
	ReadFile(path string) ([]byte, error)

	// WriteFile creates or truncates the file at path.
	WriteFile(path string, data []byte) error

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
