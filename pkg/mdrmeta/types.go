package mdrmeta

import (
	"path/filepath"
	"strings"
	"time"
)

// SourceFile is one metadata document discovered on disk or read from stdin.
type SourceFile struct {
	// Path as given or discovered, OS separators preserved. "-" for stdin.
	Path string

	// RelativePath is slash-separated and relative to the scanned root.
	// Equals Path for files named directly on the command line.
	RelativePath string

	// Name is the base file name.
	Name string

	// Extension includes the leading dot: ".toml".
	Extension string

	// Content is the unmodified document.
	Content []byte

	SizeBytes int64

	// Checksum is the SHA-256 of the whitespace-normalized content.
	Checksum string

	// ChecksumRaw is the SHA-256 of Content.
	ChecksumRaw string

	ModifiedAt time.Time
}

// IsStdin reports whether the document was read from standard input.
func (f SourceFile) IsStdin() bool { return f.Path == StdinPath }

// ScanResult lists the documents found for a set of command-line paths,
// in the order the paths were given and lexical order within directories.
type ScanResult struct {
	Files []SourceFile
}

// FileScanner discovers metadata documents.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileScanner interface {
	// Scan resolves each path: a directory contributes every metadata
	// document beneath it, a file or "-" contributes itself.
	Scan(paths []string) (ScanResult, error)
}

// MetadataExtensions are the file extensions discovered inside directories.
var MetadataExtensions = []string{".toml", ".json"}

// IsMetadataPath reports whether path carries a metadata document extension.
func IsMetadataPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range MetadataExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
