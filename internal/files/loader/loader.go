package loader

import (
	"github.com/mdrepo/mdrmeta/internal/files/scanner"
	"github.com/mdrepo/mdrmeta/internal/metadata"
	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

// Loader decodes source files into records of one schema version.
type Loader struct {
	format  metadata.Format
	version metadata.SchemaVersion
}

// NewLoader creates a loader. FormatAuto picks the encoding per document.
func NewLoader(format metadata.Format, version metadata.SchemaVersion) *Loader {
	return &Loader{format: format, version: version}
}

// Version returns the schema version records are decoded as.
func (l *Loader) Version() metadata.SchemaVersion { return l.version }

// Load decodes one source file. Standard input uses the leading-brace
// heuristic unless a format was given; files use their extension.
// Empty content fails with *metadata.EmptyInputError in both cases.
func (l *Loader) Load(src mdrmeta.SourceFile) (metadata.Record, error) {
	if src.IsStdin() {
		return metadata.DecodeSource(src.Content, l.format, l.version, scanner.StdinName)
	}
	return metadata.DecodeFile(src.Path, src.Content, l.format, l.version)
}
