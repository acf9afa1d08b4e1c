// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Metadata document discovery and checksums
//   - loader: Decoding discovered documents into records
//
// # Usage
//
//	import (
//	    "github.com/mdrepo/mdrmeta/internal/files/loader"
//	    "github.com/mdrepo/mdrmeta/internal/files/scanner"
//	)
//
//	fileScanner := scanner.NewScanner(checksum.New())
//	result, err := fileScanner.Scan([]string{"./metadata"})
//
//	fileLoader := loader.NewLoader(metadata.FormatAuto, metadata.SchemaV1)
//	for _, src := range result.Files {
//	    rec, err := fileLoader.Load(src)
//	    ...
//	}
package files
