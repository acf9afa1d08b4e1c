// Package scanner discovers metadata documents.
//
// The scanner package is responsible for:
//   - Resolving command-line paths (files, directories and "-" for stdin)
//   - Recursively discovering .toml and .json documents below directories
//   - Recording raw and normalized checksums for each document
//
// The scanner is filesystem-agnostic through filesystem.FileSystemProvider,
// enabling both production use with the OS filesystem and testing with
// in-memory filesystems.
package scanner
