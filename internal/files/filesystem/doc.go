// Package filesystem abstracts the file access the metadata tools need.
//
// Commands read metadata documents, walk directories looking for them and
// write converted output. FileSystemProvider covers those operations so that
// services can run against the OS filesystem in production and against
// MemoryFileSystem in tests.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
