// Package loader turns discovered documents into decoded records.
//
// The loader chooses the encoding for each document (an explicit format,
// the file extension, or the leading-brace heuristic for standard input)
// and decodes it against the selected schema version. Decode failures are
// returned unchanged so callers can classify them with errors.Is.
package loader
