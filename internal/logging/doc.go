// Package logging provides concrete implementations of the mdrmeta.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed lines to stderr (or any writer)
//   - ZapLogger: Writes structured JSON entries through zap
//   - NullLogger: Discards all messages
//
// New selects an implementation from the --log-format value.
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
