// Package checksum provides metadata document hashing with normalization support.
//
// Three checksums identify a document:
//
//   - Raw checksum: Hash of the exact bytes (detects all changes)
//   - Normalized checksum: Hash after removing comments, trailing whitespace
//     and blank lines (formatting-independent content identity)
//   - Record checksum: Hash of the record's JSON encoding, equal for a TOML
//     and a JSON document once both are canonical
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(content)
//	normalizedChecksum := calculator.CalculateNormalized(content)
//	recordChecksum, err := calculator.CalculateRecord(rec)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
