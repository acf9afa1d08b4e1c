// Package metadata decodes, canonicalizes, validates, migrates and encodes
// MDRepo simulation metadata records.
//
// # Overview
//
// A metadata record describes one molecular-dynamics simulation run. It is
// written in JSON or TOML and follows one of three schema versions:
//
//   - legacy: the permissive pre-v1 layout (MetaLegacy)
//   - v1: the nested layout with an [initial] block (MetaV1)
//   - v2: the flattened layout (MetaV2)
//
// Each version is its own closed Go type. Unknown fields are rejected at
// decode time and required fields must be present.
//
// # Pipeline
//
//	raw text → Decode → Canonicalize → Validate (findings)
//	                                 → Migrate → Canonicalize → Encode
//
// Decode keeps scalar variants as the source wrote them: a date may be a
// native TOML date or a string, a paper volume may be an integer, a float
// or a string. Canonicalize resolves them once, so nothing past that point
// branches on the source encoding.
//
// # Usage
//
//	rec, err := metadata.DecodeFile("run.toml", content, metadata.FormatAuto, metadata.SchemaV1)
//	if err != nil {
//	    return err
//	}
//	if err := metadata.Canonicalize(rec); err != nil {
//	    return err
//	}
//	result := metadata.Validate(rec, metadata.DefaultRules(rec.SchemaVersion()))
//	for _, f := range result.Findings {
//	    fmt.Println(f)
//	}
//
// # Errors
//
// Fatal failures are typed (*DecodeError, *EmptyInputError,
// *UnsupportedEncodingError, *DateParseError, *MigrationError) and match the
// package sentinels with errors.Is. Validation findings are not errors.
//
// # Package Structure
//
//   - format.go: encoding selection
//   - scalar.go: Datelike and Numlike variants
//   - types.go, protein.go, legacy.go, v1.go, v2.go: record models
//   - decoder.go: strict decoding
//   - canonical.go: normalization
//   - validator.go: domain rules
//   - migrate.go: version migration
//   - serialize.go: encoding
//   - identity.go: deterministic record identity
package metadata
