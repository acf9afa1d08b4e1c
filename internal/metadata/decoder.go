package metadata

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Decode parses content as a record of the given schema version. An
// explicit format wins; FormatAuto applies the leading-brace heuristic.
// Scalar variants are kept in the representation the source used.
func Decode(content []byte, format Format, version SchemaVersion) (Record, error) {
	return DecodeSource(content, format, version, "")
}

// DecodeSource is Decode with a source name used in error messages.
func DecodeSource(content []byte, format Format, version SchemaVersion, source string) (Record, error) {
	if len(content) == 0 {
		return nil, &EmptyInputError{Source: source}
	}
	if format == FormatAuto {
		format = DetectFormat(content)
	}

	rec, err := newRecord(version)
	if err != nil {
		return nil, err
	}

	var tree map[string]any
	switch format {
	case FormatJSON:
		if err := decodeJSON(content, rec); err != nil {
			return nil, wrapJSONError(err, content, source)
		}
		if err := json.Unmarshal(content, &tree); err != nil {
			return nil, wrapJSONError(err, content, source)
		}
	case FormatTOML:
		if err := decodeTOML(content, rec); err != nil {
			return nil, wrapTOMLError(err, source)
		}
		if err := toml.Unmarshal(content, &tree); err != nil {
			return nil, wrapTOMLError(err, source)
		}
	default:
		return nil, &UnsupportedEncodingError{Source: source, Extension: string(format)}
	}

	if err := checkFieldSet(tree, reflect.TypeOf(rec).Elem(), ""); err != nil {
		err.Source, err.Format = source, format
		return nil, err
	}
	if err := resolveShapes(rec); err != nil {
		err.Source, err.Format = source, format
		return nil, err
	}
	return rec, nil
}

// DecodeFile resolves the format from the file extension unless format is
// explicit, then decodes. Empty content is rejected before the extension
// is looked at.
func DecodeFile(path string, content []byte, format Format, version SchemaVersion) (Record, error) {
	if len(content) == 0 {
		return nil, &EmptyInputError{Source: path}
	}
	if format == FormatAuto {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		format = f
	}
	return DecodeSource(content, format, version, path)
}

func newRecord(version SchemaVersion) (Record, error) {
	switch version {
	case SchemaLegacy:
		return &MetaLegacy{}, nil
	case SchemaV1:
		return &MetaV1{}, nil
	case SchemaV2:
		return &MetaV2{}, nil
	default:
		return nil, fmt.Errorf("unknown schema version %q", version)
	}
}

func decodeJSON(content []byte, rec Record) error {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(rec); err != nil {
		return err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return &DecodeError{Message: "unexpected data after the top-level object"}
	}
	return nil
}

func decodeTOML(content []byte, rec Record) error {
	dec := toml.NewDecoder(bytes.NewReader(content)).
		DisallowUnknownFields().
		EnableUnmarshalerInterface()
	return dec.Decode(rec)
}

// wrapJSONError converts encoding/json errors into a DecodeError with a
// line and column computed from the byte offset.
func wrapJSONError(err error, content []byte, source string) error {
	var own *DecodeError
	if errors.As(err, &own) {
		own.Source, own.Format = source, FormatJSON
		return own
	}

	de := &DecodeError{Source: source, Format: FormatJSON, Message: err.Error()}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		de.Line, de.Column = offsetPosition(content, syntaxErr.Offset)
		de.Hint = "Check for missing commas, quotes or braces near the reported position."
	case errors.As(err, &typeErr):
		de.Line, de.Column = offsetPosition(content, typeErr.Offset)
		de.Field = typeErr.Field
		de.Message = fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		name := strings.TrimPrefix(err.Error(), "json: unknown field ")
		if unquoted, uerr := strconv.Unquote(name); uerr == nil {
			name = unquoted
		}
		de.Field = name
		de.Message = "unknown field"
		de.Hint = "Remove the field or check its spelling against the schema version being decoded."
	}
	return de
}

func offsetPosition(content []byte, offset int64) (line, col int) {
	if offset > int64(len(content)) {
		offset = int64(len(content))
	}
	line, col = 1, 1
	for _, b := range content[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// checkFieldSet walks the generic document tree alongside the record type.
// Keys must match a field name exactly and fields without omitempty must be
// present and non-null.
func checkFieldSet(node any, t reflect.Type, path string) *DecodeError {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Implements(textMarshalerType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		table, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		fields := make(map[string]reflect.StructField, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				continue
			}
			fields[name] = f
			v, present := table[name]
			if (!present || v == nil) && !strings.Contains(opts, "omitempty") {
				return &DecodeError{Field: joinPath(path, name), Message: fmt.Sprintf("missing field %q", name)}
			}
		}
		for _, key := range sortedKeys(table) {
			f, known := fields[key]
			if !known {
				return &DecodeError{
					Field:   joinPath(path, key),
					Message: "unknown field",
					Hint:    "Remove the field or check its spelling against the schema version being decoded.",
				}
			}
			if err := checkFieldSet(table[key], f.Type, joinPath(path, key)); err != nil {
				return err
			}
		}
	case reflect.Slice:
		items, ok := node.([]any)
		if !ok {
			return nil
		}
		for i, item := range items {
			if err := checkFieldSet(item, t.Elem(), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// resolveShapes narrows every union-typed entry to exactly one shape.
func resolveShapes(rec Record) *DecodeError {
	switch m := rec.(type) {
	case *MetaV1:
		for i := range m.Proteins {
			if m.Proteins[i].narrow() == ProteinShapeInvalid {
				return &DecodeError{
					Field:   fmt.Sprintf("proteins[%d]", i),
					Message: "data did not match any protein shape",
					Hint:    "Use pdb_id, uniprot_id, or both molecule_id_type and molecule_id.",
				}
			}
		}
	case *MetaV2:
		for i, l := range m.Ligands {
			if l.IsPrimary != nil && l.Primary != nil {
				return &DecodeError{Field: fmt.Sprintf("ligands[%d].is_primary", i), Message: "duplicate field is_primary (alias primary)"}
			}
		}
		for i, p := range m.Papers {
			if p.IsPrimary != nil && p.Primary != nil {
				return &DecodeError{Field: fmt.Sprintf("papers[%d].is_primary", i), Message: "duplicate field is_primary (alias primary)"}
			}
		}
	}
	return nil
}
