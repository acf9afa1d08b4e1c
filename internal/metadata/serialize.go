package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Encode renders rec in the given format. Absent optional fields are
// omitted rather than written as null. The output is byte-stable for a
// given canonical record.
func Encode(rec Record, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		if path, v, ok := nonFiniteField(reflect.ValueOf(rec), ""); ok {
			return nil, fmt.Errorf("encode json: %s: %v is not representable in JSON", path, v)
		}
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(false)
		if err := enc.Encode(rec); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
	default:
		return nil, &UnsupportedEncodingError{Source: "output", Extension: string(format)}
	}
	return buf.Bytes(), nil
}

// nonFiniteField finds the first NaN or infinite float in v and returns its
// field path in the record's JSON naming. TOML accepts such values; JSON
// has no literal for them.
func nonFiniteField(v reflect.Value, path string) (string, float64, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return "", 0, false
		}
		return nonFiniteField(v.Elem(), path)
	case reflect.Float32, reflect.Float64:
		if f := v.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
			return path, f, true
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if p, f, ok := nonFiniteField(v.Index(i), fmt.Sprintf("%s[%d]", path, i)); ok {
				return p, f, true
			}
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				continue
			}
			if name == "" {
				name = field.Name
			}
			if path != "" {
				name = path + "." + name
			}
			if p, f, ok := nonFiniteField(v.Field(i), name); ok {
				return p, f, true
			}
		}
	}
	return "", 0, false
}
