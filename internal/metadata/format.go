package metadata

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies one of the two supported textual encodings.
type Format string

const (
	// FormatAuto defers the choice to DetectFormat.
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

func (f Format) String() string {
	if f == FormatAuto {
		return "auto"
	}
	return string(f)
}

// ParseFormat maps a user-supplied name to a Format. "auto" and "" yield FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format %q (expected json, toml or auto)", name)
	}
}

// FormatFromPath selects the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	switch strings.ToLower(ext) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatAuto, &UnsupportedEncodingError{Source: path, Extension: ext}
	}
}

// DetectFormat applies the leading-brace heuristic: content whose first
// non-whitespace byte is '{' is JSON, anything else is TOML.
func DetectFormat(content []byte) Format {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(content, utf8BOM), " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatTOML
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}
