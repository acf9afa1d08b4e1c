package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// CanonicalDateLayout is the only date form a canonical record carries.
const CanonicalDateLayout = "2006-01-02"

// Datelike holds a date that arrived either as a string or as a native TOML
// date/datetime. The zero value is the empty string variant.
type Datelike struct {
	native bool
	text   string
	at     time.Time
}

// DateString returns the string variant.
func DateString(s string) Datelike { return Datelike{text: s} }

// DateValue returns the native variant for t. Its textual form is the
// TOML local-date form when t has no clock component.
func DateValue(t time.Time) Datelike {
	text := t.Format(time.RFC3339Nano)
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 && t.Location() == time.UTC {
		text = t.Format(CanonicalDateLayout)
	}
	return Datelike{native: true, text: text, at: t}
}

// IsNative reports whether the value came from a native date.
func (d Datelike) IsNative() bool { return d.native }

// String returns the source text of either variant.
func (d Datelike) String() string { return d.text }

// Canonical resolves the value to the YYYY-MM-DD string variant, reading
// ambiguous strings in UTC.
func (d Datelike) Canonical() (Datelike, error) {
	if d.native {
		return DateString(d.at.UTC().Format(CanonicalDateLayout)), nil
	}
	t, err := dateparse.ParseIn(strings.TrimSpace(d.text), time.UTC)
	if err != nil {
		return d, err
	}
	return DateString(t.UTC().Format(CanonicalDateLayout)), nil
}

func (d Datelike) MarshalText() ([]byte, error) {
	return []byte(d.text), nil
}

func (d Datelike) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.text)
}

// UnmarshalJSON leaves d untouched for null; the decoder reports the
// field as missing.
func (d *Datelike) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	*d = DateString(s)
	return nil
}

func (d *Datelike) UnmarshalTOML(node *unstable.Node) error {
	switch node.Kind {
	case unstable.String:
		*d = DateString(string(node.Data))
		return nil
	case unstable.LocalDate, unstable.LocalDateTime, unstable.DateTime:
		t, err := parseTOMLDate(node)
		if err != nil {
			return err
		}
		*d = Datelike{native: true, text: string(node.Data), at: t}
		return nil
	default:
		return &DecodeError{Message: fmt.Sprintf("expected a date or a string, got %s", node.Kind)}
	}
}

// parseTOMLDate interprets the three TOML date kinds. Local values are
// pinned to UTC.
func parseTOMLDate(node *unstable.Node) (time.Time, error) {
	switch node.Kind {
	case unstable.LocalDate:
		var ld toml.LocalDate
		if err := ld.UnmarshalText(node.Data); err != nil {
			return time.Time{}, err
		}
		return ld.AsTime(time.UTC), nil
	case unstable.LocalDateTime:
		var ldt toml.LocalDateTime
		if err := ldt.UnmarshalText(node.Data); err != nil {
			return time.Time{}, err
		}
		return ldt.AsTime(time.UTC), nil
	default:
		raw := []byte(string(node.Data))
		if len(raw) > 10 && (raw[10] == ' ' || raw[10] == 't') {
			raw[10] = 'T'
		}
		return time.Parse(time.RFC3339Nano, strings.ToUpper(string(raw)))
	}
}

// NumKind tags the variants of Numlike.
type NumKind int

const (
	NumKindString NumKind = iota
	NumKindInt
	NumKindFloat
	// NumKindOther covers native values that are neither integers nor
	// floats: booleans, dates, arrays, tables and JSON objects.
	NumKindOther
)

// Numlike holds a bibliographic number that arrived either as a string or
// as a native value.
type Numlike struct {
	kind  NumKind
	str   string
	i     int64
	f     float64
	other any

	// digits keeps an integer literal too large for int64.
	digits string
}

func NumText(s string) Numlike   { return Numlike{kind: NumKindString, str: s} }
func NumInt(i int64) Numlike     { return Numlike{kind: NumKindInt, i: i} }
func NumFloat(f float64) Numlike { return Numlike{kind: NumKindFloat, f: f} }
func NumOther(v any) Numlike     { return Numlike{kind: NumKindOther, other: v} }

func (n Numlike) Kind() NumKind { return n.kind }

// IsText reports whether n is already the string variant.
func (n Numlike) IsText() bool { return n.kind == NumKindString }

// String renders the decimal form used by the canonical record. Native
// values that are not numbers render as the empty string.
func (n Numlike) String() string {
	switch n.kind {
	case NumKindString:
		return n.str
	case NumKindInt:
		return strconv.FormatInt(n.i, 10)
	case NumKindFloat:
		if n.digits != "" {
			return n.digits
		}
		return strconv.FormatFloat(n.f, 'f', -1, 64)
	default:
		return ""
	}
}

// Canonical returns the string variant of n.
func (n Numlike) Canonical() Numlike { return NumText(n.String()) }

func (n Numlike) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n Numlike) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case NumKindInt:
		return []byte(strconv.FormatInt(n.i, 10)), nil
	case NumKindFloat:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return nil, fmt.Errorf("%v is not representable in JSON", n.f)
		}
		if n.digits != "" {
			return []byte(n.digits), nil
		}
		return json.Marshal(n.f)
	case NumKindOther:
		return json.Marshal(n.other)
	default:
		return json.Marshal(n.str)
	}
}

// UnmarshalJSON leaves n untouched for null, like Datelike.
func (n *Numlike) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumText(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if i, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			*n = NumInt(i)
			return nil
		}
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*n = NumFloat(f)
		if isIntegerLiteral(data) {
			n.digits = string(data)
		}
	default:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*n = NumOther(v)
	}
	return nil
}

func (n *Numlike) UnmarshalTOML(node *unstable.Node) error {
	switch node.Kind {
	case unstable.String:
		*n = NumText(string(node.Data))
	case unstable.Integer:
		i, err := parseTOMLInteger(node.Data)
		if err != nil {
			return &DecodeError{Message: err.Error()}
		}
		*n = NumInt(i)
	case unstable.Float:
		f, err := parseTOMLFloat(node.Data)
		if err != nil {
			return &DecodeError{Message: err.Error()}
		}
		*n = NumFloat(f)
	default:
		v, err := tomlNodeValue(node)
		if err != nil {
			return &DecodeError{Message: err.Error()}
		}
		*n = NumOther(v)
	}
	return nil
}

func parseTOMLInteger(raw []byte) (int64, error) {
	s := string(raw)
	if len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9' {
		return 0, fmt.Errorf("invalid integer %q: leading zero", s)
	}
	return strconv.ParseInt(s, 0, 64)
}

func parseTOMLFloat(raw []byte) (float64, error) {
	s := strings.ReplaceAll(string(raw), "_", "")
	switch s {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// tomlNodeValue converts a value node into plain Go values so that a
// non-numeric Numlike still serializes to JSON.
func tomlNodeValue(node *unstable.Node) (any, error) {
	switch node.Kind {
	case unstable.String:
		return string(node.Data), nil
	case unstable.Bool:
		return string(node.Data) == "true", nil
	case unstable.Integer:
		return parseTOMLInteger(node.Data)
	case unstable.Float:
		return parseTOMLFloat(node.Data)
	case unstable.LocalDate, unstable.LocalDateTime, unstable.DateTime, unstable.LocalTime:
		return string(node.Data), nil
	case unstable.Array:
		values := []any{}
		it := node.Children()
		for it.Next() {
			v, err := tomlNodeValue(it.Node())
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	case unstable.InlineTable:
		table := map[string]any{}
		it := node.Children()
		for it.Next() {
			kv := it.Node()
			var parts []string
			keys := kv.Key()
			for keys.Next() {
				parts = append(parts, string(keys.Node().Data))
			}
			v, err := tomlNodeValue(kv.Value())
			if err != nil {
				return nil, err
			}
			table[strings.Join(parts, ".")] = v
		}
		return table, nil
	default:
		return nil, fmt.Errorf("unexpected %s value", node.Kind)
	}
}

// isIntegerLiteral reports whether data is an optionally signed run of digits.
func isIntegerLiteral(data []byte) bool {
	if len(data) > 0 && data[0] == '-' {
		data = data[1:]
	}
	if len(data) == 0 {
		return false
	}
	for _, c := range data {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
