package metadata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrDecode              = errors.New("decode failed")
	ErrEmptyInput          = errors.New("input is empty")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrDateParse           = errors.New("date cannot be parsed")
	ErrMigration           = errors.New("migration failed")
)

// DecodeError reports structurally invalid input or a field outside the
// closed schema. Line and Column are 0 when the codec did not report them.
type DecodeError struct {
	Source  string // file name, "-" for stdin, empty for raw strings
	Format  Format
	Line    int
	Column  int
	Field   string
	Message string
	Hint    string
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("decode error")
	if e.Source != "" {
		b.WriteString(" in ")
		b.WriteString(e.Source)
	}
	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&b, " (line %d, col %d)", e.Line, e.Column)
		} else {
			fmt.Fprintf(&b, " (line %d)", e.Line)
		}
	}
	if e.Format != "" {
		fmt.Fprintf(&b, " [%s]", e.Format)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " [field: %s]", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\n\nHint: ")
		b.WriteString(e.Hint)
	}
	return b.String()
}

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// EmptyInputError is returned for zero-length input before any parse is attempted.
type EmptyInputError struct {
	Source string
}

func (e *EmptyInputError) Error() string {
	if e.Source == "" {
		return "File is empty"
	}
	return fmt.Sprintf("%s: File is empty", e.Source)
}

func (e *EmptyInputError) Is(target error) bool { return target == ErrEmptyInput }

// UnsupportedEncodingError is returned when no explicit format was given and
// the file extension is absent or unrecognized.
type UnsupportedEncodingError struct {
	Source    string
	Extension string
}

func (e *UnsupportedEncodingError) Error() string {
	if e.Extension == "" {
		return fmt.Sprintf("%s: No file extension", e.Source)
	}
	return fmt.Sprintf("%s: Unknown file extension %q", e.Source, e.Extension)
}

func (e *UnsupportedEncodingError) Is(target error) bool { return target == ErrUnsupportedEncoding }

// DateParseError carries the raw date value that could not be resolved.
type DateParseError struct {
	Field string
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	msg := fmt.Sprintf("%s: cannot parse date %q", e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DateParseError) Is(target error) bool { return target == ErrDateParse }

func (e *DateParseError) Unwrap() error { return e.Err }

// MigrationError reports a group that must be present in the source record
// for the target schema version, or an unsupported direction.
type MigrationError struct {
	From    SchemaVersion
	To      SchemaVersion
	Field   string
	Message string
}

func (e *MigrationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("cannot migrate %s to %s: %s: %s", e.From, e.To, e.Field, e.Message)
	}
	return fmt.Sprintf("cannot migrate %s to %s: %s", e.From, e.To, e.Message)
}

func (e *MigrationError) Is(target error) bool { return target == ErrMigration }

// wrapTOMLError converts go-toml errors into a DecodeError with position data.
func wrapTOMLError(err error, source string) error {
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		first := strictErr.Errors[0]
		row, col := first.Position()
		return &DecodeError{
			Source:  source,
			Format:  FormatTOML,
			Line:    row,
			Column:  col,
			Field:   strings.Join(first.Key(), "."),
			Message: "unknown field",
			Hint:    "Remove the field or check its spelling against the schema version being decoded.",
		}
	}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return &DecodeError{
			Source:  source,
			Format:  FormatTOML,
			Line:    row,
			Column:  col,
			Field:   strings.Join(decodeErr.Key(), "."),
			Message: decodeErr.Error(),
		}
	}

	var decodeErrPtr *DecodeError
	if errors.As(err, &decodeErrPtr) {
		if decodeErrPtr.Source == "" {
			decodeErrPtr.Source = source
		}
		decodeErrPtr.Format = FormatTOML
		return decodeErrPtr
	}

	return &DecodeError{Source: source, Format: FormatTOML, Message: err.Error()}
}
