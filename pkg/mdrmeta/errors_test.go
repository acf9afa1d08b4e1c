package mdrmeta_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mdrepo/mdrmeta/internal/metadata"
	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, mdrmeta.ExitSuccess},
		{"unknown flag", errors.New("unknown flag: --foo"), mdrmeta.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), mdrmeta.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), mdrmeta.ExitUsageError},
		{"required flag", errors.New(`required flag(s) "to" not set`), mdrmeta.ExitUsageError},
		{"invalid argument", errors.New(`invalid argument "abc" for "--strict"`), mdrmeta.ExitUsageError},
		{"missing argument", errors.New("missing required argument: <file>"), mdrmeta.ExitUsageError},
		{"config", fmt.Errorf("%w: bad schema", mdrmeta.ErrInvalidConfig), mdrmeta.ExitConfigError},
		{"findings", fmt.Errorf("2 files: %w", mdrmeta.ErrFindings), mdrmeta.ExitFindings},
		{"decode failure", errors.New("decode error in a.toml: unknown field"), mdrmeta.ExitGeneralError},
		{"tagged usage", mdrmeta.UsageError(errors.New("accepts 1 arg(s), received 2")), mdrmeta.ExitUsageError},
		{"tagged usage without pattern", mdrmeta.UsageError(errors.New("bad --to value")), mdrmeta.ExitUsageError},
		{
			"date value that looks like a flag error",
			fmt.Errorf("conversion failed: a.toml: %w", &metadata.DateParseError{Field: "initial.date", Value: "unknown flag"}),
			mdrmeta.ExitGeneralError,
		},
		{
			"decode message that looks like a usage error",
			&metadata.DecodeError{Source: "invalid argument.toml", Message: "missing required argument"},
			mdrmeta.ExitGeneralError,
		},
		{
			"migration failure",
			fmt.Errorf("migration failed: %w", &metadata.MigrationError{From: metadata.SchemaV2, To: metadata.SchemaV1, Message: "unknown command"}),
			mdrmeta.ExitGeneralError,
		},
		{"wrapped cause with usage text", fmt.Errorf("failed to read unknown flag.toml: %w", errors.New("permission denied")), mdrmeta.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mdrmeta.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestUsageError(t *testing.T) {
	if mdrmeta.UsageError(nil) != nil {
		t.Error("UsageError(nil) should be nil")
	}

	cause := errors.New("accepts 1 arg(s), received 3")
	err := mdrmeta.UsageError(cause)
	if err.Error() != cause.Error() {
		t.Errorf("message changed: %q", err.Error())
	}
	if !errors.Is(err, mdrmeta.ErrUsage) {
		t.Error("errors.Is(err, ErrUsage) = false")
	}
	if !errors.Is(err, cause) {
		t.Error("cause is not reachable through Unwrap")
	}
}
