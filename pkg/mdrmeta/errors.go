package mdrmeta

import (
	"errors"
	"strings"

	"github.com/mdrepo/mdrmeta/internal/metadata"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := processor.Check(path)
//	if errors.Is(err, mdrmeta.ErrFindings) {
//	    // Validation reported problems and strict mode was requested
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFindings indicates validation reported findings in strict mode.
	ErrFindings = errors.New("validation findings")

	// ErrUsage indicates invalid command-line arguments or flags.
	ErrUsage = errors.New("usage error")
)

// usageError marks err as command-line misuse without changing its message.
type usageError struct {
	err error
}

func (e *usageError) Error() string        { return e.err.Error() }
func (e *usageError) Unwrap() error        { return e.err }
func (e *usageError) Is(target error) bool { return target == ErrUsage }

// UsageError tags err so that ExitCodeForError maps it to ExitUsageError.
func UsageError(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

// coreErrors are the pipeline failures. They always exit with
// ExitGeneralError, whatever text the input put into their messages.
var coreErrors = []error{
	metadata.ErrDecode,
	metadata.ErrEmptyInput,
	metadata.ErrUnsupportedEncoding,
	metadata.ErrDateParse,
	metadata.ErrMigration,
}

// usageErrorPatterns are the message fragments cobra produces for
// command-line misuse it reports before any flag or Args hook runs, such as
// an unknown subcommand. They are only matched against unwrapped errors.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"arg(s), received",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for everything else, including every decode,
// canonicalization and migration failure.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrFindings):
		return ExitFindings
	}

	for _, core := range coreErrors {
		if errors.Is(err, core) {
			return ExitGeneralError
		}
	}

	// Errors that wrap a cause came from this program, not from cobra.
	if errors.Unwrap(err) != nil {
		return ExitGeneralError
	}
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
