package mdrmeta

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Command completed successfully
	ExitGeneralError = 1  // Decode, empty input, encoding, date or migration failure
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitFindings     = 4  // Validation findings with --strict
	ExitConfigError  = 10 // Invalid configuration file or values
)

const (
	// ConfigFileName is the project configuration file looked up in the
	// working directory.
	ConfigFileName = ".mdrmeta.yaml"

	// EnvPrefix prefixes every environment variable the CLI reads.
	EnvPrefix = "MDRMETA_"

	// StdinPath names standard input wherever a file path is accepted.
	StdinPath = "-"
)
