package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

var rootCmd = &cobra.Command{
	Use:   "mdrmeta",
	Short: "Canonicalize, validate and migrate MDRepo simulation metadata",
	Long: `mdrmeta reads MDRepo molecular-dynamics simulation metadata written in TOML
or JSON, brings it to canonical form, validates it against the rules of its
schema version and converts it between encodings and schema versions.

Schema versions: legacy, v1 (default), v2.
A file argument of "-" reads standard input; its encoding is detected from
the first non-blank character unless --format is given.

Configuration precedence (highest first):
  command-line flags > MDRMETA_* environment (.env honored) > .mdrmeta.yaml

Exit Codes:
  0  - Success
  1  - General error (decode, canonicalization or migration failure)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  4  - Validation findings reported with check --strict
  10 - Invalid configuration`,
	SilenceUsage: true,
}

type globalFlagValues struct {
	schema     string
	format     string
	configPath string
	logFormat  string
	color      string
	verbose    bool
}

var globalFlags globalFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	// Subcommands inherit this; flag parse errors exit with ExitUsageError.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return mdrmeta.UsageError(err)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalFlags.schema, "schema", "",
		"Schema version documents are decoded against: legacy|v1|v2\n"+
			"Precedence: --schema > $MDRMETA_SCHEMA > .mdrmeta.yaml > v1")
	flags.StringVar(&globalFlags.format, "format", "",
		"Input encoding: auto|json|toml (default: from the file extension)")
	flags.StringVar(&globalFlags.configPath, "config", "",
		"Path to a configuration file (default: ./.mdrmeta.yaml when present)")
	flags.StringVar(&globalFlags.logFormat, "log-format", "",
		"Diagnostic log format on stderr: text|json")
	flags.StringVar(&globalFlags.color, "color", "",
		"Colorize output: auto|always|never")
	flags.BoolVarP(&globalFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
}
