package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdrepo/mdrmeta/internal/metadata"
	"github.com/mdrepo/mdrmeta/internal/services"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <file>",
	Short: "Upgrade metadata to a newer schema version",
	Long: `Migrate decodes one document against --schema, canonicalizes it, upgrades
it to the --to version, canonicalizes the result and writes it.

Migration is forward only (legacy -> v1 -> v2). Fields the target version
has no place for are dropped; a legacy protein without a usable identity
cannot be migrated.

Examples:
  # v1 TOML to v2 TOML on stdout
  mdrmeta migrate meta.toml

  # legacy document to v2 JSON
  mdrmeta migrate old.toml --schema legacy --to v2 --output-format json -o new.json`,
	Args: RequireFile,
	RunE: runMigrate,
}

type migrateFlagValues struct {
	to           string
	outputFormat string
	output       string
}

var migrateFlags migrateFlagValues

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVar(&migrateFlags.to, "to", string(metadata.SchemaV2),
		"Target schema version: v1|v2")
	migrateCmd.Flags().StringVar(&migrateFlags.outputFormat, "output-format", "",
		"Output encoding: json|toml (default: output_format from config, else toml)")
	migrateCmd.Flags().StringVarP(&migrateFlags.output, "output", "o", "-", `Output file ("-" for stdout)`)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	target, err := metadata.ParseSchemaVersion(migrateFlags.to)
	if err != nil || migrateFlags.to == "" {
		return invalidFlag("to", migrateFlags.to, "expected legacy, v1 or v2")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	format, err := a.outputFormat(migrateFlags.outputFormat)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	data, err := a.processor.Migrate(ctx, services.MigrateRequest{
		Options: a.options,
		Path:    args[0],
		Target:  target,
		Output:  format,
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return a.processor.WriteOutput(migrateFlags.output, data, cmd.OutOrStdout())
}
