package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dataPackageCmd = &cobra.Command{
	Use:   "datapackage <file>",
	Short: "Describe a simulation's files as a Frictionless data package",
	Long: `Datapackage decodes and canonicalizes one metadata document and writes a
Frictionless Data Package descriptor (datapackage.json) listing the
trajectory, structure and topology files followed by every additional file.

The package name is derived from mdrepo_id when present, otherwise from the
record's stable identifier. Contributors, keywords and the simulation date
are carried over.

Examples:
  mdrmeta datapackage meta.toml
  mdrmeta datapackage meta.toml -o datapackage.json`,
	Args: RequireFile,
	RunE: runDataPackage,
}

var dataPackageOutput string

func init() {
	rootCmd.AddCommand(dataPackageCmd)

	dataPackageCmd.Flags().StringVarP(&dataPackageOutput, "output", "o", "-", `Output file ("-" for stdout)`)
}

func runDataPackage(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := signalContext()
	defer cancel()

	data, err := a.processor.DataPackage(ctx, args[0], a.options)
	if err != nil {
		return fmt.Errorf("data package export failed: %w", err)
	}
	return a.processor.WriteOutput(dataPackageOutput, data, cmd.OutOrStdout())
}
