package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdrepo/mdrmeta/internal/metadata"
	"github.com/mdrepo/mdrmeta/internal/services"
)

var toJSONCmd = &cobra.Command{
	Use:   "to-json <file>",
	Short: "Print metadata in canonical JSON",
	Long: `To-json decodes one metadata document, canonicalizes it and writes it as
JSON. Validation is not performed.

Examples:
  mdrmeta to-json meta.toml
  mdrmeta to-json meta.toml -o meta.json`,
	Args: RequireFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], metadata.FormatJSON, toJSONOutput)
	},
}

var toTOMLCmd = &cobra.Command{
	Use:   "to-toml <file>",
	Short: "Print metadata in canonical TOML",
	Long: `To-toml decodes one metadata document, canonicalizes it and writes it as
TOML. Validation is not performed.

Examples:
  mdrmeta to-toml meta.json
  cat meta.json | mdrmeta to-toml - -o meta.toml`,
	Args: RequireFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], metadata.FormatTOML, toTOMLOutput)
	},
}

var (
	toJSONOutput string
	toTOMLOutput string
)

func init() {
	rootCmd.AddCommand(toJSONCmd)
	rootCmd.AddCommand(toTOMLCmd)

	toJSONCmd.Flags().StringVarP(&toJSONOutput, "output", "o", "-", `Output file ("-" for stdout)`)
	toTOMLCmd.Flags().StringVarP(&toTOMLOutput, "output", "o", "-", `Output file ("-" for stdout)`)
}

func runConvert(cmd *cobra.Command, path string, format metadata.Format, output string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := signalContext()
	defer cancel()

	data, err := a.processor.Convert(ctx, services.ConvertRequest{
		Options: a.options,
		Path:    path,
		Output:  format,
	})
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	return a.processor.WriteOutput(output, data, cmd.OutOrStdout())
}
