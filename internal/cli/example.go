package cli

import (
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a complete example v1 document",
	Long: `Example writes a fully populated, valid v1 metadata document that can be
used as a starting point for a new simulation.

Examples:
  mdrmeta example > meta.toml
  mdrmeta example --output-format json -o meta.json`,
	Args: cobra.NoArgs,
	RunE: runExample,
}

type exampleFlagValues struct {
	outputFormat string
	output       string
}

var exampleFlags exampleFlagValues

func init() {
	rootCmd.AddCommand(exampleCmd)

	exampleCmd.Flags().StringVar(&exampleFlags.outputFormat, "output-format", "",
		"Output encoding: json|toml (default: output_format from config, else toml)")
	exampleCmd.Flags().StringVarP(&exampleFlags.output, "output", "o", "-", `Output file ("-" for stdout)`)
}

func runExample(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	format, err := a.outputFormat(exampleFlags.outputFormat)
	if err != nil {
		return err
	}

	data, err := a.processor.Example(format)
	if err != nil {
		return err
	}
	return a.processor.WriteOutput(exampleFlags.output, data, cmd.OutOrStdout())
}
