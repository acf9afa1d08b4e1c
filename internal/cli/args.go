package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

// RequireFile validates that exactly one file argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return mdrmeta.UsageError(fmt.Errorf(`missing required argument: <file>

Usage: %s

Example:
  %s meta.toml

Use "-" to read standard input.`, cmd.UseLine(), cmd.CommandPath()))
	}
	if len(args) > 1 {
		return mdrmeta.UsageError(fmt.Errorf("accepts 1 arg(s), received %d", len(args)))
	}
	return nil
}

// RequireFiles validates that at least one file or directory argument is provided.
func RequireFiles(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return mdrmeta.UsageError(fmt.Errorf(`missing required argument: <file|dir>...

Usage: %s

Example:
  %s meta.toml ./simulations

Directories are searched for .toml and .json files.`, cmd.UseLine(), cmd.CommandPath()))
	}
	return nil
}
