package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdrepo/mdrmeta/internal/report"
	"github.com/mdrepo/mdrmeta/internal/services"
	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

var checkCmd = &cobra.Command{
	Use:     "check <file|dir>...",
	Aliases: []string{"validate"},
	Short:   "Validate metadata files",
	Long: `Check canonicalizes and validates each metadata document and reports
every finding as a "field: message" line.

Directories are searched recursively for .toml and .json files; hidden
directories are skipped. A document that cannot be decoded is reported as
failed and the remaining documents are still checked.

Findings alone do not fail the command. Use --strict to exit with code 4
when any document has findings.

Examples:
  # Validate one file
  mdrmeta check meta.toml

  # Validate a tree of v2 documents, failing on findings
  mdrmeta check ./simulations --schema v2 --strict

  # Machine-readable report grouped by section
  mdrmeta check meta.json --json

  # Validate from standard input
  cat meta.toml | mdrmeta check -`,
	Args: RequireFiles,
	RunE: runCheck,
}

type checkFlagValues struct {
	json   bool
	strict bool
}

var checkFlags checkFlagValues

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkFlags.json, "json", false,
		"Output results as JSON (per file: checksums, record id, findings grouped by section)")
	checkCmd.Flags().BoolVar(&checkFlags.strict, "strict", false,
		"Exit with code 4 when any document has validation findings")
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := signalContext()
	defer cancel()

	rep, err := a.processor.Check(ctx, services.CheckRequest{
		Options: a.options,
		Paths:   args,
		Rules:   a.cfg.Rules(a.options.Version),
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if checkFlags.json {
		err = report.WriteJSON(out, rep)
	} else {
		err = report.WriteText(out, rep, a.styles(out))
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if failed := rep.FailedCount(); failed > 0 {
		return fmt.Errorf("%d of %d file(s) could not be checked: %w", failed, len(rep.Files), rep.Err())
	}
	if checkFlags.strict && rep.FindingCount() > 0 {
		return fmt.Errorf("%w: %d finding(s)", mdrmeta.ErrFindings, rep.FindingCount())
	}
	return nil
}
