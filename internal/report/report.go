// Package report renders check results as plain text, styled text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mdrepo/mdrmeta/internal/metadata"
	"github.com/mdrepo/mdrmeta/internal/services"
	"github.com/mdrepo/mdrmeta/internal/tui"
)

// Checksums groups the fingerprints of one document.
type Checksums struct {
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
	Canonical  string `json:"canonical,omitempty"`
}

// FileReport is the structured form of one checked document.
type FileReport struct {
	File          string                        `json:"file"`
	RecordID      string                        `json:"record_id,omitempty"`
	MdrepoID      string                        `json:"mdrepo_id,omitempty"`
	SchemaVersion metadata.SchemaVersion        `json:"schema_version"`
	Checksums     Checksums                     `json:"checksums"`
	Valid         bool                          `json:"valid"`
	ErrorCount    int                           `json:"error_count"`
	Errors        map[string][]metadata.Finding `json:"errors,omitempty"`
	Failure       string                        `json:"failure,omitempty"`
}

// Build converts a check report into its structured form. Findings are
// grouped by the top-level field they belong to.
func Build(rep services.CheckReport) []FileReport {
	out := make([]FileReport, 0, len(rep.Files))
	for _, f := range rep.Files {
		fr := FileReport{
			File:          displayName(f),
			MdrepoID:      f.Identifier,
			SchemaVersion: f.Version,
			Checksums: Checksums{
				Raw:        f.Source.ChecksumRaw,
				Normalized: f.Source.Checksum,
				Canonical:  f.CanonicalChecksum,
			},
		}
		if f.Failed() {
			fr.Failure = f.Err.Error()
			out = append(out, fr)
			continue
		}

		fr.RecordID = f.RecordID.String()
		fr.Valid = f.Result.Valid
		fr.ErrorCount = len(f.Result.Findings)
		if fr.ErrorCount > 0 {
			fr.Errors = make(map[string][]metadata.Finding)
			for _, finding := range f.Result.Findings {
				section := finding.Section()
				fr.Errors[section] = append(fr.Errors[section], finding)
			}
		}
		out = append(out, fr)
	}
	return out
}

// WriteJSON writes the structured report as an indented JSON array.
func WriteJSON(w io.Writer, rep services.CheckReport) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(Build(rep))
}

// WriteText writes the human-readable report. A single document prints
//
//	Found 2 errors:
//	water.model: should not be present if water.is_present is false
//	water.density: should not be present if water.is_present is false
//
// or "No errors". Several documents each get a header line and the report
// ends with a summary. With st.Enabled the output is colored and marked
// with symbols; otherwise it is plain text.
func WriteText(w io.Writer, rep services.CheckReport, st tui.Styles) error {
	tw := &textWriter{w: w}
	multi := len(rep.Files) > 1

	for i, f := range rep.Files {
		if multi {
			if i > 0 {
				tw.line("")
			}
			tw.line(st.File.Render("== " + displayName(f) + " =="))
		}
		writeFile(tw, f, st)
	}

	if multi {
		tw.line("")
		tw.line(st.Muted.Render(summary(rep)))
	}
	return tw.err
}

func writeFile(tw *textWriter, f services.FileResult, st tui.Styles) {
	if f.Failed() {
		prefix := "Failed: "
		if st.Enabled {
			prefix = tui.SymbolCross + " " + prefix
		}
		tw.line(st.Error.Render(prefix + f.Err.Error()))
		return
	}

	n := len(f.Result.Findings)
	if n == 0 {
		msg := "No errors"
		if st.Enabled {
			msg = tui.SymbolCheck + " " + msg
		}
		tw.line(st.Success.Render(msg))
		return
	}

	header := fmt.Sprintf("Found %d %s:", n, plural(n, "error", "errors"))
	if st.Enabled {
		header = tui.SymbolCross + " " + header
	}
	tw.line(st.Error.Render(header))
	for _, finding := range f.Result.Findings {
		tw.line(st.Path.Render(finding.Path+":") + " " + st.Message.Render(finding.Message))
	}
}

func summary(rep services.CheckReport) string {
	var clean, withErrors int
	for _, f := range rep.Files {
		switch {
		case f.Failed():
		case len(f.Result.Findings) == 0:
			clean++
		default:
			withErrors++
		}
	}
	parts := []string{
		fmt.Sprintf("%d valid", clean),
		fmt.Sprintf("%d with errors", withErrors),
	}
	if failed := rep.FailedCount(); failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	return fmt.Sprintf("Checked %d files: %s", len(rep.Files), strings.Join(parts, ", "))
}

func displayName(f services.FileResult) string {
	if f.Source.IsStdin() {
		return f.Source.Name
	}
	return f.Source.Path
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) line(s string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, s)
}
