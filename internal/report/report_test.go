package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdrepo/mdrmeta/internal/metadata"
	"github.com/mdrepo/mdrmeta/internal/services"
	"github.com/mdrepo/mdrmeta/internal/tui"
	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

var recordID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func waterFindings() metadata.ValidationResult {
	result := metadata.ValidationResult{Valid: true}
	result.AddFinding("water.model", "should not be present if water.is_present is false")
	result.AddFinding("water.density", "should not be present if water.is_present is false")
	return result
}

func fileResult(path string, result metadata.ValidationResult) services.FileResult {
	return services.FileResult{
		Source:   mdrmeta.SourceFile{Path: path, Checksum: "n", ChecksumRaw: "r"},
		Version:  metadata.SchemaV1,
		RecordID: recordID,
		Result:   result,
	}
}

func plainStyles() tui.Styles { return tui.NewStyles(&bytes.Buffer{}, false) }

func TestWriteText_SingleFileNoErrors(t *testing.T) {
	rep := services.CheckReport{Files: []services.FileResult{
		fileResult("a.toml", metadata.ValidationResult{Valid: true}),
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, rep, plainStyles()))
	assert.Equal(t, "No errors\n", buf.String())
}

func TestWriteText_SingleFileWithFindings(t *testing.T) {
	rep := services.CheckReport{Files: []services.FileResult{fileResult("a.toml", waterFindings())}}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, rep, plainStyles()))
	assert.Equal(t, "Found 2 errors:\n"+
		"water.model: should not be present if water.is_present is false\n"+
		"water.density: should not be present if water.is_present is false\n", buf.String())
}

func TestWriteText_SingularHeader(t *testing.T) {
	result := metadata.ValidationResult{Valid: true}
	result.AddFinding("initial.lead_contributor_orcid", `invalid ORCID "123-456"`)
	rep := services.CheckReport{Files: []services.FileResult{fileResult("a.toml", result)}}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, rep, plainStyles()))
	assert.True(t, strings.HasPrefix(buf.String(), "Found 1 error:\n"))
}

func TestWriteText_MultipleFiles(t *testing.T) {
	failed := fileResult("c.toml", metadata.ValidationResult{})
	failed.Err = &metadata.EmptyInputError{Source: "c.toml"}

	rep := services.CheckReport{Files: []services.FileResult{
		fileResult("a.toml", metadata.ValidationResult{Valid: true}),
		fileResult("b.json", waterFindings()),
		failed,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, rep, plainStyles()))
	out := buf.String()

	assert.Contains(t, out, "== a.toml ==\nNo errors\n")
	assert.Contains(t, out, "== b.json ==\nFound 2 errors:\n")
	assert.Contains(t, out, "== c.toml ==\nFailed: ")
	assert.True(t, strings.HasSuffix(out, "Checked 3 files: 1 valid, 1 with errors, 1 failed\n"))
}

func TestWriteText_Styled(t *testing.T) {
	rep := services.CheckReport{Files: []services.FileResult{fileResult("a.toml", waterFindings())}}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, rep, tui.NewStyles(&buf, true)))
	assert.Contains(t, buf.String(), tui.SymbolCross)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "water.model")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteText_PropagatesWriteError(t *testing.T) {
	rep := services.CheckReport{Files: []services.FileResult{fileResult("a.toml", waterFindings())}}
	assert.Error(t, WriteText(failingWriter{}, rep, plainStyles()))
}

func TestBuild_GroupsFindingsBySection(t *testing.T) {
	result := waterFindings()
	result.AddFinding("contributors[1].orcid", `invalid ORCID "x"`)
	f := fileResult("a.toml", result)
	f.Identifier = "MDR_00000002"
	f.CanonicalChecksum = "c"

	reports := Build(services.CheckReport{Files: []services.FileResult{f}})
	require.Len(t, reports, 1)

	fr := reports[0]
	assert.Equal(t, "a.toml", fr.File)
	assert.Equal(t, recordID.String(), fr.RecordID)
	assert.Equal(t, "MDR_00000002", fr.MdrepoID)
	assert.Equal(t, metadata.SchemaV1, fr.SchemaVersion)
	assert.Equal(t, Checksums{Raw: "r", Normalized: "n", Canonical: "c"}, fr.Checksums)
	assert.False(t, fr.Valid)
	assert.Equal(t, 3, fr.ErrorCount)
	assert.Len(t, fr.Errors["water"], 2)
	assert.Len(t, fr.Errors["contributors"], 1)
}

func TestWriteJSON(t *testing.T) {
	failed := fileResult("-", metadata.ValidationResult{})
	failed.Source.Name = "<stdin>"
	failed.Err = &metadata.EmptyInputError{Source: "<stdin>"}

	rep := services.CheckReport{Files: []services.FileResult{
		fileResult("a.toml", metadata.ValidationResult{Valid: true}),
		failed,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, rep))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "a.toml", decoded[0]["file"])
	assert.Equal(t, true, decoded[0]["valid"])
	assert.Equal(t, float64(0), decoded[0]["error_count"])
	assert.NotContains(t, decoded[0], "errors")
	assert.NotContains(t, decoded[0], "failure")

	assert.Equal(t, "<stdin>", decoded[1]["file"])
	assert.Equal(t, false, decoded[1]["valid"])
	assert.NotEmpty(t, decoded[1]["failure"])
	assert.NotContains(t, decoded[1], "record_id")
}
