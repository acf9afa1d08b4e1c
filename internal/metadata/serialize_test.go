package metadata

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, rec Record, format Format) Record {
	t.Helper()
	out, err := Encode(rec, format)
	require.NoError(t, err)
	back, err := Decode(out, format, rec.SchemaVersion())
	require.NoError(t, err, "re-decoding:\n%s", out)
	require.NoError(t, Canonicalize(back))
	return back
}

func TestEncode_RoundTripExample(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatTOML} {
		t.Run(format.String(), func(t *testing.T) {
			assert.Equal(t, Record(ExampleV1()), roundTrip(t, ExampleV1(), format))
		})
	}
}

func TestEncode_RoundTripTestdata(t *testing.T) {
	tests := []struct {
		file    string
		version SchemaVersion
	}{
		{"MDR_00000002.toml", SchemaV1},
		{"MDR_00000002.json", SchemaV1},
		{"MDR_00004423.toml", SchemaV1},
		{"legacy.toml", SchemaLegacy},
		{"v2.json", SchemaV2},
	}
	for _, tt := range tests {
		for _, format := range []Format{FormatJSON, FormatTOML} {
			t.Run(tt.file+"/"+format.String(), func(t *testing.T) {
				rec, err := DecodeFile(tt.file, readTestdata(t, tt.file), FormatAuto, tt.version)
				require.NoError(t, err)
				require.NoError(t, Canonicalize(rec))
				assert.Equal(t, rec, roundTrip(t, rec, format))
			})
		}
	}
}

func TestEncode_ByteStable(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatTOML} {
		first, err := Encode(ExampleV1(), format)
		require.NoError(t, err)
		second, err := Encode(roundTrip(t, ExampleV1(), format), format)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second), "format %s", format)
	}
}

func TestEncode_OmitsAbsentFields(t *testing.T) {
	m := decodeV1(t, minimalV1JSON, FormatJSON)
	require.NoError(t, Canonicalize(m))

	out, err := Encode(m, FormatJSON)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "null")
	assert.NotContains(t, string(out), "mdrepo_id")
	assert.NotContains(t, string(out), "required_files")

	out, err = Encode(m, FormatTOML)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "mdrepo_id")
	assert.Contains(t, string(out), "[initial]")
}

func TestEncode_CanonicalScalarsAreStrings(t *testing.T) {
	m := canonicalV1(t, string(readTestdata(t, "MDR_00000002.toml")), FormatTOML)

	out, err := Encode(m, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"volume": "17"`)
	assert.Contains(t, string(out), `"date": "2020-07-13"`)
	assert.Contains(t, string(out), `"molecule_id_type": "PDB"`)
	assert.False(t, strings.Contains(string(out), "pdb_id"))
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	_, err := Encode(ExampleV1(), Format("yaml"))
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestEncode_NonFiniteFloatNamesField(t *testing.T) {
	const doc = `
[initial]
lead_contributor_orcid = "0000-0002-1825-0097"
date = "2020-07-13"

[software]
name = "GROMACS"

[water]
is_present = true
density = nan

[[solvents]]
name = "NaCl"
ion_concentration = inf
`
	rec, err := Decode([]byte(doc), FormatTOML, SchemaV1)
	require.NoError(t, err)
	require.NoError(t, Canonicalize(rec))

	_, err = Encode(rec, FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "water.density")

	m := rec.(*MetaV1)
	density := 0.5
	m.Water.Density = &density
	_, err = Encode(rec, FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solvents[0].ion_concentration")

	m.Solvents[0].IonConcentration = math.Inf(-1)
	_, err = Encode(rec, FormatTOML)
	assert.NoError(t, err, "TOML has literals for non-finite floats")
}
