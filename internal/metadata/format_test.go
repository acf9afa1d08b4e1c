package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TOML", FormatTOML, false},
		{"auto", FormatAuto, false},
		{"", FormatAuto, false},
		{"yaml", FormatAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("runs/meta.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = FormatFromPath("META.TOML")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	_, err = FormatFromPath("meta")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedEncoding))
	assert.Contains(t, err.Error(), "No file extension")

	_, err = FormatFromPath("meta.yaml")
	require.Error(t, err)
	var encErr *UnsupportedEncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "yaml", encErr.Extension)
	assert.Contains(t, err.Error(), `Unknown file extension "yaml"`)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat([]byte(`{"a": 1}`)))
	assert.Equal(t, FormatJSON, DetectFormat([]byte("\n  {\"a\": 1}")))
	assert.Equal(t, FormatTOML, DetectFormat([]byte("a = 1")))
	assert.Equal(t, FormatTOML, DetectFormat([]byte("[initial]\n")))
	assert.Equal(t, FormatTOML, DetectFormat(nil))
}
