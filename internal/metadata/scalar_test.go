package metadata

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatelike_Canonical(t *testing.T) {
	tests := []struct {
		name string
		in   Datelike
		want string
	}{
		{"iso string", DateString("2020-07-13"), "2020-07-13"},
		{"long form", DateString("July 13, 2020"), "2020-07-13"},
		{"slashes", DateString("07/13/2020"), "2020-07-13"},
		{"padded", DateString("  2020-07-13 "), "2020-07-13"},
		{"native date", DateValue(time.Date(2020, 7, 13, 0, 0, 0, 0, time.UTC)), "2020-07-13"},
		{"native with offset", DateValue(time.Date(2020, 7, 13, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))), "2020-07-14"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Canonical()
			require.NoError(t, err)
			assert.False(t, got.IsNative())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDatelike_CanonicalInvalid(t *testing.T) {
	_, err := DateString("not a date").Canonical()
	assert.Error(t, err)
}

func TestDatelike_JSON(t *testing.T) {
	var d Datelike
	require.NoError(t, json.Unmarshal([]byte(`"2020-07-13"`), &d))
	assert.Equal(t, DateString("2020-07-13"), d)

	assert.Error(t, json.Unmarshal([]byte(`20200713`), &d))
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.Equal(t, DateString("2020-07-13"), d)

	out, err := json.Marshal(DateString("2020-07-13"))
	require.NoError(t, err)
	assert.Equal(t, `"2020-07-13"`, string(out))
}

func TestNumlike_String(t *testing.T) {
	assert.Equal(t, "17", NumInt(17).String())
	assert.Equal(t, "17", NumFloat(17).String())
	assert.Equal(t, "12.5", NumFloat(12.5).String())
	assert.Equal(t, "4a", NumText("4a").String())
	assert.Equal(t, "", NumOther(true).String())
	assert.Equal(t, "", NumOther([]any{1, 2}).String())
}

func TestNumlike_Canonical(t *testing.T) {
	c := NumInt(17).Canonical()
	assert.True(t, c.IsText())
	assert.Equal(t, NumText("17"), c)
	assert.Equal(t, c, c.Canonical())
}

func TestNumlike_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		kind NumKind
		str  string
	}{
		{`17`, NumKindInt, "17"},
		{`-3`, NumKindInt, "-3"},
		{`2.5`, NumKindFloat, "2.5"},
		{`1e3`, NumKindFloat, "1000"},
		{`123456789012345678901234567890`, NumKindFloat, "123456789012345678901234567890"},
		{`-98765432109876543210`, NumKindFloat, "-98765432109876543210"},
		{`"17"`, NumKindString, "17"},
		{`true`, NumKindOther, ""},
		{`{"a": 1}`, NumKindOther, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var n Numlike
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			assert.Equal(t, tt.kind, n.Kind())
			assert.Equal(t, tt.str, n.String())
		})
	}

	n := NumText("7")
	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.Equal(t, NumText("7"), n)
}

func TestNumlike_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(NumInt(17))
	require.NoError(t, err)
	assert.Equal(t, `17`, string(out))

	out, err = json.Marshal(NumText("17"))
	require.NoError(t, err)
	assert.Equal(t, `"17"`, string(out))

	_, err = json.Marshal(NumFloat(math.NaN()))
	assert.Error(t, err)
}

func TestNumlike_LargeIntegerKeepsDigits(t *testing.T) {
	const digits = "123456789012345678901234567890"

	var n Numlike
	require.NoError(t, json.Unmarshal([]byte(digits), &n))
	assert.Equal(t, NumText(digits), n.Canonical())

	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, digits, string(out))
}
