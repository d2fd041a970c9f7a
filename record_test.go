package outlinereport

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	r, err := ParseRecord([]string{"G1", "M1", "A_B", "1.5", "2.25"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "G1", r.Group)
	assert.Equal(t, "M1", r.Metric)
	assert.Equal(t, Path{"A", "B"}, r.Path)
	assert.Equal(t, []string{"1.5", "2.25"}, r.Values)
	assert.Equal(t, 2, r.Line)
}

func TestParseRecord_NoValues(t *testing.T) {
	r, err := ParseRecord([]string{"G1", "M1", ""}, 3)
	require.NoError(t, err)
	assert.Equal(t, Path{""}, r.Path)
	assert.Empty(t, r.Values)
}

func TestParseRecord_Malformed(t *testing.T) {
	_, err := ParseRecord([]string{"G1", "M1"}, 7)
	var mre *MalformedRowError
	require.ErrorAs(t, err, &mre)
	assert.Equal(t, 7, mre.Line)
	assert.Equal(t, []string{"G1", "M1"}, mre.Fields)
	assert.Contains(t, err.Error(), "строка 7")
}

func TestParseRecord_CopiesFields(t *testing.T) {
	fields := []string{"G", "M", "A", "1"}
	r, err := ParseRecord(fields, 1)
	require.NoError(t, err)
	fields[3] = "changed"
	assert.Equal(t, "1", r.Values[0])
}

func TestParseValues(t *testing.T) {
	r := rec("G", "M", "A", " 1.5", "-2", "1e3")
	vals, err := r.ParseValues(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2, 1000}, vals)
}

func TestParseValues_Invalid(t *testing.T) {
	r, err := ParseRecord([]string{"G", "M", "A", "1", "abc"}, 5)
	require.NoError(t, err)

	_, err = r.ParseValues([]string{"S1", "S2"})
	var nve *InvalidNumericValueError
	require.ErrorAs(t, err, &nve)
	assert.Equal(t, 5, nve.Line)
	assert.Equal(t, 4, nve.Column)
	assert.Equal(t, "S2", nve.Header)
	assert.Equal(t, "abc", nve.Value)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
}

func TestParseValues_NotFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-inf", "Infinity", "1e400"} {
		r, err := ParseRecord([]string{"G", "M", "A", "1", raw}, 7)
		require.NoError(t, err)

		_, err = r.ParseValues([]string{"S1", "S2"})
		var nve *InvalidNumericValueError
		require.ErrorAs(t, err, &nve, raw)
		assert.Equal(t, 4, nve.Column, raw)
		assert.Equal(t, raw, nve.Value, raw)
	}
}
