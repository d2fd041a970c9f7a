package outlinereport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileFilter_Empty(t *testing.T) {
	f, err := CompileFilter("")
	require.NoError(t, err)
	assert.Nil(t, f)

	ok, err := f.Match(rec("G", "M", "A"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFilter_Match(t *testing.T) {
	cases := []struct {
		expr string
		rec  Record
		want bool
	}{
		{`group != "Draft"`, rec("Draft", "M", "A"), false},
		{`group != "Draft"`, rec("Final", "M", "A"), true},
		{`depth > 1`, rec("G", "M", "A"), false},
		{`depth > 1 and leaf == "B"`, rec("G", "M", "A_B"), true},
		{`path[0] == "A"`, rec("G", "M", "A_B"), true},
		{`metric in ["Revenue", "Cost"]`, rec("G", "Cost", "A"), true},
		{`len(values) == 2`, rec("G", "M", "A", "1", "2"), true},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			f, err := CompileFilter(tc.expr)
			require.NoError(t, err)
			ok, err := f.Match(tc.rec)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestCompileFilter_Errors(t *testing.T) {
	_, err := CompileFilter(`group +`)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "where", ce.Field)

	// не булево выражение отвергается на этапе компиляции
	_, err = CompileFilter(`depth + 1`)
	require.ErrorAs(t, err, &ce)

	_, err = CompileFilter(`unknown == 1`)
	require.ErrorAs(t, err, &ce)
}
