package outlinereport

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSheetName(t *testing.T) {
	taken := map[string]struct{}{}
	assert.Equal(t, "Revenue", SheetName("Revenue", taken))
	assert.Equal(t, "a_b_c_d_e_f_g", SheetName("a:b\\c/d?e*f[g", taken))
	assert.Equal(t, "Q1", SheetName("'Q1'", taken))
	assert.Equal(t, "Sheet", SheetName("  ", taken))
}

func TestSheetName_Duplicates(t *testing.T) {
	taken := map[string]struct{}{}
	assert.Equal(t, "G1", SheetName("G1", taken))
	assert.Equal(t, "G1 (2)", SheetName("G1", taken))
	assert.Equal(t, "g1 (3)", SheetName("g1", taken))
}

func TestSheetName_Truncate(t *testing.T) {
	taken := map[string]struct{}{}
	long := strings.Repeat("Я", 40)

	first := SheetName(long, taken)
	assert.Equal(t, MaxSheetNameLen, utf8.RuneCountInString(first))

	second := SheetName(long, taken)
	assert.Equal(t, MaxSheetNameLen, utf8.RuneCountInString(second))
	assert.True(t, strings.HasSuffix(second, " (2)"))
	assert.NotEqual(t, first, second)
}

func TestSheetName_TruncateApostrophe(t *testing.T) {
	taken := map[string]struct{}{}
	// апостроф оказывается 31-м символом после обрезки
	group := strings.Repeat("a", 30) + "'b"

	first := SheetName(group, taken)
	assert.Equal(t, strings.Repeat("a", 30), first)
	assert.False(t, strings.HasSuffix(first, "'"))

	// с суффиксом " (2)" обрезка до 27 символов тоже не оставляет апостроф
	dup := strings.Repeat("a", 26) + "'x"
	taken = map[string]struct{}{dup: {}}
	assert.Equal(t, strings.Repeat("a", 26)+" (2)", SheetName(dup, taken))

	assert.Equal(t, "Sheet", SheetName("''''", map[string]struct{}{}))
}

func TestScenariosFromHeader(t *testing.T) {
	assert.Equal(t, []string{"Base", "High"}, scenariosFromHeader([]string{"group", "metric", "sub", " Base", "High "}))
	assert.Nil(t, scenariosFromHeader([]string{"group", "metric", "sub"}))
}
