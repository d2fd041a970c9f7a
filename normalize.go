package outlinereport

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSheetNameLen — ограничение Excel на длину имени листа.
const MaxSheetNameLen = 31

var sheetNameReplacer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

// SheetName приводит имя группы к допустимому имени листа:
// - заменяет запрещённые символы : \ / ? * [ ] на "_"
// - обрезает до 31 символа
// - убирает апострофы по краям (после обрезки тоже)
// - при совпадении (без учёта регистра) с уже занятым именем добавляет " (n)"
//
// taken хранит занятые имена в нижнем регистре и пополняется результатом.
func SheetName(group string, taken map[string]struct{}) string {
	name := clipSheetName(sheetNameReplacer.Replace(group), MaxSheetNameLen)

	candidate := name
	for n := 2; ; n++ {
		key := strings.ToLower(candidate)
		if _, ok := taken[key]; !ok {
			taken[key] = struct{}{}
			return candidate
		}
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = clipSheetName(name, MaxSheetNameLen-utf8.RuneCountInString(suffix)) + suffix
	}
}

// clipSheetName обрезает имя до n символов; апостроф не может оказаться по краям.
func clipSheetName(s string, n int) string {
	s = strings.Trim(truncateRunes(strings.Trim(s, "'"), n), "'")
	if strings.TrimSpace(s) == "" {
		return "Sheet"
	}
	return s
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

// normalizeHeader убирает пробелы по краям заголовков колонок.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}

// scenariosFromHeader — все колонки после первых трёх.
func scenariosFromHeader(header []string) []string {
	if len(header) <= 3 {
		return nil
	}
	return normalizeHeader(header[3:])
}
