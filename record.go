package outlinereport

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// PathSeparator разделяет сегменты иерархического пути во входном поле.
const PathSeparator = "_"

// Path — упорядоченные сегменты иерархии, от корня к листу.
type Path []string

// SplitPath разбивает поле подразделения по "_". Пустое поле даёт один пустой сегмент.
func SplitPath(raw string) Path {
	return Path(strings.Split(raw, PathSeparator))
}

// Leaf возвращает последний сегмент.
func (p Path) Leaf() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

func (p Path) String() string { return strings.Join(p, PathSeparator) }

// errNotFinite — NaN и бесконечности не представимы в числовой ячейке xlsx.
var errNotFinite = errors.New("значение должно быть конечным числом")

// Record — одна строка входа. После ParseRecord не изменяется.
type Record struct {
	Group  string
	Metric string
	Path   Path
	Values []string
	Line   int // 1-based номер строки во входном файле, заголовок = 1
}

// ParseRecord собирает Record из полей строки.
func ParseRecord(fields []string, line int) (Record, error) {
	if len(fields) < 3 {
		cp := append([]string(nil), fields...)
		return Record{}, &MalformedRowError{Line: line, Fields: cp}
	}
	values := make([]string, len(fields)-3)
	copy(values, fields[3:])
	return Record{
		Group:  fields[0],
		Metric: fields[1],
		Path:   SplitPath(fields[2]),
		Values: values,
		Line:   line,
	}, nil
}

// ParseValues переводит значения записи в float64. headers нужны только для текста ошибки.
func (r Record) ParseValues(headers []string) ([]float64, error) {
	out := make([]float64, len(r.Values))
	for i, raw := range r.Values {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = errNotFinite
		}
		if err != nil {
			e := &InvalidNumericValueError{Line: r.Line, Column: i + 3, Value: raw, Err: err}
			if i < len(headers) {
				e.Header = headers[i]
			}
			return nil, e
		}
		out[i] = v
	}
	return out, nil
}
