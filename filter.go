package outlinereport

import (
	"fmt"

	expro "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter — скомпилированное условие отбора записей.
// Доступные переменные: group, metric, path (сегменты), depth, leaf, values.
type Filter struct {
	src     string
	program *vm.Program
}

func filterEnv(rec Record) map[string]interface{} {
	segs := make([]string, len(rec.Path))
	copy(segs, rec.Path)
	vals := make([]string, len(rec.Values))
	copy(vals, rec.Values)
	return map[string]interface{}{
		"group":  rec.Group,
		"metric": rec.Metric,
		"path":   segs,
		"depth":  len(rec.Path),
		"leaf":   rec.Path.Leaf(),
		"values": vals,
	}
}

// CompileFilter компилирует выражение один раз. Пустая строка — nil-фильтр (пропускает всё).
func CompileFilter(src string) (*Filter, error) {
	if src == "" {
		return nil, nil
	}
	program, err := expro.Compile(src, expro.Env(filterEnv(Record{})), expro.AsBool())
	if err != nil {
		return nil, &ConfigError{Field: "where", Err: err}
	}
	return &Filter{src: src, program: program}, nil
}

// Match сообщает, нужно ли включать запись в отчёт.
func (f *Filter) Match(rec Record) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, err := expro.Run(f.program, filterEnv(rec))
	if err != nil {
		return false, fmt.Errorf("строка %d: условие %q: %w", rec.Line, f.src, err)
	}
	b, _ := out.(bool)
	return b, nil
}
