package outlinereport

import (
	"fmt"
	"strings"
)

// IoError — входной файл не читается или результат не удаётся сохранить.
type IoError struct {
	Op   string // open | read | save
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// MalformedRowError — в строке меньше трёх обязательных полей (группа, метрика, путь).
type MalformedRowError struct {
	Line   int
	Fields []string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("строка %d: ожидается минимум 3 поля, получено %d [%s]",
		e.Line, len(e.Fields), strings.Join(e.Fields, ","))
}

// InvalidNumericValueError — значение сценария не является числом.
type InvalidNumericValueError struct {
	Line   int
	Column int // 0-based колонка входного файла
	Header string
	Value  string
	Err    error
}

func (e *InvalidNumericValueError) Error() string {
	if e.Header != "" {
		return fmt.Sprintf("строка %d, колонка %d (%s): некорректное число %q", e.Line, e.Column+1, e.Header, e.Value)
	}
	return fmt.Sprintf("строка %d, колонка %d: некорректное число %q", e.Line, e.Column+1, e.Value)
}

func (e *InvalidNumericValueError) Unwrap() error { return e.Err }

// ValueCountError возвращается только при ValuePolicy = strict.
type ValueCountError struct {
	Line int
	Got  int
	Want int
}

func (e *ValueCountError) Error() string {
	return fmt.Sprintf("строка %d: %d значений при %d сценариях", e.Line, e.Got, e.Want)
}

// ConfigError — некорректное поле конфигурации.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("конфигурация %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
