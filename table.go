package outlinereport

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Table — ленивое чтение разделённого текстового файла: заголовок и строки по одной.
type Table struct {
	path   string
	file   *os.File
	r      *csv.Reader
	header []string
}

// OpenTable открывает файл и читает строку заголовка. BOM UTF-8/UTF-16 в начале файла учитывается.
func OpenTable(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IoError{Op: "open", Path: path, Err: err}
	}
	t, err := newTable(path, f, delim)
	if err != nil {
		f.Close()
		return nil, err
	}
	t.file = f
	return t, nil
}

func newTable(path string, src io.Reader, delim rune) (*Table, error) {
	r := csv.NewReader(transform.NewReader(src, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, &IoError{Op: "read", Path: path, Err: errors.New("пустой файл: нет строки заголовка")}
	}
	if err != nil {
		return nil, &IoError{Op: "read", Path: path, Err: err}
	}
	return &Table{path: path, r: r, header: normalizeHeader(header)}, nil
}

// Header — строка заголовка без пробелов по краям.
func (t *Table) Header() []string { return t.header }

// Scenarios — имена сценариев (колонки после первых трёх).
func (t *Table) Scenarios() []string { return scenariosFromHeader(t.header) }

// Next возвращает поля следующей строки и её номер. В конце — io.EOF.
func (t *Table) Next() ([]string, int, error) {
	fields, err := t.r.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, io.EOF
	}
	if err != nil {
		return nil, 0, &IoError{Op: "read", Path: t.path, Err: err}
	}
	line, _ := t.r.FieldPos(0)
	return fields, line, nil
}

// Close закрывает файл.
func (t *Table) Close() error {
	if t.file == nil {
		return nil
	}
	return t.file.Close()
}
