package outlinereport

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Sheet — дескриптор листа, выданный Writer.NewSheet.
type Sheet int

// Writer — документ, в который Driver пишет отчёт. Строки и колонки 0-based,
// строка 0 — шапка листа.
type Writer interface {
	NewSheet(name string) (Sheet, error)
	WriteText(sheet Sheet, row, col int, text string, indent int, class StyleClass) error
	WriteNumber(sheet Sheet, row, col int, value float64, class StyleClass) error
	Save(path string) error
}

type styleKey struct {
	class  StyleClass
	indent int
}

// ExcelWriter реализует Writer поверх excelize.
type ExcelWriter struct {
	f      *excelize.File
	style  StyleConfig
	sheets []string
	taken  map[string]struct{}
	styles map[styleKey]int
}

// NewExcelWriter создаёт пустую книгу. Лист по умолчанию переименовывается первым NewSheet.
// Незаданные (нулевые) поля style берутся из DefaultStyle.
func NewExcelWriter(style StyleConfig) *ExcelWriter {
	return &ExcelWriter{
		f:      excelize.NewFile(),
		style:  style.withDefaults(),
		taken:  map[string]struct{}{},
		styles: map[styleKey]int{},
	}
}

// File даёт доступ к книге (для чтения в тестах и доп. обработки).
func (w *ExcelWriter) File() *excelize.File { return w.f }

// SheetNames возвращает итоговые имена листов в порядке создания.
func (w *ExcelWriter) SheetNames() []string {
	return append([]string(nil), w.sheets...)
}

func (w *ExcelWriter) NewSheet(name string) (Sheet, error) {
	sheetName := SheetName(name, w.taken)
	if len(w.sheets) == 0 {
		if err := w.f.SetSheetName(w.f.GetSheetName(0), sheetName); err != nil {
			return 0, fmt.Errorf("переименование листа %q: %w", sheetName, err)
		}
	} else if _, err := w.f.NewSheet(sheetName); err != nil {
		return 0, fmt.Errorf("создание листа %q: %w", sheetName, err)
	}
	w.sheets = append(w.sheets, sheetName)

	if err := w.f.SetColWidth(sheetName, "A", "A", w.style.LabelWidth); err != nil {
		return 0, err
	}
	if err := w.f.SetRowHeight(sheetName, 1, w.style.HeaderHeight); err != nil {
		return 0, err
	}
	return Sheet(len(w.sheets) - 1), nil
}

func (w *ExcelWriter) WriteText(sheet Sheet, row, col int, text string, indent int, class StyleClass) error {
	name, cell, err := w.cell(sheet, row, col)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStr(name, cell, text); err != nil {
		return err
	}
	if err := w.applyStyle(name, cell, class, indent); err != nil {
		return err
	}
	switch {
	case row == 0 && col > 0:
		// заголовок сценария задаёт ширину своей колонки
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		return w.f.SetColWidth(name, colName, colName, w.style.ValueWidth)
	case row > 0 && col == 0:
		return w.f.SetRowHeight(name, row+1, w.style.RowHeight)
	}
	return nil
}

func (w *ExcelWriter) WriteNumber(sheet Sheet, row, col int, value float64, class StyleClass) error {
	name, cell, err := w.cell(sheet, row, col)
	if err != nil {
		return err
	}
	if err := w.f.SetCellFloat(name, cell, value, -1, 64); err != nil {
		return err
	}
	return w.applyStyle(name, cell, class, 0)
}

// Save сохраняет книгу, создавая каталог назначения при необходимости.
func (w *ExcelWriter) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &IoError{Op: "save", Path: path, Err: err}
		}
	}
	if err := w.f.SaveAs(path); err != nil {
		return &IoError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// Close освобождает временные файлы excelize.
func (w *ExcelWriter) Close() error { return w.f.Close() }

func (w *ExcelWriter) cell(sheet Sheet, row, col int) (string, string, error) {
	if int(sheet) < 0 || int(sheet) >= len(w.sheets) {
		return "", "", fmt.Errorf("неизвестный лист %d", sheet)
	}
	addr, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", "", err
	}
	return w.sheets[sheet], addr, nil
}

func (w *ExcelWriter) applyStyle(sheet, cell string, class StyleClass, indent int) error {
	key := styleKey{class: class, indent: indent}
	id, ok := w.styles[key]
	if !ok {
		var err error
		id, err = w.f.NewStyle(w.style.excelStyle(class, indent))
		if err != nil {
			return fmt.Errorf("стиль %s: %w", class, err)
		}
		w.styles[key] = id
	}
	return w.f.SetCellStyle(sheet, cell, cell, id)
}
