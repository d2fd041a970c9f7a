package outlinereport

import (
	"fmt"
	"sort"
	"strings"
)

type recordedCell struct {
	text   string
	num    float64
	isNum  bool
	indent int
	class  StyleClass
}

// recordWriter — Writer в памяти для проверки алгоритма без excelize.
type recordWriter struct {
	names  []string
	cells  []map[[2]int]recordedCell
	saved  []string
	failAt int // WriteText/WriteNumber с этим порядковым номером вернёт ошибку (0 — никогда)
	writes int
}

func (w *recordWriter) NewSheet(name string) (Sheet, error) {
	w.names = append(w.names, name)
	w.cells = append(w.cells, map[[2]int]recordedCell{})
	return Sheet(len(w.names) - 1), nil
}

func (w *recordWriter) put(sheet Sheet, row, col int, c recordedCell) error {
	w.writes++
	if w.failAt > 0 && w.writes == w.failAt {
		return fmt.Errorf("запись %d отклонена", w.writes)
	}
	if int(sheet) >= len(w.cells) {
		return fmt.Errorf("неизвестный лист %d", sheet)
	}
	w.cells[sheet][[2]int{row, col}] = c
	return nil
}

func (w *recordWriter) WriteText(sheet Sheet, row, col int, text string, indent int, class StyleClass) error {
	return w.put(sheet, row, col, recordedCell{text: text, indent: indent, class: class})
}

func (w *recordWriter) WriteNumber(sheet Sheet, row, col int, value float64, class StyleClass) error {
	return w.put(sheet, row, col, recordedCell{num: value, isNum: true, class: class})
}

func (w *recordWriter) Save(path string) error {
	w.saved = append(w.saved, path)
	return nil
}

// body рендерит строки листа начиная с 1: текст как "indent:text", числа "%.2f".
// Пустая строка — "".
func (w *recordWriter) body(sheet int) []string {
	maxRow := 0
	for k := range w.cells[sheet] {
		maxRow = max(maxRow, k[0])
	}
	out := make([]string, 0, maxRow)
	for r := 1; r <= maxRow; r++ {
		out = append(out, w.row(sheet, r))
	}
	return out
}

func (w *recordWriter) row(sheet, r int) string {
	var cols []int
	for k := range w.cells[sheet] {
		if k[0] == r {
			cols = append(cols, k[1])
		}
	}
	sort.Ints(cols)
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		cell := w.cells[sheet][[2]int{r, c}]
		if cell.isNum {
			parts = append(parts, fmt.Sprintf("%.2f", cell.num))
		} else {
			parts = append(parts, fmt.Sprintf("%d:%s", cell.indent, cell.text))
		}
	}
	return strings.Join(parts, " ")
}

func (w *recordWriter) count(sheet int, class StyleClass) int {
	n := 0
	for _, c := range w.cells[sheet] {
		if c.class == class {
			n++
		}
	}
	return n
}

func rec(group, metric, path string, values ...string) Record {
	r, err := ParseRecord(append([]string{group, metric, path}, values...), 0)
	if err != nil {
		panic(err)
	}
	return r
}
