package outlinereport

// OutlineState — состояние control-break обхода в пределах одного листа.
type OutlineState struct {
	PreviousPath   Path
	PreviousMetric string
	HasMetric      bool // на листе уже выведена хотя бы одна метрика
	Cursor         int  // следующая свободная строка
}

// resetSheet — новый лист: шапка занимает строку 0.
func (s *OutlineState) resetSheet() {
	*s = OutlineState{Cursor: 1}
}

// resetMetric — новая метрика: путь выводится заново.
func (s *OutlineState) resetMetric(metric string) {
	s.PreviousMetric = metric
	s.HasMetric = true
	s.PreviousPath = nil
}

// emitOutline пишет строки-предки начиная с уровня разрыва и листовую строку
// со значениями. Возвращает число записанных строк-предков.
//
// Отступ предка i равен i+1, отступ листа len(path)+1; колонка 0 с метрикой имеет отступ 0.
func emitOutline(w Writer, sheet Sheet, st *OutlineState, path Path, level BreakLevel, values []float64) (int, error) {
	last := len(path) - 1
	ancestors := 0
	for i := level.Level; i < last; i++ {
		if err := w.WriteText(sheet, st.Cursor, 0, path[i], i+1, OutlineLabel); err != nil {
			return ancestors, err
		}
		st.Cursor++
		ancestors++
	}

	if err := w.WriteText(sheet, st.Cursor, 0, path[last], len(path)+1, OutlineLabel); err != nil {
		return ancestors, err
	}
	for j, v := range values {
		if err := w.WriteNumber(sheet, st.Cursor, j+1, v, NumericValue); err != nil {
			return ancestors, err
		}
	}
	st.Cursor++
	st.PreviousPath = path
	return ancestors, nil
}
