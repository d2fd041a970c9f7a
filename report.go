package outlinereport

import (
	"context"
	"errors"
	"io"
	"log"
	"time"
)

// Driver обходит отсортированные записи один раз и строит отчёт в Writer.
// Состояние хранится только о непосредственно предыдущей записи.
type Driver struct {
	w         Writer
	scenarios []string
	policy    ValuePolicy

	state    OutlineState
	sheet    Sheet
	hasSheet bool
	group    string
	groups   []string

	records   int
	ancestors int
}

// Option настраивает Driver.
type Option func(*Driver)

// WithValuePolicy задаёт политику расхождения числа значений и сценариев.
func WithValuePolicy(p ValuePolicy) Option {
	return func(d *Driver) {
		if p != "" {
			d.policy = p
		}
	}
}

// NewDriver создаёт Driver. scenarios общие для всех листов и не изменяются.
func NewDriver(w Writer, scenarios []string, opts ...Option) *Driver {
	d := &Driver{w: w, scenarios: scenarios, policy: PolicyTolerate}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Process обрабатывает одну запись: раздел (лист/метрика), затем контур пути и лист.
func (d *Driver) Process(rec Record) error {
	values, err := d.values(rec)
	if err != nil {
		return err
	}
	if err := d.enterSection(rec); err != nil {
		return err
	}
	level := Diff(d.state.PreviousPath, rec.Path)
	n, err := emitOutline(d.w, d.sheet, &d.state, rec.Path, level, values)
	d.ancestors += n
	if err != nil {
		return err
	}
	d.records++
	return nil
}

// values разбирает числа до любой записи строки в документ.
func (d *Driver) values(rec Record) ([]float64, error) {
	want := len(d.scenarios)
	switch d.policy {
	case PolicyStrict:
		if len(rec.Values) != want {
			return nil, &ValueCountError{Line: rec.Line, Got: len(rec.Values), Want: want}
		}
	case PolicyPad:
		if len(rec.Values) > want {
			rec.Values = rec.Values[:want]
		}
	}
	return rec.ParseValues(d.scenarios)
}

// Groups — группы в порядке открытия листов.
func (d *Driver) Groups() []string { return append([]string(nil), d.groups...) }

// State — текущее состояние обхода (копия).
func (d *Driver) State() OutlineState { return d.state }

// LeafRows — число выведенных листовых строк, равно числу обработанных записей.
func (d *Driver) LeafRows() int { return d.records }

// AncestorRows — число выведенных строк-предков.
func (d *Driver) AncestorRows() int { return d.ancestors }

// Run прогоняет записи через Driver по порядку. Документ не сохраняется.
func Run(w Writer, scenarios []string, records []Record, opts ...Option) (*Driver, error) {
	d := NewDriver(w, scenarios, opts...)
	for _, rec := range records {
		if err := d.Process(rec); err != nil {
			return d, err
		}
	}
	return d, nil
}

// Summary — итог WriteReport.
type Summary struct {
	Sheets   []string
	Records  int
	Skipped  int
	LeafRows int
	Duration time.Duration
}

// WriteReport читает cfg.Input, строит отчёт и сохраняет его в cfg.Output.
// Первая ошибка прерывает запуск, файл при этом не создаётся.
//
// Если во входе только заголовок (или фильтр отбросил все строки), книга всё равно
// сохраняется с пустым листом Sheet1, а Summary.Sheets остаётся пустым.
func WriteReport(ctx context.Context, cfg Config) (*Summary, error) {
	logger := log.Default()
	if cfg.Quiet {
		logger = log.New(io.Discard, "", 0)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	delim, err := cfg.delimiter()
	if err != nil {
		return nil, err
	}
	filter, err := CompileFilter(cfg.Where)
	if err != nil {
		return nil, err
	}

	logger.Printf("📊 Начинаем построение отчёта...")
	logger.Printf("📁 Вход: %s", cfg.Input)
	logger.Printf("📄 Выходной файл: %s", cfg.Output)
	startTime := time.Now()

	table, err := OpenTable(cfg.Input, delim)
	if err != nil {
		logger.Printf("❌ Ошибка чтения входа: %v", err)
		return nil, err
	}
	defer table.Close()

	scenarios := table.Scenarios()
	logger.Printf("📝 Сценариев: %d", len(scenarios))

	w := NewExcelWriter(cfg.Style)
	defer w.Close()
	d := NewDriver(w, scenarios, WithValuePolicy(cfg.ValuePolicy))

	sum := &Summary{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fields, line, err := table.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Printf("❌ Ошибка чтения входа: %v", err)
			return nil, err
		}
		rec, err := ParseRecord(fields, line)
		if err != nil {
			logger.Printf("❌ %v", err)
			return nil, err
		}
		sum.Records++
		ok, err := filter.Match(rec)
		if err != nil {
			return nil, err
		}
		if !ok {
			sum.Skipped++
			continue
		}
		if err := d.Process(rec); err != nil {
			logger.Printf("❌ %v", err)
			return nil, err
		}
	}
	logger.Printf("✅ Обработано записей: %d (пропущено фильтром: %d), листов: %d",
		sum.Records, sum.Skipped, len(d.Groups()))

	if len(d.Groups()) == 0 {
		logger.Printf("⚠️ Нет строк данных: сохраняется пустая книга")
	}

	logger.Printf("💾 Сохранение файла...")
	if err := w.Save(cfg.Output); err != nil {
		logger.Printf("❌ Ошибка сохранения: %v", err)
		return nil, err
	}

	sum.Sheets = w.SheetNames()
	sum.LeafRows = d.LeafRows()
	sum.Duration = time.Since(startTime)
	logger.Printf("✅ Excel файл создан за %v", sum.Duration)
	logger.Printf("📄 Результат сохранен в: %s", cfg.Output)
	return sum, nil
}
