package outlinereport

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ValuePolicy — поведение при расхождении числа значений и сценариев.
type ValuePolicy string

const (
	// PolicyTolerate пишет столько значений, сколько есть в строке.
	PolicyTolerate ValuePolicy = "tolerate"
	// PolicyStrict прерывает запуск с ValueCountError.
	PolicyStrict ValuePolicy = "strict"
	// PolicyPad отбрасывает лишние значения, недостающие ячейки остаются пустыми.
	PolicyPad ValuePolicy = "pad"
)

// Config — параметры запуска WriteReport.
type Config struct {
	Input       string      `yaml:"input"`
	Output      string      `yaml:"output"`
	Delimiter   string      `yaml:"delimiter"`
	ValuePolicy ValuePolicy `yaml:"value_policy"`
	Where       string      `yaml:"where"`
	Quiet       bool        `yaml:"quiet"`
	Style       StyleConfig `yaml:"style"`
}

// DefaultConfig — входной и выходной файлы по умолчанию и стандартное оформление.
func DefaultConfig() Config {
	return Config{
		Input:       "inputs/test.csv",
		Output:      "outputs/report.xlsx",
		Delimiter:   ",",
		ValuePolicy: PolicyTolerate,
		Style:       DefaultStyle(),
	}
}

// LoadConfig читает YAML поверх DefaultConfig: отсутствующие поля сохраняют значения по умолчанию.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, &IoError{Op: "open", Path: path, Err: err}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ConfigError{Field: path, Err: err}
	}
	return cfg, cfg.Validate()
}

// Validate проверяет поля, которые нельзя исправить молча.
func (c Config) Validate() error {
	if c.Input == "" {
		return &ConfigError{Field: "input", Err: fmt.Errorf("не задан входной файл")}
	}
	if c.Output == "" {
		return &ConfigError{Field: "output", Err: fmt.Errorf("не задан выходной файл")}
	}
	if _, err := c.delimiter(); err != nil {
		return err
	}
	switch c.ValuePolicy {
	case "", PolicyTolerate, PolicyStrict, PolicyPad:
	default:
		return &ConfigError{Field: "value_policy", Err: fmt.Errorf("неизвестная политика %q", c.ValuePolicy)}
	}
	return nil
}

func (c Config) delimiter() (rune, error) {
	if c.Delimiter == "" {
		return ',', nil
	}
	if c.Delimiter == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if size != len(c.Delimiter) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, &ConfigError{Field: "delimiter", Err: fmt.Errorf("недопустимый разделитель %q", c.Delimiter)}
	}
	return r, nil
}
