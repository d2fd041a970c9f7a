package outlinereport

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// StyleClass — смысловой класс ячейки. Внешний вид определяется StyleConfig.
type StyleClass int

const (
	HeaderGroup StyleClass = iota
	HeaderScenario
	HeaderScenarioLast
	MetricLabel
	OutlineLabel
	NumericValue
)

func (c StyleClass) String() string {
	switch c {
	case HeaderGroup:
		return "header-group"
	case HeaderScenario:
		return "header-scenario"
	case HeaderScenarioLast:
		return "header-scenario-last"
	case MetricLabel:
		return "metric-label"
	case OutlineLabel:
		return "outline-label"
	case NumericValue:
		return "numeric-value"
	default:
		return fmt.Sprintf("style(%d)", int(c))
	}
}

// StyleConfig задаёт оформление отчёта.
type StyleConfig struct {
	Font          string  `yaml:"font"`
	FontSize      float64 `yaml:"font_size"`
	GroupFontSize float64 `yaml:"group_font_size"`
	GroupFill     string  `yaml:"group_fill"`
	ScenarioFill  string  `yaml:"scenario_fill"`
	LabelWidth    float64 `yaml:"label_width"`
	ValueWidth    float64 `yaml:"value_width"`
	HeaderHeight  float64 `yaml:"header_height"`
	RowHeight     float64 `yaml:"row_height"`
	NumberFormat  string  `yaml:"number_format"`
}

// DefaultStyle — Aptos 10pt, жёлтая шапка группы, серые заголовки сценариев.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		Font:          "Aptos",
		FontSize:      10,
		GroupFontSize: 14,
		GroupFill:     "FFD700",
		ScenarioFill:  "D3D3D3",
		LabelWidth:    34.83,
		ValueWidth:    14.83,
		HeaderHeight:  36,
		RowHeight:     18,
		NumberFormat:  "#,##0.00",
	}
}

// withDefaults заполняет нулевые поля значениями DefaultStyle.
func (sc StyleConfig) withDefaults() StyleConfig {
	def := DefaultStyle()
	if sc.Font == "" {
		sc.Font = def.Font
	}
	if sc.FontSize <= 0 {
		sc.FontSize = def.FontSize
	}
	if sc.GroupFontSize <= 0 {
		sc.GroupFontSize = def.GroupFontSize
	}
	if sc.GroupFill == "" {
		sc.GroupFill = def.GroupFill
	}
	if sc.ScenarioFill == "" {
		sc.ScenarioFill = def.ScenarioFill
	}
	if sc.LabelWidth <= 0 {
		sc.LabelWidth = def.LabelWidth
	}
	if sc.ValueWidth <= 0 {
		sc.ValueWidth = def.ValueWidth
	}
	if sc.HeaderHeight <= 0 {
		sc.HeaderHeight = def.HeaderHeight
	}
	if sc.RowHeight <= 0 {
		sc.RowHeight = def.RowHeight
	}
	if sc.NumberFormat == "" {
		sc.NumberFormat = def.NumberFormat
	}
	return sc
}

// excelStyle строит excelize.Style для класса и отступа.
func (sc StyleConfig) excelStyle(class StyleClass, indent int) *excelize.Style {
	font := &excelize.Font{Family: sc.Font, Size: sc.FontSize}
	bottom := excelize.Border{Type: "bottom", Color: "000000", Style: 1}

	switch class {
	case HeaderGroup:
		font.Size = sc.GroupFontSize
		return &excelize.Style{
			Font:      font,
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{sc.GroupFill}},
			Border:    []excelize.Border{bottom},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}
	case HeaderScenario, HeaderScenarioLast:
		borders := []excelize.Border{bottom}
		if class == HeaderScenarioLast {
			// medium
			borders = append(borders, excelize.Border{Type: "right", Color: "000000", Style: 2})
		}
		return &excelize.Style{
			Font:      font,
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{sc.ScenarioFill}},
			Border:    borders,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		}
	case MetricLabel, OutlineLabel:
		font.Bold = true
		return &excelize.Style{
			Font:      font,
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", Indent: indent},
		}
	case NumericValue:
		numFmt := sc.NumberFormat
		return &excelize.Style{
			Font:         font,
			CustomNumFmt: &numFmt,
			Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center", Indent: 1},
		}
	default:
		return &excelize.Style{Font: font}
	}
}
