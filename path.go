package outlinereport

// BreakKind описывает, как текущий путь соотносится с предыдущим.
type BreakKind int

const (
	// NoPriorPath — первая строка метрики или листа.
	NoPriorPath BreakKind = iota
	// SameFirstSegment — общий первый сегмент, расхождение глубже.
	SameFirstSegment
	// DifferentFirstSegment — путь нужно вывести целиком.
	DifferentFirstSegment
)

func (k BreakKind) String() string {
	switch k {
	case NoPriorPath:
		return "no-prior-path"
	case SameFirstSegment:
		return "same-first-segment"
	case DifferentFirstSegment:
		return "different-first-segment"
	default:
		return "unknown"
	}
}

// BreakLevel — индекс первого сегмента, начиная с которого строки выводятся заново.
type BreakLevel struct {
	Kind  BreakKind
	Level int
}

// Diff сравнивает предыдущий и текущий путь.
//
// Если один путь — префикс другого (или пути совпадают), уровнем считается длина
// более короткого. Уровень всегда ограничен len(current)-1: у каждой записи есть
// листовая строка.
func Diff(previous, current Path) BreakLevel {
	if len(previous) == 0 {
		return BreakLevel{Kind: NoPriorPath}
	}
	if len(current) == 0 || previous[0] != current[0] {
		return BreakLevel{Kind: DifferentFirstSegment}
	}
	n := min(len(previous), len(current))
	level := n
	for i := 1; i < n; i++ {
		if previous[i] != current[i] {
			level = i
			break
		}
	}
	if last := len(current) - 1; level > last {
		level = last
	}
	return BreakLevel{Kind: SameFirstSegment, Level: level}
}
