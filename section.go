package outlinereport

// enterSection открывает новый лист при смене группы и пишет заголовок метрики
// при смене метрики. Переходы только вперёд: повтор группы позже во входе
// даёт новый лист.
func (d *Driver) enterSection(rec Record) error {
	if !d.hasSheet || rec.Group != d.group {
		if err := d.openSheet(rec.Group); err != nil {
			return err
		}
	}
	if d.state.HasMetric && rec.Metric == d.state.PreviousMetric {
		return nil
	}
	if d.state.HasMetric {
		d.state.Cursor++
	}
	if err := d.w.WriteText(d.sheet, d.state.Cursor, 0, rec.Metric, 0, MetricLabel); err != nil {
		return err
	}
	d.state.Cursor++
	d.state.resetMetric(rec.Metric)
	return nil
}

func (d *Driver) openSheet(group string) error {
	sheet, err := d.w.NewSheet(group)
	if err != nil {
		return err
	}
	if err := d.w.WriteText(sheet, 0, 0, group, 0, HeaderGroup); err != nil {
		return err
	}
	for j, name := range d.scenarios {
		class := HeaderScenario
		if j == len(d.scenarios)-1 {
			class = HeaderScenarioLast
		}
		if err := d.w.WriteText(sheet, 0, j+1, name, 0, class); err != nil {
			return err
		}
	}
	d.sheet = sheet
	d.hasSheet = true
	d.group = group
	d.groups = append(d.groups, group)
	d.state.resetSheet()
	return nil
}
