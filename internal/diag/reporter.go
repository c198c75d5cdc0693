package diag

// Reporter принимает готовые диагностики от лексера и драйвера.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter кладёт диагностики в *Bag; сверх лимита Bag они теряются.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}
