package domain

// Dataset is the demo data model: categories on one axis, series on the
// other, one numeric value per category×series cell.
type Dataset struct {
	Name       string
	Measure    string // measure name, e.g. "Sales"
	Series     []string
	Categories []Category
}

// Category is one category with its per-series values
type Category struct {
	Name   string
	Values []SeriesValue
}

// SeriesValue is a single category×series cell
type SeriesValue struct {
	Series string
	Value  float64
}

// MaxValue returns the largest cell value, used for bar scaling
func (d *Dataset) MaxValue() float64 {
	max := 0.0
	for _, c := range d.Categories {
		for _, v := range c.Values {
			if v.Value > max {
				max = v.Value
			}
		}
	}
	return max
}
