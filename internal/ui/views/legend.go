package views

import (
	"strings"
)

// RenderLegend renders the legend pane: one entry per series. A selected
// entry is highlighted; entries are marked with a filled dot when selected.
func RenderLegend(legend []*LegendPoint, st *Styles) string {
	var b strings.Builder
	b.WriteString(st.PaneTitle.Render("Legend"))
	b.WriteString("\n")

	for i, item := range legend {
		dot := "○"
		row := dot + " " + item.Series
		if item.Point.Selected {
			row = st.LegendSelected.Render("● " + item.Series)
		} else {
			row = st.Legend.Render(row)
		}
		b.WriteString(row)
		if i < len(legend)-1 {
			b.WriteString("\n")
		}
	}

	return st.Pane.Render(b.String())
}
