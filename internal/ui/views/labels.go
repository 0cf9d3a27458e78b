package views

import (
	"strings"
)

// RenderLabels renders the data-labels pane. Labels track the same
// selection set as the chart through their own containment pass.
func RenderLabels(labels []*LabelPoint, st *Styles) string {
	var b strings.Builder
	b.WriteString(st.PaneTitle.Render("Labels"))
	b.WriteString("\n")

	var row []string
	for _, l := range labels {
		text := l.Text
		if l.Point.Selected {
			text = st.LabelSelected.Render("[" + text + "]")
		} else {
			text = st.Label.Render(text)
		}
		row = append(row, text)
	}
	b.WriteString(strings.Join(row, "  "))

	return st.Pane.Render(b.String())
}
