package views

import (
	"fmt"
	"strings"

	"chartgrip/internal/domain"
)

const maxBarWidth = 24

// RenderChart renders the primary pane: one row per category×series bar.
// While a selection exists, unselected bars are dimmed so the selected
// ones stand out.
func RenderChart(ds *domain.Dataset, bars []*BarPoint, cursor int, hasSelection bool, st *Styles) string {
	var b strings.Builder
	b.WriteString(st.PaneTitle.Render(ds.Name))
	b.WriteString("\n")

	max := ds.MaxValue()
	if max <= 0 {
		max = 1
	}

	for i, bar := range bars {
		marker := "  "
		if i == cursor {
			marker = st.Cursor.Render("▸ ")
		}

		width := int(bar.Value / max * maxBarWidth)
		if width < 1 {
			width = 1
		}
		blocks := strings.Repeat("▇", width)

		row := fmt.Sprintf("%-6s %-3s %s %.0f", bar.Category, bar.Series, blocks, bar.Value)
		switch {
		case bar.Point.Selected:
			row = st.BarSelected.Render(row)
		case hasSelection:
			row = st.BarDim.Render(row)
		default:
			row = st.Bar.Render(row)
		}

		b.WriteString(marker)
		b.WriteString(row)
		if i < len(bars)-1 {
			b.WriteString("\n")
		}
	}

	return st.Pane.Render(b.String())
}
