package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/datatable/pkg/table"
)

// pageView is everything needed to draw one page of rows.
type pageView struct {
	rows     []table.Row     // rows on the current page
	offset   int             // absolute index of rows[0]
	cursor   int             // absolute index of the highlighted row, -1 for none
	selected map[string]bool // row keys with a checked select marker
}

// renderTable draws the visible page as a bordered table.
func renderTable(v pageView) string {
	cols := table.Columns()

	data := make([][]string, len(v.rows))
	for i, r := range v.rows {
		data[i] = r.WithSelected(v.selected[r.Key]).Values(cols)
	}

	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(table.Headers(cols)...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == ltable.HeaderRow {
				return base.Inherit(styleHeader)
			}
			if row < 0 || row >= len(v.rows) {
				return base
			}

			r := v.rows[row]
			switch {
			case v.offset+row == v.cursor:
				return base.Inherit(styleCursor)
			case v.selected[r.Key]:
				return base.Inherit(styleSelected)
			}

			switch cols[col].Accessor {
			case table.AccessorLabel:
				if s, ok := styleStatus[r.Label]; ok {
					return base.Inherit(s)
				}
			case table.AccessorAction:
				return base.Inherit(styleAction)
			case table.AccessorDate, table.AccessorSelect:
				return base.Inherit(StyleDim)
			}
			return base.Inherit(StyleValue)
		})

	return t.Render()
}

// renderPagination draws the navigation bar under the table. Affordances
// that cannot be used on the current page are dimmed.
func renderPagination(p *table.Pager, jump string, jumping bool) string {
	nav := func(icon, key string, enabled bool) string {
		if !enabled {
			return styleDisabled.Render(icon + " " + key)
		}
		return StyleValue.Render(icon) + " " + styleKey.Render(key)
	}

	left := nav(iconFirst, "g", p.CanPrevious()) + "  " + nav(iconPrevious, "h", p.CanPrevious())
	right := nav(iconNext, "l", p.CanNext()) + "  " + nav(iconLast, "G", p.CanNext())

	page := "Page " + StyleNumber.Render(formatCount(p.PageIndex()+1)) +
		" of " + StyleNumber.Render(formatCount(p.PageCount()))

	var goTo string
	if jumping {
		goTo = "Go to page: " + StyleValue.Render(jump) + styleCursor.Render("█")
	} else {
		goTo = StyleDim.Render("Go to page: :")
	}

	size := "Show " + StyleNumber.Render(formatCount(p.PageSize()))

	return strings.Join([]string{left, page, goTo, size, right}, "    ")
}
