package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/datatable/pkg/buildinfo"
	"github.com/matzehuels/datatable/pkg/table"
)

var (
	hintStyle   = lipgloss.NewStyle().Foreground(colorDim)
	statusStyle = lipgloss.NewStyle().Foreground(colorGray).Italic(true)
)

// =============================================================================
// TableModel - Interactive paginated table
// =============================================================================

// TableModel is the bubbletea model for browsing rows page by page.
// The pager owns page index and size; the model only adds a cursor, the
// select markers and the "go to page" input.
type TableModel struct {
	Rows     []table.Row
	Pager    *table.Pager
	Cursor   int             // absolute row index
	Selected map[string]bool // keyed by Row.Key
	Jumping  bool            // "go to page" input is open
	Jump     string          // digits typed so far
	Status   string
	Actions  []RowAction // edit/remove requests, in order
}

// RowAction is an edit or remove request made on a row. The model only
// records it; the alt-screen owns the terminal, so reporting happens after
// the program exits.
type RowAction struct {
	Verb string
	Row  table.Row
}

// NewTableModel creates a model positioned on the first page.
func NewTableModel(rows []table.Row, pageSize int) TableModel {
	return TableModel{
		Rows:     rows,
		Pager:    table.NewPager(len(rows), pageSize),
		Selected: make(map[string]bool),
	}
}

func (m TableModel) Init() tea.Cmd {
	return nil
}

func (m TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.Jumping {
		return m.updateJump(key)
	}

	m.Status = ""
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h", "pgup":
		m.navigate(m.Pager.Previous())
	case "right", "l", "pgdown":
		m.navigate(m.Pager.Next())
	case "home", "g":
		m.navigate(m.Pager.First())
	case "end", "G":
		m.navigate(m.Pager.Last())
	case "up", "k":
		if start, _ := m.Pager.Bounds(); m.Cursor > start {
			m.Cursor--
		}
	case "down", "j":
		if _, end := m.Pager.Bounds(); m.Cursor < end-1 {
			m.Cursor++
		}
	case " ", "x":
		if r, ok := m.current(); ok {
			m.Selected[r.Key] = !m.Selected[r.Key]
			if !m.Selected[r.Key] {
				delete(m.Selected, r.Key)
			}
		}
	case "s":
		m.Pager.SetPageSize(table.NextPageSize(m.Pager.PageSize()))
		m.navigate(true)
		m.Status = fmt.Sprintf("Showing %d rows per page", m.Pager.PageSize())
	case ":", "/":
		m.Jumping = true
		m.Jump = ""
	case "e":
		m.action("Edit")
	case "d":
		m.action("Remove")
	}
	return m, nil
}

// updateJump handles keys while the "go to page" input is open.
func (m TableModel) updateJump(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.Jumping, m.Jump = false, ""
	case tea.KeyBackspace:
		if m.Jump != "" {
			m.Jump = m.Jump[:len(m.Jump)-1]
		}
	case tea.KeyEnter:
		m.Jumping = false
		page, err := strconv.Atoi(m.Jump)
		m.Jump = ""
		if err != nil {
			return m, nil
		}
		if !m.Pager.Goto(page - 1) {
			m.Status = fmt.Sprintf("Page %d is out of range", page)
			return m, nil
		}
		m.navigate(true)
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if r >= '0' && r <= '9' && len(m.Jump) < 9 {
				m.Jump += string(r)
			}
		}
	}
	return m, nil
}

// navigate moves the cursor to the top of the current page after a
// successful page change.
func (m *TableModel) navigate(moved bool) {
	if !moved {
		return
	}
	m.Cursor, _ = m.Pager.Bounds()
}

// current returns the row under the cursor.
func (m TableModel) current() (table.Row, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Rows) {
		return table.Row{}, false
	}
	return m.Rows[m.Cursor], true
}

// action records an edit or remove request. Both are placeholders that
// leave the data untouched.
func (m *TableModel) action(verb string) {
	r, ok := m.current()
	if !ok {
		return
	}
	m.Actions = append(m.Actions, RowAction{Verb: verb, Row: r})
	m.Status = verb + " " + r.Title
}

func (m TableModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName) + " " + StyleDim.Render(buildinfo.Short()))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("←/→ page  ↑/↓ row  space select  s page size  : go to page  e/d actions  q quit"))
	b.WriteString("\n\n")

	start, _ := m.Pager.Bounds()
	b.WriteString(renderTable(pageView{
		rows:     table.Page(m.Pager, m.Rows),
		offset:   start,
		cursor:   m.Cursor,
		selected: m.Selected,
	}))
	b.WriteString("\n\n")
	b.WriteString(renderPagination(m.Pager, m.Jump, m.Jumping))
	b.WriteString("\n")

	footer := fmt.Sprintf("%s rows · %d selected", formatCount(len(m.Rows)), len(m.Selected))
	b.WriteString(hintStyle.Render(footer))
	if m.Status != "" {
		b.WriteString("  " + statusStyle.Render(m.Status))
	}
	b.WriteString("\n")

	return b.String()
}

// SelectedRows returns the selected rows in table order.
func (m TableModel) SelectedRows() []table.Row {
	var out []table.Row
	for _, r := range m.Rows {
		if m.Selected[r.Key] {
			out = append(out, r)
		}
	}
	return out
}
