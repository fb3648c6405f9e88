package table

import (
	"strconv"
	"time"

	"github.com/matzehuels/datatable/pkg/makedata"
)

// DateLayout mirrors the en-US locale date/time format.
const DateLayout = "1/2/2006, 3:04:05 PM"

// Accessor names a row field.
type Accessor string

const (
	AccessorSelect      Accessor = "select"
	AccessorTitle       Accessor = "title"
	AccessorDate        Accessor = "date"
	AccessorLabel       Accessor = "label"
	AccessorDescription Accessor = "description"
	AccessorAction      Accessor = "action"
)

// Placeholders rendered in the select and action columns.
const (
	MarkUnchecked = "[ ]"
	MarkChecked   = "[x]"
	ActionEdit    = "✎"
	ActionDelete  = "✗"
)

// Column describes one table column.
type Column struct {
	Accessor Accessor
	Header   string
}

var columns = []Column{
	{Accessor: AccessorSelect, Header: ""},
	{Accessor: AccessorTitle, Header: "Title"},
	{Accessor: AccessorDate, Header: "Date"},
	{Accessor: AccessorLabel, Header: "Status"},
	{Accessor: AccessorDescription, Header: "Description"},
	{Accessor: AccessorAction, Header: ""},
}

// Columns returns the fixed column list in display order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// Headers returns the header text of cols.
func Headers(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

// Row is the display projection of one person.
type Row struct {
	Key         string
	Select      string
	Title       string
	Date        string
	Label       string
	Description string
	Action      string
}

// FromPerson projects p into a row. The select marker starts unchecked and
// the action cell holds inert edit/delete placeholders.
func FromPerson(p makedata.Person) Row {
	return Row{
		Key:         p.ID.String(),
		Select:      MarkUnchecked,
		Title:       p.FullName(),
		Date:        FormatDate(p.Date),
		Label:       string(p.Status),
		Description: strconv.Itoa(p.Age),
		Action:      ActionEdit + " " + ActionDelete,
	}
}

// Rows projects every top-level person. Children are not included; use
// [makedata.Flatten] first to show every level.
func Rows(people []makedata.Person) []Row {
	out := make([]Row, len(people))
	for i, p := range people {
		out[i] = FromPerson(p)
	}
	return out
}

// FormatDate renders t in local time using [DateLayout].
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// Cell returns the value for accessor a, or "" for unknown accessors.
func (r Row) Cell(a Accessor) string {
	switch a {
	case AccessorSelect:
		return r.Select
	case AccessorTitle:
		return r.Title
	case AccessorDate:
		return r.Date
	case AccessorLabel:
		return r.Label
	case AccessorDescription:
		return r.Description
	case AccessorAction:
		return r.Action
	}
	return ""
}

// Values returns the cells of r in column order.
func (r Row) Values(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = r.Cell(c.Accessor)
	}
	return out
}

// WithSelected returns a copy of r with the select marker set.
func (r Row) WithSelected(selected bool) Row {
	if selected {
		r.Select = MarkChecked
	} else {
		r.Select = MarkUnchecked
	}
	return r
}
