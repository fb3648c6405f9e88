// Package table projects person records into display rows and paginates them.
//
// # Rows and Columns
//
// [FromPerson] converts a [makedata.Person] into a [Row] whose fields are
// already formatted for display. [Columns] returns the fixed column list
// used by every renderer in this module:
//
//	rows := table.Rows(people)
//	for _, col := range table.Columns() {
//	    fmt.Println(col.Header, rows[0].Cell(col.Accessor))
//	}
//
// # Pagination
//
// [Pager] owns the page index and page size for a row set of known length.
// Given N rows and page size P it exposes ceil(N/P) pages and the half-open
// bounds [i*P, min(N, (i+1)*P)) of the current page:
//
//	p := table.NewPager(len(rows), 10)
//	p.Next()
//	visible := table.Page(p, rows)
//
// Navigation outside [0, PageCount()-1] is ignored rather than reported,
// so callers can wire key presses straight to the pager.
//
// [makedata.Person]: github.com/matzehuels/datatable/pkg/makedata.Person
package table
