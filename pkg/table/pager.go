package table

import "slices"

// PageSizes are the page sizes offered to users.
var PageSizes = []int{10, 20, 30, 40, 50}

// DefaultPageSize is the initial page size.
const DefaultPageSize = 10

// Pager tracks the current page over a row set of fixed length.
// The zero value has no rows and is not useful; create one with [NewPager].
type Pager struct {
	total int
	size  int
	index int
}

// NewPager creates a pager positioned on the first page. A non-positive
// size falls back to [DefaultPageSize]; a negative total counts as zero.
func NewPager(total, size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{total: max(total, 0), size: size}
}

// Total returns the number of rows being paged.
func (p *Pager) Total() int { return p.total }

// PageSize returns the number of rows per page.
func (p *Pager) PageSize() int { return p.size }

// PageIndex returns the zero-based current page.
func (p *Pager) PageIndex() int { return p.index }

// PageCount returns ceil(Total/PageSize). It is 0 when there are no rows.
func (p *Pager) PageCount() int {
	return (p.total + p.size - 1) / p.size
}

// Bounds returns the half-open row range of the current page.
func (p *Pager) Bounds() (start, end int) {
	start = min(p.index*p.size, p.total)
	end = min(start+p.size, p.total)
	return start, end
}

// CanPrevious reports whether a previous page exists.
func (p *Pager) CanPrevious() bool { return p.index > 0 }

// CanNext reports whether a next page exists.
func (p *Pager) CanNext() bool { return p.index < p.PageCount()-1 }

// Goto moves to page i. Indices outside [0, PageCount()-1] are ignored and
// Goto reports false.
func (p *Pager) Goto(i int) bool {
	if i < 0 || i >= p.PageCount() {
		return false
	}
	p.index = i
	return true
}

// First moves to the first page.
func (p *Pager) First() bool { return p.Goto(0) }

// Last moves to the last page.
func (p *Pager) Last() bool { return p.Goto(p.PageCount() - 1) }

// Next moves forward one page.
func (p *Pager) Next() bool { return p.Goto(p.index + 1) }

// Previous moves back one page.
func (p *Pager) Previous() bool { return p.Goto(p.index - 1) }

// SetPageSize changes the page size while keeping the first visible row on
// screen. Non-positive sizes are ignored.
func (p *Pager) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	top := p.index * p.size
	p.size = size
	p.index = top / size
}

// Page returns the slice of rows visible on the pager's current page.
// rows should have length p.Total().
func Page[T any](p *Pager, rows []T) []T {
	start, end := p.Bounds()
	end = min(end, len(rows))
	start = min(start, end)
	return rows[start:end]
}

// NextPageSize returns the entry after size in [PageSizes], wrapping
// around. Sizes not in the list map to the first entry.
func NextPageSize(size int) int {
	i := slices.Index(PageSizes, size)
	if i < 0 {
		return PageSizes[0]
	}
	return PageSizes[(i+1)%len(PageSizes)]
}
