package table

import "testing"

func TestPagerScenario(t *testing.T) {
	rows := make([]int, 25)
	for i := range rows {
		rows[i] = i
	}

	p := NewPager(len(rows), 10)
	if got := p.PageCount(); got != 3 {
		t.Fatalf("PageCount() = %d, want 3", got)
	}
	if !p.Last() {
		t.Fatal("Last() = false")
	}
	page := Page(p, rows)
	if len(page) != 5 {
		t.Fatalf("last page has %d rows, want 5", len(page))
	}
	if page[0] != 20 || page[4] != 24 {
		t.Errorf("last page = %v, want 20..24", page)
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100000, 50, 2000},
		{7, 0, 1},
		{-3, 10, 0},
	}
	for _, tt := range tests {
		if got := NewPager(tt.total, tt.size).PageCount(); got != tt.want {
			t.Errorf("NewPager(%d, %d).PageCount() = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestPagerNavigation(t *testing.T) {
	p := NewPager(45, 10)

	if p.CanPrevious() {
		t.Error("CanPrevious() on first page")
	}
	if p.Previous() {
		t.Error("Previous() on first page should be ignored")
	}
	if !p.Next() || p.PageIndex() != 1 {
		t.Errorf("Next(): index = %d, want 1", p.PageIndex())
	}
	if !p.Goto(3) || p.PageIndex() != 3 {
		t.Errorf("Goto(3): index = %d", p.PageIndex())
	}
	if p.Goto(5) || p.PageIndex() != 3 {
		t.Errorf("Goto(5) should be ignored, index = %d", p.PageIndex())
	}
	if p.Goto(-1) || p.PageIndex() != 3 {
		t.Errorf("Goto(-1) should be ignored, index = %d", p.PageIndex())
	}
	p.Last()
	if p.PageIndex() != 4 || p.CanNext() {
		t.Errorf("Last(): index = %d, CanNext = %v", p.PageIndex(), p.CanNext())
	}
	if p.Next() {
		t.Error("Next() on last page should be ignored")
	}
	start, end := p.Bounds()
	if start != 40 || end != 45 {
		t.Errorf("Bounds() = [%d, %d), want [40, 45)", start, end)
	}
	p.First()
	if p.PageIndex() != 0 || !p.CanNext() {
		t.Errorf("First(): index = %d", p.PageIndex())
	}
}

func TestPagerEmpty(t *testing.T) {
	p := NewPager(0, 10)
	if p.Next() || p.Last() || p.Goto(0) {
		t.Error("navigation on empty pager should be ignored")
	}
	if p.CanNext() || p.CanPrevious() {
		t.Error("empty pager should not allow navigation")
	}
	if got := Page(p, []string{}); len(got) != 0 {
		t.Errorf("Page() = %v, want empty", got)
	}
}

func TestSetPageSize(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		from, to  int
		wantIndex int
	}{
		{"grow keeps top row", 5, 10, 50, 1},
		{"shrink keeps top row", 1, 50, 10, 5},
		{"first page", 0, 10, 30, 0},
		{"uneven", 3, 20, 30, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(1000, tt.from)
			p.Goto(tt.index)
			p.SetPageSize(tt.to)
			if p.PageIndex() != tt.wantIndex {
				t.Errorf("index = %d, want %d", p.PageIndex(), tt.wantIndex)
			}
			if p.PageSize() != tt.to {
				t.Errorf("size = %d, want %d", p.PageSize(), tt.to)
			}
		})
	}

	p := NewPager(100, 20)
	p.SetPageSize(0)
	if p.PageSize() != 20 {
		t.Errorf("SetPageSize(0) changed size to %d", p.PageSize())
	}
}

func TestPageSizes(t *testing.T) {
	if NextPageSize(10) != 20 || NextPageSize(50) != 10 || NextPageSize(17) != 10 {
		t.Error("NextPageSize does not cycle through PageSizes")
	}
}
