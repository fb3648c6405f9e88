package cli

import (
	"regexp"
	"strings"
	"testing"

	"github.com/matzehuels/datatable/pkg/table"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable(t *testing.T) {
	rows := []table.Row{
		{Key: "a", Select: table.MarkUnchecked, Title: "Ann Lee", Date: "1/2/2024, 3:04:05 PM", Label: "single", Description: "30", Action: "✎ ✗"},
		{Key: "b", Select: table.MarkUnchecked, Title: "Bo Xu", Date: "1/3/2024, 3:04:05 PM", Label: "complicated", Description: "12", Action: "✎ ✗"},
	}

	out := stripANSI(renderTable(pageView{
		rows:     rows,
		cursor:   -1,
		selected: map[string]bool{"b": true},
	}))

	for _, want := range []string{"Title", "Status", "Ann Lee", "single", "30", "Bo Xu", "complicated"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderTable() missing %q", want)
		}
	}
	if strings.Count(out, table.MarkChecked) != 1 {
		t.Errorf("want exactly one checked marker in:\n%s", out)
	}
	if strings.Count(out, table.MarkUnchecked) != 1 {
		t.Errorf("want exactly one unchecked marker in:\n%s", out)
	}
}

func TestRenderPagination(t *testing.T) {
	p := table.NewPager(25, 10)
	p.Next()

	out := stripANSI(renderPagination(p, "", false))
	for _, want := range []string{"Page 2 of 3", "Show 10", "Go to page"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderPagination() = %q, missing %q", out, want)
		}
	}

	out = stripANSI(renderPagination(p, "12", true))
	if !strings.Contains(out, "Go to page: 12") {
		t.Errorf("renderPagination() while jumping = %q", out)
	}
}
