package buildinfo

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	origVersion, origCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = origVersion, origCommit })

	tests := []struct {
		version, commit, want string
	}{
		{"dev", "none", "dev"},
		{"v1.0.0", "", "v1.0.0"},
		{"v1.0.0", "abc", "v1.0.0 (abc)"},
		{"v1.0.0", "0123456789abcdef", "v1.0.0 (0123456)"},
	}
	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Errorf("Short() with %q/%q = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q, should start with cobra name placeholder", tmpl)
	}
	if !strings.Contains(String(), "commit: ") {
		t.Errorf("String() = %q, missing commit line", String())
	}
}
