package errors

import (
	"testing"
)

func TestParseLevels(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"empty", "", []int{}, false},
		{"blank", "   ", []int{}, false},
		{"single", "100000", []int{100000}, false},
		{"two levels", "10,5", []int{10, 5}, false},
		{"spaces", " 2 , 2 ", []int{2, 2}, false},
		{"zero", "0", []int{0}, false},
		{"zero then huge", "0,999999999", []int{0, 999999999}, false},

		{"not a number", "ten", nil, true},
		{"trailing comma", "10,", nil, true},
		{"negative", "5,-1", nil, true},
		{"too many records", "10000,10000", nil, true},
		{"overflow", "9223372036854775807,9223372036854775807", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevels(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevels(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !Is(err, ErrCodeInvalidLevels) {
					t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidLevels)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseLevels(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseLevels(%q)[%d] = %d, want %d", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidateLevelsLimit(t *testing.T) {
	if err := ValidateLevels([]int{MaxRecords}); err != nil {
		t.Errorf("ValidateLevels(MaxRecords) error = %v", err)
	}
	if err := ValidateLevels([]int{MaxRecords + 1}); err == nil {
		t.Error("ValidateLevels(MaxRecords+1) should fail")
	}
	if err := ValidateLevels([]int{1000, 5000}); err == nil {
		t.Error("ValidateLevels([1000 5000]) should fail: 5,001,000 records")
	}
}

func TestValidatePageSize(t *testing.T) {
	allowed := []int{10, 20, 30}
	if err := ValidatePageSize(20, allowed); err != nil {
		t.Errorf("ValidatePageSize(20) error = %v", err)
	}
	err := ValidatePageSize(25, allowed)
	if !Is(err, ErrCodeInvalidPageSize) {
		t.Errorf("ValidatePageSize(25) = %v, want %s", err, ErrCodeInvalidPageSize)
	}
}

func TestValidatePage(t *testing.T) {
	tests := []struct {
		page, count int
		wantErr     bool
	}{
		{1, 3, false},
		{3, 3, false},
		{1, 0, false},
		{0, 3, true},
		{4, 3, true},
		{2, 0, true},
	}
	for _, tt := range tests {
		err := ValidatePage(tt.page, tt.count)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePage(%d, %d) error = %v, wantErr %v", tt.page, tt.count, err, tt.wantErr)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "config.toml", false},
		{"absolute", "/etc/datatable/config.toml", false},
		{"home", "~/.config/datatable/config.toml", false},

		{"empty", "", true},
		{"null byte", "conf\x00ig", true},
		{"newline", "conf\nig", true},
		{"too long", string(make([]byte, 5000)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
