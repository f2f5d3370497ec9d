package service

import (
	"regexp"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"15-01-2024", "2024-01-15"},
		{"15/01/2024", "2024-01-15"},
		{"5-3-2024", "2024-03-05"},
		{"2024-01-15", "2024-01-15"},
		{"2024/01/15", "2024-01-15"},
		{"2024-1-5", "2024-01-05"},
		{" 15-01-2024 ", "2024-01-15"},
		{"not a date", ""},
		{"", ""},
		{"15-01-24", ""},      // two-digit years are not guessed
		{"01-15-2024 10:30", ""}, // time components are not accepted
	}
	for _, tt := range tests {
		if got := ParseDate(tt.in); got != tt.want {
			t.Errorf("ParseDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDateSerial(t *testing.T) {
	// 45000 days after 1899-12-30
	if got := ParseDate("45000"); got != "2023-03-15" {
		t.Errorf("ParseDate(45000) = %q, want 2023-03-15", got)
	}
	// epoch offset itself is 1970-01-01
	if got := ParseDate("25569"); got != "1970-01-01" {
		t.Errorf("ParseDate(25569) = %q, want 1970-01-01", got)
	}

	iso := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	for _, s := range []string{"43831", "44561.5", "45290"} {
		if got := ParseDate(s); !iso.MatchString(got) {
			t.Errorf("ParseDate(%q) = %q, not an ISO date", s, got)
		}
	}
}
