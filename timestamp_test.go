package finbook

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  string
		err   bool
	}{
		{"2025/08/13 14:30", "2025/08/13 14:30", false},
		{" 2025/08/13 14:30 ", "2025/08/13 14:30", false},
		{"2025-08-13 14:30", "", true},
		{"2025/08/13", "", true}, // bare dates are the normalizer's job
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := ParseTimestamp(tt.input)
			if tt.err {
				if err == nil {
					t.Errorf("want error for %q, got %v", tt.input, ts)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q): %v", tt.input, err)
			}
			if ts.String() != tt.want {
				t.Errorf("ParseTimestamp(%q) = %q, want %q", tt.input, ts, tt.want)
			}
		})
	}
}

func TestTimestamp_SameMonth(t *testing.T) {
	ts := MustParseTimestamp("2025/08/13 14:30")
	if !ts.SameMonth(time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("2025/08/13 must be in August 2025")
	}
	if ts.SameMonth(time.Date(2024, time.August, 13, 14, 30, 0, 0, time.UTC)) {
		t.Error("same month of a different year must not match")
	}
	if ts.SameMonth(time.Date(2025, time.July, 31, 23, 59, 0, 0, time.UTC)) {
		t.Error("adjacent month must not match")
	}
}

func TestNewTimestamp_TruncatesToMinute(t *testing.T) {
	ts := NewTimestamp(time.Date(2025, time.August, 13, 14, 30, 59, 123456, time.UTC))
	if ts.String() != "2025/08/13 14:30" {
		t.Errorf("got %q, want seconds dropped", ts)
	}
}
