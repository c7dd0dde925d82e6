package finbook

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// fixedNow is a Wednesday.
var fixedNow = time.Date(2025, time.August, 13, 14, 30, 0, 0, time.UTC)

func testNormalizer() *Normalizer {
	return &Normalizer{
		Rates: StaticRates{
			"USD": decimal.RequireFromString("7.2"),
			"EUR": decimal.RequireFromString("7.8"),
		},
		Now: func() time.Time { return fixedNow },
	}
}

func TestNormalizeAmount(t *testing.T) {
	n := testNormalizer()

	tests := []struct {
		input string
		want  string
	}{
		{"30 USD", "216"},     // known foreign currency, rate applied
		{"30$", "216"},        // dollar symbol is USD
		{"30 dollars", "216"}, // currency word alias
		{"2 EUR", "15.6"},
		{"2€", "15.6"},
		{"30", "30"},     // unitless is home currency
		{"30 CNY", "30"}, // home currency, no conversion
		{"30 CHY", "30"}, // known misspelling corrected to CNY
		{"30 yuan", "30"},
		{"30¥", "30"},
		{"30 GBP", "30"}, // no rate known: raw value kept
		{"  12.50  ", "12.5"},
		{"$30", "30"},      // symbol before the number misses the pattern, digits salvaged
		{"abc45def", "45"}, // pattern miss, digits salvaged
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := n.NormalizeAmount(tt.input)
			if err != nil {
				t.Fatalf("NormalizeAmount(%q): %v", tt.input, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("NormalizeAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeAmount_Unparsable(t *testing.T) {
	n := testNormalizer()
	for _, input := range []string{"", "   ", "no digits here"} {
		got, err := n.NormalizeAmount(input)
		if !got.IsZero() {
			t.Errorf("NormalizeAmount(%q) = %s, want 0", input, got)
		}
		if !errors.Is(err, ErrUnparsable) {
			t.Errorf("NormalizeAmount(%q): want ErrUnparsable, got %v", input, err)
		}
	}
}

func TestNormalizeTime_RelativeExpressions(t *testing.T) {
	n := testNormalizer()

	// fixedNow is Wednesday 2025/08/13 14:30; the Monday of that week is the 11th.
	tests := []struct {
		input string
		want  string
	}{
		{"today", "2025/08/13 14:30"},
		{"yesterday", "2025/08/12 14:30"},
		{"Yesterday ", "2025/08/12 14:30"}, // case and spacing insensitive
		{"this week", "2025/08/11 14:30"},
		{"last week", "2025/08/04 14:30"},
		{"next week", "2025/08/18 14:30"},
		{"this month", "2025/08/01 14:30"},
		{"last month", "2025/07/01 14:30"},
		{"next month", "2025/09/01 14:30"},
		{"this year", "2025/01/01 14:30"},
		{"last year", "2024/01/01 14:30"},
		{"next year", "2026/01/01 14:30"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := n.NormalizeTime(tt.input).String(); got != tt.want {
				t.Errorf("NormalizeTime(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTime_AbsoluteAndFallback(t *testing.T) {
	n := testNormalizer()

	tests := []struct {
		input string
		want  string
	}{
		{"2025/05/01 09:15", "2025/05/01 09:15"}, // canonical passes through
		{"2025/05/01", "2025/05/01 00:00"},       // date only, midnight assumed
		{"gibberish", "2025/08/13 14:30"},        // fallback to now
		{"", "2025/08/13 14:30"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := n.NormalizeTime(tt.input).String(); got != tt.want {
				t.Errorf("NormalizeTime(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
