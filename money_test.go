package finbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		value string
		cur   string
		want  string
	}{
		{"1234.56", "USD", "$1,234.56"},
		{"1234.56", "EUR", "€1,234.56"},
		{"0", "USD", "$0.00"},
		{"-42.50", "USD", "-$42.50"},
	}
	for _, tt := range tests {
		m := M(decimal.RequireFromString(tt.value), tt.cur)
		if got := m.String(); got != tt.want {
			t.Errorf("M(%s, %s).String() = %q, want %q", tt.value, tt.cur, got, tt.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(decimal.Zero, "USD").SignedString(); got != "-" {
		t.Errorf("zero = %q, want %q", got, "-")
	}
	if got := M(decimal.RequireFromString("10"), "USD").SignedString(); got != "+$10.00" {
		t.Errorf("positive = %q, want %q", got, "+$10.00")
	}
	if got := M(decimal.RequireFromString("-10"), "USD").SignedString(); got != "-$10.00" {
		t.Errorf("negative = %q, want %q", got, "-$10.00")
	}
}
