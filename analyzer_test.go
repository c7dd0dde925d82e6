package finbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func transferTx(owner, amount string) Transaction {
	tx := expenseTx(owner, amount, "2025/08/10 10:00")
	tx.Type = "transfer"
	return tx
}

func TestDetectAbnormal(t *testing.T) {
	small := transferTx("alice", "100.00")
	big1 := transferTx("alice", "600.00")
	big2 := transferTx("alice", "750.00")
	exactly := transferTx("alice", "500.00") // threshold is strict
	food := expenseTx("alice", "900.00", "2025/08/10 10:00")
	income := Transaction{Owner: "alice", Operation: Income,
		Amount: decimal.RequireFromString("9000.00"), Time: MustParseTimestamp("2025/08/01 09:00"),
		Type: "transfer"}

	got := DetectAbnormal([]Transaction{small, big1, exactly, food, income, big2})
	if len(got) != 2 {
		t.Fatalf("want 2 abnormal transactions, got %d", len(got))
	}
	// Order preserved: big1 before big2.
	if !got[0].Amount.Equal(big1.Amount) || !got[1].Amount.Equal(big2.Amount) {
		t.Errorf("wrong subsequence: %s, %s", got[0].Amount, got[1].Amount)
	}
}

func TestDetectAbnormal_Empty(t *testing.T) {
	txs := []Transaction{
		transferTx("alice", "499.99"),
		expenseTx("alice", "800.00", "2025/08/10 10:00"), // not a transfer
	}
	if got := DetectAbnormal(txs); len(got) != 0 {
		t.Errorf("want empty result, got %d", len(got))
	}
	if got := DetectAbnormal(nil); len(got) != 0 {
		t.Errorf("want empty result for nil input, got %d", len(got))
	}
}

func TestCheckBudget(t *testing.T) {
	tests := []struct {
		name           string
		spent, budget  string
		want           string
	}{
		{"exceeded", "1200", "1000", "Budget exceeded!"},
		{"exactly spent", "1000", "1000", "Budget exceeded!"},
		{"running low", "4500", "5000", "$500.00 left this month"},
		{"comfortable", "1000", "5000", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckBudget(decimal.RequireFromString(tt.spent), decimal.RequireFromString(tt.budget))
			if got != tt.want {
				t.Errorf("CheckBudget(%s, %s) = %q, want %q", tt.spent, tt.budget, got, tt.want)
			}
		})
	}
}
