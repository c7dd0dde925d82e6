package finbook

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testService(t *testing.T) (*TransactionService, *TransactionStore) {
	t.Helper()
	store := NewTransactionStore(filepath.Join(t.TempDir(), "transactions.csv"), SchemaExtended)
	svc := &TransactionService{
		Store: store,
		Now:   func() time.Time { return fixedNow }, // 2025/08/13 14:30
	}
	return svc, store
}

func TestCurrentMonthExpense(t *testing.T) {
	svc, store := testService(t)

	rows := []Transaction{
		expenseTx("alice", "100.00", "2025/08/01 10:00"),
		expenseTx("alice", "200.00", "2025/08/20 10:00"),
		{Owner: "alice", Operation: Income, Amount: decimal.RequireFromString("300.00"),
			Time: MustParseTimestamp("2025/08/05 10:00"), Merchant: "salary"},
		expenseTx("alice", "999.00", "2025/07/31 23:59"), // previous month
		expenseTx("bob", "50.00", "2025/08/02 10:00"),    // other owner
	}
	for _, tx := range rows {
		if err := store.Append(tx); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.CurrentMonthExpense("alice")
	if err != nil {
		t.Fatalf("CurrentMonthExpense: %v", err)
	}
	if want := decimal.RequireFromString("300.00"); !got.Equal(want) {
		t.Errorf("CurrentMonthExpense(alice) = %s, want %s", got, want)
	}

	mine, err := store.ReadByOwner("alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 4 {
		t.Errorf("ReadByOwner(alice) has %d rows, want 4", len(mine))
	}
}

func TestCurrentMonthExpense_OrderInvariant(t *testing.T) {
	// The sum depends only on owner, operation and month, never on the
	// order rows were appended in.
	amounts := []string{"10.00", "20.00", "30.00"}
	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}}

	var results []decimal.Decimal
	for _, order := range orders {
		svc, store := testService(t)
		for _, i := range order {
			if err := store.Append(expenseTx("alice", amounts[i], "2025/08/10 09:00")); err != nil {
				t.Fatal(err)
			}
		}
		got, err := svc.CurrentMonthExpense("alice")
		if err != nil {
			t.Fatal(err)
		}
		results = append(results, got)
	}
	for i := 1; i < len(results); i++ {
		if !results[i].Equal(results[0]) {
			t.Errorf("insertion order changed the sum: %s vs %s", results[i], results[0])
		}
	}
}

func TestBuildSummary(t *testing.T) {
	svc, store := testService(t)

	alice := expenseTx("alice", "42.50", "2025/08/01 12:00")
	alice.Category = "Food"
	bob := expenseTx("bob", "13.00", "2025/08/02 12:00")
	for _, tx := range []Transaction{alice, bob} {
		if err := store.Append(tx); err != nil {
			t.Fatal(err)
		}
	}

	report, err := svc.BuildSummary("alice")
	if err != nil {
		t.Fatalf("BuildSummary: %v", err)
	}
	if !strings.HasPrefix(report, SummaryHeader+"\n") {
		t.Errorf("report must start with the summary header, got:\n%s", report)
	}
	if !strings.Contains(report, "Expense,42.50,2025/08/01 12:00") {
		t.Errorf("report is missing alice's row:\n%s", report)
	}
	// Confidentiality: no other account's data, not even its name.
	if strings.Contains(report, "bob") || strings.Contains(report, "13.00") {
		t.Errorf("report leaks another account's data:\n%s", report)
	}
}

func TestEscapeSummaryField(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"shop", "shop"},
		{"Soup, Salad & Co", `"Soup, Salad & Co"`},
		{`say "hi"`, `"say ""hi"""`},
	}
	for _, tt := range tests {
		if got := escapeSummaryField(tt.input); got != tt.want {
			t.Errorf("escapeSummaryField(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildSummary_EmptyLedger(t *testing.T) {
	svc, _ := testService(t)
	report, err := svc.BuildSummary("alice")
	if err != nil {
		t.Fatalf("BuildSummary on empty ledger: %v", err)
	}
	if report != SummaryHeader+"\n" {
		t.Errorf("want header-only report, got:\n%q", report)
	}
}
