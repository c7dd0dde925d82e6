package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/finbook/finbook"
	"github.com/shopspring/decimal"
)

func sampleAccount() finbook.Account {
	return finbook.Account{
		Username:     "alice",
		Password:     "secret",
		Phone:        "555-0101",
		Email:        "alice@example.com",
		Gender:       "F",
		Address:      "12 High Street",
		CreationTime: "2025/01/02 09:30",
		Status:       finbook.StatusActive,
		Type:         finbook.TypePersonal,
		Balance:      decimal.RequireFromString("1234.56"),
	}
}

func sampleTx(amount, typ string) finbook.Transaction {
	return finbook.Transaction{
		Owner:     "alice",
		Operation: finbook.Expense,
		Amount:    decimal.RequireFromString(amount),
		Time:      finbook.MustParseTimestamp("2025/08/10 10:00"),
		Merchant:  "store",
		Type:      typ,
		Category:  "shopping",
	}
}

func TestRenderProfile(t *testing.T) {
	got := RenderProfile(NewProfile(sampleAccount(), "USD", 4))

	for _, want := range []string{
		"# Profile: alice",
		"Member since 2025/01/02 09:30",
		"alice@example.com",
		"Status: **ACTIVE**",
		"Balance: **$1,234.56**",
		"Ledger entries: 4",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("profile report missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "secret") {
		t.Error("profile report must not leak the password")
	}
}

func TestRenderProfile_UnknownTransactionCount(t *testing.T) {
	got := RenderProfile(NewProfile(sampleAccount(), "USD", -1))
	if strings.Contains(got, "Ledger entries") {
		t.Errorf("unknown count must omit the ledger line:\n%s", got)
	}
}

func TestTransactionLine(t *testing.T) {
	tx := sampleTx("42.50", "")
	got := Transaction(tx, "USD")
	if want := "Spent $42.50 at store on 2025/08/10 10:00"; got != want {
		t.Errorf("Transaction() = %q, want %q", got, want)
	}

	tx.Operation = finbook.Income
	tx.Merchant = "employer"
	got = Transaction(tx, "USD")
	if want := "Received $42.50 from employer on 2025/08/10 10:00"; got != want {
		t.Errorf("Transaction() = %q, want %q", got, want)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	txs := []finbook.Transaction{sampleTx("42.50", ""), sampleTx("7.00", "")}
	got := TransactionsMarkdown("Ledger", txs, "USD")

	for _, want := range []string{"# Ledger", "$42.50", "$7.00", "store", "shopping"} {
		if !strings.Contains(got, want) {
			t.Errorf("listing missing %q:\n%s", want, got)
		}
	}

	empty := TransactionsMarkdown("Ledger", nil, "USD")
	if !strings.Contains(empty, "No transactions.") {
		t.Errorf("empty listing must say so:\n%s", empty)
	}
}

func TestAbnormalMarkdown(t *testing.T) {
	txs := []finbook.Transaction{
		sampleTx("600.00", "transfer"),
		sampleTx("100.00", "transfer"),
		sampleTx("900.00", ""),
	}
	got := AbnormalMarkdown(txs, "USD")
	if !strings.Contains(got, "$600.00") {
		t.Errorf("flagged transfer missing:\n%s", got)
	}
	if strings.Contains(got, "$100.00") || strings.Contains(got, "$900.00") {
		t.Errorf("unflagged transactions must not appear:\n%s", got)
	}

	clean := AbnormalMarkdown(nil, "USD")
	if !strings.Contains(clean, "No abnormal transfers detected.") {
		t.Errorf("clean ledger must report all clear:\n%s", clean)
	}
}

func TestAdviceMarkdown(t *testing.T) {
	rec := finbook.Recommend([]finbook.Transaction{sampleTx("100.00", "")}, time.August)
	got := AdviceMarkdown(rec, finbook.M(decimal.RequireFromString("100.00"), "USD"), "Budget exceeded!")

	for _, want := range []string{"# Budget Recommendation", "Normal", "$100.00", "> Budget exceeded!"} {
		if !strings.Contains(got, want) {
			t.Errorf("advice report missing %q:\n%s", want, got)
		}
	}
}
