package finbook

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionService aggregates and formats ledger data for one account.
// Now is the clock used to resolve the current calendar month; it defaults
// to time.Now.
type TransactionService struct {
	Store *TransactionStore
	Now   func() time.Time
}

func (s *TransactionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Balance returns the stored balance of the account. The balance is kept on
// the account record and is not reconciled against the ledger.
func (s *TransactionService) Balance(a Account) decimal.Decimal {
	return a.Balance
}

// CurrentMonthExpense sums the Expense amounts of the user's transactions
// dated in the calendar month containing now. Only the year and month
// components of the timestamp matter; insertion order does not.
func (s *TransactionService) CurrentMonthExpense(username string) (decimal.Decimal, error) {
	transactions, err := s.Store.ReadByOwner(username)
	if err != nil {
		return decimal.Zero, err
	}
	now := s.now()
	total := decimal.Zero
	for _, t := range transactions {
		if t.Operation == Expense && t.Time.SameMonth(now) {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

// SummaryHeader is the first line of every transaction summary.
const SummaryHeader = "Operation,Amount,Time,Merchant/Payee,Type,Category"

// BuildSummary produces a CSV-shaped textual report of the user's
// transactions, one line per transaction, amounts with exactly two decimals.
//
// The report only ever contains rows belonging to username; that is a
// confidentiality guarantee, not a formatting convenience.
func (s *TransactionService) BuildSummary(username string) (string, error) {
	transactions, err := s.Store.ReadByOwner(username)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(SummaryHeader)
	b.WriteString("\n")
	for _, t := range transactions {
		b.WriteString(string(t.Operation))
		b.WriteString(",")
		b.WriteString(t.Amount.StringFixed(2))
		b.WriteString(",")
		b.WriteString(t.Time.String())
		b.WriteString(",")
		b.WriteString(escapeSummaryField(t.Merchant))
		b.WriteString(",")
		b.WriteString(escapeSummaryField(t.Type))
		b.WriteString(",")
		b.WriteString(escapeSummaryField(t.Category))
		b.WriteString("\n")
	}
	return b.String(), nil
}

// escapeSummaryField quotes a field that contains commas or quotes.
func escapeSummaryField(field string) string {
	if strings.ContainsAny(field, ",\"") {
		return "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
	}
	return field
}
