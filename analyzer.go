package finbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AbnormalThreshold is the amount above which an outgoing transfer is
// flagged as abnormal.
var AbnormalThreshold = decimal.NewFromInt(500)

// DetectAbnormal returns, preserving order, every transaction that is an
// outgoing transfer larger than the threshold. Pure function, no state.
func DetectAbnormal(transactions []Transaction) []Transaction {
	var abnormal []Transaction
	for _, t := range transactions {
		if t.Operation == Expense && t.IsTransfer() && t.Amount.GreaterThan(AbnormalThreshold) {
			abnormal = append(abnormal, t)
		}
	}
	return abnormal
}

// lowBudgetWarning is the remaining amount under which CheckBudget starts
// warning.
var lowBudgetWarning = decimal.NewFromInt(1000)

// CheckBudget compares spending against a monthly budget and returns a
// user-facing reminder, or the empty string when there is nothing to say.
func CheckBudget(totalSpent, monthlyBudget decimal.Decimal) string {
	remaining := monthlyBudget.Sub(totalSpent)
	if !remaining.IsPositive() {
		return "Budget exceeded!"
	}
	if remaining.LessThan(lowBudgetWarning) {
		return fmt.Sprintf("$%s left this month", remaining.StringFixed(2))
	}
	return ""
}
