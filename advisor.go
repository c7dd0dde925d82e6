package finbook

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetMode classifies an account's recent spending pattern.
type BudgetMode int

const (
	// ModeNormal is the default for a stable spending pattern.
	ModeNormal BudgetMode = iota
	// ModeEconomical is selected when the history shows repeated large
	// withdrawals.
	ModeEconomical
	// ModeShoppingSeason is selected in shopping months regardless of the
	// spending pattern.
	ModeShoppingSeason
	// ModeCustom is forced by the caller and never computed by Recommend.
	ModeCustom
)

func (m BudgetMode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeEconomical:
		return "Economical"
	case ModeShoppingSeason:
		return "Shopping Season"
	case ModeCustom:
		return "Custom"
	default:
		return "unknown"
	}
}

// Reason returns a short explanation for the mode choice.
func (m BudgetMode) Reason() string {
	switch m {
	case ModeNormal:
		return "Stable spending pattern"
	case ModeEconomical:
		return "Unstable spending pattern"
	case ModeShoppingSeason:
		return "Upcoming shopping season"
	case ModeCustom:
		return "User-defined budget"
	default:
		return "unknown"
	}
}

// ParseBudgetMode parses a string into a BudgetMode.
func ParseBudgetMode(s string) (BudgetMode, error) {
	switch s {
	case "normal":
		return ModeNormal, nil
	case "economical":
		return ModeEconomical, nil
	case "shopping":
		return ModeShoppingSeason, nil
	case "custom":
		return ModeCustom, nil
	default:
		return 0, fmt.Errorf("unknown budget mode: %q", s)
	}
}

// Recommendation is the advisor's output. SuggestedSaving may be negative;
// it is deliberately not clamped.
type Recommendation struct {
	Mode            BudgetMode
	SuggestedBudget decimal.Decimal
	SuggestedSaving decimal.Decimal
}

// shoppingMonths is a fixed calendar policy.
var shoppingMonths = map[time.Month]bool{
	time.February: true,
	time.May:      true,
	time.October:  true,
	time.November: true,
}

// budget multipliers per mode.
var (
	multiplierShopping   = decimal.RequireFromString("0.7")
	multiplierEconomical = decimal.RequireFromString("0.8")
	multiplierNormal     = decimal.RequireFromString("1.1")
	bigWithdrawalFactor  = decimal.RequireFromString("1.5")
)

// minBigWithdrawals is how many oversized expenses flip the advisor into the
// economical mode.
const minBigWithdrawals = 3

// Recommend classifies the spending pattern of the supplied transactions and
// computes a suggested budget and saving for the given calendar month.
//
// The transactions must all belong to the account under advisement, for
// whatever history window the caller chose. Mode priority is strict:
// Custom (caller-forced, never returned here) > Shopping Season >
// Economical > Normal.
func Recommend(transactions []Transaction, currentMonth time.Month) Recommendation {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	expenseCount := 0
	for _, t := range transactions {
		switch t.Operation {
		case Income:
			totalIncome = totalIncome.Add(t.Amount)
		case Expense:
			totalExpense = totalExpense.Add(t.Amount)
			expenseCount++
		}
	}

	avgExpense := decimal.Zero
	if expenseCount > 0 {
		avgExpense = totalExpense.Div(decimal.NewFromInt(int64(expenseCount)))
	}

	bigWithdrawals := 0
	threshold := avgExpense.Mul(bigWithdrawalFactor)
	for _, t := range transactions {
		if t.Operation == Expense && t.Amount.GreaterThan(threshold) {
			bigWithdrawals++
		}
	}

	mode := ModeNormal
	multiplier := multiplierNormal
	switch {
	case shoppingMonths[currentMonth]:
		mode = ModeShoppingSeason
		multiplier = multiplierShopping
	case bigWithdrawals >= minBigWithdrawals:
		mode = ModeEconomical
		multiplier = multiplierEconomical
	}

	budget := avgExpense.Mul(multiplier)
	return Recommendation{
		Mode:            mode,
		SuggestedBudget: budget,
		SuggestedSaving: totalIncome.Sub(budget),
	}
}
