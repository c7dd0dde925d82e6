package renderer

import (
	"github.com/finbook/finbook"
)

// Profile is the view model behind the account profile report. It flattens
// the account into display-ready strings so the templates stay logic-free.
type Profile struct {
	Username     string
	Phone        string
	Email        string
	Gender       string
	Address      string
	CreationTime string
	Status       string
	Type         string
	Balance      string

	// Transactions counts the account's ledger entries, -1 when unknown.
	Transactions int
}

// NewProfile builds the profile view from an account. The password never
// reaches the view model.
func NewProfile(a finbook.Account, currency string, transactions int) *Profile {
	return &Profile{
		Username:     a.Username,
		Phone:        a.Phone,
		Email:        a.Email,
		Gender:       a.Gender,
		Address:      a.Address,
		CreationTime: a.CreationTime,
		Status:       string(a.Status),
		Type:         string(a.Type),
		Balance:      finbook.M(a.Balance, currency).String(),
		Transactions: transactions,
	}
}
