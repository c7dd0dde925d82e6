package finbook

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInsufficientFunds reports a withdrawal or transfer larger than the
// account balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Deposit adds amount to the account balance, as a locked read-modify-write
// of the account file.
//
// Balance updates and transaction appends are two independent operations;
// callers that want the ledger to reflect the deposit append a matching
// Income transaction separately.
func Deposit(store *AccountStore, username string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit amount must be positive, got %s", amount)
	}
	return store.Update(username, func(a *Account) error {
		if !a.CanTransact() {
			return fmt.Errorf("account %q is %s", a.Username, a.Status)
		}
		a.Balance = a.Balance.Add(amount)
		return nil
	})
}

// Withdraw subtracts amount from the account balance. The balance never goes
// negative.
func Withdraw(store *AccountStore, username string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("withdrawal amount must be positive, got %s", amount)
	}
	return store.Update(username, func(a *Account) error {
		if !a.CanTransact() {
			return fmt.Errorf("account %q is %s", a.Username, a.Status)
		}
		if a.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}
		a.Balance = a.Balance.Sub(amount)
		return nil
	})
}

// Transfer moves amount from one account to another as a single locked
// rewrite of the account file. Both legs succeed or neither does.
func Transfer(store *AccountStore, from, to string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("transfer amount must be positive, got %s", amount)
	}
	if from == to {
		return fmt.Errorf("cannot transfer from %q to itself", from)
	}
	return store.UpdateAll(func(accounts []Account) error {
		var src, dst *Account
		for i := range accounts {
			switch accounts[i].Username {
			case from:
				src = &accounts[i]
			case to:
				dst = &accounts[i]
			}
		}
		if src == nil {
			return fmt.Errorf("cannot transfer from %q: %w", from, ErrAccountNotFound)
		}
		if dst == nil {
			return fmt.Errorf("cannot transfer to %q: %w", to, ErrAccountNotFound)
		}
		if !src.CanTransact() {
			return fmt.Errorf("account %q is %s", src.Username, src.Status)
		}
		if !dst.CanTransact() {
			return fmt.Errorf("account %q is %s", dst.Username, dst.Status)
		}
		if src.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}
		src.Balance = src.Balance.Sub(amount)
		dst.Balance = dst.Balance.Add(amount)
		return nil
	})
}
