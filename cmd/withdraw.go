package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type withdrawCmd struct{}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "take money out of the selected account" }
func (*withdrawCmd) Usage() string {
	return `fin -u <username> withdraw <amount>

  Subtracts the amount from the account balance. A withdrawal that would
  take the balance below zero is rejected.
`
}

func (*withdrawCmd) SetFlags(_ *flag.FlagSet) {}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, err := CurrentUser()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: withdraw needs an amount.")
		return subcommands.ExitUsageError
	}

	amount, err := NewNormalizer().NormalizeAmount(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	if err := finbook.Withdraw(Accounts(), user, amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error withdrawing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Withdrew %s from %s.\n", finbook.M(amount, *homeCurrency), user)
	return subcommands.ExitSuccess
}
