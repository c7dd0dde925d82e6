package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type depositCmd struct{}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add money to the selected account" }
func (*depositCmd) Usage() string {
	return `fin -u <username> deposit <amount>

  Adds the amount to the account balance. The amount accepts the same
  free-form input as transactions: "50", "30 USD", "25.5 YUAN".
`
}

func (*depositCmd) SetFlags(_ *flag.FlagSet) {}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, err := CurrentUser()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: deposit needs an amount.")
		return subcommands.ExitUsageError
	}

	amount, err := NewNormalizer().NormalizeAmount(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	if err := finbook.Deposit(Accounts(), user, amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error depositing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deposited %s to %s.\n", finbook.M(amount, *homeCurrency), user)
	return subcommands.ExitSuccess
}
