package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type transferCmd struct{}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money to another account" }
func (*transferCmd) Usage() string {
	return `fin -u <username> transfer <receiver> <amount>

  Moves the amount from the selected account to the receiver. Both balances
  change in one atomic write; a failure leaves both untouched.
`
}

func (*transferCmd) SetFlags(_ *flag.FlagSet) {}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, err := CurrentUser()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: transfer needs a receiver and an amount.")
		return subcommands.ExitUsageError
	}
	receiver := f.Arg(0)

	amount, err := NewNormalizer().NormalizeAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	if err := finbook.Transfer(Accounts(), user, receiver, amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error transferring: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transferred %s from %s to %s.\n", finbook.M(amount, *homeCurrency), user, receiver)
	return subcommands.ExitSuccess
}
