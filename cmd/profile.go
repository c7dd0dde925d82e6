package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

type profileCmd struct{}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "display the account profile" }
func (*profileCmd) Usage() string {
	return `fin -u <username> profile

  Displays the account profile: contact details, status, balance and the
  number of ledger entries. The password never appears in the report.
`
}

func (*profileCmd) SetFlags(_ *flag.FlagSet) {}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, err := CurrentUser()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	account, found, err := Accounts().FindByUsername(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: %v\n", finbook.ErrAccountNotFound)
		return subcommands.ExitFailure
	}

	entries := -1
	if txs, err := Ledger().ReadByOwner(user); err == nil {
		entries = len(txs)
	}

	printMarkdown(renderer.RenderProfile(renderer.NewProfile(account, *homeCurrency, entries)))
	return subcommands.ExitSuccess
}
