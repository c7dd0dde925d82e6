package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "change another account's status (admin only)" }
func (*statusCmd) Usage() string {
	return `fin -u <admin> status <username> <ACTIVE|FROZEN|PENDING|CLOSED>

  Sets the lifecycle status of an account. Only an admin account may do
  this. Accounts are never deleted, they are closed.
`
}

func (*statusCmd) SetFlags(_ *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	admin, err := CurrentUser()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: status needs a username and a status.")
		return subcommands.ExitUsageError
	}

	status, err := finbook.ParseAccountStatus(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store := Accounts()
	actor, found, err := store.FindByUsername(admin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	if !found || !actor.IsAdmin() {
		fmt.Fprintf(os.Stderr, "Error: %q is not an admin account.\n", admin)
		return subcommands.ExitFailure
	}

	target := f.Arg(0)
	if err := store.Update(target, func(a *finbook.Account) error {
		a.Status = status
		return nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating %q: %v\n", target, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account %q is now %s.\n", target, status)
	return subcommands.ExitSuccess
}
