package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "verify an account's credentials" }
func (*loginCmd) Usage() string {
	return `fin login <username> <password>

  Verifies the credentials and reports the session that would open. Frozen
  and closed accounts cannot log in.
`
}

func (*loginCmd) SetFlags(_ *flag.FlagSet) {}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: login needs a username and a password.")
		return subcommands.ExitUsageError
	}

	session, err := finbook.Login(Accounts(), f.Arg(0), f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		return subcommands.ExitFailure
	}

	if session.IsAdmin() {
		fmt.Printf("Welcome %s (admin).\n", session.Username())
	} else {
		fmt.Printf("Welcome %s.\n", session.Username())
	}
	return subcommands.ExitSuccess
}
