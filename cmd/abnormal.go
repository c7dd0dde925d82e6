package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

type abnormalCmd struct{}

func (*abnormalCmd) Name() string     { return "abnormal" }
func (*abnormalCmd) Synopsis() string { return "report suspiciously large transfers" }
func (*abnormalCmd) Usage() string {
	return `fin -u <username> abnormal

  Flags every transfer expense above the abnormality threshold, in ledger
  order.
`
}

func (*abnormalCmd) SetFlags(_ *flag.FlagSet) {}

func (c *abnormalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, err := CurrentUser()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	transactions, err := Ledger().ReadByOwner(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AbnormalMarkdown(transactions, *homeCurrency))
	return subcommands.ExitSuccess
}
