package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type expenseCmd struct {
	budget string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "show this month's spending" }
func (*expenseCmd) Usage() string {
	return `fin -u <username> expense [-budget <amount>]

  Sums the user's expenses for the current calendar month. With -budget,
  also checks the spending against that monthly budget.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.budget, "budget", "", "Monthly budget to check the spending against.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, err := CurrentUser()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	spent, err := Service().CurrentMonthExpense(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Spent this month: %s\n", finbook.M(spent, *homeCurrency))

	if c.budget != "" {
		budget, err := NewNormalizer().NormalizeAmount(c.budget)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing budget %q: %v\n", c.budget, err)
			return subcommands.ExitUsageError
		}
		if warning := finbook.CheckBudget(spent, budget); warning != "" {
			fmt.Println(warning)
		}
	}
	return subcommands.ExitSuccess
}
