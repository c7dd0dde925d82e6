package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

type budgetCmd struct {
	custom string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "recommend a monthly budget" }
func (*budgetCmd) Usage() string {
	return `fin -u <username> budget [-custom <amount>]

  Classifies the user's spending pattern and recommends a monthly budget
  and saving. With -custom, the given budget overrides the computed one.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.custom, "custom", "", "Use this budget instead of the computed one.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, err := CurrentUser()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	service := Service()
	transactions, err := service.Store.ReadByOwner(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := finbook.Recommend(transactions, time.Now().Month())
	if c.custom != "" {
		budget, err := NewNormalizer().NormalizeAmount(c.custom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing budget %q: %v\n", c.custom, err)
			return subcommands.ExitUsageError
		}
		saving := rec.SuggestedSaving.Add(rec.SuggestedBudget).Sub(budget)
		rec = finbook.Recommendation{
			Mode:            finbook.ModeCustom,
			SuggestedBudget: budget,
			SuggestedSaving: saving,
		}
	}

	spent, err := service.CurrentMonthExpense(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	status := finbook.CheckBudget(spent, rec.SuggestedBudget)
	printMarkdown(renderer.AdviceMarkdown(rec, finbook.M(spent, *homeCurrency), status))
	return subcommands.ExitSuccess
}
