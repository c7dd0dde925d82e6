package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type addCmd struct {
	typ           string
	remark        string
	category      string
	paymentMethod string
	location      string
	tag           string
	attachment    string
	recurrence    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction in the ledger" }
func (*addCmd) Usage() string {
	return `fin -u <username> add <Income|Expense> <amount> <time> <merchant>

  Appends a transaction to the ledger. Amount and time accept free-form
  input: "30 USD", "25.5 YUAN", "yesterday", "last month", "2025/08/10".
  The extra flags only persist with the extended ledger layout.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "", "Transaction type, e.g. transfer.")
	f.StringVar(&c.remark, "remark", "", "Free-form note.")
	f.StringVar(&c.category, "category", "", "Spending category.")
	f.StringVar(&c.paymentMethod, "payment", "", "Payment method.")
	f.StringVar(&c.location, "location", "", "Where the transaction happened.")
	f.StringVar(&c.tag, "tag", "", "User tag.")
	f.StringVar(&c.attachment, "attachment", "", "Attachment reference.")
	f.StringVar(&c.recurrence, "recurrence", "", "Recurrence rule.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, err := CurrentUser()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() != 4 {
		fmt.Fprintln(os.Stderr, "Error: add needs an operation, an amount, a time and a merchant.")
		return subcommands.ExitUsageError
	}

	operation, err := finbook.ParseOperation(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	n := NewNormalizer()
	amount, err := n.NormalizeAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	tx := finbook.Transaction{
		Owner:         user,
		Operation:     operation,
		Amount:        amount,
		Time:          n.NormalizeTime(f.Arg(2)),
		Merchant:      f.Arg(3),
		Type:          c.typ,
		Remark:        c.remark,
		Category:      c.category,
		PaymentMethod: c.paymentMethod,
		Location:      c.location,
		Tag:           c.tag,
		Attachment:    c.attachment,
		Recurrence:    c.recurrence,
	}

	if err := Ledger().Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error appending transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended transaction to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}
