package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type registerCmd struct {
	phone   string
	email   string
	gender  string
	address string
	admin   bool
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `fin register [-phone <n>] [-email <e>] [-gender <g>] [-address <a>] [-admin] <username> <password>

  Creates a new account with a zero balance. The account starts ACTIVE.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.phone, "phone", "", "Phone number.")
	f.StringVar(&c.email, "email", "", "Email address.")
	f.StringVar(&c.gender, "gender", "", "Gender.")
	f.StringVar(&c.address, "address", "", "Postal address.")
	f.BoolVar(&c.admin, "admin", false, "Create an admin account.")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: register needs a username and a password.")
		return subcommands.ExitUsageError
	}

	typ := finbook.TypePersonal
	if c.admin {
		typ = finbook.TypeAdmin
	}
	account := finbook.Account{
		Username:     f.Arg(0),
		Password:     f.Arg(1),
		Phone:        c.phone,
		Email:        c.email,
		Gender:       c.gender,
		Address:      c.address,
		CreationTime: finbook.NewTimestamp(time.Now()).String(),
		Status:       finbook.StatusActive,
		Type:         typ,
		Balance:      decimal.Zero,
	}

	if err := Accounts().Register(account); err != nil {
		fmt.Fprintf(os.Stderr, "Error registering %q: %v\n", account.Username, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account %q created.\n", account.Username)
	return subcommands.ExitSuccess
}
